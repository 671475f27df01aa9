package mines

// Reveal opens the cell at x,y. Opening a cell with no adjacent mines also
// opens the connected zero region and the numbered cells bordering it.
// Out-of-range, revealed and flagged cells are left alone.
func (g *Grid) Reveal(x, y int) {
	g.reveal(x, y, &worklist{})
}

func (g *Grid) reveal(x, y int, todo *worklist) {
	c, ok := g.CellAt(x, y)
	if !ok || c.Visibility != Hidden {
		return
	}
	if c.Type == Mine || c.AdjacentMines > 0 {
		c.Visibility = Revealed
		return
	}
	g.cascade(g.index(x, y), todo)
}

func (g *Grid) cascade(start int, todo *worklist) {
	/*
	 * Cells are marked revealed before they are pushed, so each zero cell
	 * enters the worklist once and the walk ends after at most
	 * len(g.cells) pops.
	 */
	visited := make([]int, 0)
	g.cells[start].Visibility = Revealed
	todo.push(start)

	for !todo.empty() {
		i := todo.pop()
		visited = append(visited, i)
		x, y := g.point(i)
		for _, n := range neighbours[:4] {
			j := g.index(x+n[0], y+n[1])
			if j < 0 {
				continue
			}
			c := &g.cells[j]
			if c.Visibility == Hidden && c.Type == Empty && c.AdjacentMines == 0 {
				c.Visibility = Revealed
				todo.push(j)
			}
		}
	}

	/* Expose the numbers around the opened region. */
	for _, i := range visited {
		x, y := g.point(i)
		for _, n := range neighbours {
			c, ok := g.CellAt(x+n[0], y+n[1])
			if ok && c.Visibility == Hidden && c.Type == Empty && c.AdjacentMines > 0 {
				c.Visibility = Revealed
			}
		}
	}
}
