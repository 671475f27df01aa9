package mines

import (
	"math/rand/v2"
)

// PlaceMinesRandomly picks MineCount distinct cells uniformly at random and
// then computes adjacency counts. It expects a freshly created grid.
func (g *Grid) PlaceMinesRandomly(r *rand.Rand) {
	/*
	 * Write down every cell index, then pick mines off the list: each pick
	 * swaps the chosen index out of the live range, so exactly MineCount
	 * draws are made and none repeats.
	 */
	candidates := make([]int, len(g.cells))
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	picked := make([]int, 0, g.setup.MineCount)
	for range g.setup.MineCount {
		i := r.IntN(k)
		picked = append(picked, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	g.placeMines(picked)
}

// placeMines marks the given indices as mines and fills in AdjacentMines.
func (g *Grid) placeMines(indices []int) {
	for _, i := range indices {
		g.cells[i].Type = Mine
	}
	for i := range g.cells {
		if g.cells[i].Type == Mine {
			continue
		}
		x, y := g.point(i)
		g.cells[i].AdjacentMines = g.countAdjacentMines(x, y)
	}
}
