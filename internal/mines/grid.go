package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellType int8

const (
	Empty CellType = iota
	Mine
)

type Visibility int8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

type Cell struct {
	Type          CellType
	Visibility    Visibility
	AdjacentMines int
}

// neighbours lists the 4 orthogonal offsets first, then the diagonals.
var neighbours = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Grid owns the cells of one round. Cells are stored row-major, the cell at
// x,y lives at index y*Width+x.
type Grid struct {
	setup Setup
	cells []Cell
}

// NewGrid allocates a grid of hidden empty cells. Mines are placed separately.
func NewGrid(setup Setup) (*Grid, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	return &Grid{
		setup: setup,
		cells: make([]Cell, setup.Size()),
	}, nil
}

func (g *Grid) Setup() Setup {
	return g.setup
}

// index returns -1 for positions outside the grid.
func (g *Grid) index(x, y int) int {
	if !g.setup.PointInBounds(x, y) {
		return -1
	}
	return y*g.setup.Width + x
}

func (g *Grid) point(i int) (x, y int) {
	return i % g.setup.Width, i / g.setup.Width
}

// CellAt reports false for out-of-range positions. The returned cell must
// not be modified by callers.
func (g *Grid) CellAt(x, y int) (*Cell, bool) {
	i := g.index(x, y)
	if i < 0 {
		return nil, false
	}
	return &g.cells[i], true
}

func (g *Grid) countAdjacentMines(x, y int) int {
	count := 0
	for _, n := range neighbours {
		if c, ok := g.CellAt(x+n[0], y+n[1]); ok && c.Type == Mine {
			count++
		}
	}
	return count
}

func (g *Grid) ToggleFlag(x, y int) {
	c, ok := g.CellAt(x, y)
	if !ok {
		return
	}
	switch c.Visibility {
	case Hidden:
		c.Visibility = Flagged
	case Flagged:
		c.Visibility = Hidden
	}
}

func (g *Grid) RevealAllMines() {
	for i := range g.cells {
		if g.cells[i].Type == Mine {
			g.cells[i].Visibility = Revealed
		}
	}
}

func (g *Grid) CountRevealedSafeCells() (count int) {
	for _, c := range g.cells {
		if c.Type == Empty && c.Visibility == Revealed {
			count++
		}
	}
	return
}

func (g *Grid) CountFlags() (count int) {
	for _, c := range g.cells {
		if c.Visibility == Flagged {
			count++
		}
	}
	return
}

// MineRevealed reports whether any mine has been opened.
func (g *Grid) MineRevealed() bool {
	for _, c := range g.cells {
		if c.Type == Mine && c.Visibility == Revealed {
			return true
		}
	}
	return false
}

type RenderState int8

const (
	Blank RenderState = iota
	Flag
	Number
	ExposedMine
)

func (s RenderState) String() string {
	switch s {
	case Blank:
		return "blank"
	case Flag:
		return "flag"
	case Number:
		return "number"
	case ExposedMine:
		return "mine"
	default:
		return "unknown"
	}
}

// CellView is what a renderer may know about a cell. Count is only set for
// [Number].
type CellView struct {
	X, Y  int
	State RenderState
	Count int
}

func (v CellView) String() string {
	switch v.State {
	case Flag:
		return "F"
	case ExposedMine:
		return "B"
	case Number:
		if v.Count == 0 {
			return " "
		}
		return strconv.Itoa(v.Count)
	default:
		return "."
	}
}

func (c Cell) view(x, y int) CellView {
	v := CellView{X: x, Y: y}
	switch {
	case c.Visibility == Flagged:
		v.State = Flag
	case c.Visibility == Hidden:
		v.State = Blank
	case c.Type == Mine:
		v.State = ExposedMine
	default:
		v.State = Number
		v.Count = c.AdjacentMines
	}
	return v
}

// Snapshot returns the renderable state of every cell in row-major order.
func (g *Grid) Snapshot() []CellView {
	views := make([]CellView, len(g.cells))
	for i, c := range g.cells {
		x, y := g.point(i)
		views[i] = c.view(x, y)
	}
	return views
}

func (g *Grid) String() string {
	var b strings.Builder
	for i, v := range g.Snapshot() {
		fmt.Fprint(&b, v.String())
		if (i+1)%g.setup.Width == 0 {
			fmt.Fprint(&b, "\n")
		} else {
			fmt.Fprint(&b, " ")
		}
	}
	return b.String()
}
