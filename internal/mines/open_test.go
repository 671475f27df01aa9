package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealedSet(g *Grid) []bool {
	set := make([]bool, len(g.cells))
	for i, c := range g.cells {
		set[i] = c.Visibility == Revealed
	}
	return set
}

func TestRevealCascadeSmall(t *testing.T) {
	g := gridWithMines(t, Setup{Width: 3, Height: 3, MineCount: 1}, [2]int{0, 0})

	for _, p := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		c, _ := g.CellAt(p[0], p[1])
		assert.Equal(t, 1, c.AdjacentMines)
	}

	g.Reveal(2, 2)

	mine, _ := g.CellAt(0, 0)
	assert.Equal(t, Hidden, mine.Visibility)
	assert.Equal(t, 8, g.CountRevealedSafeCells())
}

func TestRevealNumberDoesNotCascade(t *testing.T) {
	g := gridWithMines(t, Setup{Width: 3, Height: 3, MineCount: 1}, [2]int{0, 0})
	g.Reveal(1, 1)
	assert.Equal(t, 1, g.CountRevealedSafeCells())
}

func TestRevealMine(t *testing.T) {
	g := gridWithMines(t, Setup{Width: 3, Height: 3, MineCount: 1}, [2]int{0, 0})
	g.Reveal(0, 0)
	c, _ := g.CellAt(0, 0)
	assert.Equal(t, Revealed, c.Visibility)
	assert.True(t, g.MineRevealed())
	assert.Equal(t, 0, g.CountRevealedSafeCells())
}

func TestRevealNoop(t *testing.T) {
	g := gridWithMines(t, Setup{Width: 3, Height: 3, MineCount: 1}, [2]int{0, 0})

	g.ToggleFlag(2, 2)
	g.Reveal(2, 2)
	c, _ := g.CellAt(2, 2)
	assert.Equal(t, Flagged, c.Visibility)
	assert.Equal(t, 0, g.CountRevealedSafeCells())

	g.Reveal(-1, 0)
	g.Reveal(0, 3)
	assert.Equal(t, 0, g.CountRevealedSafeCells())

	g.Reveal(1, 1)
	g.Reveal(1, 1)
	assert.Equal(t, 1, g.CountRevealedSafeCells())
}

func TestRevealCascadeStopsAtFlags(t *testing.T) {
	// a single mine in the far corner leaves one big zero region
	g := gridWithMines(t, Setup{Width: 5, Height: 1, MineCount: 1}, [2]int{4, 0})
	g.ToggleFlag(1, 0)
	g.Reveal(0, 0)

	assert.Equal(t, []bool{true, false, false, false, false}, revealedSet(g))
	flagged, _ := g.CellAt(1, 0)
	assert.Equal(t, Flagged, flagged.Visibility)
}

func TestRevealCascadeBorder(t *testing.T) {
	/*
	 * . . . . .
	 * . . . . .
	 * . . * . .
	 * . . . . .
	 * . . . . .
	 */
	g := gridWithMines(t, Setup{Width: 5, Height: 5, MineCount: 1}, [2]int{2, 2})
	g.Reveal(0, 0)

	assert.Equal(t, 24, g.CountRevealedSafeCells())
	mine, _ := g.CellAt(2, 2)
	assert.Equal(t, Hidden, mine.Visibility)
}

func TestRevealBorderOnlyAroundZeroRegion(t *testing.T) {
	/*
	 * opening the 0 in the corner exposes its three numbered neighbours and
	 * nothing beyond them
	 *
	 * . * .
	 * * . .
	 * . . .
	 */
	g := gridWithMines(t, Setup{Width: 3, Height: 3, MineCount: 2}, [2]int{1, 0}, [2]int{0, 1})
	corner, _ := g.CellAt(0, 0)
	require.Equal(t, 2, corner.AdjacentMines)

	g.Reveal(2, 2)
	assert.Equal(t, []bool{
		false, false, false,
		false, true, true,
		false, true, true,
	}, revealedSet(g))
}

func TestCascadeOrderIndependent(t *testing.T) {
	t.Parallel()

	r := newRand()
	rounds := 200
	if testing.Short() {
		rounds = 20
	}
	for range rounds {
		dfs, err := NewGrid(Hard)
		require.NoError(t, err)
		dfs.PlaceMinesRandomly(r)

		bfs := &Grid{setup: dfs.setup, cells: make([]Cell, len(dfs.cells))}
		copy(bfs.cells, dfs.cells)

		for i, c := range dfs.cells {
			if c.Type == Empty && c.AdjacentMines == 0 {
				x, y := dfs.point(i)
				dfs.reveal(x, y, &worklist{})
				bfs.reveal(x, y, &worklist{fifo: true})
				break
			}
		}
		assert.Equal(t, revealedSet(dfs), revealedSet(bfs))
	}
}

func TestCascadeLargeGrid(t *testing.T) {
	setup := Setup{Width: 1000, Height: 1000, MineCount: 1}
	g := gridWithMines(t, setup, [2]int{999, 999})
	g.Reveal(0, 0)
	assert.Equal(t, setup.Size()-1, g.CountRevealedSafeCells())
}

func TestWorklist(t *testing.T) {
	stack := &worklist{}
	queue := &worklist{fifo: true}
	for i := range 3 {
		stack.push(i)
		queue.push(i)
	}
	assert.Equal(t, 2, stack.pop())
	assert.Equal(t, 0, queue.pop())
	assert.Equal(t, 1, stack.pop())
	assert.Equal(t, 1, queue.pop())
	assert.False(t, stack.empty())
	stack.pop()
	assert.True(t, stack.empty())
}
