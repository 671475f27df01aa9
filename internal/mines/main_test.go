package mines

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetOutput(io.Discard)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// gridWithMines builds a grid with mines at exactly the given x,y pairs.
func gridWithMines(t *testing.T, setup Setup, points ...[2]int) *Grid {
	t.Helper()
	g, err := NewGrid(setup)
	if err != nil {
		t.Fatalf("unable to create grid %s: %s", setup, err)
	}
	indices := make([]int, 0, len(points))
	for _, p := range points {
		indices = append(indices, g.index(p[0], p[1]))
	}
	g.placeMines(indices)
	return g
}

func sessionWithGrid(g *Grid) *Session {
	s := &Session{rnd: newRand()}
	s.start(g)
	return s
}
