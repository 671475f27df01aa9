package mines

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status int8

const (
	Running Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session drives one game at a time: it owns the current grid and decides
// when a round is won or lost. It is not safe for concurrent use.
type Session struct {
	grid   *Grid
	status Status
	round  uuid.UUID
	rnd    *rand.Rand
}

// NewSession starts a round with mines placed using r. The same r is reused
// for every later [Session.Reset]. A nil r is rejected with [ErrNoRandSource].
func NewSession(setup Setup, r *rand.Rand) (*Session, error) {
	if r == nil {
		return nil, ErrNoRandSource
	}
	s := &Session{rnd: r}
	if err := s.Reset(setup); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) fields() logrus.Fields {
	return logrus.Fields{
		"round": s.round.String(),
		"setup": s.grid.setup.String(),
	}
}

// Reset replaces the grid with a freshly mined one. An invalid setup leaves
// the current round untouched.
func (s *Session) Reset(setup Setup) error {
	grid, err := NewGrid(setup)
	if err != nil {
		return err
	}
	grid.PlaceMinesRandomly(s.rnd)
	s.start(grid)
	return nil
}

func (s *Session) start(grid *Grid) {
	s.grid = grid
	s.status = Running
	s.round = uuid.New()
	Log.WithFields(s.fields()).Info("round started")
}

func (s *Session) Reveal(x, y int) {
	if s.status != Running {
		return
	}
	Log.WithFields(s.fields()).Debugf("reveal %d %d", x, y)
	s.grid.Reveal(x, y)
	s.Evaluate()
}

func (s *Session) ToggleFlag(x, y int) {
	if s.status != Running {
		return
	}
	Log.WithFields(s.fields()).Debugf("flag %d %d", x, y)
	s.grid.ToggleFlag(x, y)
}

// Evaluate scans the grid and updates the status. A revealed mine loses the
// round and exposes the whole minefield; opening every safe cell wins it.
// Flags play no part.
func (s *Session) Evaluate() Status {
	prev := s.status
	if s.grid.MineRevealed() {
		s.grid.RevealAllMines()
		s.status = Lost
	} else if s.grid.CountRevealedSafeCells() == s.grid.setup.Size()-s.grid.setup.MineCount {
		s.status = Won
	} else {
		s.status = Running
	}
	if s.status != prev {
		Log.WithFields(s.fields()).WithField("status", s.status).Info("round over")
	}
	return s.status
}

func (s *Session) Status() Status {
	return s.status
}

// Grid gives read access for rendering. The pointer is invalidated by the
// next [Session.Reset].
func (s *Session) Grid() *Grid {
	return s.grid
}

func (s *Session) Setup() Setup {
	return s.grid.setup
}

func (s *Session) RoundID() uuid.UUID {
	return s.round
}
