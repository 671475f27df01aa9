package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Setup struct {
	Width, Height, MineCount int
}

// MaxCells bounds the area of a grid.
const MaxCells = 1 << 22

var (
	Easy   = Setup{Width: 12, Height: 12, MineCount: 20}
	Medium = Setup{Width: 16, Height: 16, MineCount: 40}
	Hard   = Setup{Width: 30, Height: 16, MineCount: 99}
)

// Presets lists the named setups in difficulty order; a preset's index is its
// position here.
var Presets = []struct {
	Name  string
	Setup Setup
}{
	{"easy", Easy},
	{"medium", Medium},
	{"hard", Hard},
}

// LookupPreset resolves a preset by name (case-insensitive) or by index.
func LookupPreset(name string) (Setup, bool) {
	if i, err := strconv.Atoi(name); err == nil {
		if 0 <= i && i < len(Presets) {
			return Presets[i].Setup, true
		}
		return Setup{}, false
	}
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p.Setup, true
		}
	}
	return Setup{}, false
}

func (s Setup) Unpack() (w int, h int, mc int) {
	return s.Width, s.Height, s.MineCount
}

func (s Setup) Size() int {
	return s.Width * s.Height
}

// Validate reports an [InvalidSetupError] unless the setup has positive
// dimensions of at most [MaxCells] cells and leaves at least one safe cell.
func (s Setup) Validate() error {
	w, h, mc := s.Unpack()
	if w <= 0 || h <= 0 || mc <= 0 || w > MaxCells/h || mc >= w*h {
		return InvalidSetupError{s}
	}
	return nil
}

func (s Setup) PointInBounds(x, y int) bool {
	return 0 <= x && x < s.Width && 0 <= y && y < s.Height
}

// String is the compact W:H:M form accepted by [ParseSetup].
func (s Setup) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Width, s.Height, s.MineCount)
}

// ParseSetup accepts a preset name or index, or the W:H:M form. The result is
// not validated.
func ParseSetup(str string) (Setup, error) {
	if s, ok := LookupPreset(str); ok {
		return s, nil
	}
	var s Setup
	sstr := strings.ReplaceAll(str, ":", " ")
	n, err := fmt.Sscanf(sstr, "%d %d %d", &s.Width, &s.Height, &s.MineCount)
	if n != 3 || err != nil {
		return Setup{}, fmt.Errorf(
			`invalid setup (str = "%s", n = %d, err = %w)`, str, n, err,
		)
	}
	return s, nil
}
