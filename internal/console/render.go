package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

const help = `commands:
  o X Y      open the cell in column X, row Y
  f X Y      set/unset a flag
  n [SETUP]  new game; SETUP is easy, medium, hard, W:H:M
             or width=W height=H mines=M (default: same as now)
  g          redraw the board
  h          show this help
  q          quit
`

// Render draws the board and the status lines of the current round.
func Render(w io.Writer, s *mines.Session) error {
	var b strings.Builder
	g := s.Grid()
	w, h, mc := g.Setup().Unpack()

	colWidth := len(strconv.Itoa(w-1)) + 1
	rowWidth := len(strconv.Itoa(h - 1))

	fmt.Fprint(&b, strings.Repeat(" ", rowWidth))
	for x := range w {
		fmt.Fprintf(&b, "%*d", colWidth, x)
	}
	fmt.Fprint(&b, "\n")

	for _, v := range g.Snapshot() {
		if v.X == 0 {
			fmt.Fprintf(&b, "%*d", rowWidth, v.Y)
		}
		fmt.Fprintf(&b, "%*s", colWidth, v.String())
		if v.X == w-1 {
			fmt.Fprint(&b, "\n")
		}
	}

	fmt.Fprintf(&b, "%d mines, %d flags\n", mc, g.CountFlags())
	fmt.Fprintf(&b, "%d safe cells\n", g.CountRevealedSafeCells())
	switch s.Status() {
	case mines.Won:
		fmt.Fprint(&b, "YOU WON\npress n to play again\n")
	case mines.Lost:
		fmt.Fprint(&b, "YOU LOST\npress n to play again\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
