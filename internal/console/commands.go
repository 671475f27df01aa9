package console

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrQuit = errors.New("quit")

	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
	ErrCoordinates    = errors.New("invalid square coordinates")
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

// Maps known commands to the allowed range of argument counts
var commandNargs = map[string][2]int{
	"g": {0, 0},
	"h": {0, 0},
	"q": {0, 0},
	"o": {2, 2},
	"f": {2, 2},
	"n": {0, 3},
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

type setupParams struct {
	Width  int `schema:"width,required"`
	Height int `schema:"height,required"`
	Mines  int `schema:"mines,required"`
}

// parseSetup understands the arguments of the n command: nothing (replay the
// current setup), a preset name or index, W:H:M, or width=W height=H mines=M.
func parseSetup(current mines.Setup, args []string) (mines.Setup, error) {
	if len(args) == 0 {
		return current, nil
	}
	if len(args) == 1 && !strings.Contains(args[0], "=") {
		return mines.ParseSetup(args[0])
	}
	query, err := url.ParseQuery(strings.Join(args, "&"))
	if err != nil {
		return mines.Setup{}, fmt.Errorf("unable to parse setup: %w", err)
	}
	var params setupParams
	if err := dec.Decode(&params, query); err != nil {
		return mines.Setup{}, fmt.Errorf("unable to parse setup: %w", err)
	}
	return mines.Setup{
		Width:     params.Width,
		Height:    params.Height,
		MineCount: params.Mines,
	}, nil
}

type command struct {
	name string
	args []string
}

func parseCommand(line string) (command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return command{}, nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}
	if n := len(parts) - 1; n < nargs[0] || n > nargs[1] {
		return command{}, ErrNargs
	}
	return command{name: parts[0], args: parts[1:]}, nil
}
