package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
	"golang.org/x/sync/errgroup"
)

var Log = logrus.New()

// Shell is a line-oriented front end for a [mines.Session].
type Shell struct {
	session *mines.Session
	out     io.Writer
}

func New(session *mines.Session, out io.Writer) *Shell {
	return &Shell{session: session, out: out}
}

// Execute applies one command line to the session and returns the text to
// show. Blank lines produce no output. [ErrQuit] asks the caller to stop.
func (sh *Shell) Execute(line string) (string, error) {
	cmd, err := parseCommand(line)
	if err != nil {
		return "", err
	}

	switch cmd.name {
	case "":
		return "", nil
	case "q":
		return "", ErrQuit
	case "h":
		return help, nil
	case "g":
	case "o", "f":
		x, y, err := parseXY(cmd.args)
		if err != nil {
			return "", err
		}
		if !sh.session.Setup().PointInBounds(x, y) {
			return "", ErrCoordinates
		}
		if cmd.name == "o" {
			sh.session.Reveal(x, y)
		} else {
			sh.session.ToggleFlag(x, y)
		}
	case "n":
		setup, err := parseSetup(sh.session.Setup(), cmd.args)
		if err != nil {
			return "", err
		}
		if err := sh.session.Reset(setup); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	if err := Render(&b, sh.session); err != nil {
		return "", err
	}
	return b.String(), nil
}

// readLines feeds lines from in until it is exhausted or done is closed. A
// read blocked on a terminal cannot be interrupted, so the goroutine may
// outlive the caller until the next line arrives.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Run draws the board, then executes commands from in until q, the end of
// input, or ctx is cancelled. Command errors are shown and do not stop the
// loop. Only the executing goroutine touches the session; frames are written
// to out by a second goroutine.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	done := make(chan struct{})
	defer close(done)
	lines, errc := readLines(in, done)

	frames := make(chan string)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(frames)
		return sh.loop(gCtx, lines, errc, frames)
	})
	g.Go(func() error {
		for frame := range frames {
			if _, err := io.WriteString(sh.out, frame); err != nil {
				return fmt.Errorf("unable to write output: %w", err)
			}
		}
		return nil
	})
	return g.Wait()
}

func (sh *Shell) loop(
	ctx context.Context, lines <-chan string, errc <-chan error, frames chan<- string,
) error {
	send := func(frame string) error {
		if frame == "" {
			return nil
		}
		select {
		case frames <- frame:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var b strings.Builder
	if err := Render(&b, sh.session); err != nil {
		return err
	}
	if err := send(b.String()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			Log.Debug("\t> ", line)
			frame, err := sh.Execute(line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				Log.WithField("line", line).Debug("command: ", err)
				frame = "error: " + err.Error() + "\n"
			}
			if err := send(frame); err != nil {
				return err
			}
		}
	}
}
