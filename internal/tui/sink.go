package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/tatianab/textr/internal/engine"
)

var stdout io.Writer = os.Stdout

// LineSink prints frames as plain lines, for pipes and scripted runs.
type LineSink struct {
	w     io.Writer
	out   *termenv.Output
	clear bool
}

// NewLineSink writes to w. When clear is set, Clear wipes the screen with
// an ANSI sequence; otherwise frames are separated by a rule.
func NewLineSink(w io.Writer, clear bool) *LineSink {
	return &LineSink{
		w:     w,
		out:   termenv.NewOutput(w),
		clear: clear,
	}
}

func (s *LineSink) Clear() {
	if s.clear {
		s.out.ClearScreen()
		return
	}
	fmt.Fprintln(s.w, strings.Repeat("-", 20))
}

func (s *LineSink) Println(line string) {
	fmt.Fprintln(s.w, line)
}

// ReaderNavigator reads one intent per line. An empty line activates;
// lines that name no intent are skipped.
type ReaderNavigator struct {
	scanner *bufio.Scanner
}

func NewReaderNavigator(r io.Reader) *ReaderNavigator {
	return &ReaderNavigator{scanner: bufio.NewScanner(r)}
}

// Next returns io.EOF once the reader is drained. A pending read is not
// interrupted by ctx.
func (n *ReaderNavigator) Next(ctx context.Context) (engine.Intent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if !n.scanner.Scan() {
			if err := n.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		line := strings.TrimSpace(n.scanner.Text())
		if line == "" {
			return engine.IntentActivate, nil
		}
		if intent, err := engine.ParseIntent(line); err == nil {
			return intent, nil
		}
	}
}
