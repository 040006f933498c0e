package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/textr/internal/engine"
)

// ErrQuit is returned by Next when the player leaves with ctrl+c or esc.
var ErrQuit = errors.New("player quit")

// Buffered so key presses made while a frame is being computed are kept.
const intentBuffer = 8

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#888888")).
	Italic(true).
	MarginTop(1)

// Colorizer returns a print modifier that paints every line in color.
func Colorizer(color string) engine.PrintModifier {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return func(text string) string {
		return style.Render(text)
	}
}

type screenMsg []string

type closeMsg struct{}

type model struct {
	lines    []string
	keys     keyMap
	help     help.Model
	intents  chan<- engine.Intent
	quitting bool
	closed   bool
}

func newModel(intents chan<- engine.Intent) model {
	return model{
		keys:    defaultKeys(),
		help:    help.New(),
		intents: intents,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.closed {
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if intent, ok := m.keys.intentFor(msg); ok {
			// Drop the press rather than stall the UI when the game is not
			// reading.
			select {
			case m.intents <- intent:
			default:
			}
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case screenMsg:
		m.lines = msg

	case closeMsg:
		m.closed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	s := strings.Join(m.lines, "\n")
	if m.closed || m.quitting {
		return s + "\n"
	}
	return s + "\n" + helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())) + "\n"
}

// Terminal is both the navigation source and the screen of a game. The
// bubbletea program runs on its own goroutine; the game loop only talks to
// it through Next, Clear and Println.
type Terminal struct {
	program *tea.Program
	intents chan engine.Intent
	done    chan struct{}
	out     io.Writer
	alt     bool

	lines []string
	err   error
}

type TerminalOption func(*terminalConfig)

type terminalConfig struct {
	alt    bool
	input  io.Reader
	output io.Writer
}

// WithAltScreen runs the program in the alternate screen buffer.
func WithAltScreen(on bool) TerminalOption {
	return func(c *terminalConfig) { c.alt = on }
}

func WithInput(r io.Reader) TerminalOption {
	return func(c *terminalConfig) { c.input = r }
}

func WithOutput(w io.Writer) TerminalOption {
	return func(c *terminalConfig) { c.output = w }
}

// Start launches the terminal program.
func Start(opts ...TerminalOption) *Terminal {
	var cfg terminalConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Terminal{
		intents: make(chan engine.Intent, intentBuffer),
		done:    make(chan struct{}),
		out:     cfg.output,
		alt:     cfg.alt,
	}

	var popts []tea.ProgramOption
	if cfg.alt {
		popts = append(popts, tea.WithAltScreen())
	}
	if cfg.input != nil {
		popts = append(popts, tea.WithInput(cfg.input))
	}
	if cfg.output != nil {
		popts = append(popts, tea.WithOutput(cfg.output))
	}
	t.program = tea.NewProgram(newModel(t.intents), popts...)

	go func() {
		defer close(t.done)
		final, err := t.program.Run()
		if err != nil {
			t.err = fmt.Errorf("terminal: %w", err)
			return
		}
		if m, ok := final.(model); ok && m.quitting {
			t.err = ErrQuit
		}
	}()
	return t
}

// Next shows the pending screen and waits for one intent.
func (t *Terminal) Next(ctx context.Context) (engine.Intent, error) {
	t.program.Send(screenMsg(slices.Clone(t.lines)))
	select {
	case intent := <-t.intents:
		return intent, nil
	case <-t.done:
		if t.err != nil {
			return 0, t.err
		}
		return 0, ErrQuit
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (t *Terminal) Clear() {
	t.lines = t.lines[:0]
}

func (t *Terminal) Println(line string) {
	t.lines = append(t.lines, line)
}

// Close shows the last screen, stops the program and waits for it to
// exit. In the alternate screen the last screen is printed again after
// the terminal is restored so the ending stays visible.
func (t *Terminal) Close() error {
	t.program.Send(screenMsg(slices.Clone(t.lines)))
	t.program.Send(closeMsg{})
	<-t.done

	if t.alt && !errors.Is(t.err, ErrQuit) {
		out := t.out
		if out == nil {
			out = stdout
		}
		for _, line := range t.lines {
			fmt.Fprintln(out, line)
		}
	}
	if errors.Is(t.err, ErrQuit) {
		return nil
	}
	return t.err
}
