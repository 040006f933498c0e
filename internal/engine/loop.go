package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/tatianab/textr/internal/layout"
)

// Intent is the only input the loop understands.
type Intent int

const (
	IntentUp Intent = iota + 1
	IntentDown
	IntentActivate
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentActivate:
		return "activate"
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// ParseIntent maps a word such as "up", "down", "activate" or "enter" to an
// intent.
func ParseIntent(word string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "up", "u", "k":
		return IntentUp, nil
	case "down", "d", "j":
		return IntentDown, nil
	case "activate", "enter", "select", "a":
		return IntentActivate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIntent, word)
}

// Navigator produces navigation intents. Next blocks until the player
// chooses one, ctx is done or the source is exhausted.
type Navigator interface {
	Next(ctx context.Context) (Intent, error)
}

// Sink is the line-oriented screen the game prints to.
type Sink interface {
	Clear()
	Println(line string)
}

type discardSink struct{}

func (discardSink) Clear()         {}
func (discardSink) Println(string) {}

// Entry is one action of the flattened frame together with its asset.
type Entry struct {
	Asset  Asset
	Action Action
}

// Frame is one rendered screen. Entries lists every action on screen in
// category, asset and action order; Focus indexes into it.
type Frame struct {
	Lines   []string
	Entries []Entry
	Focus   int
}

type panel struct {
	asset   Asset
	desc    []string
	actions []Action
}

type section struct {
	category string
	panels   []panel
}

// Render evaluates every visible asset once and lays out the screen. The
// requested focus is clamped to the actions present in this frame.
func (g *Game) Render(focus int) (Frame, error) {
	groups, err := g.Categories()
	if err != nil {
		return Frame{}, err
	}

	sections := make([]section, 0, len(groups))
	total := 0
	for _, group := range groups {
		s := section{category: group.Category}
		for _, a := range group.Assets {
			desc, err := a.Description(g)
			if err != nil {
				return Frame{}, &HandlerError{Op: "description", Asset: a, Err: err}
			}
			actions, err := a.Actions(g)
			if err != nil {
				return Frame{}, &HandlerError{Op: "actions", Asset: a, Err: err}
			}
			total += len(actions)
			s.panels = append(s.panels, panel{asset: a, desc: desc, actions: actions})
		}
		sections = append(sections, s)
	}

	f := Frame{
		Focus:   clampFocus(focus, total),
		Entries: make([]Entry, 0, total),
	}
	offset := 0
	for _, s := range sections {
		f.Lines = append(f.Lines, "", layout.Header(s.category, g.panelWidth), "")
		for _, row := range layout.Chunk(s.panels, g.perRow) {
			blocks := make([][]string, 0, len(row))
			for _, p := range row {
				labels := make([]string, len(p.actions))
				for i, action := range p.actions {
					labels[i] = action.Label
					f.Entries = append(f.Entries, Entry{Asset: p.asset, Action: action})
				}
				blocks = append(blocks, layout.Block(p.asset.Name(), p.desc, labels, f.Focus-offset, g.panelWidth))
				offset += len(p.actions)
			}
			f.Lines = append(f.Lines, layout.JoinRow(blocks, g.panelWidth+2)...)
		}
	}
	return f, nil
}

func clampFocus(focus, total int) int {
	if total == 0 {
		return 0
	}
	return min(max(focus, 0), total-1)
}

// Run drives the game until it ends: render a frame, wait for one intent,
// apply it, repeat. After the game ends the final message is shown once
// and Run returns nil. Handler and navigation errors end the run and are
// returned. A game runs at most once.
func (g *Game) Run(ctx context.Context, nav Navigator) error {
	if g.ran {
		return ErrGameEnded
	}
	g.ran = true

	g.sink.Clear()
	focus := 0
	for !g.ended {
		frame, err := g.Render(focus)
		if err != nil {
			return err
		}
		focus = frame.Focus
		for _, line := range frame.Lines {
			g.print(line)
		}
		g.logger.Printf("frame: %d actions, focus %d", len(frame.Entries), focus)

		intent, err := nav.Next(ctx)
		if err != nil {
			return fmt.Errorf("next intent: %w", err)
		}

		g.sink.Clear()
		focus, err = g.apply(frame, intent)
		if err != nil {
			return err
		}
		g.print("")
	}

	g.sink.Clear()
	g.print(g.over)
	return nil
}

func (g *Game) apply(f Frame, intent Intent) (int, error) {
	focus := f.Focus
	switch intent {
	case IntentUp:
		return max(focus-1, 0), nil
	case IntentDown:
		return clampFocus(focus+1, len(f.Entries)), nil
	case IntentActivate:
		if len(f.Entries) == 0 {
			return focus, nil
		}
		if focus < 0 || focus >= len(f.Entries) {
			return focus, fmt.Errorf("%w: %d of %d", ErrFocusOutOfRange, focus, len(f.Entries))
		}
		entry := f.Entries[focus]
		g.logger.Printf("activate %q on %s", entry.Action.Label, entry.Asset.Name())
		if entry.Action.Handler == nil {
			return focus, nil
		}
		if err := entry.Action.Handler(g); err != nil {
			return focus, &HandlerError{Op: "action", Kind: entry.Action.Label, Asset: entry.Asset, Err: err}
		}
		return focus, nil
	}
	g.logger.Printf("ignoring %v", intent)
	return focus, nil
}
