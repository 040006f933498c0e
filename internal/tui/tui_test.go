package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/textr/internal/engine"
)

func press(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestModelMapsKeysToIntents(t *testing.T) {
	intents := make(chan engine.Intent, intentBuffer)
	m := newModel(intents)

	keys := []tea.KeyMsg{
		{Type: tea.KeyUp},
		{Type: tea.KeyRunes, Runes: []rune{'j'}},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
		{Type: tea.KeyLeft},
		{Type: tea.KeyRunes, Runes: []rune{'k'}},
	}
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = press(m, k)
		if cmd != nil {
			t.Fatalf("key %q should not produce a command", k.String())
		}
	}

	want := []engine.Intent{engine.IntentUp, engine.IntentDown, engine.IntentActivate, engine.IntentUp}
	if len(intents) != len(want) {
		t.Fatalf("Expected %d intents, got %d", len(want), len(intents))
	}
	for i, w := range want {
		if got := <-intents; got != w {
			t.Errorf("intent %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestModelDropsWhenBufferFull(t *testing.T) {
	intents := make(chan engine.Intent, 1)
	m := newModel(intents)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if len(intents) != 1 {
		t.Errorf("Expected 1 buffered intent, got %d", len(intents))
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(make(chan engine.Intent, 1))
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting {
		t.Error("Expected model to be quitting")
	}
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestModelView(t *testing.T) {
	m := newModel(make(chan engine.Intent, 1))
	next, _ := m.Update(screenMsg{"=== Treasure ===", "┌── Chest ──┐"})
	m = next.(model)

	view := m.View()
	if !strings.Contains(view, "┌── Chest ──┐") {
		t.Errorf("Expected screen lines in view, got %q", view)
	}
	if !strings.Contains(view, "choose") {
		t.Errorf("Expected help footer in view, got %q", view)
	}

	next, _ = m.Update(closeMsg{})
	m = next.(model)
	if strings.Contains(m.View(), "choose") {
		t.Error("closed view should not show help")
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.intents) != 0 {
		t.Error("closed model should not emit intents")
	}
}

func TestColorizerKeepsText(t *testing.T) {
	got := Colorizer("#FFA500")("You Won!")
	if !strings.Contains(got, "You Won!") {
		t.Errorf("Expected text to survive colouring, got %q", got)
	}
}

func TestLineSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewLineSink(&buf, false)
	s.Println("one")
	s.Clear()
	s.Println("two")

	want := "one\n" + strings.Repeat("-", 20) + "\ntwo\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestReaderNavigator(t *testing.T) {
	nav := NewReaderNavigator(strings.NewReader("down\nnonsense\n\nup\n  k  \n"))
	ctx := context.Background()

	want := []engine.Intent{engine.IntentDown, engine.IntentActivate, engine.IntentUp, engine.IntentUp}
	for i, w := range want {
		got, err := nav.Next(ctx)
		if err != nil {
			t.Fatalf("step %d: unexpected error %v", i, err)
		}
		if got != w {
			t.Errorf("step %d: expected %v, got %v", i, w, got)
		}
	}
	if _, err := nav.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

type treasure struct {
	engine.Base
}

func (c *treasure) Actions(*engine.Game) ([]engine.Action, error) {
	return []engine.Action{{Label: "open", Handler: func(g *engine.Game) error {
		g.End("You Won!")
		return nil
	}}}, nil
}

func TestTerminalRunsGame(t *testing.T) {
	var out bytes.Buffer
	term := Start(WithInput(strings.NewReader("\r")), WithOutput(&out))
	g := engine.NewGame(engine.WithSink(term))
	engine.MustAdd(g, &treasure{Base: engine.NewBase("Chest")})

	errs := make(chan error, 1)
	go func() {
		if err := g.Run(context.Background(), term); err != nil {
			errs <- err
			return
		}
		errs <- term.Close()
	}()

	select {
	case err := <-errs:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("game did not finish")
	}
	if reason, _ := g.Over(); reason != "You Won!" {
		t.Errorf("Expected ending %q, got %q", "You Won!", reason)
	}
	if !strings.Contains(out.String(), "You Won!") {
		t.Errorf("Expected final screen in output, got %q", out.String())
	}
}
