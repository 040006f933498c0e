package engine

import (
	"context"
	"errors"
)

// probe is a configurable asset for tests.
type probe struct {
	Base
	desc    func(g *Game) []string
	actions func(g *Game) []Action
	visible func(g *Game) bool
	calls   int
}

func newProbe(name string, opts ...BaseOption) *probe {
	return &probe{Base: NewBase(name, opts...)}
}

func (p *probe) Description(g *Game) ([]string, error) {
	p.calls++
	if p.desc == nil {
		return nil, nil
	}
	return p.desc(g), nil
}

func (p *probe) Actions(g *Game) ([]Action, error) {
	p.calls++
	if p.actions == nil {
		return nil, nil
	}
	return p.actions(g), nil
}

func (p *probe) Visible(g *Game) (bool, error) {
	p.calls++
	if p.visible == nil {
		return true, nil
	}
	return p.visible(g), nil
}

func act(label string, fn ActionHandler) func(*Game) []Action {
	return func(*Game) []Action {
		return []Action{{Label: label, Handler: fn}}
	}
}

var errExhausted = errors.New("no more intents")

// scripted replays a fixed list of intents.
type scripted struct {
	intents []Intent
	served  int
}

func (s *scripted) Next(ctx context.Context) (Intent, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.served >= len(s.intents) {
		return 0, errExhausted
	}
	i := s.intents[s.served]
	s.served++
	return i, nil
}

// recorder is a Sink that keeps every screen.
type recorder struct {
	screens [][]string
	clears  int
}

func (r *recorder) Clear() {
	r.clears++
	r.screens = append(r.screens, nil)
}

func (r *recorder) Println(line string) {
	if len(r.screens) == 0 {
		r.screens = append(r.screens, nil)
	}
	last := len(r.screens) - 1
	r.screens[last] = append(r.screens[last], line)
}

func (r *recorder) last() []string {
	if len(r.screens) == 0 {
		return nil
	}
	return r.screens[len(r.screens)-1]
}
