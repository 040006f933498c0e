package engine

import (
	"cmp"
	"fmt"
	"io"
	"log"
	"slices"
)

// State is the lifecycle state of a game.
type State int

const (
	StateRunning State = iota
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateEnded:
		return "ENDED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PrintModifier transforms every line before it reaches the sink.
type PrintModifier func(string) string

// Group is one display category and its visible assets, in display order.
type Group struct {
	Category string
	Assets   []Asset
}

// Game owns the live assets and the game-over flag. It is not safe for
// concurrent use; the loop and all handlers run on one goroutine.
type Game struct {
	assets     []Asset
	retired    map[string]struct{}
	categories []string
	modifiers  []PrintModifier

	over  string
	ended bool
	ran   bool

	sink       Sink
	logger     *log.Logger
	panelWidth int
	perRow     int
}

type Option func(*Game)

// WithCategories sets the recognised categories in display order.
func WithCategories(categories ...string) Option {
	return func(g *Game) {
		g.categories = slices.Clone(categories)
	}
}

func WithSink(s Sink) Option {
	return func(g *Game) {
		g.sink = s
	}
}

func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithPanelWidth sets the inner width of an asset panel.
func WithPanelWidth(width int) Option {
	return func(g *Game) {
		g.panelWidth = width
	}
}

// WithPerRow sets how many asset panels share a row.
func WithPerRow(n int) Option {
	return func(g *Game) {
		g.perRow = n
	}
}

const (
	DefaultPanelWidth = 40
	DefaultPerRow     = 3
)

func NewGame(opts ...Option) *Game {
	g := &Game{
		retired:    make(map[string]struct{}),
		sink:       discardSink{},
		logger:     log.New(io.Discard, "", 0),
		panelWidth: DefaultPanelWidth,
		perRow:     DefaultPerRow,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.panelWidth < 1 {
		g.panelWidth = DefaultPanelWidth
	}
	if g.perRow < 1 {
		g.perRow = DefaultPerRow
	}
	return g
}

// RegisterPrintModifiers appends modifiers to the chain applied to every
// printed line. Modifiers run in registration order.
func (g *Game) RegisterPrintModifiers(mods ...PrintModifier) {
	g.modifiers = append(g.modifiers, mods...)
}

// AddAsset appends a to the live assets. It receives events and queries
// from this point on.
func (g *Game) AddAsset(a Asset) error {
	if a == nil || a.ID() == "" {
		return ErrInvalidAsset
	}
	if _, ok := g.retired[a.ID()]; ok {
		return fmt.Errorf("add %s: %w", a.Name(), ErrAssetRetired)
	}
	if g.indexOf(a) >= 0 {
		return fmt.Errorf("add %s: %w", a.Name(), ErrAssetExists)
	}
	g.assets = append(g.assets, a)
	g.logger.Printf("asset added: %s (%s)", a.Name(), a.Category())
	return nil
}

// MustAdd adds a and returns it, panicking if the game rejects it. It is
// meant for content setup before the loop starts.
func MustAdd[T Asset](g *Game, a T) T {
	if err := g.AddAsset(a); err != nil {
		panic(err)
	}
	return a
}

// RemoveAsset takes a out of the game for good.
func (g *Game) RemoveAsset(a Asset) error {
	i := -1
	if a != nil {
		i = g.indexOf(a)
	}
	if i < 0 {
		name := "<nil>"
		if a != nil {
			name = a.Name()
		}
		return fmt.Errorf("remove %s: %w", name, ErrAssetNotFound)
	}
	// Copy instead of shifting in place: a broadcast may hold the old slice.
	next := make([]Asset, 0, len(g.assets)-1)
	next = append(next, g.assets[:i]...)
	next = append(next, g.assets[i+1:]...)
	g.assets = next
	g.retired[a.ID()] = struct{}{}
	g.logger.Printf("asset removed: %s", a.Name())
	return nil
}

// Assets returns a copy of the live assets in insertion order.
func (g *Game) Assets() []Asset {
	return slices.Clone(g.assets)
}

// Live reports whether a is currently part of the game.
func (g *Game) Live(a Asset) bool {
	return a != nil && g.indexOf(a) >= 0
}

func (g *Game) indexOf(a Asset) int {
	id := a.ID()
	return slices.IndexFunc(g.assets, func(x Asset) bool { return x.ID() == id })
}

// End stops the game with reason as the final message. Only the first call
// has an effect.
func (g *Game) End(reason string) {
	if g.ended {
		g.logger.Printf("end(%q) ignored, game already over", reason)
		return
	}
	g.ended = true
	g.over = reason
	g.logger.Printf("game over: %s", reason)
}

// Over returns the final message and whether the game has ended.
func (g *Game) Over() (string, bool) {
	return g.over, g.ended
}

func (g *Game) State() State {
	if g.ended {
		return StateEnded
	}
	return StateRunning
}

// Log prints one line to the player.
func (g *Game) Log(text string) {
	g.print(text)
}

func (g *Game) print(text string) {
	for _, mod := range g.modifiers {
		text = mod(text)
	}
	g.sink.Println(text)
}

// Categories groups the visible assets by category. Recognised categories
// come first in configured order, the rest follow in the order they are
// first seen. Inside a group assets are sorted by Order, ties keep
// insertion order.
func (g *Game) Categories() ([]Group, error) {
	var groups []Group
	index := make(map[string]int)
	for _, a := range g.assets {
		visible, err := a.Visible(g)
		if err != nil {
			return nil, &HandlerError{Op: "visible", Asset: a, Err: err}
		}
		if !visible {
			continue
		}
		i, ok := index[a.Category()]
		if !ok {
			i = len(groups)
			index[a.Category()] = i
			groups = append(groups, Group{Category: a.Category()})
		}
		groups[i].Assets = append(groups[i].Assets, a)
	}

	slices.SortStableFunc(groups, func(x, y Group) int {
		return cmp.Compare(g.rank(x.Category), g.rank(y.Category))
	})
	for _, group := range groups {
		slices.SortStableFunc(group.Assets, func(x, y Asset) int {
			return cmp.Compare(x.Order(), y.Order())
		})
	}
	return groups, nil
}

func (g *Game) rank(category string) int {
	if i := slices.Index(g.categories, category); i >= 0 {
		return i
	}
	return len(g.categories)
}
