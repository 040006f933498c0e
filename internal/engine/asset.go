package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultCategory is the bucket for assets that do not name a category.
const DefaultCategory = "Game"

// ActionHandler runs when the player activates an action.
type ActionHandler func(g *Game) error

// Action is one selectable line on an asset panel.
type Action struct {
	Label   string
	Handler ActionHandler
}

// EventHandler reacts to a broadcast event. The payload is whatever the
// caller of TriggerEvent passed in.
type EventHandler func(g *Game, payload any) error

// QueryHandler transforms the accumulator of a query.
type QueryHandler func(g *Game, acc any) (any, error)

// Asset is a unit of game content. Description, Actions and Visible are
// evaluated fresh every frame and should be functions of the current game
// state.
type Asset interface {
	ID() string
	Name() string
	Category() string
	Order() int

	Description(g *Game) ([]string, error)
	Actions(g *Game) ([]Action, error)
	Visible(g *Game) (bool, error)

	EventHandler(kind string) (EventHandler, bool)
	QueryHandler(kind string) (QueryHandler, bool)
}

// Base carries the identity, display attributes and handler registries of an
// asset. Content types embed it and override the capabilities they need.
type Base struct {
	id       string
	name     string
	category string
	order    int
	events   map[string]EventHandler
	queries  map[string]QueryHandler
}

// BaseOption configures a Base.
type BaseOption func(*Base)

// WithCategory sets the display category.
func WithCategory(category string) BaseOption {
	return func(b *Base) {
		b.category = category
	}
}

// WithOrder sets the rank of the asset inside its category.
func WithOrder(order int) BaseOption {
	return func(b *Base) {
		b.order = order
	}
}

// NewBase returns a Base with a fresh identity.
func NewBase(name string, opts ...BaseOption) Base {
	b := Base{
		id:       uuid.NewString(),
		name:     name,
		category: DefaultCategory,
		events:   make(map[string]EventHandler),
		queries:  make(map[string]QueryHandler),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *Base) ID() string       { return b.id }
func (b *Base) Name() string     { return b.name }
func (b *Base) Category() string { return b.category }
func (b *Base) Order() int       { return b.order }

func (b *Base) Description(g *Game) ([]string, error) { return nil, nil }
func (b *Base) Actions(g *Game) ([]Action, error)     { return nil, nil }
func (b *Base) Visible(g *Game) (bool, error)         { return true, nil }

// HandleEvent registers fn for events of the given kind, replacing any
// earlier handler for that kind.
func (b *Base) HandleEvent(kind string, fn EventHandler) {
	if b.events == nil {
		b.events = make(map[string]EventHandler)
	}
	b.events[kind] = fn
}

// HandleQuery registers fn for queries of the given kind.
func (b *Base) HandleQuery(kind string, fn QueryHandler) {
	if b.queries == nil {
		b.queries = make(map[string]QueryHandler)
	}
	b.queries[kind] = fn
}

func (b *Base) EventHandler(kind string) (EventHandler, bool) {
	fn, ok := b.events[kind]
	return fn, ok
}

func (b *Base) QueryHandler(kind string) (QueryHandler, bool) {
	fn, ok := b.queries[kind]
	return fn, ok
}

func (b *Base) String() string {
	return fmt.Sprintf("%s(%s)", b.name, shortID(b.id))
}

// Fold adapts a typed accumulator function to a QueryHandler.
func Fold[T any](fn func(g *Game, acc T) (T, error)) QueryHandler {
	return func(g *Game, acc any) (any, error) {
		typed, ok := acc.(T)
		if !ok && acc != nil {
			var zero T
			return nil, fmt.Errorf("%w: accumulator is %T, handler wants %T", ErrQueryType, acc, zero)
		}
		return fn(g, typed)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
