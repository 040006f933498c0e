package engine

import (
	"fmt"
	"slices"
)

// TriggerEvent delivers payload to every live asset that handles kind, in
// insertion order. Assets added during the broadcast are not visited and
// assets removed during it are skipped. The first handler error aborts the
// broadcast and is returned.
func (g *Game) TriggerEvent(kind string, payload any) error {
	g.logger.Printf("event %q", kind)
	for _, a := range slices.Clone(g.assets) {
		if !g.Live(a) {
			continue
		}
		fn, ok := a.EventHandler(kind)
		if !ok {
			continue
		}
		if err := fn(g, payload); err != nil {
			return &HandlerError{Op: "event", Kind: kind, Asset: a, Err: err}
		}
	}
	return nil
}

// Query folds initial through every live asset's handler for kind, left to
// right in insertion order. Assets without a handler leave the accumulator
// unchanged.
func (g *Game) Query(kind string, initial any) (any, error) {
	acc := initial
	for _, a := range slices.Clone(g.assets) {
		if !g.Live(a) {
			continue
		}
		fn, ok := a.QueryHandler(kind)
		if !ok {
			continue
		}
		next, err := fn(g, acc)
		if err != nil {
			return nil, &HandlerError{Op: "query", Kind: kind, Asset: a, Err: err}
		}
		acc = next
	}
	return acc, nil
}

// QueryAs runs a query and asserts the result type.
func QueryAs[T any](g *Game, kind string, initial T) (T, error) {
	result, err := g.Query(kind, initial)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := result.(T)
	if !ok && result != nil {
		var zero T
		return zero, fmt.Errorf("query %q: %w: got %T, want %T", kind, ErrQueryType, result, zero)
	}
	return typed, nil
}
