package engine

import (
	"errors"
	"fmt"
)

var (
	ErrAssetNotFound   = errors.New("asset not found")
	ErrAssetExists     = errors.New("asset already live")
	ErrAssetRetired    = errors.New("asset was removed and cannot be added again")
	ErrInvalidAsset    = errors.New("asset has no identity")
	ErrFocusOutOfRange = errors.New("focus out of range")
	ErrQueryType       = errors.New("query accumulator has unexpected type")
	ErrGameEnded       = errors.New("game has already ended")
	ErrUnknownIntent   = errors.New("unknown navigation intent")
)

// HandlerError reports a failure inside content code. It identifies the
// asset and the capability or handler that failed.
type HandlerError struct {
	Op    string // "event", "query", "action", "description", "actions", "visible"
	Kind  string // event or query kind, or action label
	Asset Asset
	Err   error
}

func (e *HandlerError) Error() string {
	name := "<nil>"
	if e.Asset != nil {
		name = e.Asset.Name()
	}
	if e.Kind == "" {
		return fmt.Sprintf("%s of %s: %v", e.Op, name, e.Err)
	}
	return fmt.Sprintf("%s %q of %s: %v", e.Op, e.Kind, name, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }
