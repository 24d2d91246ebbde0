package cursor

import "github.com/pkg/errors"

var (
	// ErrExhausted is returned when a non-cyclic cursor reads past either end
	// of its source and suppression is off.
	ErrExhausted = errors.New("cursor: exhausted")

	// ErrNotExhausted is returned by a step made with RequireExhausted when the
	// cursor still has elements left.
	ErrNotExhausted = errors.New("cursor: not exhausted")

	// ErrEmptyCyclicSource is returned by New for a cyclic cursor with nothing to cycle over.
	ErrEmptyCyclicSource = errors.New("cursor: cyclic source is empty")
)
