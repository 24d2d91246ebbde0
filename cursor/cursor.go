// Package cursor implements a stateful walker over an ordered source.
//
// A Cursor starts unpositioned, reads windows of any length forwards or
// backwards, and optionally treats its source as infinitely cyclic. Reading
// past either end of a non-cyclic source fails with ErrExhausted unless the
// cursor was built WithSuppressException, in which case the missing elements
// are dropped from the window.
//
// Example:
//
//	c, _ := cursor.New([]string{"a", "b", "c"}, cursor.WithCyclic(true))
//	c.Step(2)  // [a b]
//	c.Step(2)  // [c a]
//	c.Step(-1) // [a]
package cursor

import (
	"github.com/pkg/errors"
	"github.com/trevorbaca/baca-sub024/pitch"
)

type Option func(*Options)

type Options struct {
	Cyclic bool

	// Position, if non-nil, is the starting index. Nil leaves the cursor
	// unpositioned until its first step.
	Position *int

	// Singletons makes StepValue return nil for empty windows and the bare
	// element for one-element windows.
	Singletons bool

	// SuppressException drops out-of-range reads instead of failing.
	SuppressException bool
}

func WithCyclic(b bool) Option {
	return func(o *Options) { o.Cyclic = b }
}

func WithPosition(i int) Option {
	return func(o *Options) { o.Position = &i }
}

func WithSingletons(b bool) Option {
	return func(o *Options) { o.Singletons = b }
}

func WithSuppressException(b bool) Option {
	return func(o *Options) { o.SuppressException = b }
}

// StepOption adjusts a single Step call.
type StepOption func(*stepConfig)

type stepConfig struct {
	exhausted bool
}

// RequireExhausted makes the step fail with ErrNotExhausted unless the
// cursor is exhausted once the step is done.
func RequireExhausted() StepOption {
	return func(c *stepConfig) { c.exhausted = true }
}

type Cursor[T any] struct {
	source            Sequence[T]
	position          int
	positioned        bool
	cyclic            bool
	singletons        bool
	suppressException bool
}

func New[T any](source []T, opts ...Option) (*Cursor[T], error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Cyclic && len(source) == 0 {
		return nil, ErrEmptyCyclicSource
	}

	items := make([]T, len(source))
	copy(items, source)
	c := &Cursor[T]{
		cyclic:            o.Cyclic,
		singletons:        o.Singletons,
		suppressException: o.SuppressException,
	}
	if o.Cyclic {
		c.source = Cyclic[T](items)
	} else {
		c.source = Slice[T](items)
	}
	if o.Position != nil {
		c.position, c.positioned = *o.Position, true
	}
	return c, nil
}

// FromClassSegments returns a cursor over the pitch classes of segments,
// read one segment after another.
func FromClassSegments(segments []pitch.ClassSegment, opts ...Option) (*Cursor[pitch.PitchClass], error) {
	var classes []pitch.PitchClass
	for _, s := range segments {
		classes = append(classes, s...)
	}
	return New(classes, opts...)
}

func (c *Cursor[T]) Source() Sequence[T] { return c.source }
func (c *Cursor[T]) Cyclic() bool        { return c.cyclic }
func (c *Cursor[T]) Singletons() bool    { return c.singletons }
func (c *Cursor[T]) Len() int            { return c.source.Len() }
func (c *Cursor[T]) Items() []T          { return c.source.Items() }

func (c *Cursor[T]) SuppressException() bool {
	return c.suppressException
}

// At reads the source directly, without moving the cursor.
func (c *Cursor[T]) At(i int) (T, bool) {
	return c.source.At(i)
}

// Position returns the current index and false if the cursor has not
// stepped yet.
func (c *Cursor[T]) Position() (int, bool) {
	return c.position, c.positioned
}

// IsExhausted reports whether a forward read at the current position would
// fall outside the source. Cyclic cursors are never exhausted.
func (c *Cursor[T]) IsExhausted() bool {
	if c.cyclic {
		return false
	}
	_, ok := c.source.At(c.position)
	return !ok
}

// Reset moves the cursor to index 0.
func (c *Cursor[T]) Reset() {
	c.position, c.positioned = 0, true
}

// Step reads count elements. A positive count reads forwards from the
// current position and leaves the cursor count places later. A negative
// count moves back one place before each read, so the window lists the
// nearest preceding element first. Zero reads nothing.
func (c *Cursor[T]) Step(count int, opts ...StepOption) ([]T, error) {
	var cfg stepConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !c.positioned {
		c.position, c.positioned = 0, true
	}

	res := []T{}
	if count > 0 {
		for i := 0; i < count; i++ {
			item, ok := c.source.At(c.position)
			if !ok && !c.suppressException {
				return nil, c.exhausted()
			}
			if ok {
				res = append(res, item)
			}
			c.position++
		}
	} else {
		for i := 0; i < -count; i++ {
			c.position--
			item, ok := c.source.At(c.position)
			if !ok && !c.suppressException {
				return nil, c.exhausted()
			}
			if ok {
				res = append(res, item)
			}
		}
	}

	if cfg.exhausted && !c.IsExhausted() {
		return nil, errors.Wrapf(ErrNotExhausted, "position %d of %d", c.position, c.source.Len())
	}
	return res, nil
}

// Next reads count elements forwards.
func (c *Cursor[T]) Next(count int, opts ...StepOption) ([]T, error) {
	return c.Step(count, opts...)
}

// Previous reads count elements backwards.
func (c *Cursor[T]) Previous(count int, opts ...StepOption) ([]T, error) {
	return c.Step(-count, opts...)
}

// StepValue is Step for callers that honour the singletons flag: with it
// set, an empty window becomes nil and a one-element window becomes the
// bare element. Without it the window is returned as a []T.
func (c *Cursor[T]) StepValue(count int, opts ...StepOption) (any, error) {
	res, err := c.Step(count, opts...)
	if err != nil {
		return nil, err
	}
	if c.singletons {
		switch len(res) {
		case 0:
			return nil, nil
		case 1:
			return res[0], nil
		}
	}
	return res, nil
}

func (c *Cursor[T]) exhausted() error {
	return errors.Wrapf(ErrExhausted, "source has only %d elements", c.source.Len())
}
