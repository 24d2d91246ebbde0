package spacing

import (
	"github.com/trevorbaca/baca-sub024/pattern"
	"github.com/trevorbaca/baca-sub024/pitch"
)

// Direction says which way a spaced chord is built: Up from the bass or Down
// from the soprano.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// sign is +1 for Up and -1 for Down.
func (d Direction) sign() float64 {
	if d == Down {
		return -1
	}
	return 1
}

// Option configures a Spacer. Use with New(opts...).
type Option func(*Options)

// Options holds the immutable parameters of a Spacer.
type Options struct {
	// Bass, if non-nil, must be present in every processed collection and
	// ends up as the lowest pitch.
	Bass *pitch.PitchClass

	// Soprano, if non-nil, must be present in every processed collection and
	// ends up as the highest pitch.
	Soprano *pitch.PitchClass

	Direction Direction

	// MinimumSemitones is the fill search step. Zero means unset; any value
	// set through WithMinimumSemitones must be positive.
	MinimumSemitones int
	minimumSet       bool

	// Pattern, if non-nil, selects which collections in a list are spaced.
	// The rest pass through unchanged.
	Pattern *pattern.Pattern
}

// DefaultOptions returns options with no anchors, direction Up, no minimum
// gap and no pattern.
func DefaultOptions() Options {
	return Options{Direction: Up}
}

func WithBass(pc pitch.PitchClass) Option {
	return func(o *Options) {
		o.Bass = &pc
	}
}

func WithSoprano(pc pitch.PitchClass) Option {
	return func(o *Options) {
		o.Soprano = &pc
	}
}

func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

func WithMinimumSemitones(n int) Option {
	return func(o *Options) {
		o.MinimumSemitones = n
		o.minimumSet = true
	}
}

func WithPattern(p pattern.Pattern) Option {
	return func(o *Options) {
		o.Pattern = &p
	}
}
