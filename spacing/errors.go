package spacing

import "github.com/pkg/errors"

var (
	// ErrInvalidDirection is returned by New when the direction is neither Up nor Down.
	ErrInvalidDirection = errors.New("spacing: direction must be up or down")

	// ErrInvalidMinimumSemitones is returned by New when a minimum gap is
	// configured but is not a positive integer.
	ErrInvalidMinimumSemitones = errors.New("spacing: minimum semitones must be positive")

	// ErrSameAnchors is returned by New when bass and soprano name the same pitch class.
	ErrSameAnchors = errors.New("spacing: bass and soprano must differ")

	// ErrAnchorNotFound is returned when the bass or soprano is absent from a
	// collection. The wrapped message names the class and the searched classes.
	ErrAnchorNotFound = errors.New("spacing: anchor not in collection")

	// ErrFillRunaway means the fill search ran past its bound without
	// draining the pool. It signals malformed input, e.g. microtonal classes
	// that integer steps never reach.
	ErrFillRunaway = errors.New("spacing: fill search did not terminate")

	// ErrUnknownCollection is returned for collection types the engine cannot rebuild.
	ErrUnknownCollection = errors.New("spacing: unsupported collection type")
)
