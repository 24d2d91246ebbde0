// Package pitch holds the primitive pitch and pitch-class arithmetic the
// spacing and cursor code is built on. Pitches are numbered relative to
// middle C (C4 = 0); pitch classes are numbers reduced mod 12.
package pitch

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is anything a pitch or pitch class can be built from. Floats allow
// microtonal values such as 6.5.
type Number interface {
	constraints.Integer | constraints.Float
}

const (
	OctaveSize   = 12
	MiddleOctave = 4
)

var classNames = []string{"c", "cs", "d", "ef", "e", "f", "fs", "g", "af", "a", "bf", "b"}

type PitchClass struct {
	number float64
}

func NewPitchClass[N Number](n N) PitchClass {
	return PitchClass{number: mod12(float64(n))}
}

func mod12(n float64) float64 {
	r := math.Mod(n, OctaveSize)
	if r < 0 {
		r += OctaveSize
	}
	// math.Mod(-12, 12) is -0
	if r == 0 {
		return 0
	}
	return r
}

// Number returns the class as a value in [0, 12).
func (pc PitchClass) Number() float64 {
	return pc.number
}

func (pc PitchClass) Transpose(n float64) PitchClass {
	return NewPitchClass(pc.number + n)
}

// Name returns the LilyPond-style name for semitone classes and the bare
// number for microtonal ones.
func (pc PitchClass) Name() string {
	if pc.number == math.Trunc(pc.number) {
		return classNames[int(pc.number)]
	}
	return pc.String()
}

func (pc PitchClass) String() string {
	return formatNumber(pc.number)
}

type Pitch struct {
	number float64
}

func NewPitch[N Number](n N) Pitch {
	return Pitch{number: float64(n)}
}

// FromClassOctave places pc in the given octave, where octave 4 holds
// pitches 0 through 11.
func FromClassOctave(pc PitchClass, octave int) Pitch {
	return Pitch{number: pc.number + float64((octave-MiddleOctave)*OctaveSize)}
}

func (p Pitch) Number() float64 {
	return p.number
}

func (p Pitch) Octave() int {
	return int(math.Floor(p.number/OctaveSize)) + MiddleOctave
}

func (p Pitch) PitchClass() PitchClass {
	return NewPitchClass(p.number)
}

func (p Pitch) Transpose(n float64) Pitch {
	return Pitch{number: p.number + n}
}

func (p Pitch) Less(other Pitch) bool {
	return p.number < other.number
}

// Name returns the class name followed by the octave number, e.g. fs4.
func (p Pitch) Name() string {
	return fmt.Sprintf("%s%d", p.PitchClass().Name(), p.Octave())
}

func (p Pitch) String() string {
	return formatNumber(p.number)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
