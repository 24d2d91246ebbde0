package pitch

import (
	"fmt"
	"sort"
	"strings"
)

// Collection is any group of pitches or pitch classes that can be reduced to
// pitch classes. Ordered collections (segments) keep insertion order and
// duplicates; unordered ones (sets) are deduplicated and sorted.
type Collection interface {
	Classes() []PitchClass
	Ordered() bool
	Len() int
}

type ClassSegment []PitchClass

func ClassSegmentOf[N Number](ns ...N) ClassSegment {
	res := make(ClassSegment, 0, len(ns))
	for _, n := range ns {
		res = append(res, NewPitchClass(n))
	}
	return res
}

func (s ClassSegment) Classes() []PitchClass {
	res := make([]PitchClass, len(s))
	copy(res, s)
	return res
}

func (s ClassSegment) Ordered() bool { return true }
func (s ClassSegment) Len() int      { return len(s) }

func (s ClassSegment) String() string {
	return format([]PitchClass(s))
}

type ClassSet []PitchClass

// NewClassSet deduplicates classes and sorts them ascending.
func NewClassSet(classes ...PitchClass) ClassSet {
	return ClassSet(sortedClasses(classes))
}

func ClassSetOf[N Number](ns ...N) ClassSet {
	return NewClassSet(ClassSegmentOf(ns...)...)
}

func (s ClassSet) Classes() []PitchClass {
	return sortedClasses(s)
}

func (s ClassSet) Ordered() bool { return false }
func (s ClassSet) Len() int      { return len(s) }

func (s ClassSet) Contains(pc PitchClass) bool {
	return IndexOf(s, pc) >= 0
}

func (s ClassSet) String() string {
	return "{" + strings.Join(names([]PitchClass(s)), ", ") + "}"
}

type Segment []Pitch

func SegmentOf[N Number](ns ...N) Segment {
	res := make(Segment, 0, len(ns))
	for _, n := range ns {
		res = append(res, NewPitch(n))
	}
	return res
}

func (s Segment) Classes() []PitchClass {
	res := make([]PitchClass, 0, len(s))
	for _, p := range s {
		res = append(res, p.PitchClass())
	}
	return res
}

func (s Segment) Ordered() bool { return true }
func (s Segment) Len() int      { return len(s) }

func (s Segment) Numbers() []float64 {
	res := make([]float64, 0, len(s))
	for _, p := range s {
		res = append(res, p.Number())
	}
	return res
}

func (s Segment) String() string {
	return format([]Pitch(s))
}

type Set []Pitch

// NewSet deduplicates pitches and sorts them from low to high.
func NewSet(pitches ...Pitch) Set {
	res := make(Set, 0, len(pitches))
	for _, p := range pitches {
		if !containsPitch(res, p) {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Less(res[j])
	})
	return res
}

func SetOf[N Number](ns ...N) Set {
	return NewSet(SegmentOf(ns...)...)
}

// Classes returns the pitch classes of the set, deduplicated and sorted.
func (s Set) Classes() []PitchClass {
	return sortedClasses(Segment(s).Classes())
}

func (s Set) Ordered() bool { return false }
func (s Set) Len() int      { return len(s) }

func (s Set) Numbers() []float64 {
	return Segment(s).Numbers()
}

func (s Set) String() string {
	return "{" + strings.Join(names([]Pitch(s)), ", ") + "}"
}

// IndexOf returns the position of the first class equal to pc, or -1.
func IndexOf(classes []PitchClass, pc PitchClass) int {
	for i, c := range classes {
		if c == pc {
			return i
		}
	}
	return -1
}

func sortedClasses(classes []PitchClass) []PitchClass {
	res := make([]PitchClass, 0, len(classes))
	for _, pc := range classes {
		if IndexOf(res, pc) < 0 {
			res = append(res, pc)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].number < res[j].number
	})
	return res
}

func containsPitch(pitches []Pitch, p Pitch) bool {
	for _, q := range pitches {
		if q == p {
			return true
		}
	}
	return false
}

func names[T fmt.Stringer](items []T) []string {
	res := make([]string, 0, len(items))
	for _, item := range items {
		res = append(res, item.String())
	}
	return res
}

func format[T fmt.Stringer](items []T) string {
	return "<" + strings.Join(names(items), ", ") + ">"
}

// AsSegment returns the pitches of c in order. Pitch-class collections are
// placed in octave 4.
func AsSegment(c Collection) Segment {
	switch v := c.(type) {
	case Segment:
		return v
	case Set:
		return Segment(v)
	}
	res := make(Segment, 0, c.Len())
	for _, pc := range c.Classes() {
		res = append(res, FromClassOctave(pc, MiddleOctave))
	}
	return res
}
