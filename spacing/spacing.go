// Package spacing assigns octaves to pitch-class collections so they sound as
// spaced chords.
//
// A Spacer orders the classes of a collection starting from an anchor (the
// bass when building Up, the soprano when building Down), fills in the inner
// classes with a stepwise search and then places every class as close as
// possible to its predecessor while keeping the chord monotonic.
//
// Example:
//
//	s, err := spacing.New(
//		spacing.WithBass(pitch.NewPitchClass(6)),
//		spacing.WithSoprano(pitch.NewPitchClass(7)),
//	)
//	if err != nil {
//		// handle ErrSameAnchors, ErrInvalidMinimumSemitones, ...
//	}
//	out, err := s.Space([]pitch.Collection{pitch.ClassSegmentOf(-6, -3, -5, -1, -7)})
//	// out[0] is the pitch segment <6, 9, 11, 17, 19>
package spacing

import (
	"github.com/pkg/errors"
	"github.com/trevorbaca/baca-sub024/pitch"
)

// maxFillSearch bounds a single fill search. A pool holds at most twelve
// distinct classes, so a correct search stops far sooner.
const maxFillSearch = 999

type Spacer struct {
	opts Options
}

// New validates opts and returns a Spacer. It fails with ErrInvalidDirection,
// ErrInvalidMinimumSemitones, ErrSameAnchors or pattern.ErrInvalidPeriod.
func New(opts ...Option) (*Spacer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Direction != Up && o.Direction != Down {
		return nil, errors.Wrapf(ErrInvalidDirection, "got %d", int(o.Direction))
	}
	if o.minimumSet && o.MinimumSemitones <= 0 {
		return nil, errors.Wrapf(ErrInvalidMinimumSemitones, "got %d", o.MinimumSemitones)
	}
	if o.Bass != nil && o.Soprano != nil && *o.Bass == *o.Soprano {
		return nil, errors.Wrapf(ErrSameAnchors, "both are %v", *o.Bass)
	}
	if o.Pattern != nil {
		if err := o.Pattern.Validate(); err != nil {
			return nil, err
		}
	}
	return &Spacer{opts: o}, nil
}

// Space builds a Spacer from opts and applies it to collections.
func Space(collections []pitch.Collection, opts ...Option) ([]pitch.Collection, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Space(collections)
}

func (s *Spacer) Options() Options {
	return s.opts
}

// Space spaces every collection the pattern selects and passes the others
// through. The result has the same length as collections; sets come back as
// pitch.Set and everything else as pitch.Segment.
func (s *Spacer) Space(collections []pitch.Collection) ([]pitch.Collection, error) {
	res := make([]pitch.Collection, 0, len(collections))
	for i, c := range collections {
		if s.opts.Pattern != nil && !s.opts.Pattern.Matches(i, len(collections)) {
			res = append(res, c)
			continue
		}
		spaced, err := s.SpaceOne(c)
		if err != nil {
			return nil, errors.WithMessagef(err, "collection %d", i)
		}
		res = append(res, spaced)
	}
	return res, nil
}

// SpaceOne spaces a single collection, ignoring the pattern.
func (s *Spacer) SpaceOne(c pitch.Collection) (pitch.Collection, error) {
	if c == nil {
		return nil, errors.Wrap(ErrUnknownCollection, "nil collection")
	}
	classes, err := s.arrange(c.Classes())
	if err != nil {
		return nil, err
	}
	pitches := s.place(classes)
	if c.Ordered() {
		return pitch.Segment(pitches), nil
	}
	return pitch.NewSet(pitches...), nil
}

// arrange returns the classes in the order they are stacked: the leading
// anchor, the filled inner classes, then the trailing anchor.
func (s *Spacer) arrange(classes []pitch.PitchClass) ([]pitch.PitchClass, error) {
	for _, anchor := range []*pitch.PitchClass{s.opts.Bass, s.opts.Soprano} {
		if anchor != nil && pitch.IndexOf(classes, *anchor) < 0 {
			return nil, errors.Wrapf(ErrAnchorNotFound, "%v not in %v", *anchor, pitch.ClassSegment(classes))
		}
	}

	lead, trail := s.opts.Bass, s.opts.Soprano
	if s.opts.Direction == Down {
		lead, trail = trail, lead
	}

	inner := make([]pitch.PitchClass, len(classes))
	copy(inner, classes)
	for _, anchor := range []*pitch.PitchClass{lead, trail} {
		if anchor != nil {
			inner = removeAt(inner, pitch.IndexOf(inner, *anchor))
		}
	}

	var seed pitch.PitchClass
	switch {
	case lead != nil:
		seed = *lead
	case len(inner) > 0:
		seed, inner = inner[0], inner[1:]
	case trail != nil:
		seed, trail = *trail, nil
	default:
		return nil, nil
	}

	fill, err := s.fill(seed, inner)
	if err != nil {
		return nil, err
	}
	res := append([]pitch.PitchClass{seed}, fill...)
	if trail != nil {
		res = append(res, *trail)
	}
	return res, nil
}

// fill orders pool by searching away from start in the spacing direction.
// With a minimum gap the candidate jumps by that gap after every hit;
// without one it stays put and the next miss moves it by a semitone.
func (s *Spacer) fill(start pitch.PitchClass, pool []pitch.PitchClass) ([]pitch.PitchClass, error) {
	pool = append([]pitch.PitchClass(nil), pool...)
	sign := s.opts.Direction.sign()
	gap := 1.0
	if s.opts.MinimumSemitones > 0 {
		gap = float64(s.opts.MinimumSemitones)
	}

	var res []pitch.PitchClass
	candidate := start.Number() + sign*gap
	for i := 0; len(pool) > 0; i++ {
		if i > maxFillSearch {
			return nil, errors.Wrapf(ErrFillRunaway, "start %v, %d classes left: %v", start, len(pool), pitch.ClassSegment(pool))
		}
		pc := pitch.NewPitchClass(candidate)
		j := pitch.IndexOf(pool, pc)
		if j < 0 {
			candidate += sign
			continue
		}
		res = append(res, pc)
		pool = removeAt(pool, j)
		if s.opts.MinimumSemitones > 0 {
			candidate += sign * gap
		}
	}
	return res, nil
}

// place turns ordered classes into tightly spaced pitches, starting in
// octave 4. Down chords are lifted by octaves until the lowest pitch sits in
// octave 4 or above.
func (s *Spacer) place(classes []pitch.PitchClass) []pitch.Pitch {
	if len(classes) == 0 {
		return []pitch.Pitch{}
	}
	sign := s.opts.Direction.sign()
	res := make([]pitch.Pitch, 0, len(classes))
	prev := pitch.FromClassOctave(classes[0], pitch.MiddleOctave)
	res = append(res, prev)
	for _, pc := range classes[1:] {
		p := pitch.FromClassOctave(pc, prev.Octave())
		if sign*(p.Number()-prev.Number()) < 0 {
			p = p.Transpose(sign * pitch.OctaveSize)
		}
		res = append(res, p)
		prev = p
	}
	if s.opts.Direction == Down {
		for res[len(res)-1].Octave() < pitch.MiddleOctave {
			for i := range res {
				res[i] = res[i].Transpose(pitch.OctaveSize)
			}
		}
	}
	return res
}

func removeAt(classes []pitch.PitchClass, i int) []pitch.PitchClass {
	res := make([]pitch.PitchClass, 0, len(classes)-1)
	res = append(res, classes[:i]...)
	return append(res, classes[i+1:]...)
}
