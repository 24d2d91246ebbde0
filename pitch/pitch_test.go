package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchClassReduction(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0}, {12, 0}, {-12, 0}, {-1, 11}, {-7, 5}, {25, 1}, {6.5, 6.5}, {-0.5, 11.5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NewPitchClass(tc.in).Number(), "input %v", tc.in)
	}
}

func TestPitchClassEqualityIsModTwelve(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(NewPitchClass(2), NewPitchClass(14))
	assert.Equal(NewPitchClass(int8(-10)), NewPitchClass(uint(2)))
	assert.NotEqual(NewPitchClass(2), NewPitchClass(3))
}

func TestPitchClassNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("c", NewPitchClass(0).Name())
	assert.Equal("fs", NewPitchClass(-6).Name())
	assert.Equal("bf", NewPitchClass(10).Name())
	assert.Equal("6.5", NewPitchClass(6.5).Name())
}

func TestOctaves(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4, NewPitch(0).Octave())
	assert.Equal(4, NewPitch(11).Octave())
	assert.Equal(5, NewPitch(12).Octave())
	assert.Equal(3, NewPitch(-1).Octave())
	assert.Equal(3, NewPitch(-12).Octave())
	assert.Equal(2, NewPitch(-13).Octave())
}

func TestFromClassOctave(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(NewPitch(6), FromClassOctave(NewPitchClass(6), 4))
	assert.Equal(NewPitch(19), FromClassOctave(NewPitchClass(7), 5))
	assert.Equal(NewPitch(-3), FromClassOctave(NewPitchClass(9), 3))
	assert.Equal("fs3", NewPitch(-6).Name())
	assert.Equal(NewPitchClass(5), NewPitch(-7).PitchClass())
}

func TestCollections(t *testing.T) {
	assert := assert.New(t)

	seg := ClassSegmentOf(-6, -3, -5, -1, -7, 6)
	assert.True(seg.Ordered())
	assert.Equal("<6, 9, 7, 11, 5, 6>", seg.String())
	assert.Equal(6, len(seg.Classes()))

	set := ClassSetOf(7, -5, 0, 4)
	assert.False(set.Ordered())
	assert.Equal("{0, 4, 7}", set.String())
	assert.True(set.Contains(NewPitchClass(16)))

	pitches := SegmentOf(19, 7, -1)
	assert.Equal("<19, 7, -1>", pitches.String())
	assert.Equal(ClassSegmentOf(7, 7, 11), ClassSegment(pitches.Classes()))

	pset := SetOf(19, 7, -1, 7)
	assert.Equal([]float64{-1, 7, 19}, pset.Numbers())
	assert.Equal(ClassSegmentOf(7, 11), ClassSegment(pset.Classes()))
	assert.Equal(3, pset.Len())
}

func TestIndexOf(t *testing.T) {
	classes := ClassSegmentOf(3, 5, 3)
	assert.Equal(t, 0, IndexOf(classes, NewPitchClass(15)))
	assert.Equal(t, -1, IndexOf(classes, NewPitchClass(4)))
}

func TestAsSegment(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(SegmentOf(19, 7), AsSegment(SegmentOf(19, 7)))
	assert.Equal(SegmentOf(7, 19), AsSegment(SetOf(19, 7)))
	assert.Equal(SegmentOf(7, 11, 7), AsSegment(ClassSegmentOf(-5, -1, 19)))
	assert.Equal(SegmentOf(7, 11), AsSegment(ClassSetOf(-1, 19)))
}
