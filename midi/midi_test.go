package midi

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trevorbaca/baca-sub024/chord"
	"github.com/trevorbaca/baca-sub024/pitch"
)

func TestKey(t *testing.T) {
	assert := assert.New(t)

	key, err := Key(pitch.NewPitch(0))
	assert.NoError(err)
	assert.Equal(uint8(60), key)

	key, err = Key(pitch.NewPitch(6.5))
	assert.NoError(err)
	assert.Equal(uint8(67), key)

	_, err = Key(pitch.NewPitch(68))
	assert.True(errors.Is(err, ErrKeyOutOfRange))
	_, err = Key(pitch.NewPitch(-61))
	assert.True(errors.Is(err, ErrKeyOutOfRange))
}

func TestWriteAndReadBack(t *testing.T) {
	chords := []pitch.Segment{
		pitch.SegmentOf(6, 9, 11, 17, 19),
		pitch.SegmentOf(19, 17, 11, 9, 6),
		pitch.SegmentOf(0),
	}
	path := filepath.Join(t.TempDir(), "spaced.mid")
	require.NoError(t, WriteFile(path, chords))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)

	got := chord.GetChords(s)
	require.Len(t, got, 3)

	assert := assert.New(t)
	assert.Equal(uint32(0), got[0].AbsTickOffset)
	assert.Equal(uint32(960), got[1].AbsTickOffset)
	assert.Equal(uint32(1920), got[2].AbsTickOffset)
	assert.Equal(pitch.SegmentOf(6, 9, 11, 17, 19), chord.ToSegment(got[0]))
	assert.Equal(pitch.SegmentOf(6, 9, 11, 17, 19), chord.ToSegment(got[1]))
	assert.Equal(pitch.SegmentOf(0), chord.ToSegment(got[2]))
}

func TestBuildRejectsEmptyChord(t *testing.T) {
	_, err := Build([]pitch.Segment{pitch.SegmentOf(0), {}})
	assert.True(t, errors.Is(err, ErrEmptyChord))
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.ErrorContains(t, err, "Error reading midi file")
}
