package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trevorbaca/baca-sub024/model"
	"github.com/trevorbaca/baca-sub024/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestCreateChordKey(t *testing.T) {
	notes := model.Notes{67, 60, 64}

	assert := assert.New(t)
	assert.Equal("60-64-67", CreateChordKey(notes))
	assert.Equal(model.Notes{67, 60, 64}, notes)
	assert.Equal("", CreateChordKey(nil))
}

func TestGetChordsGroupsByTick(t *testing.T) {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 64, 80))
	tr.Add(0, midi.NoteOn(0, 60, 80))
	tr.Add(480, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOn(0, 72, 80))
	tr.Add(480, midi.NoteOff(0, 72))
	tr.Close(0)

	s := smf.New()
	assert := assert.New(t)
	assert.NoError(s.Add(tr))

	chords := GetChords(s)
	assert.Equal([]model.Chord{
		{AbsTickOffset: 0, Notes: model.Notes{60, 64}},
		{AbsTickOffset: 480, Notes: model.Notes{72}},
	}, chords)
}

func TestToSegment(t *testing.T) {
	c := model.Chord{Notes: model.Notes{54, 66, 79}}
	assert.Equal(t, pitch.SegmentOf(-6, 6, 19), ToSegment(c))
}
