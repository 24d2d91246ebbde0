package chord

import (
	"fmt"
	"sort"

	"github.com/trevorbaca/baca-sub024/constants"
	"github.com/trevorbaca/baca-sub024/model"
	"github.com/trevorbaca/baca-sub024/pitch"
	"github.com/trevorbaca/baca-sub024/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func CreateChordKey(notes model.Notes) string {
	sorted := append(model.Notes(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// GetChords groups the note-ons of every track by absolute tick. Chords come
// back in tick order with their notes lowest first.
func GetChords(s *smf.SMF) []model.Chord {
	tickToNotes := make(map[uint32]model.Notes)
	for _, events := range s.Tracks {
		var absTicks uint32
		for _, event := range events {
			absTicks += event.Delta
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				tickToNotes[absTicks] = append(tickToNotes[absTicks], key)
			}
		}
	}

	var chords []model.Chord
	for _, tick := range util.GetKeysSorted(tickToNotes) {
		notes := tickToNotes[tick]
		sort.Slice(notes, func(i, j int) bool {
			return notes[i] < notes[j]
		})
		chords = append(chords, model.Chord{AbsTickOffset: tick, Notes: notes})
	}
	return chords
}

func ToSegment(c model.Chord) pitch.Segment {
	res := make(pitch.Segment, 0, len(c.Notes))
	for _, note := range c.Notes {
		res = append(res, pitch.NewPitch(int(note)-constants.MiddleCKey))
	}
	return res
}
