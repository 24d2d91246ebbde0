package midi

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/trevorbaca/baca-sub024/constants"
	"github.com/trevorbaca/baca-sub024/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	ErrKeyOutOfRange = errors.New("midi: pitch outside MIDI key range")
	ErrEmptyChord    = errors.New("midi: chord has no pitches")
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}

// Key maps a pitch to its MIDI key, rounding microtones to the nearest
// semitone.
func Key(p pitch.Pitch) (uint8, error) {
	key := math.Round(p.Number()) + constants.MiddleCKey
	if key < 0 || key > 127 {
		return 0, errors.Wrapf(ErrKeyOutOfRange, "pitch %v", p)
	}
	return uint8(key), nil
}

// Build lays the chords out one after another, each held for
// constants.ChordTicks.
func Build(chords []pitch.Segment) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	for i, c := range chords {
		if len(c) == 0 {
			return nil, errors.Wrapf(ErrEmptyChord, "chord %d", i)
		}
		keys := make([]uint8, 0, len(c))
		for _, p := range c {
			key, err := Key(p)
			if err != nil {
				return nil, errors.WithMessagef(err, "chord %d", i)
			}
			keys = append(keys, key)
		}
		for _, key := range keys {
			tr.Add(0, midi.NoteOn(constants.DefaultChannel, key, constants.DefaultVelocity))
		}
		for j, key := range keys {
			var delta uint32
			if j == 0 {
				delta = constants.ChordTicks
			}
			tr.Add(delta, midi.NoteOff(constants.DefaultChannel, key))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func WriteFile(path string, chords []pitch.Segment) error {
	s, err := Build(chords)
	if err != nil {
		return err
	}
	if err := s.WriteFile(path); err != nil {
		return errors.Wrapf(err, "Write failed for midi file: %s", path)
	}
	return nil
}

func Describe(s *smf.SMF) string {
	return fmt.Sprintf("%d track(s), %v", len(s.Tracks), s.TimeFormat)
}
