package model

// Notes are MIDI key numbers, lowest first.
type Notes = []uint8

type Chord struct {
	AbsTickOffset uint32
	Notes         Notes
}
