package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("SPACING_OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// MIDI key of pitch 0 (middle C)
const MiddleCKey = 60

const TicksPerQuarter = 960

// each spaced chord lasts one quarter note
const ChordTicks = TicksPerQuarter

const DefaultVelocity = 80

const DefaultChannel = 0
