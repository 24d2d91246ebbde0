//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trevorbaca/baca-sub024/chord"
	"github.com/trevorbaca/baca-sub024/cmd"
	"github.com/trevorbaca/baca-sub024/midi"
	"github.com/trevorbaca/baca-sub024/pitch"
)

var outDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "spacer-e2e")
	if err != nil {
		panic(err.Error())
	}
	outDir = dir
	os.Setenv("SPACING_OUT_PATH", outDir)

	exitVal := m.Run()

	os.RemoveAll(outDir)
	os.Exit(exitVal)
}

func execute(args ...string) (string, error) {
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSpaceExportAndReadBackE2E(t *testing.T) {
	out := filepath.Join(outDir, "score.mid")
	_, err := execute("space",
		"--bass", "6", "--soprano", "7", "--midi", "--out", out,
		"--", "-6,-3,-5,-1,-7", "5,6,7,9,11")

	assert := assert.New(t)
	assert.NoError(err)

	s, err := midi.ReadMidiFile(out)
	assert.NoError(err)

	chords := chord.GetChords(s)
	assert.Len(chords, 2)
	assert.Equal(pitch.SegmentOf(6, 9, 11, 17, 19), chord.ToSegment(chords[0]))
	assert.Equal(pitch.SegmentOf(6, 9, 11, 17, 19), chord.ToSegment(chords[1]))
}

func TestInspectE2E(t *testing.T) {
	out := filepath.Join(outDir, "down.mid")
	_, err := execute("space", "--direction", "down", "--midi", "--out", out, "0,4,7")

	assert := assert.New(t)
	assert.NoError(err)

	res, err := execute("inspect", out)
	assert.NoError(err)
	assert.Contains(res, "tick 0: <4, 7, 12> (64-67-72)")
}
