package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trevorbaca/baca-sub024/chord"
	"github.com/trevorbaca/baca-sub024/midi"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Inspects a MIDI file",
		Long:  `Prints the chords of a MIDI file as pitch segments, one per onset.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, args[0])
		},
	}
}

func inspect(cmd *cobra.Command, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v: %v\n", path, midi.Describe(s))
	for _, c := range chord.GetChords(s) {
		fmt.Fprintf(out, "tick %v: %v (%v)\n", c.AbsTickOffset, chord.ToSegment(c), chord.CreateChordKey(c.Notes))
	}
	return nil
}
