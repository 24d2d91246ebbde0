package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spacer",
		Short: "Chordal spacing and cursor tools",
		Long:  `Spaces pitch-class collections into chords, walks sources with a cursor and inspects exported MIDI.`,

		SilenceUsage: true,
	}
	rootCmd.AddCommand(newSpaceCmd())
	rootCmd.AddCommand(newWalkCmd())
	rootCmd.AddCommand(newInspectCmd())
	return rootCmd
}

func Execute() {
	cobra.CheckErr(NewRootCmd().Execute())
}
