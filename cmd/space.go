package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/trevorbaca/baca-sub024/constants"
	"github.com/trevorbaca/baca-sub024/file"
	"github.com/trevorbaca/baca-sub024/midi"
	"github.com/trevorbaca/baca-sub024/pattern"
	"github.com/trevorbaca/baca-sub024/pitch"
	"github.com/trevorbaca/baca-sub024/spacing"
	"github.com/trevorbaca/baca-sub024/util"
)

type spaceFlags struct {
	bass             float64
	soprano          float64
	direction        directionValue
	minimumSemitones int
	asSets           bool
	indices          []int
	period           int
	invert           bool
	writeMidi        bool
	out              string
}

func newSpaceCmd() *cobra.Command {
	var f spaceFlags
	cmd := &cobra.Command{
		Use:   "space COLLECTION...",
		Short: "Spaces pitch-class collections",
		Long: `Spaces each comma separated pitch-class collection, e.g. "6,9,7,11,5",
into a chord and prints one collection per line. Put "--" before collections
that start with a minus sign.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return space(cmd, args, &f)
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&f.bass, "bass", 0, "pitch class anchoring the bottom")
	flags.Float64Var(&f.soprano, "soprano", 0, "pitch class anchoring the top")
	flags.Var(&f.direction, "direction", "up or down")
	flags.IntVar(&f.minimumSemitones, "minimum-semitones", 0, "fill search step")
	flags.BoolVar(&f.asSets, "set", false, "treat collections as unordered sets")
	flags.IntSliceVar(&f.indices, "indices", nil, "only space the collections at these indices")
	flags.IntVar(&f.period, "period", 0, "repeat --indices every n collections")
	flags.BoolVar(&f.invert, "invert", false, "space the collections --indices does not select")
	flags.BoolVar(&f.writeMidi, "midi", false, "export the result as a MIDI file")
	flags.StringVar(&f.out, "out", "", "MIDI output path (default: a new file under $SPACING_OUT_PATH)")
	return cmd
}

func spacingOptions(cmd *cobra.Command, f *spaceFlags) []spacing.Option {
	opts := []spacing.Option{spacing.WithDirection(spacing.Direction(f.direction))}
	flags := cmd.Flags()
	if flags.Changed("bass") {
		opts = append(opts, spacing.WithBass(pitch.NewPitchClass(f.bass)))
	}
	if flags.Changed("soprano") {
		opts = append(opts, spacing.WithSoprano(pitch.NewPitchClass(f.soprano)))
	}
	if flags.Changed("minimum-semitones") {
		opts = append(opts, spacing.WithMinimumSemitones(f.minimumSemitones))
	}
	if flags.Changed("indices") {
		p := pattern.Indices(f.indices...).Periodic(f.period)
		if f.invert {
			p = p.Inverse()
		}
		opts = append(opts, spacing.WithPattern(p))
	}
	return opts
}

func parseCollections(args []string, asSets bool) ([]pitch.Collection, error) {
	res := make([]pitch.Collection, 0, len(args))
	for _, arg := range args {
		numbers, err := util.ParseNumbers(arg)
		if err != nil {
			return nil, err
		}
		if asSets {
			res = append(res, pitch.ClassSetOf(numbers...))
		} else {
			res = append(res, pitch.ClassSegmentOf(numbers...))
		}
	}
	return res, nil
}

func space(cmd *cobra.Command, args []string, f *spaceFlags) error {
	collections, err := parseCollections(args, f.asSets)
	if err != nil {
		return err
	}
	spacer, err := spacing.New(spacingOptions(cmd, f)...)
	if err != nil {
		return err
	}
	spaced, err := spacer.Space(collections)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	segments := make([]pitch.Segment, 0, len(spaced))
	for _, c := range spaced {
		fmt.Fprintln(out, c)
		segments = append(segments, pitch.AsSegment(c))
	}

	if !f.writeMidi {
		return nil
	}
	path := f.out
	if path == "" {
		path, err = file.CreateOutputPath(constants.GetOutDir(), ".mid")
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Writing %v chords to %v\n", len(segments), path)
	return errors.WithMessage(midi.WriteFile(path, segments), "could not export")
}
