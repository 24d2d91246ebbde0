package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trevorbaca/baca-sub024/cursor"
)

type walkFlags struct {
	steps      []int
	cyclic     bool
	suppress   bool
	singletons bool
	position   int
}

func newWalkCmd() *cobra.Command {
	var f walkFlags
	cmd := &cobra.Command{
		Use:   "walk ITEM...",
		Short: "Walks a cursor over the given items",
		Long:  `Steps a cursor over the given items once per --steps entry and prints each window.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []cursor.Option{
				cursor.WithCyclic(f.cyclic),
				cursor.WithSuppressException(f.suppress),
				cursor.WithSingletons(f.singletons),
			}
			if cmd.Flags().Changed("position") {
				opts = append(opts, cursor.WithPosition(f.position))
			}
			c, err := cursor.New(args, opts...)
			if err != nil {
				return err
			}
			return walk(cmd, c, f.steps)
		},
	}
	flags := cmd.Flags()
	flags.IntSliceVar(&f.steps, "steps", []int{1}, "step counts; negative counts walk backwards")
	flags.BoolVar(&f.cyclic, "cyclic", false, "wrap around the ends of the source")
	flags.BoolVar(&f.suppress, "suppress", false, "drop reads past the ends instead of failing")
	flags.BoolVar(&f.singletons, "singletons", false, "print one-item windows as the bare item")
	flags.IntVar(&f.position, "position", 0, "starting position")
	return cmd
}

func walk(cmd *cobra.Command, c *cursor.Cursor[string], steps []int) error {
	out := cmd.OutOrStdout()
	for _, n := range steps {
		v, err := c.StepValue(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v\n", v)
	}
	return nil
}
