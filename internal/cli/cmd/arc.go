package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ringlet/internal/arc"
	"ringlet/internal/util/format"
)

func newArcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arc <percentage>",
		Short: "Print the arc geometry for a percentage",
		Example: `  ringlet arc 0.75
  ringlet arc 50% --radius 100`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePercentage(args[0])
			if err != nil {
				return err
			}
			radius, _ := cmd.Flags().GetFloat64("radius")
			seg, err := arc.Compute(p, radius)
			if err != nil {
				return &ExitError{Code: ExitInvalidArg, Err: err}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "percentage  %s\n", format.Number(seg.Percentage))
			fmt.Fprintf(w, "angle       %s° (%s rad)\n", format.Number(seg.Degrees()), format.Number(seg.Angle))
			fmt.Fprintf(w, "end         %s %s\n", format.Number(seg.End.X), format.Number(seg.End.Y))
			fmt.Fprintf(w, "large-arc   %d\n", b2i(seg.LargeArc))
			fmt.Fprintf(w, "sweep       %d\n", b2i(seg.Sweep))
			fmt.Fprintf(w, "arc         %s\n", seg.Command())
			fmt.Fprintf(w, "wedge       %s\n", arc.Wedge(seg))
			return nil
		},
	}
	cmd.Flags().Float64("radius", 40, "Circle radius")
	return cmd
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
