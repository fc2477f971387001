package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"ringlet/internal/util/format"
)

func newGradientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:           "gradients",
		Short:         "List the registered gradients",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			color := isTerminal(w)
			for _, g := range a.composer.Registry().All() {
				stops := make([]string, 0, len(g.Stops))
				for _, s := range g.Stops {
					label := format.Percent(s.Offset) + ":" + s.Color
					if color {
						label = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(label)
					}
					stops = append(stops, label)
				}
				fmt.Fprintf(w, "%-18s %s\n", g.ID, strings.Join(stops, " "))
			}
			return nil
		},
	}
}
