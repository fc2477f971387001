package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ringlet/internal/model"
	"ringlet/internal/ui"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [percentage]",
		Short: "Animate the ring in the terminal",
		Long: `Preview draws the ring with braille dots and eases it towards the latest
percentage. With a percentage argument the ring is static; otherwise lines
such as "42%", "0.42" or "42/100 Syncing headers" are read from stdin when it
is piped, and a demo feed runs when it is not.`,
		Example: `  ringlet preview 0.6
  some-sync-tool --progress | ringlet preview --hold`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          a.runPreview,
	}
	bindPreviewFlags(cmd.Flags())
	return cmd
}

func (a *app) runPreview(cmd *cobra.Command, args []string) error {
	opts, err := a.renderOptions(cmd, args)
	if err != nil {
		return err
	}
	// Bad geometry fails here rather than inside the TUI.
	if _, err := panelFor(a, opts).Spinner.Layout(); err != nil {
		return geometryError(err)
	}

	po := model.PreviewOptions{RenderOptions: opts}
	switch {
	case len(args) > 0:
		po.Static = true
	case stdinPiped(cmd):
		po.Input = cmd.InOrStdin()
	}
	po.Hold, _ = cmd.Flags().GetBool("hold")
	po.Rows, _ = cmd.Flags().GetInt("rows")
	po.FPS, _ = cmd.Flags().GetInt("fps")

	a.log.Debug("starting preview", "static", po.Static, "feed", po.Input != nil, "rows", po.Rows)
	if err := ui.Run(cmd.Context(), po, a.composer); err != nil {
		return &ExitError{Code: ExitRenderError, Err: err}
	}
	return nil
}

// stdinPiped reports whether stdin is a pipe or file rather than a terminal.
func stdinPiped(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return true
	}
	return !isTerminal(f)
}
