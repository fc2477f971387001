package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"ringlet/internal/dirs"
	"ringlet/internal/model"
	"ringlet/internal/render"
	"ringlet/internal/spinner"
	"ringlet/internal/util"
	"ringlet/internal/util/media"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [percentage]",
		Short: "Write a progress ring as an SVG document",
		Example: `  ringlet render 0.75 > ring.svg
  ringlet render 40% --gradient openChannelsGrad -m "Opening channels" -o ring.svg
  ringlet render 3/4 --save`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          a.runRender,
	}
	bindRenderFlags(cmd.Flags())
	return cmd
}

// renderOptions merges the percentage argument, the local flags and the
// loaded settings. A missing percentage is 0.
func (a *app) renderOptions(cmd *cobra.Command, args []string) (model.RenderOptions, error) {
	opts := model.RenderOptions{
		Size:       a.settings.Size,
		Stroke:     a.settings.Stroke,
		Gradient:   a.settings.Gradient,
		Background: a.settings.Background,
	}
	if len(args) > 0 {
		p, err := parsePercentage(args[0])
		if err != nil {
			return model.RenderOptions{}, err
		}
		opts.Percentage = p
	}
	opts.Message, _ = cmd.Flags().GetString("message")
	noIcon, _ := cmd.Flags().GetBool("no-icon")
	opts.Icon = !noIcon
	return opts, nil
}

func panelFor(a *app, opts model.RenderOptions) spinner.Panel {
	p := spinner.LoadNetwork(opts.Percentage, opts.Message).WithComposer(a.composer)
	p.Spinner.Size = opts.Size
	p.Spinner.StrokeWidth = opts.Stroke
	p.Spinner.Gradient = opts.Gradient
	if !opts.Icon {
		p.Spinner.Content = nil
	}
	return p
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	opts, err := a.renderOptions(cmd, args)
	if err != nil {
		return err
	}
	var out model.OutputOptions
	out.Out, _ = cmd.Flags().GetString("out")
	out.Save, _ = cmd.Flags().GetBool("save")

	var buf bytes.Buffer
	if err := render.SVG(&buf, panelFor(a, opts)); err != nil {
		return geometryError(err)
	}
	a.log.Debug("rendered ring", "percentage", opts.Percentage, "gradient", opts.Gradient, "bytes", buf.Len())

	path := out.Out
	if out.Save {
		dir, err := dirs.RingsDir()
		if err != nil {
			return &ExitError{Code: ExitRenderError, Err: err}
		}
		path = filepath.Join(dir, media.SVGName(opts))
	}

	if path == "" || path == "-" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return &ExitError{Code: ExitRenderError, Err: err}
		}
		return nil
	}
	if err := util.WriteFile(path, buf.Bytes()); err != nil {
		return &ExitError{Code: ExitRenderError, Err: fmt.Errorf("write %s: %w", path, err)}
	}
	a.log.Info("saved ring", "path", path)
	if out.Save {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
