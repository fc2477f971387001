package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"ringlet/internal/config"
	"ringlet/internal/gradient"
	"ringlet/internal/logging"
	"ringlet/internal/progress"
	"ringlet/internal/ring"
)

const (
	ExitOK          = 0
	ExitCLIError    = 1
	ExitInvalidArg  = 2
	ExitRenderError = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// app is the state every command shares once config has been loaded.
type app struct {
	settings config.Settings
	composer *ring.Composer
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ringlet [percentage]",
		Short: "Radial progress rings as SVG, in the terminal, or over HTTP",
		Long: "Ringlet draws circular progress indicators: a gradient wedge under a masking disc, " +
			"with an optional icon in the middle and a caption underneath. " +
			"Without a subcommand it writes an SVG when stdout is redirected and opens the live preview when it is a terminal.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(cmd.OutOrStdout()) {
				return a.runPreview(cmd, args)
			}
			return a.runRender(cmd, args)
		},
	}

	// Persistent flags available to all subcommands
	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/ringlet/config.yaml)")
	pf.Float64("size", config.DefaultSize, "Ring diameter in user units")
	pf.Float64("stroke", config.DefaultStroke, "Ring thickness; must be less than size/2")
	pf.String("gradient", gradient.LoadNetwork, "Gradient id, or #rrggbb for a solid fill")
	pf.String("background", config.DefaultBackground, "Masking disc colour: palette name or #rrggbb")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	// Also bind render and preview flags on root, so `ringlet 0.5` works either way.
	bindRenderFlags(root.Flags())
	bindPreviewOnlyFlags(root.Flags())

	// Subcommands
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newArcCmd())
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newGradientsCmd(a))
	root.AddCommand(newCompletionCmd())

	return root
}

// setup loads config, env and flags into a once per invocation.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(cmd.Root()); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	s, err := config.Load()
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	log, err := logging.New(cmd.ErrOrStderr(), s.LogLevel)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	c, err := s.Composer()
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("config gradients: %w", err)}
	}
	a.settings, a.composer, a.log = s, c, log
	log.Debug("config loaded",
		"size", s.Size, "stroke", s.Stroke, "gradient", s.Gradient, "background", s.Background)
	return nil
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

// Helpers

// parsePercentage accepts 0.75, 75% and 3/4. Values outside [0,1] are kept;
// NaN and infinities are not.
func parsePercentage(s string) (float64, error) {
	u, ok := progress.ParseLine(s)
	if !ok || u.Message != "" || math.IsNaN(u.Percent) || math.IsInf(u.Percent, 0) {
		return 0, &ExitError{Code: ExitInvalidArg, Err: fmt.Errorf("invalid percentage: %q", s)}
	}
	return u.Percent, nil
}

// geometryError maps a render failure to an exit code.
func geometryError(err error) error {
	if ring.IsInvalidArgument(err) {
		return &ExitError{Code: ExitInvalidArg, Err: err}
	}
	return &ExitError{Code: ExitRenderError, Err: err}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func bindRingFlags(fs *pflag.FlagSet) {
	fs.StringP("message", "m", "", "Caption under the ring")
	fs.Bool("no-icon", false, "Leave the centre of the ring empty")
}

func bindRenderFlags(fs *pflag.FlagSet) {
	bindRingFlags(fs)
	fs.StringP("out", "o", "-", "Output file; - for stdout")
	fs.Bool("save", false, "Save into the data dir instead of --out")
}

func bindPreviewFlags(fs *pflag.FlagSet) {
	bindRingFlags(fs)
	bindPreviewOnlyFlags(fs)
}

func bindPreviewOnlyFlags(fs *pflag.FlagSet) {
	fs.Bool("hold", false, "Keep the preview open after the feed completes")
	fs.Int("rows", 12, "Ring height in terminal rows")
	fs.Int("fps", 30, "Animation frames per second")
}
