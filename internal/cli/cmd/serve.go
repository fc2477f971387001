package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ringlet/internal/config"
	"ringlet/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Serve rings over HTTP at /ring.svg",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := viper.GetString(config.KeyAddr)
			if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
				addr = f.Value.String()
			}
			srv := server.New(a.composer, a.log, server.Defaults{
				Size:     a.settings.Size,
				Stroke:   a.settings.Stroke,
				Gradient: a.settings.Gradient,
			})
			if err := srv.ListenAndServe(cmd.Context(), addr); err != nil {
				return &ExitError{Code: ExitRenderError, Err: err}
			}
			a.log.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "Listen address")
	return cmd
}
