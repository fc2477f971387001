// Package config wires viper to the CLI flags, RINGLET_* environment
// variables and the optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ringlet/internal/dirs"
	"ringlet/internal/gradient"
	"ringlet/internal/ring"
)

// Viper keys.
const (
	KeyConfig     = "config"
	KeySize       = "size"
	KeyStroke     = "stroke"
	KeyGradient   = "gradient"
	KeyBackground = "background"
	KeyLogLevel   = "log_level"
	KeyAddr       = "addr"
	KeyGradients  = "gradients"
)

// Defaults match the network loading spinner.
const (
	DefaultSize       = 80.0
	DefaultStroke     = 3.0
	DefaultBackground = "blackDark"
	DefaultLogLevel   = "info"
	DefaultAddr       = "127.0.0.1:8080"
)

// Settings is the resolved configuration.
type Settings struct {
	Size       float64
	Stroke     float64
	Gradient   string
	Background string // normalised hex
	LogLevel   string
	Addr       string
	Gradients  map[string][]string
}

// SetDefaults registers default values for every key.
func SetDefaults() {
	viper.SetDefault(KeySize, DefaultSize)
	viper.SetDefault(KeyStroke, DefaultStroke)
	viper.SetDefault(KeyGradient, gradient.LoadNetwork)
	viper.SetDefault(KeyBackground, DefaultBackground)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeyAddr, DefaultAddr)
}

// Init wires Viper with config paths, env, defaults, and flag bindings.
// A missing config file in the search path is not an error; an explicit
// --config that cannot be read is.
func Init(root *cobra.Command) error {
	SetDefaults()

	// Environment variables: RINGLET_*
	viper.SetEnvPrefix("RINGLET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	pf := root.PersistentFlags()
	for key, flag := range map[string]string{
		KeySize:       "size",
		KeyStroke:     "stroke",
		KeyGradient:   "gradient",
		KeyBackground: "background",
		KeyLogLevel:   "log-level",
	} {
		if f := pf.Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	explicit := ""
	if f := pf.Lookup("config"); f != nil {
		explicit = f.Value.String()
	}
	if explicit != "" {
		viper.SetConfigFile(explicit)
	} else {
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			viper.AddConfigPath(cfgDir)
		}
		viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}
	}

	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads the current settings and validates them.
func Load() (Settings, error) {
	bg, err := gradient.ResolveColor(viper.GetString(KeyBackground))
	if err != nil {
		return Settings{}, fmt.Errorf("background: %w", err)
	}
	s := Settings{
		Size:       viper.GetFloat64(KeySize),
		Stroke:     viper.GetFloat64(KeyStroke),
		Gradient:   viper.GetString(KeyGradient),
		Background: bg,
		LogLevel:   viper.GetString(KeyLogLevel),
		Addr:       viper.GetString(KeyAddr),
		Gradients:  viper.GetStringMapStringSlice(KeyGradients),
	}
	return s, nil
}

// Registry returns the built-in gradients overlaid with configured ones.
func (s Settings) Registry() (*gradient.Registry, error) {
	base := gradient.Defaults()
	if len(s.Gradients) == 0 {
		return base, nil
	}
	extra, err := gradient.FromStops(s.Gradients)
	if err != nil {
		return nil, err
	}
	return base.With(extra...)
}

// Composer builds a ring composer from the settings.
func (s Settings) Composer() (*ring.Composer, error) {
	reg, err := s.Registry()
	if err != nil {
		return nil, err
	}
	return ring.NewComposer(ring.WithRegistry(reg), ring.WithBackground(s.Background)), nil
}
