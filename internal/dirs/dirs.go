// Package dirs resolves per-user directories for ringlet.
package dirs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "ringlet"

// AppName returns the canonical application name for directory paths.
func AppName() string {
	return appName
}

// ConfigDir returns the app's configuration directory.
// - Linux: $XDG_CONFIG_HOME/ringlet or ~/.config/ringlet
// - macOS: ~/Library/Application Support/ringlet
// - Windows: %AppData%/ringlet
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config", os.UserConfigDir)
}

// DataDir returns the app's data directory.
// - Linux: $XDG_DATA_HOME/ringlet or ~/.local/share/ringlet
// - macOS: ~/Library/Application Support/ringlet
// - Windows: %AppData%/ringlet
func DataDir() (string, error) {
	return resolve("XDG_DATA_HOME", filepath.Join(".local", "share"), os.UserConfigDir)
}

// RingsDir is where `render --save` writes SVG files.
func RingsDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "rings"), nil
}

func resolve(xdgVar, homeRel string, fallback func() (string, error)) (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName()), nil
	case "linux":
		if xdg := os.Getenv(xdgVar); xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, homeRel, AppName()), nil
	default:
		// Windows and other OSes fall back to the platform helper
		base, err := fallback()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, AppName()), nil
	}
}

// Ensure creates the directory if it doesn't exist.
func Ensure(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}
