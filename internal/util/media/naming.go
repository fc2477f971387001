// Package media names the files ringlet writes.
package media

import (
	"fmt"
	"math"
	"strings"

	"ringlet/internal/model"
	"ringlet/internal/util"
)

// OutputBasename builds a safe, informative base filename (without
// extension) from the render options, e.g. "loadNetworkGrad_75pct_80px".
func OutputBasename(opts model.RenderOptions) string {
	grad := strings.TrimPrefix(opts.Gradient, "#")
	if grad == "" {
		grad = "ring"
	}
	parts := []string{
		util.SanitizeFilename(grad),
		fmt.Sprintf("%dpct", int(math.Round(opts.Percentage*100))),
		fmt.Sprintf("%dpx", int(math.Round(opts.Size))),
	}
	if opts.Message != "" {
		parts = append(parts, strings.ToLower(util.SanitizeFilename(opts.Message)))
	}
	return strings.Join(parts, "_")
}

// SVGName is OutputBasename with the .svg extension.
func SVGName(opts model.RenderOptions) string {
	return OutputBasename(opts) + ".svg"
}
