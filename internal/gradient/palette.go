package gradient

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Named colours used by the built-in gradients and the spinner presets.
const (
	White                    = "#FFFFFF"
	BlackDark                = "#252525"
	Purple                   = "#57038D"
	LightPurple              = "#A540CD"
	LoadNetworkLightPurple   = "#E3A8FF"
	LoadNetworkMedPurple     = "#B650F5"
	LoadNetworkMedDarkPurple = "#8B29DA"
	OpenChansDarkPurple      = "#6D19AD"
)

var palette = map[string]string{
	"white":                    White,
	"blackDark":                BlackDark,
	"purple":                   Purple,
	"lightPurple":              LightPurple,
	"loadNetworkLightPurple":   LoadNetworkLightPurple,
	"loadNetworkMedPurple":     LoadNetworkMedPurple,
	"loadNetworkMedDarkPurple": LoadNetworkMedDarkPurple,
	"openChansDarkPurple":      OpenChansDarkPurple,
}

// PaletteNames lists the named colours in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for n := range palette {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ResolveColor accepts a palette name or a hex colour and returns the
// normalised "#rrggbb" form.
func ResolveColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if hex, ok := palette[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c.Hex(), nil
}
