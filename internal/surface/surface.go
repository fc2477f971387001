// Package surface defines the drawing capability that ring visuals are
// rendered onto. Backends live in the svg and term subpackages.
package surface

import (
	"ringlet/internal/arc"
	"ringlet/internal/gradient"
)

// Surface is a vector drawing target. Fills are either a solid hex colour
// ("#rrggbb") or a gradient reference ("url(#id)") registered beforehand.
type Surface interface {
	RegisterGradient(g gradient.Linear) error
	DrawPath(p arc.Path, fill string) error
	DrawCircle(center arc.Point, r float64, fill string) error
}

// Anchor selects which point of a text run sits at the drawing position.
type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

// TextStyle controls DrawText.
type TextStyle struct {
	Size   float64
	Color  string
	Anchor Anchor
}

// TextDrawer is implemented by surfaces that can place text.
type TextDrawer interface {
	DrawText(s string, at arc.Point, st TextStyle) error
}
