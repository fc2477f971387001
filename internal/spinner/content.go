package spinner

import (
	"ringlet/internal/arc"
	"ringlet/internal/gradient"
	"ringlet/internal/surface"
)

// Icon is a filled outline scaled into a W x H box. Outline points are in
// unit coordinates.
type Icon struct {
	W, H    float64
	Outline []arc.Point
	Fill    string
}

// Size implements Content.
func (i Icon) Size() (float64, float64) { return i.W, i.H }

// Draw implements Content.
func (i Icon) Draw(s surface.Surface, box Rect) error {
	pts := make([]arc.Point, len(i.Outline))
	for k, p := range i.Outline {
		pts[k] = arc.Point{X: box.X + p.X*box.W, Y: box.Y + p.Y*box.H}
	}
	return s.DrawPath(arc.Polygon(pts...), i.Fill)
}

// LightningBolt is the network-loading icon.
func LightningBolt() Icon {
	return Icon{
		W: 14.2222,
		H: 28,
		Outline: []arc.Point{
			{X: 0.62, Y: 0},
			{X: 0, Y: 0.57},
			{X: 0.45, Y: 0.57},
			{X: 0.33, Y: 1},
			{X: 1, Y: 0.4},
			{X: 0.55, Y: 0.4},
		},
		Fill: gradient.White,
	}
}

// Text is a single line of text. Surfaces that cannot draw text skip it.
type Text struct {
	Value    string
	FontSize float64
	Color    string
}

// Size implements Content. Width is estimated from an average glyph width.
func (t Text) Size() (float64, float64) {
	return 0.6 * t.FontSize * float64(len([]rune(t.Value))), 1.2 * t.FontSize
}

// Draw implements Content.
func (t Text) Draw(s surface.Surface, box Rect) error {
	td, ok := s.(surface.TextDrawer)
	if !ok || t.Value == "" {
		return nil
	}
	return td.DrawText(t.Value, arc.Point{X: box.X + box.W/2, Y: box.Y}, surface.TextStyle{
		Size:   t.FontSize,
		Color:  t.Color,
		Anchor: surface.AnchorMiddle,
	})
}
