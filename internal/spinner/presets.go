package spinner

import (
	"ringlet/internal/gradient"
	"ringlet/internal/ring"
	"ringlet/internal/surface"
)

// Load network spinner metrics.
const (
	LoadNetworkSize   = 80
	LoadNetworkStroke = 3
	CaptionGap        = 5
	FontSizeXS        = 12
)

// Panel is a spinner with a caption line underneath it.
type Panel struct {
	Spinner Resizeable
	Caption Text
	Gap     float64
}

// LoadNetwork is the network sync spinner: an 80 unit ring with a lightning
// bolt in the middle and msg below it.
func LoadNetwork(percentage float64, msg string) Panel {
	return Panel{
		Spinner: Resizeable{
			Percentage:  percentage,
			Size:        LoadNetworkSize,
			StrokeWidth: LoadNetworkStroke,
			Gradient:    gradient.LoadNetwork,
			Content:     []Content{LightningBolt()},
		},
		Caption: Text{Value: msg, FontSize: FontSizeXS, Color: gradient.White},
		Gap:     CaptionGap,
	}
}

// WithComposer returns a copy of p resolving gradients with c.
func (p Panel) WithComposer(c *ring.Composer) Panel {
	p.Spinner.Composer = c
	return p
}

// Bounds returns the width and height the panel needs.
func (p Panel) Bounds() (float64, float64) {
	h := p.Spinner.Size
	if p.Caption.Value != "" {
		_, ch := p.Caption.Size()
		h += p.Gap + ch
	}
	return p.Spinner.Size, h
}

// Render draws the spinner and its caption.
func (p Panel) Render(s surface.Surface) error {
	if err := p.Spinner.Render(s); err != nil {
		return err
	}
	if p.Caption.Value == "" {
		return nil
	}
	w, h := p.Caption.Size()
	box := Rect{X: (p.Spinner.Size - w) / 2, Y: p.Spinner.Size + p.Gap, W: w, H: h}
	return p.Caption.Draw(s, box)
}

// Small is the indeterminate activity indicator. It has no geometry;
// front ends animate a glyph in Color.
type Small struct {
	Color string
}

// NewSmall returns the small spinner in light purple.
func NewSmall() Small {
	return Small{Color: gradient.LightPurple}
}
