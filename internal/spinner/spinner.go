// Package spinner lays out progress rings on a square canvas and overlays
// centred content such as an icon or a caption.
package spinner

import (
	"fmt"

	"ringlet/internal/arc"
	"ringlet/internal/ring"
	"ringlet/internal/surface"
)

// Rect is an axis-aligned box in canvas units.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of r.
func (r Rect) Center() arc.Point {
	return arc.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Content is drawn centred over the ring.
type Content interface {
	Size() (w, h float64)
	Draw(s surface.Surface, box Rect) error
}

// Placed is a content item with its resolved box.
type Placed struct {
	Content Content
	Box     Rect
}

// Layout is the resolved geometry of a Resizeable spinner.
type Layout struct {
	Canvas  Rect
	Ring    ring.Visual
	Overlay Rect
	Items   []Placed
}

// Resizeable is a progress ring of arbitrary size with content stacked in
// its centre.
type Resizeable struct {
	Percentage  float64
	Size        float64
	StrokeWidth float64
	Gradient    string
	Content     []Content

	// Composer resolves gradients; nil uses the built-in registry.
	Composer *ring.Composer
}

// Layout resolves the canvas, the ring and the overlay positions. The overlay
// covers the whole canvas; children are stacked vertically and centred on
// both axes.
func (r Resizeable) Layout() (Layout, error) {
	c := r.Composer
	if c == nil {
		c = ring.NewComposer()
	}
	v, err := c.Compose(r.Size, r.Percentage, r.StrokeWidth, r.Gradient)
	if err != nil {
		return Layout{}, err
	}
	canvas := Rect{W: r.Size, H: r.Size}
	l := Layout{Canvas: canvas, Ring: v, Overlay: canvas}

	total := 0.0
	for _, item := range r.Content {
		_, h := item.Size()
		total += h
	}
	y := canvas.Y + (canvas.H-total)/2
	for _, item := range r.Content {
		w, h := item.Size()
		l.Items = append(l.Items, Placed{
			Content: item,
			Box:     Rect{X: canvas.X + (canvas.W-w)/2, Y: y, W: w, H: h},
		})
		y += h
	}
	return l, nil
}

// Render draws the ring, then the overlay content, onto s.
func (r Resizeable) Render(s surface.Surface) error {
	l, err := r.Layout()
	if err != nil {
		return err
	}
	if err := l.Ring.Draw(s); err != nil {
		return err
	}
	for i, p := range l.Items {
		if err := p.Content.Draw(s, p.Box); err != nil {
			return fmt.Errorf("overlay item %d: %w", i, err)
		}
	}
	return nil
}
