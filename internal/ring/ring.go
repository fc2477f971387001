// Package ring composes progress wedges and masking discs into ring visuals.
package ring

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ringlet/internal/arc"
	"ringlet/internal/gradient"
	"ringlet/internal/surface"
)

var (
	// ErrStrokeTooWide is returned when the masking disc would cover the
	// whole wedge (strokeWidth >= size/2).
	ErrStrokeTooWide = errors.New("stroke width must be less than half the size")
	// ErrInvalidStroke is returned for negative or NaN stroke widths.
	ErrInvalidStroke = errors.New("stroke width must not be negative")
)

// IsInvalidArgument reports whether err was caused by a bad size, stroke
// or gradient rather than by the surface being drawn on.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, arc.ErrInvalidRadius) ||
		errors.Is(err, ErrStrokeTooWide) ||
		errors.Is(err, ErrInvalidStroke) ||
		errors.Is(err, gradient.ErrUnknown) ||
		errors.Is(err, gradient.ErrInvalid)
}

// Wedge is the progress slice and its fill.
type Wedge struct {
	Segment arc.Segment
	Path    arc.Path
	Fill    string
}

// Disc is the concentric circle that hides the wedge's interior.
type Disc struct {
	Center arc.Point
	Radius float64
	Fill   string
}

// Visual is a ring drawn as a wedge underneath a masking disc.
type Visual struct {
	Size     float64
	Wedge    Wedge
	Disc     Disc
	Gradient *gradient.Linear // nil for solid fills
}

// IsZero reports whether v is the empty visual returned on failure.
func (v Visual) IsZero() bool {
	return v.Size == 0 && v.Wedge.Path == nil
}

// Draw registers the gradient (if any), then paints the wedge and the disc.
func (v Visual) Draw(s surface.Surface) error {
	if v.IsZero() {
		return nil
	}
	if v.Gradient != nil {
		if err := s.RegisterGradient(*v.Gradient); err != nil {
			return fmt.Errorf("register gradient: %w", err)
		}
	}
	if err := s.DrawPath(v.Wedge.Path, v.Wedge.Fill); err != nil {
		return fmt.Errorf("draw wedge: %w", err)
	}
	if err := s.DrawCircle(v.Disc.Center, v.Disc.Radius, v.Disc.Fill); err != nil {
		return fmt.Errorf("draw disc: %w", err)
	}
	return nil
}

// Composer builds visuals against a gradient registry.
type Composer struct {
	registry   *gradient.Registry
	background string
}

// Option configures a Composer.
type Option func(*Composer)

// WithRegistry sets the registry gradient ids are resolved against.
func WithRegistry(r *gradient.Registry) Option {
	return func(c *Composer) {
		c.registry = r
	}
}

// WithBackground sets the masking disc colour.
func WithBackground(hex string) Option {
	return func(c *Composer) {
		c.background = hex
	}
}

// NewComposer constructs a Composer. Without options it uses the built-in
// gradients and the dark background.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{}
	for _, o := range opts {
		o(c)
	}
	if c.registry == nil {
		c.registry = gradient.Defaults()
	}
	if c.background == "" {
		c.background = gradient.BlackDark
	}
	return c
}

var defaultComposer = NewComposer()

// Compose builds a ring with the default composer.
func Compose(size, percentage, strokeWidth float64, gradientRef string) (Visual, error) {
	return defaultComposer.Compose(size, percentage, strokeWidth, gradientRef)
}

// Registry returns the registry the composer resolves gradients with.
func (c *Composer) Registry() *gradient.Registry {
	return c.registry
}

// Background returns the masking disc colour.
func (c *Composer) Background() string {
	return c.background
}

// Compose builds the ring for a size x size canvas. gradientRef is a
// registered gradient id; a value starting with '#' is used as a solid fill.
// Preconditions are checked before any geometry is produced; on failure the
// zero Visual is returned.
func (c *Composer) Compose(size, percentage, strokeWidth float64, gradientRef string) (Visual, error) {
	radius := size / 2
	seg, err := arc.Compute(percentage, radius)
	if err != nil {
		return Visual{}, fmt.Errorf("size %v: %w", size, err)
	}
	if strokeWidth < 0 || math.IsNaN(strokeWidth) {
		return Visual{}, fmt.Errorf("%w: got %v", ErrInvalidStroke, strokeWidth)
	}
	if strokeWidth >= radius {
		return Visual{}, fmt.Errorf("%w: stroke %v, size %v", ErrStrokeTooWide, strokeWidth, size)
	}

	v := Visual{
		Size: size,
		Wedge: Wedge{
			Segment: seg,
			Path:    arc.Wedge(seg),
		},
		Disc: Disc{
			Center: seg.Center(),
			Radius: radius - strokeWidth,
			Fill:   c.background,
		},
	}
	if strings.HasPrefix(gradientRef, "#") {
		hex, err := gradient.ResolveColor(gradientRef)
		if err != nil {
			return Visual{}, err
		}
		v.Wedge.Fill = hex
		return v, nil
	}
	g, err := c.registry.Lookup(gradientRef)
	if err != nil {
		return Visual{}, err
	}
	v.Gradient = &g
	v.Wedge.Fill = g.Ref()
	return v, nil
}
