// Package arc computes the geometry of a progress wedge: the sweep angle,
// the boundary endpoint and the SVG arc flags for a completion fraction.
package arc

import (
	"errors"
	"fmt"
	"math"

	"ringlet/internal/util/format"
)

// Percentages exactly at the boundary would produce a zero-length or a full
// circle arc, neither of which the two-point arc form can express.
const (
	MinPercentage = 0.001
	MaxPercentage = 0.9999
)

// ErrInvalidRadius is returned when the radius is not a positive finite number.
var ErrInvalidRadius = errors.New("radius must be positive and finite")

// Point is a coordinate on the drawing surface; Y grows downwards.
type Point struct {
	X, Y float64
}

// Segment describes the arc drawn from 12 o'clock clockwise to End on a circle
// of radius Radius centred at (Radius, Radius).
type Segment struct {
	Percentage float64 // after boundary nudging
	Radius     float64
	Angle      float64 // radians, clockwise from 12 o'clock
	End        Point
	LargeArc   bool
	Sweep      bool // always true: clockwise
}

// Nudge moves exact 0 and 1 away from the boundary. Other values, including
// out-of-range ones, are returned unchanged.
func Nudge(p float64) float64 {
	switch p {
	case 0:
		return MinPercentage
	case 1:
		return MaxPercentage
	default:
		return p
	}
}

// Compute returns the arc segment covering percentage of a circle of the
// given radius. Percentages outside [0,1] are not clamped and extrapolate.
func Compute(percentage, radius float64) (Segment, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return Segment{}, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	p := Nudge(percentage)
	a := p * 2 * math.Pi
	return Segment{
		Percentage: p,
		Radius:     radius,
		Angle:      a,
		End: Point{
			X: radius + radius*math.Sin(a),
			Y: radius - radius*math.Cos(a),
		},
		LargeArc: p > 0.5,
		Sweep:    true,
	}, nil
}

// Center returns the centre of the segment's circle.
func (s Segment) Center() Point {
	return Point{X: s.Radius, Y: s.Radius}
}

// Start returns the 12 o'clock point the arc begins at.
func (s Segment) Start() Point {
	return Point{X: s.Radius, Y: 0}
}

// Degrees returns the swept angle in degrees.
func (s Segment) Degrees() float64 {
	return s.Angle * 180 / math.Pi
}

// Command renders the segment as an SVG elliptical arc command:
// "A rx ry x-axis-rotation large-arc-flag sweep-flag x y".
func (s Segment) Command() string {
	r := format.Number(s.Radius)
	return fmt.Sprintf("A%s %s 0 %d %d %s %s",
		r, r, flag(s.LargeArc), flag(s.Sweep), format.Number(s.End.X), format.Number(s.End.Y))
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
