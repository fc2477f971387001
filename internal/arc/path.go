package arc

import (
	"math"
	"strings"

	"ringlet/internal/util/format"
)

// Op identifies a path command.
type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpArc   Op = 'A'
	OpClose Op = 'Z'
)

// Command is one step of a Path. Seg is only set for OpArc.
type Command struct {
	Op  Op
	To  Point
	Seg Segment
}

// Path is an ordered list of drawing commands.
type Path []Command

// Wedge builds the pie slice for seg: centre, line to 12 o'clock, arc to the
// endpoint, close. The slice always covers the swept fraction, never its
// complement, because the flags are fixed by the percentage.
func Wedge(seg Segment) Path {
	return Path{
		{Op: OpMove, To: seg.Center()},
		{Op: OpLine, To: seg.Start()},
		{Op: OpArc, To: seg.End, Seg: seg},
		{Op: OpClose},
	}
}

// Polygon returns a closed straight-edged path through pts.
func Polygon(pts ...Point) Path {
	p := make(Path, 0, len(pts)+1)
	for i, pt := range pts {
		op := OpLine
		if i == 0 {
			op = OpMove
		}
		p = append(p, Command{Op: op, To: pt})
	}
	if len(pts) > 0 {
		p = append(p, Command{Op: OpClose})
	}
	return p
}

// String renders the path as an SVG "d" attribute.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMove, OpLine:
			b.WriteByte(byte(c.Op))
			b.WriteString(format.Number(c.To.X))
			b.WriteByte(' ')
			b.WriteString(format.Number(c.To.Y))
		case OpArc:
			b.WriteString(c.Seg.Command())
		case OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// Translate returns a copy of p shifted by d.
func (p Path) Translate(d Point) Path {
	out := make(Path, len(p))
	for i, c := range p {
		c.To = Point{X: c.To.X + d.X, Y: c.To.Y + d.Y}
		if c.Op == OpArc {
			c.Seg.End = c.To
		}
		out[i] = c
	}
	return out
}

// Flatten converts p to a list of vertices. Arcs follow their emitted
// command: the centre is solved from the current point, End, Radius and the
// LargeArc/Sweep flags the way an SVG renderer does, so any percentage
// flattens to at most one turn of one chord per step radians.
func (p Path) Flatten(step float64) []Point {
	if step <= 0 {
		step = math.Pi / 90
	}
	if step < minStep {
		step = minStep
	}
	var pts []Point
	var cur Point
	for _, c := range p {
		switch c.Op {
		case OpMove, OpLine:
			cur = c.To
			pts = append(pts, cur)
		case OpArc:
			pts = append(pts, arcPoints(cur, c.To, c.Seg, step)...)
			cur = c.To
		}
	}
	return pts
}

// minStep bounds the chord count of one arc at 4096.
const minStep = 2 * math.Pi / 4096

// arcPoints samples the endpoint-parameterised arc from p0 to p1, excluding
// p0 and ending exactly on p1. Degenerate or non-finite arcs collapse to a
// straight segment.
func arcPoints(p0, p1 Point, s Segment, step float64) []Point {
	if !finite(p1.X) || !finite(p1.Y) || !finite(s.Radius) {
		return nil
	}
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	d := math.Hypot(dx, dy)
	if d == 0 || s.Radius <= 0 {
		return []Point{p1}
	}
	r := math.Max(s.Radius, d/2)
	h := math.Sqrt(math.Max(0, r*r-d*d/4))
	mx, my := (p0.X+p1.X)/2, (p0.Y+p1.Y)/2
	ux, uy := -dy/d, dx/d

	// Of the two circles through p0 and p1, pick the one on which travelling
	// in the sweep direction covers more than half a turn iff LargeArc.
	var cx, cy, a0, delta float64
	for _, sign := range []float64{1, -1} {
		cx, cy = mx+sign*h*ux, my+sign*h*uy
		a0 = math.Atan2(p0.Y-cy, p0.X-cx)
		a1 := math.Atan2(p1.Y-cy, p1.X-cx)
		delta = math.Mod(a1-a0, 2*math.Pi)
		if delta < 0 {
			delta += 2 * math.Pi
		}
		if !s.Sweep {
			delta -= 2 * math.Pi
		}
		if (math.Abs(delta) > math.Pi) == s.LargeArc {
			break
		}
	}

	n := int(math.Ceil(math.Abs(delta) / step))
	if n < 1 {
		n = 1
	}
	out := make([]Point, 0, n)
	for i := 1; i < n; i++ {
		a := a0 + delta*float64(i)/float64(n)
		out = append(out, Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return append(out, p1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
