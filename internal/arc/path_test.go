package arc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWedge_String(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		r    float64
		want string
	}{
		{name: "half", p: 0.5, r: 40, want: "M40 40 L40 0 A40 40 0 0 1 40 80 Z"},
		{name: "three quarters", p: 0.75, r: 40, want: "M40 40 L40 0 A40 40 0 1 1 0 40 Z"},
		{name: "quarter", p: 0.25, r: 10, want: "M10 10 L10 0 A10 10 0 0 1 20 10 Z"},
		{name: "fractional radius", p: 0.5, r: 2.5, want: "M2.5 2.5 L2.5 0 A2.5 2.5 0 0 1 2.5 5 Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := Compute(tt.p, tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Wedge(seg).String())
		})
	}
}

func TestWedge_Shape(t *testing.T) {
	seg, err := Compute(0.75, 40)
	require.NoError(t, err)
	w := Wedge(seg)
	require.Len(t, w, 4)
	assert.Equal(t, OpMove, w[0].Op)
	assert.Equal(t, seg.Center(), w[0].To)
	assert.Equal(t, OpLine, w[1].Op)
	assert.Equal(t, Point{X: 40, Y: 0}, w[1].To)
	assert.Equal(t, OpArc, w[2].Op)
	assert.Equal(t, seg.End, w[2].To)
	assert.Equal(t, OpClose, w[3].Op)
}

func TestPath_Flatten(t *testing.T) {
	seg, err := Compute(0.75, 40)
	require.NoError(t, err)
	pts := Wedge(seg).Flatten(math.Pi / 36)

	require.GreaterOrEqual(t, len(pts), 2+27)
	assert.Equal(t, Point{X: 40, Y: 40}, pts[0])
	assert.Equal(t, Point{X: 40, Y: 0}, pts[1])
	for _, p := range pts[2:] {
		assert.InDelta(t, 40, distance(p, Point{X: 40, Y: 40}), 1e-9)
	}
	last := pts[len(pts)-1]
	assert.InDelta(t, seg.End.X, last.X, 1e-9)
	assert.InDelta(t, seg.End.Y, last.Y, 1e-9)
}

func TestPath_Translate(t *testing.T) {
	seg, err := Compute(0.5, 10)
	require.NoError(t, err)
	moved := Wedge(seg).Translate(Point{X: 5, Y: 5})
	assert.Equal(t, "M15 15 L15 5 A10 10 0 0 1 15 25 Z", moved.String())

	pts := moved.Flatten(0)
	last := pts[len(pts)-1]
	assert.InDelta(t, 15, last.X, 1e-9)
	assert.InDelta(t, 25, last.Y, 1e-9)
}

func TestPolygon(t *testing.T) {
	p := Polygon(Point{0, 0}, Point{4, 0}, Point{2, 3})
	assert.Equal(t, "M0 0 L4 0 L2 3 Z", p.String())
	assert.Empty(t, Polygon())
}

func TestPath_FlattenOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		p      float64
		center Point // centre of the circle the emitted arc lies on
		side   float64
	}{
		// End is diametrically opposite the start: clockwise through the right.
		{name: "one and a half", p: 1.5, center: Point{X: 40, Y: 40}, side: 1},
		{name: "minus a half", p: -0.5, center: Point{X: 40, Y: 40}, side: 1},
		// Short clockwise arc from 12 o'clock to 9 o'clock bends around (0,0).
		{name: "minus a quarter", p: -0.25, center: Point{X: 0, Y: 0}, side: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := Compute(tt.p, 40)
			require.NoError(t, err)
			pts := Wedge(seg).Flatten(math.Pi / 36)
			require.Greater(t, len(pts), 3)
			arcPts := pts[2:]
			for _, p := range arcPts {
				assert.InDelta(t, 40, distance(p, tt.center), 1e-6)
			}
			mid := arcPts[len(arcPts)/2]
			assert.Equal(t, tt.side > 0, mid.X > 40, "arc midpoint %v", mid)
			last := arcPts[len(arcPts)-1]
			assert.InDelta(t, seg.End.X, last.X, 1e-9)
			assert.InDelta(t, seg.End.Y, last.Y, 1e-9)
		})
	}
}

func TestPath_FlattenBounded(t *testing.T) {
	for _, p := range []float64{2000, 10000, -777.3} {
		seg, err := Compute(p, 40)
		require.NoError(t, err)
		pts := Wedge(seg).Flatten(math.Pi / 180)
		assert.LessOrEqual(t, len(pts), 2+361, "p=%v", p)
	}

	seg, err := Compute(0.75, 40)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(Wedge(seg).Flatten(1e-12)), 2+4096)
}

func TestPath_FlattenNaN(t *testing.T) {
	seg, err := Compute(math.NaN(), 40)
	require.NoError(t, err)
	pts := Wedge(seg).Flatten(0)
	assert.Len(t, pts, 2)
}
