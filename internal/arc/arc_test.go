package arc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestCompute_EndpointOnCircle(t *testing.T) {
	for _, r := range []float64{0.5, 1, 40, 1234.5} {
		for p := 0.01; p < 1; p += 0.01 {
			seg, err := Compute(p, r)
			require.NoError(t, err)
			assert.InDelta(t, r, distance(seg.End, seg.Center()), tol*r, "p=%v r=%v", p, r)
		}
	}
}

func TestCompute_BoundaryNudging(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		wantP    float64
		wantLong bool
	}{
		{name: "zero", in: 0, wantP: MinPercentage, wantLong: false},
		{name: "one", in: 1, wantP: MaxPercentage, wantLong: true},
		{name: "interior untouched", in: 0.3, wantP: 0.3, wantLong: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := Compute(tt.in, 40)
			require.NoError(t, err)
			assert.Equal(t, tt.wantP, seg.Percentage)
			assert.Equal(t, tt.wantLong, seg.LargeArc)
			assert.Greater(t, distance(seg.End, seg.Start()), 1e-3, "endpoint must differ from 12 o'clock")
		})
	}
}

func TestCompute_TieBreak(t *testing.T) {
	half, err := Compute(0.5, 40)
	require.NoError(t, err)
	assert.False(t, half.LargeArc)

	above, err := Compute(0.5+1e-9, 40)
	require.NoError(t, err)
	assert.True(t, above.LargeArc)

	below, err := Compute(0.5-1e-9, 40)
	require.NoError(t, err)
	assert.False(t, below.LargeArc)
}

func TestCompute_QuarterSymmetry(t *testing.T) {
	const r = 40.0
	q1, err := Compute(0.25, r)
	require.NoError(t, err)
	q3, err := Compute(0.75, r)
	require.NoError(t, err)

	// Mirror images across the vertical axis x = r.
	assert.InDelta(t, r-q1.End.X, -(r - q3.End.X), tol)
	assert.InDelta(t, q1.End.Y, q3.End.Y, tol)
	// Equal angle either way round.
	assert.InDelta(t, q1.Angle, 2*math.Pi-q3.Angle, tol)
	assert.False(t, q1.LargeArc)
	assert.True(t, q3.LargeArc)
	assert.True(t, q1.Sweep)
	assert.True(t, q3.Sweep)
}

func TestCompute_Idempotent(t *testing.T) {
	a, err := Compute(0.4242, 17)
	require.NoError(t, err)
	b, err := Compute(0.4242, 17)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, math.Float64bits(a.End.X), math.Float64bits(b.End.X))
	assert.Equal(t, math.Float64bits(a.End.Y), math.Float64bits(b.End.Y))
}

func TestCompute_Half(t *testing.T) {
	seg, err := Compute(0.5, 40)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, seg.Angle, tol)
	assert.InDelta(t, 40, seg.End.X, tol)
	assert.InDelta(t, 80, seg.End.Y, tol)
	assert.False(t, seg.LargeArc)
	assert.InDelta(t, 180, seg.Degrees(), tol)
	assert.Equal(t, "A40 40 0 0 1 40 80", seg.Command())
}

func TestCompute_OutOfRangeExtrapolates(t *testing.T) {
	neg, err := Compute(-0.25, 40)
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/2, neg.Angle, tol)
	assert.InDelta(t, 0, neg.End.X, tol)
	assert.InDelta(t, 40, neg.End.Y, tol)
	assert.False(t, neg.LargeArc)

	over, err := Compute(1.25, 40)
	require.NoError(t, err)
	assert.InDelta(t, 80, over.End.X, tol)
	assert.InDelta(t, 40, over.End.Y, tol)
	assert.True(t, over.LargeArc)
}

func TestCompute_InvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Compute(0.5, r)
		assert.ErrorIs(t, err, ErrInvalidRadius, "radius %v", r)
	}
}

func TestNudge(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0.001},
		{1, 0.9999},
		{0.5, 0.5},
		{-0.1, -0.1},
		{1.1, 1.1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Nudge(tt.in), "Nudge(%v)", tt.in)
	}
}
