package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringlet/internal/arc"
	"ringlet/internal/gradient"
	"ringlet/internal/surface"
)

func TestSurface_Document(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 80, 80)

	g, err := gradient.Defaults().Lookup(gradient.LoadNetwork)
	require.NoError(t, err)
	require.NoError(t, s.RegisterGradient(g))
	require.NoError(t, s.RegisterGradient(g))

	seg, err := arc.Compute(0.75, 40)
	require.NoError(t, err)
	require.NoError(t, s.DrawPath(arc.Wedge(seg), g.Ref()))
	require.NoError(t, s.DrawCircle(arc.Point{X: 40, Y: 40}, 37, gradient.BlackDark))
	require.NoError(t, s.DrawText("a<b", arc.Point{X: 40, Y: 85}, surface.TextStyle{Size: 12, Color: gradient.White}))
	s.End()
	s.End()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `id="loadNetworkGrad"`))
	assert.Equal(t, 1, strings.Count(out, "<defs>"))
	assert.Equal(t, 1, strings.Count(out, "</svg>"))
	assert.Contains(t, out, `d="M40 40 L40 0 A40 40 0 1 1 0 40 Z"`)
	assert.Contains(t, out, "fill:url(#loadNetworkGrad)")
	assert.Contains(t, out, `<circle cx="40" cy="40" r="37" style="fill:#252525"/>`)
	assert.Contains(t, out, "a&lt;b")
	assert.Less(t, strings.Index(out, "<defs>"), strings.Index(out, "<path"))
}

func TestSurface_UnregisteredGradient(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 10, 10)
	err := s.DrawCircle(arc.Point{X: 5, Y: 5}, 4, gradient.Ref("nope"))
	assert.ErrorIs(t, err, gradient.ErrUnknown)
}

func TestSurface_RegisterAfterDraw(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 10, 10)
	require.NoError(t, s.DrawCircle(arc.Point{X: 5, Y: 5}, 4, gradient.White))
	err := s.RegisterGradient(gradient.Diagonal("late", gradient.Stop{Offset: 0, Color: gradient.White}))
	assert.Error(t, err)
}

func TestSurface_DrawAfterEnd(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 10, 10)
	s.End()
	assert.Error(t, s.DrawCircle(arc.Point{X: 5, Y: 5}, 4, gradient.White))
}
