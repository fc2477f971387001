// Package render draws spinner panels onto the concrete surfaces.
package render

import (
	"bytes"
	"io"
	"math"

	"ringlet/internal/spinner"
	"ringlet/internal/surface/svg"
	"ringlet/internal/surface/term"
)

// SVG writes p as a standalone SVG document sized to fit the ring and its
// caption. Nothing is written to w if rendering fails.
func SVG(w io.Writer, p spinner.Panel) error {
	if _, err := p.Spinner.Layout(); err != nil {
		return err
	}
	width, height := p.Bounds()
	var buf bytes.Buffer
	s := svg.New(&buf, int(math.Ceil(width)), int(math.Ceil(height)))
	if err := p.Render(s); err != nil {
		return err
	}
	s.End()
	_, err := w.Write(buf.Bytes())
	return err
}

// Terminal rasterises p onto rows braille rows (2*rows columns) and returns
// the coloured frame. The caption, if any, is printed under the ring.
func Terminal(p spinner.Panel, rows int, background string, color bool) (string, error) {
	size := p.Spinner.Size
	s := term.New(rows*2, rows, size, size, term.WithBackground(background))
	if err := p.Render(s); err != nil {
		return "", err
	}
	if color {
		return s.String(), nil
	}
	return s.Plain(), nil
}
