// Package svg renders ring visuals into SVG documents using svgo.
package svg

import (
	"fmt"
	"html"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"ringlet/internal/arc"
	"ringlet/internal/gradient"
	"ringlet/internal/surface"
	"ringlet/internal/util/format"
)

// Surface writes an SVG document. Gradients are collected and flushed into a
// single <defs> block before the first shape is drawn, so callers must
// register every gradient they use up front.
type Surface struct {
	canvas  *svgo.SVG
	pending []gradient.Linear
	seen    map[string]bool
	drawn   bool
	ended   bool
}

var (
	_ surface.Surface    = (*Surface)(nil)
	_ surface.TextDrawer = (*Surface)(nil)
)

// New starts a width x height document on w.
func New(w io.Writer, width, height int) *Surface {
	c := svgo.New(w)
	c.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	return &Surface{canvas: c, seen: map[string]bool{}}
}

// RegisterGradient queues g for the <defs> block. Re-registering an id is a
// no-op.
func (s *Surface) RegisterGradient(g gradient.Linear) error {
	if s.seen[g.ID] {
		return nil
	}
	if s.drawn {
		return fmt.Errorf("svg: gradient %q registered after drawing started", g.ID)
	}
	if err := g.Validate(); err != nil {
		return err
	}
	s.seen[g.ID] = true
	s.pending = append(s.pending, g)
	return nil
}

// DrawPath emits a filled <path>.
func (s *Surface) DrawPath(p arc.Path, fill string) error {
	if err := s.begin(fill); err != nil {
		return err
	}
	s.canvas.Path(p.String(), "fill:"+fill)
	return nil
}

// DrawCircle emits a filled <circle>. svgo only takes integer geometry, so
// the element is written directly to keep fractional radii.
func (s *Surface) DrawCircle(c arc.Point, r float64, fill string) error {
	if err := s.begin(fill); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.canvas.Writer, "<circle cx=\"%s\" cy=\"%s\" r=\"%s\" style=\"fill:%s\"/>\n",
		format.Number(c.X), format.Number(c.Y), format.Number(r), fill)
	return err
}

// DrawText emits a <text> element.
func (s *Surface) DrawText(text string, at arc.Point, st surface.TextStyle) error {
	if err := s.begin(st.Color); err != nil {
		return err
	}
	anchor := "middle"
	switch st.Anchor {
	case surface.AnchorStart:
		anchor = "start"
	case surface.AnchorEnd:
		anchor = "end"
	}
	_, err := fmt.Fprintf(s.canvas.Writer,
		"<text x=\"%s\" y=\"%s\" style=\"font-size:%spx;fill:%s;text-anchor:%s;dominant-baseline:hanging\">%s</text>\n",
		format.Number(at.X), format.Number(at.Y), format.Number(st.Size), st.Color, anchor, html.EscapeString(text))
	return err
}

// End flushes pending definitions and closes the document.
func (s *Surface) End() {
	if s.ended {
		return
	}
	s.flushDefs()
	s.canvas.End()
	s.ended = true
}

func (s *Surface) begin(fill string) error {
	if s.ended {
		return fmt.Errorf("svg: document already ended")
	}
	if id, ok := gradient.ParseRef(fill); ok && !s.seen[id] {
		return fmt.Errorf("svg: %w: %q", gradient.ErrUnknown, id)
	}
	if !s.drawn {
		s.flushDefs()
		s.drawn = true
	}
	return nil
}

func (s *Surface) flushDefs() {
	if len(s.pending) == 0 {
		return
	}
	s.canvas.Def()
	for _, g := range s.pending {
		stops := make([]svgo.Offcolor, 0, len(g.Stops))
		for _, st := range g.Stops {
			stops = append(stops, svgo.Offcolor{
				Offset:  uint8(st.Offset*100 + 0.5),
				Color:   strings.ToLower(st.Color),
				Opacity: 1,
			})
		}
		s.canvas.LinearGradient(g.ID, pct(g.X1), pct(g.Y1), pct(g.X2), pct(g.Y2), stops)
	}
	s.canvas.DefEnd()
	s.pending = nil
}

func pct(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 100
	default:
		return uint8(v*100 + 0.5)
	}
}
