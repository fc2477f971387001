// Package term rasterises ring visuals onto a grid of braille cells so they
// can be previewed in a terminal.
package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"ringlet/internal/arc"
	"ringlet/internal/gradient"
	"ringlet/internal/surface"
)

// Braille dot positions (col, row) -> bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type dot struct {
	set bool
	c   colorful.Color
}

type textRun struct {
	row, col int
	text     string
	color    string
}

// Surface maps a width x height logical canvas onto cols x rows braille
// cells, each cell holding 2x4 dots.
type Surface struct {
	cols, rows int
	w, h       float64
	bg         string
	dots       [][]dot
	grads      map[string]gradient.Linear
	texts      []textRun
	footer     []textRun
}

var (
	_ surface.Surface    = (*Surface)(nil)
	_ surface.TextDrawer = (*Surface)(nil)
)

// Option configures a Surface.
type Option func(*Surface)

// WithBackground sets the colour treated as "no ink". Shapes filled with it
// clear the dots they cover, which is how the masking disc hollows the wedge.
func WithBackground(hex string) Option {
	return func(s *Surface) {
		if c, err := colorful.Hex(hex); err == nil {
			s.bg = c.Hex()
		}
	}
}

// New creates a surface of cols x rows cells showing a width x height canvas.
// Terminal cells are roughly twice as tall as wide, so a square canvas wants
// cols = 2*rows.
func New(cols, rows int, width, height float64, opts ...Option) *Surface {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := &Surface{
		cols:  cols,
		rows:  rows,
		w:     width,
		h:     height,
		grads: map[string]gradient.Linear{},
	}
	s.dots = make([][]dot, rows*4)
	for i := range s.dots {
		s.dots[i] = make([]dot, cols*2)
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RegisterGradient makes g available to url(#id) fills.
func (s *Surface) RegisterGradient(g gradient.Linear) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.grads[g.ID] = g
	return nil
}

// DrawPath fills the interior of p using the even-odd rule.
func (s *Surface) DrawPath(p arc.Path, fill string) error {
	pts := p.Flatten(math.Pi / 180)
	if len(pts) < 3 {
		return nil
	}
	shade, err := s.shader(fill, bounds(pts))
	if err != nil {
		return err
	}
	s.each(func(x, y float64) (bool, colorful.Color) {
		if !inside(pts, x, y) {
			return false, colorful.Color{}
		}
		return true, shade(x, y)
	})
	return nil
}

// DrawCircle fills a disc.
func (s *Surface) DrawCircle(c arc.Point, r float64, fill string) error {
	if r <= 0 {
		return nil
	}
	box := [4]float64{c.X - r, c.Y - r, c.X + r, c.Y + r}
	shade, err := s.shader(fill, box)
	if err != nil {
		return err
	}
	s.each(func(x, y float64) (bool, colorful.Color) {
		if math.Hypot(x-c.X, y-c.Y) > r {
			return false, colorful.Color{}
		}
		return true, shade(x, y)
	})
	return nil
}

// DrawText places text over the cells at the given canvas position. Text
// below the canvas becomes a footer line.
func (s *Surface) DrawText(text string, at arc.Point, st surface.TextStyle) error {
	n := len([]rune(text))
	col := int(at.X / s.w * float64(s.cols))
	switch st.Anchor {
	case surface.AnchorMiddle:
		col -= n / 2
	case surface.AnchorEnd:
		col -= n
	}
	if col < 0 {
		col = 0
	}
	run := textRun{col: col, text: text, color: st.Color}
	if at.Y >= s.h {
		s.footer = append(s.footer, run)
		return nil
	}
	run.row = int(at.Y / s.h * float64(s.rows))
	if run.row < 0 {
		run.row = 0
	}
	s.texts = append(s.texts, run)
	return nil
}

// Dot reports whether the dot covering canvas point (x, y) is inked, and
// its colour.
func (s *Surface) Dot(x, y float64) (string, bool) {
	dx := int(x / s.w * float64(s.cols*2))
	dy := int(y / s.h * float64(s.rows*4))
	if dy < 0 || dy >= len(s.dots) || dx < 0 || dx >= len(s.dots[dy]) {
		return "", false
	}
	d := s.dots[dy][dx]
	if !d.set {
		return "", false
	}
	return d.c.Hex(), true
}

// Plain renders the grid without colour.
func (s *Surface) Plain() string {
	return s.render(false)
}

// String renders the grid with lipgloss colours.
func (s *Surface) String() string {
	return s.render(true)
}

func (s *Surface) render(color bool) string {
	lines := make([]string, 0, s.rows+len(s.footer))
	for row := 0; row < s.rows; row++ {
		cells := make([]string, s.cols)
		hexes := make([]string, s.cols)
		for col := 0; col < s.cols; col++ {
			cells[col], hexes[col] = s.cell(row, col)
		}
		for _, t := range s.texts {
			if t.row != row {
				continue
			}
			for i, r := range []rune(t.text) {
				if c := t.col + i; c < s.cols {
					cells[c], hexes[c] = string(r), t.color
				}
			}
		}
		lines = append(lines, joinRuns(cells, hexes, color))
	}
	for _, t := range s.footer {
		line := strings.Repeat(" ", t.col) + t.text
		if color && t.color != "" {
			line = strings.Repeat(" ", t.col) + lipgloss.NewStyle().Foreground(lipgloss.Color(t.color)).Render(t.text)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// cell returns the braille glyph for a cell and the mean colour of its
// inked dots.
func (s *Surface) cell(row, col int) (string, string) {
	var pattern uint
	var r, g, b float64
	n := 0
	for dx := 0; dx < 2; dx++ {
		for dy := 0; dy < 4; dy++ {
			d := s.dots[row*4+dy][col*2+dx]
			if !d.set {
				continue
			}
			pattern |= 1 << brailleBits[dx][dy]
			r, g, b = r+d.c.R, g+d.c.G, b+d.c.B
			n++
		}
	}
	if n == 0 {
		return " ", ""
	}
	c := colorful.Color{R: r / float64(n), G: g / float64(n), B: b / float64(n)}
	return string(rune(0x2800 + pattern)), c.Clamped().Hex()
}

func joinRuns(cells, hexes []string, color bool) string {
	if !color {
		return strings.Join(cells, "")
	}
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && hexes[j] == hexes[i] {
			j++
		}
		run := strings.Join(cells[i:j], "")
		if hexes[i] == "" {
			b.WriteString(run)
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexes[i])).Render(run))
		}
		i = j
	}
	return b.String()
}

// each visits every dot centre in canvas coordinates.
func (s *Surface) each(fn func(x, y float64) (bool, colorful.Color)) {
	dw := s.w / float64(s.cols*2)
	dh := s.h / float64(s.rows*4)
	for dy := range s.dots {
		y := (float64(dy) + 0.5) * dh
		for dx := range s.dots[dy] {
			x := (float64(dx) + 0.5) * dw
			hit, c := fn(x, y)
			if !hit {
				continue
			}
			s.dots[dy][dx] = dot{set: c.Hex() != s.bg, c: c}
		}
	}
}

// shader resolves a fill into a per-point colour function. Gradients are
// projected over the shape's bounding box.
func (s *Surface) shader(fill string, box [4]float64) (func(x, y float64) colorful.Color, error) {
	if id, ok := gradient.ParseRef(fill); ok {
		g, found := s.grads[id]
		if !found {
			return nil, fmt.Errorf("term: %w: %q", gradient.ErrUnknown, id)
		}
		bw, bh := box[2]-box[0], box[3]-box[1]
		return func(x, y float64) colorful.Color {
			u, v := 0.0, 0.0
			if bw > 0 {
				u = (x - box[0]) / bw
			}
			if bh > 0 {
				v = (y - box[1]) / bh
			}
			return g.At(g.Project(u, v))
		}, nil
	}
	c, err := colorful.Hex(fill)
	if err != nil {
		return nil, fmt.Errorf("term: invalid fill %q: %w", fill, err)
	}
	return func(float64, float64) colorful.Color { return c }, nil
}

func bounds(pts []arc.Point) [4]float64 {
	b := [4]float64{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		b[0], b[1] = math.Min(b[0], p.X), math.Min(b[1], p.Y)
		b[2], b[3] = math.Max(b[2], p.X), math.Max(b[3], p.Y)
	}
	return b
}

// inside is the even-odd crossing test.
func inside(pts []arc.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
