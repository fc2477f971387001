// Package gradient holds the reusable linear gradient definitions that
// progress wedges reference by id.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ids of the built-in gradients.
const (
	LoadNetwork  = "loadNetworkGrad"
	OpenChannels = "openChannelsGrad"
)

var (
	// ErrUnknown is returned when a gradient id has not been registered.
	ErrUnknown = errors.New("unknown gradient")
	// ErrInvalid is returned for malformed gradient definitions.
	ErrInvalid = errors.New("invalid gradient")
)

// Stop is a colour at a position along the gradient vector. Offset is in [0,1].
type Stop struct {
	Offset float64
	Color  string
}

// Linear is a linear gradient whose vector runs from (X1,Y1) to (X2,Y2) in
// bounding-box units.
type Linear struct {
	ID             string
	X1, Y1, X2, Y2 float64
	Stops          []Stop
}

// Diagonal builds a top-left to bottom-right gradient.
func Diagonal(id string, stops ...Stop) Linear {
	return Linear{ID: id, X1: 0, Y1: 0, X2: 1, Y2: 1, Stops: stops}
}

// Ref returns the fill reference for the gradient, e.g. "url(#loadNetworkGrad)".
func (l Linear) Ref() string {
	return Ref(l.ID)
}

// Ref formats a fill reference to the gradient with the given id.
func Ref(id string) string {
	return "url(#" + id + ")"
}

// ParseRef extracts the id from a "url(#id)" fill. ok is false for anything
// else, including solid colours.
func ParseRef(fill string) (id string, ok bool) {
	if !strings.HasPrefix(fill, "url(#") || !strings.HasSuffix(fill, ")") {
		return "", false
	}
	id = fill[len("url(#") : len(fill)-1]
	return id, id != ""
}

// Validate checks the id, the stop ordering and that every colour parses.
func (l Linear) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalid)
	}
	if len(l.Stops) == 0 {
		return fmt.Errorf("%w: %s has no stops", ErrInvalid, l.ID)
	}
	prev := -1.0
	for i, s := range l.Stops {
		if s.Offset < 0 || s.Offset > 1 || math.IsNaN(s.Offset) {
			return fmt.Errorf("%w: %s stop %d offset %v outside [0,1]", ErrInvalid, l.ID, i, s.Offset)
		}
		if s.Offset < prev {
			return fmt.Errorf("%w: %s stop %d offset %v is before %v", ErrInvalid, l.ID, i, s.Offset, prev)
		}
		prev = s.Offset
		if _, err := colorful.Hex(s.Color); err != nil {
			return fmt.Errorf("%w: %s stop %d colour %q", ErrInvalid, l.ID, i, s.Color)
		}
	}
	return nil
}

// At returns the colour at position t along the gradient vector, blending
// neighbouring stops in Lab space. Positions before the first stop take the
// first colour; after the last, the last colour.
func (l Linear) At(t float64) colorful.Color {
	if len(l.Stops) == 0 {
		return colorful.Color{}
	}
	t = math.Max(0, math.Min(1, t))
	first := l.Stops[0]
	if t <= first.Offset {
		return mustHex(first.Color)
	}
	for i := 1; i < len(l.Stops); i++ {
		a, b := l.Stops[i-1], l.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return mustHex(b.Color)
		}
		return mustHex(a.Color).BlendLab(mustHex(b.Color), (t-a.Offset)/span).Clamped()
	}
	return mustHex(l.Stops[len(l.Stops)-1].Color)
}

// Project maps a point (in bounding-box units) onto the gradient vector.
func (l Linear) Project(x, y float64) float64 {
	dx, dy := l.X2-l.X1, l.Y2-l.Y1
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return ((x-l.X1)*dx + (y-l.Y1)*dy) / den
}

// ParseStop parses "offset:colour", where offset is a fraction ("0.5") or a
// percentage ("50%") and colour a palette name or hex value.
func ParseStop(s string) (Stop, error) {
	off, col, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Stop{}, fmt.Errorf("%w: stop %q is not offset:colour", ErrInvalid, s)
	}
	off = strings.TrimSpace(off)
	div := 1.0
	if strings.HasSuffix(off, "%") {
		off = strings.TrimSuffix(off, "%")
		div = 100
	}
	v, err := strconv.ParseFloat(off, 64)
	if err != nil {
		return Stop{}, fmt.Errorf("%w: stop offset %q", ErrInvalid, off)
	}
	hex, err := ResolveColor(col)
	if err != nil {
		return Stop{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return Stop{Offset: v / div, Color: hex}, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
