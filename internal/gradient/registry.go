package gradient

import (
	"fmt"
	"sort"
)

// Registry is an immutable set of gradients keyed by id. It is safe for
// concurrent readers.
type Registry struct {
	defs  map[string]Linear
	order []string
}

// Defaults returns a registry holding the built-in gradients.
func Defaults() *Registry {
	r, err := NewRegistry(builtins()...)
	if err != nil {
		panic(err)
	}
	return r
}

func builtins() []Linear {
	return []Linear{
		Diagonal(LoadNetwork,
			Stop{Offset: 0, Color: LoadNetworkLightPurple},
			Stop{Offset: 0.5, Color: LoadNetworkMedPurple},
			Stop{Offset: 0.7, Color: LoadNetworkMedDarkPurple},
			Stop{Offset: 1, Color: Purple},
		),
		Diagonal(OpenChannels,
			Stop{Offset: 0, Color: LightPurple},
			Stop{Offset: 0.5, Color: OpenChansDarkPurple},
		),
	}
}

// NewRegistry validates defs and returns a registry. Ids must be unique.
func NewRegistry(defs ...Linear) (*Registry, error) {
	r := &Registry{defs: make(map[string]Linear, len(defs))}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.defs[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalid, d.ID)
		}
		r.defs[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r, nil
}

// With returns a new registry containing r's gradients overlaid with defs.
// A def whose id already exists replaces the original in place.
func (r *Registry) With(defs ...Linear) (*Registry, error) {
	out := &Registry{defs: make(map[string]Linear, len(r.defs)+len(defs))}
	for _, id := range r.order {
		out.defs[id] = r.defs[id]
		out.order = append(out.order, id)
	}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, ok := out.defs[d.ID]; !ok {
			out.order = append(out.order, d.ID)
		}
		out.defs[d.ID] = d
	}
	return out, nil
}

// Lookup returns the gradient registered under id.
func (r *Registry) Lookup(id string) (Linear, error) {
	d, ok := r.defs[id]
	if !ok {
		return Linear{}, fmt.Errorf("%w: %q", ErrUnknown, id)
	}
	return d, nil
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// All returns every gradient in registration order.
func (r *Registry) All() []Linear {
	out := make([]Linear, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// FromStops builds diagonal gradients from a map of id to "offset:colour"
// strings, as read from configuration. Stops are sorted by offset.
func FromStops(m map[string][]string) ([]Linear, error) {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Linear, 0, len(ids))
	for _, id := range ids {
		stops := make([]Stop, 0, len(m[id]))
		for _, raw := range m[id] {
			s, err := ParseStop(raw)
			if err != nil {
				return nil, fmt.Errorf("gradient %q: %w", id, err)
			}
			stops = append(stops, s)
		}
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
		out = append(out, Diagonal(id, stops...))
	}
	return out, nil
}
