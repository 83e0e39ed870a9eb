package memory

import (
	"context"

	"github.com/footlink/transfer-market/internal/domain/lookup"
)

// LookupRegistry serves the static reference tables from seeded slices.
type LookupRegistry struct {
	positions     []lookup.Position
	feet          []lookup.Foot
	statuses      []lookup.OfferStatus
	positionsByID map[int]lookup.Position
	feetByID      map[int]lookup.Foot
	statusByID    map[int]lookup.OfferStatus
	statusByName  map[string]lookup.OfferStatus
}

func NewLookupRegistry(positions []lookup.Position, feet []lookup.Foot, statuses []lookup.OfferStatus) *LookupRegistry {
	r := &LookupRegistry{
		positions:     append([]lookup.Position(nil), positions...),
		feet:          append([]lookup.Foot(nil), feet...),
		statuses:      append([]lookup.OfferStatus(nil), statuses...),
		positionsByID: make(map[int]lookup.Position, len(positions)),
		feetByID:      make(map[int]lookup.Foot, len(feet)),
		statusByID:    make(map[int]lookup.OfferStatus, len(statuses)),
		statusByName:  make(map[string]lookup.OfferStatus, len(statuses)),
	}
	for _, p := range positions {
		r.positionsByID[p.ID] = p
	}
	for _, f := range feet {
		r.feetByID[f.ID] = f
	}
	for _, st := range statuses {
		r.statusByID[st.ID] = st
		r.statusByName[st.Name] = st
	}
	return r
}

func (r *LookupRegistry) Positions(_ context.Context) ([]lookup.Position, error) {
	return append([]lookup.Position(nil), r.positions...), nil
}

func (r *LookupRegistry) PositionByID(_ context.Context, id int) (lookup.Position, bool, error) {
	p, ok := r.positionsByID[id]
	return p, ok, nil
}

func (r *LookupRegistry) Feet(_ context.Context) ([]lookup.Foot, error) {
	return append([]lookup.Foot(nil), r.feet...), nil
}

func (r *LookupRegistry) FootByID(_ context.Context, id int) (lookup.Foot, bool, error) {
	f, ok := r.feetByID[id]
	return f, ok, nil
}

func (r *LookupRegistry) StatusIDByName(_ context.Context, name string) (int, bool, error) {
	st, ok := r.statusByName[name]
	return st.ID, ok, nil
}

func (r *LookupRegistry) StatusNameByID(_ context.Context, id int) (string, bool, error) {
	st, ok := r.statusByID[id]
	return st.Name, ok, nil
}
