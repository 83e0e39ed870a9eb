package memory

import (
	"context"
	"sort"

	"github.com/footlink/transfer-market/internal/domain/support"
)

type ProblemRepository struct {
	store *Store
}

func NewProblemRepository(store *Store) *ProblemRepository {
	return &ProblemRepository{store: store}
}

func (r *ProblemRepository) GetByID(_ context.Context, id int64) (support.Problem, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.problems[id]
	return p, ok, nil
}

func (r *ProblemRepository) ListByRequester(_ context.Context, requesterID string) ([]support.Problem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]support.Problem, 0)
	for _, p := range r.store.problems {
		if p.RequesterID == requesterID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreationDate.After(out[j].CreationDate) })
	return out, nil
}

func (r *ProblemRepository) Create(_ context.Context, p *support.Problem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p.ID = r.store.nextID()
	r.store.problems[p.ID] = *p
	return nil
}

func (r *ProblemRepository) MarkSolved(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.problems[id]
	if !ok {
		return false, nil
	}
	p.IsSolved = true
	r.store.problems[id] = p
	return true, nil
}
