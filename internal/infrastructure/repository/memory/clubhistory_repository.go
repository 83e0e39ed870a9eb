package memory

import (
	"context"
	"sort"

	"github.com/footlink/transfer-market/internal/domain/clubhistory"
)

// ClubHistoryRepository stores history rows and achievements rows in
// separate tables joined by the achievements id, matching the relational
// layout. A history row holds only the id of its achievements row; reads
// resolve the join.
type ClubHistoryRepository struct {
	store *Store
}

func NewClubHistoryRepository(store *Store) *ClubHistoryRepository {
	return &ClubHistoryRepository{store: store}
}

// joinAchievements must be called with at least the read lock held.
func (r *ClubHistoryRepository) joinAchievements(h clubhistory.ClubHistory) clubhistory.ClubHistory {
	if ach, ok := r.store.achievements[h.Achievements.ID]; ok {
		h.Achievements = ach
	}
	return h
}

func (r *ClubHistoryRepository) GetByID(_ context.Context, id int64) (clubhistory.ClubHistory, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.histories[id]
	if !ok {
		return clubhistory.ClubHistory{}, false, nil
	}
	return r.joinAchievements(h), true, nil
}

func (r *ClubHistoryRepository) ListByPlayer(_ context.Context, playerID string) ([]clubhistory.ClubHistory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]clubhistory.ClubHistory, 0)
	for _, h := range r.store.histories {
		if h.PlayerID == playerID {
			out = append(out, r.joinAchievements(h))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *ClubHistoryRepository) Create(_ context.Context, h *clubhistory.ClubHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	h.ID = r.store.nextID()
	h.Achievements.ID = r.store.nextID()
	r.store.achievements[h.Achievements.ID] = h.Achievements

	row := *h
	row.Achievements = clubhistory.Achievements{ID: h.Achievements.ID}
	r.store.histories[row.ID] = row
	return nil
}

func (r *ClubHistoryRepository) Update(_ context.Context, h clubhistory.ClubHistory) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.histories[h.ID]
	if !ok {
		return false, nil
	}
	h.Achievements.ID = current.Achievements.ID
	r.store.achievements[h.Achievements.ID] = h.Achievements

	row := h
	row.Achievements = clubhistory.Achievements{ID: h.Achievements.ID}
	r.store.histories[row.ID] = row
	return true, nil
}

func (r *ClubHistoryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	h, ok := r.store.histories[id]
	if !ok {
		return false, nil
	}
	delete(r.store.histories, id)
	delete(r.store.achievements, h.Achievements.ID)
	return true, nil
}
