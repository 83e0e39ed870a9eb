package clubhistory

import "context"

// Repository persists club history entries and their achievements. Create
// stores both atomically; Delete removes the achievements row with the
// history entry.
type Repository interface {
	GetByID(ctx context.Context, id int64) (ClubHistory, bool, error)
	ListByPlayer(ctx context.Context, playerID string) ([]ClubHistory, error)
	Create(ctx context.Context, h *ClubHistory) error
	Update(ctx context.Context, h ClubHistory) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
