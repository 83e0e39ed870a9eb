package account

import "context"

// Repository persists users and executes the account-deletion cascade.
// DeleteCascade applies CascadePlan as one atomic unit: either every step
// commits or none does, and concurrent readers never observe a partially
// applied cascade.
type Repository interface {
	GetByID(ctx context.Context, id string) (User, bool, error)
	Create(ctx context.Context, u User) error
	DeleteCascade(ctx context.Context, userID, sentinelID string) error
}
