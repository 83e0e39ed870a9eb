package advertisement

import (
	"context"
	"time"
)

// PlayerRepository describes player advertisement persistence needs from
// use cases. Create assigns IDs to the advertisement and its salary range
// and persists both atomically. Delete removes the advertisement together
// with its salary range, favorites and offers; the bool results report
// whether the target row existed.
type PlayerRepository interface {
	GetByID(ctx context.Context, id int64) (PlayerAdvertisement, bool, error)
	List(ctx context.Context) ([]PlayerAdvertisement, error)
	ListActive(ctx context.Context, now time.Time) ([]PlayerAdvertisement, error)
	ListInactive(ctx context.Context, now time.Time) ([]PlayerAdvertisement, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
	Create(ctx context.Context, ad *PlayerAdvertisement) error
	Update(ctx context.Context, ad PlayerAdvertisement) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ClubRepository is the club-side counterpart of PlayerRepository.
type ClubRepository interface {
	GetByID(ctx context.Context, id int64) (ClubAdvertisement, bool, error)
	List(ctx context.Context) ([]ClubAdvertisement, error)
	ListActive(ctx context.Context, now time.Time) ([]ClubAdvertisement, error)
	ListInactive(ctx context.Context, now time.Time) ([]ClubAdvertisement, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
	Create(ctx context.Context, ad *ClubAdvertisement) error
	Update(ctx context.Context, ad ClubAdvertisement) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
