package offer

import (
	"context"
	"time"
)

// ClubRepository persists club offers. Activity partitions follow the
// target player advertisement's end date, not the offer's own timestamps.
// StatusID returns lookup.NoOfferStatusID when the user has no offer
// against the advertisement.
type ClubRepository interface {
	GetByID(ctx context.Context, id int64) (ClubOffer, bool, error)
	List(ctx context.Context) ([]ClubOffer, error)
	ListActive(ctx context.Context, now time.Time) ([]ClubOffer, error)
	ListInactive(ctx context.Context, now time.Time) ([]ClubOffer, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
	Create(ctx context.Context, o *ClubOffer) error
	Update(ctx context.Context, o ClubOffer) (bool, error)
	UpdateStatus(ctx context.Context, id int64, statusID int) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	StatusID(ctx context.Context, playerAdID int64, userID string) (int, error)
}

// PlayerRepository is the player-side counterpart of ClubRepository.
type PlayerRepository interface {
	GetByID(ctx context.Context, id int64) (PlayerOffer, bool, error)
	List(ctx context.Context) ([]PlayerOffer, error)
	ListActive(ctx context.Context, now time.Time) ([]PlayerOffer, error)
	ListInactive(ctx context.Context, now time.Time) ([]PlayerOffer, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
	Create(ctx context.Context, o *PlayerOffer) error
	Update(ctx context.Context, o PlayerOffer) (bool, error)
	UpdateStatus(ctx context.Context, id int64, statusID int) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	StatusID(ctx context.Context, clubAdID int64, userID string) (int, error)
}
