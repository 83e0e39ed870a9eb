package favorite

import "context"

// PlayerAdRepository persists player advertisement bookmarks. The store
// does not deduplicate pairs on Add; callers gate through FindByPair.
type PlayerAdRepository interface {
	Add(ctx context.Context, f *PlayerAdFavorite) error
	Remove(ctx context.Context, id int64) (bool, error)
	FindByPair(ctx context.Context, advertisementID int64, userID string) (int64, error)
}

// ClubAdRepository is the club-side counterpart of PlayerAdRepository.
type ClubAdRepository interface {
	Add(ctx context.Context, f *ClubAdFavorite) error
	Remove(ctx context.Context, id int64) (bool, error)
	FindByPair(ctx context.Context, advertisementID int64, userID string) (int64, error)
}
