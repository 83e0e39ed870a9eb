package memory

import (
	"context"

	"github.com/footlink/transfer-market/internal/domain/favorite"
)

type PlayerAdFavoriteRepository struct {
	store *Store
}

func NewPlayerAdFavoriteRepository(store *Store) *PlayerAdFavoriteRepository {
	return &PlayerAdFavoriteRepository{store: store}
}

func (r *PlayerAdFavoriteRepository) Add(_ context.Context, f *favorite.PlayerAdFavorite) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f.ID = r.store.nextID()
	r.store.playerFavs[f.ID] = *f
	return nil
}

func (r *PlayerAdFavoriteRepository) Remove(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.playerFavs[id]; !ok {
		return false, nil
	}
	delete(r.store.playerFavs, id)
	return true, nil
}

func (r *PlayerAdFavoriteRepository) FindByPair(_ context.Context, adID int64, userID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, f := range r.store.playerFavs {
		if f.AdvertisementID == adID && f.UserID == userID {
			return f.ID, nil
		}
	}
	return favorite.NoFavoriteID, nil
}

type ClubAdFavoriteRepository struct {
	store *Store
}

func NewClubAdFavoriteRepository(store *Store) *ClubAdFavoriteRepository {
	return &ClubAdFavoriteRepository{store: store}
}

func (r *ClubAdFavoriteRepository) Add(_ context.Context, f *favorite.ClubAdFavorite) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f.ID = r.store.nextID()
	r.store.clubFavs[f.ID] = *f
	return nil
}

func (r *ClubAdFavoriteRepository) Remove(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clubFavs[id]; !ok {
		return false, nil
	}
	delete(r.store.clubFavs, id)
	return true, nil
}

func (r *ClubAdFavoriteRepository) FindByPair(_ context.Context, adID int64, userID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, f := range r.store.clubFavs {
		if f.AdvertisementID == adID && f.UserID == userID {
			return f.ID, nil
		}
	}
	return favorite.NoFavoriteID, nil
}
