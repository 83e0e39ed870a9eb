package memory

import (
	"context"
	"sort"
	"time"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
)

type PlayerAdvertisementRepository struct {
	store *Store
}

func NewPlayerAdvertisementRepository(store *Store) *PlayerAdvertisementRepository {
	return &PlayerAdvertisementRepository{store: store}
}

func (r *PlayerAdvertisementRepository) GetByID(_ context.Context, id int64) (advertisement.PlayerAdvertisement, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ad, ok := r.store.playerAds[id]
	return ad, ok, nil
}

func (r *PlayerAdvertisementRepository) List(_ context.Context) ([]advertisement.PlayerAdvertisement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]advertisement.PlayerAdvertisement, 0, len(r.store.playerAds))
	for _, ad := range r.store.playerAds {
		out = append(out, ad)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerAdvertisementRepository) ListActive(_ context.Context, now time.Time) ([]advertisement.PlayerAdvertisement, error) {
	return r.listPartition(now, true), nil
}

func (r *PlayerAdvertisementRepository) ListInactive(_ context.Context, now time.Time) ([]advertisement.PlayerAdvertisement, error) {
	return r.listPartition(now, false), nil
}

func (r *PlayerAdvertisementRepository) listPartition(now time.Time, active bool) []advertisement.PlayerAdvertisement {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]advertisement.PlayerAdvertisement, 0, len(r.store.playerAds))
	for _, ad := range r.store.playerAds {
		if ad.Active(now) == active {
			out = append(out, ad)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.After(out[j].EndDate) })
	return out
}

func (r *PlayerAdvertisementRepository) CountActive(_ context.Context, now time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, ad := range r.store.playerAds {
		if ad.Active(now) {
			count++
		}
	}
	return count, nil
}

func (r *PlayerAdvertisementRepository) Create(_ context.Context, ad *advertisement.PlayerAdvertisement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ad.ID = r.store.nextID()
	ad.SalaryRange.ID = r.store.nextID()
	r.store.playerAds[ad.ID] = *ad
	return nil
}

func (r *PlayerAdvertisementRepository) Update(_ context.Context, ad advertisement.PlayerAdvertisement) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.playerAds[ad.ID]
	if !ok {
		return false, nil
	}
	ad.SalaryRange.ID = current.SalaryRange.ID
	r.store.playerAds[ad.ID] = ad
	return true, nil
}

func (r *PlayerAdvertisementRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.playerAds[id]; !ok {
		return false, nil
	}

	for favID, fav := range r.store.playerFavs {
		if fav.AdvertisementID == id {
			delete(r.store.playerFavs, favID)
		}
	}
	for offerID, o := range r.store.clubOffers {
		if o.PlayerAdvertisementID == id {
			delete(r.store.clubOffers, offerID)
		}
	}
	delete(r.store.playerAds, id)
	return true, nil
}

type ClubAdvertisementRepository struct {
	store *Store
}

func NewClubAdvertisementRepository(store *Store) *ClubAdvertisementRepository {
	return &ClubAdvertisementRepository{store: store}
}

func (r *ClubAdvertisementRepository) GetByID(_ context.Context, id int64) (advertisement.ClubAdvertisement, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ad, ok := r.store.clubAds[id]
	return ad, ok, nil
}

func (r *ClubAdvertisementRepository) List(_ context.Context) ([]advertisement.ClubAdvertisement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]advertisement.ClubAdvertisement, 0, len(r.store.clubAds))
	for _, ad := range r.store.clubAds {
		out = append(out, ad)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ClubAdvertisementRepository) ListActive(_ context.Context, now time.Time) ([]advertisement.ClubAdvertisement, error) {
	return r.listPartition(now, true), nil
}

func (r *ClubAdvertisementRepository) ListInactive(_ context.Context, now time.Time) ([]advertisement.ClubAdvertisement, error) {
	return r.listPartition(now, false), nil
}

func (r *ClubAdvertisementRepository) listPartition(now time.Time, active bool) []advertisement.ClubAdvertisement {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]advertisement.ClubAdvertisement, 0, len(r.store.clubAds))
	for _, ad := range r.store.clubAds {
		if ad.Active(now) == active {
			out = append(out, ad)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.After(out[j].EndDate) })
	return out
}

func (r *ClubAdvertisementRepository) CountActive(_ context.Context, now time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, ad := range r.store.clubAds {
		if ad.Active(now) {
			count++
		}
	}
	return count, nil
}

func (r *ClubAdvertisementRepository) Create(_ context.Context, ad *advertisement.ClubAdvertisement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ad.ID = r.store.nextID()
	ad.SalaryRange.ID = r.store.nextID()
	r.store.clubAds[ad.ID] = *ad
	return nil
}

func (r *ClubAdvertisementRepository) Update(_ context.Context, ad advertisement.ClubAdvertisement) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.clubAds[ad.ID]
	if !ok {
		return false, nil
	}
	ad.SalaryRange.ID = current.SalaryRange.ID
	r.store.clubAds[ad.ID] = ad
	return true, nil
}

func (r *ClubAdvertisementRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clubAds[id]; !ok {
		return false, nil
	}

	for favID, fav := range r.store.clubFavs {
		if fav.AdvertisementID == id {
			delete(r.store.clubFavs, favID)
		}
	}
	for offerID, o := range r.store.playerOffers {
		if o.ClubAdvertisementID == id {
			delete(r.store.playerOffers, offerID)
		}
	}
	delete(r.store.clubAds, id)
	return true, nil
}
