package memory

import (
	"context"
	"sort"
	"time"

	"github.com/footlink/transfer-market/internal/domain/lookup"
	"github.com/footlink/transfer-market/internal/domain/offer"
)

type ClubOfferRepository struct {
	store *Store
}

func NewClubOfferRepository(store *Store) *ClubOfferRepository {
	return &ClubOfferRepository{store: store}
}

func (r *ClubOfferRepository) GetByID(_ context.Context, id int64) (offer.ClubOffer, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.clubOffers[id]
	return o, ok, nil
}

func (r *ClubOfferRepository) List(_ context.Context) ([]offer.ClubOffer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]offer.ClubOffer, 0, len(r.store.clubOffers))
	for _, o := range r.store.clubOffers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ClubOfferRepository) ListActive(_ context.Context, now time.Time) ([]offer.ClubOffer, error) {
	return r.listPartition(now, true), nil
}

func (r *ClubOfferRepository) ListInactive(_ context.Context, now time.Time) ([]offer.ClubOffer, error) {
	return r.listPartition(now, false), nil
}

func (r *ClubOfferRepository) listPartition(now time.Time, active bool) []offer.ClubOffer {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]offer.ClubOffer, 0, len(r.store.clubOffers))
	for _, o := range r.store.clubOffers {
		ad, ok := r.store.playerAds[o.PlayerAdvertisementID]
		if !ok {
			continue
		}
		if ad.Active(now) == active {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreationDate.After(out[j].CreationDate) })
	return out
}

func (r *ClubOfferRepository) CountActive(_ context.Context, now time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, o := range r.store.clubOffers {
		if ad, ok := r.store.playerAds[o.PlayerAdvertisementID]; ok && ad.Active(now) {
			count++
		}
	}
	return count, nil
}

func (r *ClubOfferRepository) Create(_ context.Context, o *offer.ClubOffer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o.ID = r.store.nextID()
	r.store.clubOffers[o.ID] = *o
	return nil
}

func (r *ClubOfferRepository) Update(_ context.Context, o offer.ClubOffer) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clubOffers[o.ID]; !ok {
		return false, nil
	}
	r.store.clubOffers[o.ID] = o
	return true, nil
}

func (r *ClubOfferRepository) UpdateStatus(_ context.Context, id int64, statusID int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.clubOffers[id]
	if !ok {
		return false, nil
	}
	o.StatusID = statusID
	r.store.clubOffers[id] = o
	return true, nil
}

func (r *ClubOfferRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clubOffers[id]; !ok {
		return false, nil
	}
	delete(r.store.clubOffers, id)
	return true, nil
}

func (r *ClubOfferRepository) StatusID(_ context.Context, playerAdID int64, userID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.clubOffers {
		if o.PlayerAdvertisementID == playerAdID && o.OffererID == userID {
			return o.StatusID, nil
		}
	}
	return lookup.NoOfferStatusID, nil
}

type PlayerOfferRepository struct {
	store *Store
}

func NewPlayerOfferRepository(store *Store) *PlayerOfferRepository {
	return &PlayerOfferRepository{store: store}
}

func (r *PlayerOfferRepository) GetByID(_ context.Context, id int64) (offer.PlayerOffer, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.playerOffers[id]
	return o, ok, nil
}

func (r *PlayerOfferRepository) List(_ context.Context) ([]offer.PlayerOffer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]offer.PlayerOffer, 0, len(r.store.playerOffers))
	for _, o := range r.store.playerOffers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerOfferRepository) ListActive(_ context.Context, now time.Time) ([]offer.PlayerOffer, error) {
	return r.listPartition(now, true), nil
}

func (r *PlayerOfferRepository) ListInactive(_ context.Context, now time.Time) ([]offer.PlayerOffer, error) {
	return r.listPartition(now, false), nil
}

func (r *PlayerOfferRepository) listPartition(now time.Time, active bool) []offer.PlayerOffer {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]offer.PlayerOffer, 0, len(r.store.playerOffers))
	for _, o := range r.store.playerOffers {
		ad, ok := r.store.clubAds[o.ClubAdvertisementID]
		if !ok {
			continue
		}
		if ad.Active(now) == active {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreationDate.After(out[j].CreationDate) })
	return out
}

func (r *PlayerOfferRepository) CountActive(_ context.Context, now time.Time) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, o := range r.store.playerOffers {
		if ad, ok := r.store.clubAds[o.ClubAdvertisementID]; ok && ad.Active(now) {
			count++
		}
	}
	return count, nil
}

func (r *PlayerOfferRepository) Create(_ context.Context, o *offer.PlayerOffer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o.ID = r.store.nextID()
	r.store.playerOffers[o.ID] = *o
	return nil
}

func (r *PlayerOfferRepository) Update(_ context.Context, o offer.PlayerOffer) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.playerOffers[o.ID]; !ok {
		return false, nil
	}
	r.store.playerOffers[o.ID] = o
	return true, nil
}

func (r *PlayerOfferRepository) UpdateStatus(_ context.Context, id int64, statusID int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.playerOffers[id]
	if !ok {
		return false, nil
	}
	o.StatusID = statusID
	r.store.playerOffers[id] = o
	return true, nil
}

func (r *PlayerOfferRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.playerOffers[id]; !ok {
		return false, nil
	}
	delete(r.store.playerOffers, id)
	return true, nil
}

func (r *PlayerOfferRepository) StatusID(_ context.Context, clubAdID int64, userID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.playerOffers {
		if o.ClubAdvertisementID == clubAdID && o.OffererID == userID {
			return o.StatusID, nil
		}
	}
	return lookup.NoOfferStatusID, nil
}
