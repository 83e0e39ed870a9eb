package memory

import (
	"context"
	"fmt"

	"github.com/footlink/transfer-market/internal/domain/account"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (account.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	return u, ok, nil
}

func (r *AccountRepository) Create(_ context.Context, u account.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users[u.ID] = u
	return nil
}

// DeleteCascade executes every step of account.CascadePlan under a single
// store lock, so the whole cascade is observed atomically.
func (r *AccountRepository) DeleteCascade(_ context.Context, userID, sentinelID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// The history purge records the achievements rows it orphans, the
	// achievements step deletes them. Same handoff as the SQL backend.
	var orphanedAchievements []int64

	for _, step := range account.CascadePlan() {
		switch step.Kind {
		case account.KindPlayerAdvertisement:
			for id, ad := range r.store.playerAds {
				if ad.OwnerID == userID {
					ad.OwnerID = sentinelID
					r.store.playerAds[id] = ad
				}
			}
		case account.KindClubAdvertisement:
			for id, ad := range r.store.clubAds {
				if ad.OwnerID == userID {
					ad.OwnerID = sentinelID
					r.store.clubAds[id] = ad
				}
			}
		case account.KindClubOffers:
			for id, o := range r.store.clubOffers {
				if o.OffererID == userID {
					o.OffererID = sentinelID
					r.store.clubOffers[id] = o
				}
			}
		case account.KindPlayerOffers:
			for id, o := range r.store.playerOffers {
				if o.OffererID == userID {
					o.OffererID = sentinelID
					r.store.playerOffers[id] = o
				}
			}
		case account.KindClubHistory:
			for id, h := range r.store.histories {
				if h.PlayerID == userID {
					orphanedAchievements = append(orphanedAchievements, h.Achievements.ID)
					delete(r.store.histories, id)
				}
			}
		case account.KindAchievements:
			for _, achID := range orphanedAchievements {
				for hid, h := range r.store.histories {
					if h.Achievements.ID == achID {
						return fmt.Errorf("achievements %d still referenced by club history %d", achID, hid)
					}
				}
				delete(r.store.achievements, achID)
			}
		case account.KindMessages:
			for id, m := range r.store.messages {
				if c, ok := r.store.chats[m.ChatID]; ok && c.HasParticipant(userID) {
					delete(r.store.messages, id)
				}
			}
		case account.KindChats:
			for id, c := range r.store.chats {
				if c.HasParticipant(userID) {
					delete(r.store.chats, id)
				}
			}
		case account.KindProblems:
			for id, p := range r.store.problems {
				if p.RequesterID == userID {
					delete(r.store.problems, id)
				}
			}
		case account.KindFavoritePlayerAds:
			for id, f := range r.store.playerFavs {
				if f.UserID == userID {
					delete(r.store.playerFavs, id)
				}
			}
		case account.KindFavoriteClubAds:
			for id, f := range r.store.clubFavs {
				if f.UserID == userID {
					delete(r.store.clubFavs, id)
				}
			}
		case account.KindUser:
			delete(r.store.users, userID)
		default:
			return fmt.Errorf("unhandled cascade step %q", step.Kind)
		}
	}
	return nil
}
