package memory

import (
	"sync"

	"github.com/footlink/transfer-market/internal/domain/account"
	"github.com/footlink/transfer-market/internal/domain/advertisement"
	"github.com/footlink/transfer-market/internal/domain/chat"
	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	"github.com/footlink/transfer-market/internal/domain/favorite"
	"github.com/footlink/transfer-market/internal/domain/offer"
	"github.com/footlink/transfer-market/internal/domain/support"
)

// Store holds every table behind one lock, like the single relational
// database it stands in for. Repositories are typed views over it, which
// keeps cross-entity operations (advertisement delete, account cascade)
// consistent without distributed locking.
type Store struct {
	mu  sync.RWMutex
	seq int64

	users        map[string]account.User
	playerAds    map[int64]advertisement.PlayerAdvertisement
	clubAds      map[int64]advertisement.ClubAdvertisement
	clubOffers   map[int64]offer.ClubOffer
	playerOffers map[int64]offer.PlayerOffer
	playerFavs   map[int64]favorite.PlayerAdFavorite
	clubFavs     map[int64]favorite.ClubAdFavorite
	histories    map[int64]clubhistory.ClubHistory
	achievements map[int64]clubhistory.Achievements
	problems     map[int64]support.Problem
	chats        map[int64]chat.Chat
	messages     map[int64]chat.Message
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]account.User),
		playerAds:    make(map[int64]advertisement.PlayerAdvertisement),
		clubAds:      make(map[int64]advertisement.ClubAdvertisement),
		clubOffers:   make(map[int64]offer.ClubOffer),
		playerOffers: make(map[int64]offer.PlayerOffer),
		playerFavs:   make(map[int64]favorite.PlayerAdFavorite),
		clubFavs:     make(map[int64]favorite.ClubAdFavorite),
		histories:    make(map[int64]clubhistory.ClubHistory),
		achievements: make(map[int64]clubhistory.Achievements),
		problems:     make(map[int64]support.Problem),
		chats:        make(map[int64]chat.Chat),
		messages:     make(map[int64]chat.Message),
	}
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}
