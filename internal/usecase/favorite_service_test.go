package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/footlink/transfer-market/internal/domain/favorite"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

func newFavoriteFixture(t *testing.T) (*FavoriteService, *AdvertisementService) {
	t.Helper()

	store := memory.NewStore()
	playerAdRepo := memory.NewPlayerAdvertisementRepository(store)
	clubAdRepo := memory.NewClubAdvertisementRepository(store)

	ads := NewAdvertisementService(playerAdRepo, clubAdRepo, memory.SeedLookupRegistry(), nil)
	ads.now = func() time.Time { return testClock }

	favorites := NewFavoriteService(
		memory.NewPlayerAdFavoriteRepository(store),
		memory.NewClubAdFavoriteRepository(store),
		playerAdRepo,
		clubAdRepo,
		nil,
	)
	return favorites, ads
}

func TestAddThenCheckPlayerAdFavorite(t *testing.T) {
	favorites, ads := newFavoriteFixture(t)
	ctx := context.Background()

	ad, err := ads.CreatePlayerAd(ctx, validPlayerAdInput())
	if err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}

	f, err := favorites.AddPlayerAdFavorite(ctx, ad.ID, "user-club-1")
	if err != nil {
		t.Fatalf("AddPlayerAdFavorite: %v", err)
	}
	if f.ID == 0 {
		t.Fatal("expected assigned favorite id")
	}

	got, err := favorites.CheckIsFavoritePlayerAd(ctx, ad.ID, "user-club-1")
	if err != nil {
		t.Fatalf("CheckIsFavoritePlayerAd: %v", err)
	}
	if got != f.ID {
		t.Fatalf("check returned %d, want %d", got, f.ID)
	}

	// Another user sees no bookmark for the same posting.
	got, err = favorites.CheckIsFavoritePlayerAd(ctx, ad.ID, "user-club-2")
	if err != nil {
		t.Fatalf("CheckIsFavoritePlayerAd: %v", err)
	}
	if got != favorite.NoFavoriteID {
		t.Fatalf("check for other user returned %d, want %d", got, favorite.NoFavoriteID)
	}
}

func TestRemoveClubAdFavorite(t *testing.T) {
	favorites, ads := newFavoriteFixture(t)
	ctx := context.Background()

	ad, err := ads.CreateClubAd(ctx, validClubAdInput())
	if err != nil {
		t.Fatalf("CreateClubAd: %v", err)
	}
	f, err := favorites.AddClubAdFavorite(ctx, ad.ID, "user-player-1")
	if err != nil {
		t.Fatalf("AddClubAdFavorite: %v", err)
	}

	if err := favorites.RemoveClubAdFavorite(ctx, f.ID); err != nil {
		t.Fatalf("RemoveClubAdFavorite: %v", err)
	}

	got, err := favorites.CheckIsFavoriteClubAd(ctx, ad.ID, "user-player-1")
	if err != nil {
		t.Fatalf("CheckIsFavoriteClubAd: %v", err)
	}
	if got != favorite.NoFavoriteID {
		t.Fatalf("check after remove returned %d, want %d", got, favorite.NoFavoriteID)
	}
}

func TestRemoveMissingFavorite(t *testing.T) {
	favorites, _ := newFavoriteFixture(t)

	if err := favorites.RemovePlayerAdFavorite(context.Background(), 777); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddFavoriteForMissingAdvertisement(t *testing.T) {
	favorites, _ := newFavoriteFixture(t)

	if _, err := favorites.AddPlayerAdFavorite(context.Background(), 42, "user-club-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddFavoriteRequiresUser(t *testing.T) {
	favorites, ads := newFavoriteFixture(t)
	ctx := context.Background()

	ad, err := ads.CreatePlayerAd(ctx, validPlayerAdInput())
	if err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}
	if _, err := favorites.AddPlayerAdFavorite(ctx, ad.ID, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
