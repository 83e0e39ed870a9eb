package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/footlink/transfer-market/internal/domain/favorite"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

var testClock = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newAdvertisementFixture(t *testing.T) (*AdvertisementService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	svc := NewAdvertisementService(
		memory.NewPlayerAdvertisementRepository(store),
		memory.NewClubAdvertisementRepository(store),
		memory.SeedLookupRegistry(),
		nil,
	)
	svc.now = func() time.Time { return testClock }
	return svc, store
}

func validPlayerAdInput() CreatePlayerAdInput {
	return CreatePlayerAdInput{
		PositionID: 10,
		League:     "Premier League",
		Region:     "England",
		Age:        24,
		Height:     183,
		FootID:     2,
		SalaryMin:  4000,
		SalaryMax:  9000,
		OwnerID:    "user-player-1",
	}
}

func validClubAdInput() CreateClubAdInput {
	return CreateClubAdInput{
		PositionID: 1,
		ClubName:   "FC Granite",
		League:     "Ekstraklasa",
		Region:     "Poland",
		SalaryMin:  3000,
		SalaryMax:  7000,
		OwnerID:    "user-club-1",
	}
}

func TestCreatePlayerAdStampsWindow(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)

	ad, err := svc.CreatePlayerAd(context.Background(), validPlayerAdInput())
	if err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}
	if ad.ID == 0 {
		t.Fatal("expected assigned advertisement id")
	}
	if ad.SalaryRange.ID == 0 {
		t.Fatal("expected assigned salary range id")
	}
	if !ad.CreationDate.Equal(testClock) {
		t.Fatalf("creation date = %v, want %v", ad.CreationDate, testClock)
	}
	if want := testClock.Add(DefaultAdvertisementWindow); !ad.EndDate.Equal(want) {
		t.Fatalf("end date = %v, want %v", ad.EndDate, want)
	}
}

func TestCreatePlayerAdRejectsUnknownPosition(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)

	input := validPlayerAdInput()
	input.PositionID = 99
	if _, err := svc.CreatePlayerAd(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreatePlayerAdRejectsUnknownFoot(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)

	input := validPlayerAdInput()
	input.FootID = 42
	if _, err := svc.CreatePlayerAd(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreatePlayerAdRejectsInvertedSalaryRange(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)

	input := validPlayerAdInput()
	input.SalaryMin = 9000
	input.SalaryMax = 100
	if _, err := svc.CreatePlayerAd(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFinishPlayerAdMovesItToInactive(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)
	ctx := context.Background()

	ad, err := svc.CreatePlayerAd(ctx, validPlayerAdInput())
	if err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}

	active, err := svc.ListActivePlayerAds(ctx)
	if err != nil {
		t.Fatalf("ListActivePlayerAds: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active ads before finish = %d, want 1", len(active))
	}

	if _, err := svc.FinishPlayerAd(ctx, ad.ID); err != nil {
		t.Fatalf("FinishPlayerAd: %v", err)
	}

	// Listing happens one tick later; EndDate==now still counts as active.
	svc.now = func() time.Time { return testClock.Add(time.Second) }

	active, err = svc.ListActivePlayerAds(ctx)
	if err != nil {
		t.Fatalf("ListActivePlayerAds: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("active ads after finish = %d, want 0", len(active))
	}

	inactive, err := svc.ListInactivePlayerAds(ctx)
	if err != nil {
		t.Fatalf("ListInactivePlayerAds: %v", err)
	}
	if len(inactive) != 1 || inactive[0].ID != ad.ID {
		t.Fatalf("inactive ads after finish = %+v, want the finished ad", inactive)
	}
}

func TestActivePartitionBoundary(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)
	ctx := context.Background()

	ad, err := svc.CreateClubAd(ctx, validClubAdInput())
	if err != nil {
		t.Fatalf("CreateClubAd: %v", err)
	}

	// Exactly at EndDate the posting is still active.
	svc.now = func() time.Time { return ad.EndDate }
	count, err := svc.CountActiveClubAds(ctx)
	if err != nil {
		t.Fatalf("CountActiveClubAds: %v", err)
	}
	if count != 1 {
		t.Fatalf("count at end date = %d, want 1", count)
	}

	svc.now = func() time.Time { return ad.EndDate.Add(time.Nanosecond) }
	count, err = svc.CountActiveClubAds(ctx)
	if err != nil {
		t.Fatalf("CountActiveClubAds: %v", err)
	}
	if count != 0 {
		t.Fatalf("count past end date = %d, want 0", count)
	}
}

func TestUpdatePlayerAdUnknownID(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)
	ctx := context.Background()

	ad, err := svc.CreatePlayerAd(ctx, validPlayerAdInput())
	if err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}

	ad.ID = ad.ID + 1000
	if err := svc.UpdatePlayerAd(ctx, ad); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePlayerAdCascadesFavoritesAndOffers(t *testing.T) {
	svc, store := newAdvertisementFixture(t)
	ctx := context.Background()

	playerAdRepo := memory.NewPlayerAdvertisementRepository(store)
	clubAdRepo := memory.NewClubAdvertisementRepository(store)
	favorites := NewFavoriteService(
		memory.NewPlayerAdFavoriteRepository(store),
		memory.NewClubAdFavoriteRepository(store),
		playerAdRepo,
		clubAdRepo,
		nil,
	)
	offers := NewOfferService(
		memory.NewClubOfferRepository(store),
		memory.NewPlayerOfferRepository(store),
		playerAdRepo,
		clubAdRepo,
		memory.SeedLookupRegistry(),
		nil,
		nil,
	)

	ad, err := svc.CreatePlayerAd(ctx, validPlayerAdInput())
	if err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}
	if _, err := favorites.AddPlayerAdFavorite(ctx, ad.ID, "user-club-1"); err != nil {
		t.Fatalf("AddPlayerAdFavorite: %v", err)
	}
	o, err := offers.CreateClubOffer(ctx, CreateClubOfferInput{
		PlayerAdvertisementID: ad.ID,
		PositionID:            10,
		Salary:                5500,
		OffererID:             "user-club-1",
	})
	if err != nil {
		t.Fatalf("CreateClubOffer: %v", err)
	}

	if err := svc.DeletePlayerAd(ctx, ad.ID); err != nil {
		t.Fatalf("DeletePlayerAd: %v", err)
	}

	favID, err := favorites.CheckIsFavoritePlayerAd(ctx, ad.ID, "user-club-1")
	if err != nil {
		t.Fatalf("CheckIsFavoritePlayerAd: %v", err)
	}
	if favID != favorite.NoFavoriteID {
		t.Fatalf("favorite survived advertisement delete, id=%d", favID)
	}
	if _, err := offers.GetClubOffer(ctx, o.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected offer gone after advertisement delete, got %v", err)
	}
}

func TestDeleteClubAdUnknownID(t *testing.T) {
	svc, _ := newAdvertisementFixture(t)

	if err := svc.DeleteClubAd(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
