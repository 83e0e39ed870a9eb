package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

func newExpiryFixture(t *testing.T, lead time.Duration, publisher EventPublisher) (*ExpiryDigestService, *AdvertisementService) {
	t.Helper()

	store := memory.NewStore()
	playerAdRepo := memory.NewPlayerAdvertisementRepository(store)
	clubAdRepo := memory.NewClubAdvertisementRepository(store)

	ads := NewAdvertisementService(playerAdRepo, clubAdRepo, memory.SeedLookupRegistry(), nil)
	ads.now = func() time.Time { return testClock }

	digest := NewExpiryDigestService(playerAdRepo, clubAdRepo, publisher, lead, nil)
	digest.now = func() time.Time { return testClock }
	return digest, ads
}

func TestExpiryDigestNotifiesOnlyAdsInsideLeadWindow(t *testing.T) {
	publisher := &capturePublisher{}
	digest, ads := newExpiryFixture(t, 72*time.Hour, publisher)
	ctx := context.Background()

	// Both postings carry the full window; neither is close to expiry yet.
	if _, err := ads.CreatePlayerAd(ctx, validPlayerAdInput()); err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}
	if _, err := ads.CreateClubAd(ctx, validClubAdInput()); err != nil {
		t.Fatalf("CreateClubAd: %v", err)
	}

	result, err := digest.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Scanned != 2 || result.Notified != 0 {
		t.Fatalf("fresh ads: result = %+v, want 2 scanned, 0 notified", result)
	}

	// Move the clock to 48h before expiry; both fall inside the window.
	late := testClock.Add(DefaultAdvertisementWindow - 48*time.Hour)
	digest.now = func() time.Time { return late }

	result, err = digest.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Notified != 2 || result.Failed != 0 {
		t.Fatalf("near expiry: result = %+v, want 2 notified", result)
	}
	if got := publisher.byType(EventAdvertisementExpiring); len(got) != 2 {
		t.Fatalf("expiring events = %d, want 2", len(got))
	}
}

func TestExpiryDigestCountsPublishFailures(t *testing.T) {
	publisher := &capturePublisher{err: errors.New("broker down")}
	digest, ads := newExpiryFixture(t, 72*time.Hour, publisher)
	ctx := context.Background()

	if _, err := ads.CreatePlayerAd(ctx, validPlayerAdInput()); err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}
	digest.now = func() time.Time { return testClock.Add(DefaultAdvertisementWindow - time.Hour) }

	result, err := digest.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Failed != 1 || result.Notified != 0 {
		t.Fatalf("result = %+v, want 1 failed, 0 notified", result)
	}
}

func TestExpiryDigestSkipsExpiredAds(t *testing.T) {
	publisher := &capturePublisher{}
	digest, ads := newExpiryFixture(t, 72*time.Hour, publisher)
	ctx := context.Background()

	ad, err := ads.CreatePlayerAd(ctx, validPlayerAdInput())
	if err != nil {
		t.Fatalf("CreatePlayerAd: %v", err)
	}

	// Past the end date the posting is inactive and never scanned.
	digest.now = func() time.Time { return ad.EndDate.Add(time.Hour) }
	result, err := digest.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Scanned != 0 || result.Notified != 0 {
		t.Fatalf("result = %+v, want nothing scanned", result)
	}
}
