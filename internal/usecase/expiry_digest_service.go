package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
)

const defaultExpiryDigestWorkers = 8

// ExpiryDigestResult summarizes one digest run.
type ExpiryDigestResult struct {
	Scanned  int
	Notified int
	Failed   int
}

// ExpiryDigestService notifies owners of advertisements that expire within
// the lead window. Fan-out happens on a bounded worker pool; a failed
// notification never aborts the run.
type ExpiryDigestService struct {
	playerAdRepo advertisement.PlayerRepository
	clubAdRepo   advertisement.ClubRepository
	events       EventPublisher
	logger       *slog.Logger
	now          func() time.Time
	lead         time.Duration
	workers      int
}

func NewExpiryDigestService(
	playerAdRepo advertisement.PlayerRepository,
	clubAdRepo advertisement.ClubRepository,
	events EventPublisher,
	lead time.Duration,
	logger *slog.Logger,
) *ExpiryDigestService {
	if events == nil {
		events = NopEventPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if lead <= 0 {
		lead = 72 * time.Hour
	}

	return &ExpiryDigestService{
		playerAdRepo: playerAdRepo,
		clubAdRepo:   clubAdRepo,
		events:       events,
		logger:       logger,
		now:          time.Now,
		lead:         lead,
		workers:      defaultExpiryDigestWorkers,
	}
}

type expiringAd struct {
	id      int64
	ownerID string
	endDate time.Time
}

func (s *ExpiryDigestService) Run(ctx context.Context) (ExpiryDigestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExpiryDigestService.Run")
	defer span.End()

	now := s.now().UTC()
	deadline := now.Add(s.lead)

	playerAds, err := s.playerAdRepo.ListActive(ctx, now)
	if err != nil {
		return ExpiryDigestResult{}, fmt.Errorf("list active player advertisements: %w", err)
	}
	clubAds, err := s.clubAdRepo.ListActive(ctx, now)
	if err != nil {
		return ExpiryDigestResult{}, fmt.Errorf("list active club advertisements: %w", err)
	}

	expiring := make([]expiringAd, 0, len(playerAds)+len(clubAds))
	for _, ad := range playerAds {
		if !ad.EndDate.After(deadline) {
			expiring = append(expiring, expiringAd{id: ad.ID, ownerID: ad.OwnerID, endDate: ad.EndDate})
		}
	}
	for _, ad := range clubAds {
		if !ad.EndDate.After(deadline) {
			expiring = append(expiring, expiringAd{id: ad.ID, ownerID: ad.OwnerID, endDate: ad.EndDate})
		}
	}

	result := ExpiryDigestResult{Scanned: len(playerAds) + len(clubAds)}
	if len(expiring) == 0 {
		return result, nil
	}

	var notified atomic.Int32
	var failed atomic.Int32

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return ExpiryDigestResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, ad := range expiring {
		ad := ad
		workers.Add(1)
		submitErr := pool.Submit(func() {
			defer workers.Done()

			err := s.events.Publish(ctx, Event{
				Type:        EventAdvertisementExpiring,
				SubjectID:   ad.id,
				RecipientID: ad.ownerID,
				OccurredAt:  now,
			})
			if err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "expiry notification failed",
					"advertisement_id", ad.id,
					"error", err,
				)
				return
			}
			notified.Add(1)
		})
		if submitErr != nil {
			workers.Done()
			failed.Add(1)
		}
	}
	workers.Wait()

	result.Notified = int(notified.Load())
	result.Failed = int(failed.Load())

	s.logger.InfoContext(ctx, "expiry digest completed",
		"scanned", result.Scanned,
		"notified", result.Notified,
		"failed", result.Failed,
	)
	return result, nil
}
