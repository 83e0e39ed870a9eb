package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
	"github.com/footlink/transfer-market/internal/domain/lookup"
	"github.com/footlink/transfer-market/internal/domain/offer"
)

// CreateClubOfferInput is the incoming payload for a club's offer on a
// player advertisement.
type CreateClubOfferInput struct {
	PlayerAdvertisementID int64
	PositionID            int
	Salary                float64
	AdditionalInformation string
	OffererID             string
}

// CreatePlayerOfferInput is the player-side counterpart.
type CreatePlayerOfferInput struct {
	ClubAdvertisementID   int64
	PositionID            int
	Salary                float64
	AdditionalInformation string
	OffererID             string
}

type OfferService struct {
	clubOfferRepo   offer.ClubRepository
	playerOfferRepo offer.PlayerRepository
	playerAdRepo    advertisement.PlayerRepository
	clubAdRepo      advertisement.ClubRepository
	registry        lookup.Registry
	events          EventPublisher
	logger          *slog.Logger
	now             func() time.Time
}

func NewOfferService(
	clubOfferRepo offer.ClubRepository,
	playerOfferRepo offer.PlayerRepository,
	playerAdRepo advertisement.PlayerRepository,
	clubAdRepo advertisement.ClubRepository,
	registry lookup.Registry,
	events EventPublisher,
	logger *slog.Logger,
) *OfferService {
	if events == nil {
		events = NopEventPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &OfferService{
		clubOfferRepo:   clubOfferRepo,
		playerOfferRepo: playerOfferRepo,
		playerAdRepo:    playerAdRepo,
		clubAdRepo:      clubAdRepo,
		registry:        registry,
		events:          events,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateClubOffer stores a new offer in the Offered state against an
// existing player advertisement.
func (s *OfferService) CreateClubOffer(ctx context.Context, input CreateClubOfferInput) (offer.ClubOffer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.CreateClubOffer")
	defer span.End()

	input.OffererID = strings.TrimSpace(input.OffererID)

	ad, exists, err := s.playerAdRepo.GetByID(ctx, input.PlayerAdvertisementID)
	if err != nil {
		return offer.ClubOffer{}, fmt.Errorf("get target player advertisement: %w", err)
	}
	if !exists {
		return offer.ClubOffer{}, fmt.Errorf("%w: player advertisement=%d", ErrNotFound, input.PlayerAdvertisementID)
	}

	statusID, err := s.statusID(ctx, lookup.StatusOffered)
	if err != nil {
		return offer.ClubOffer{}, err
	}

	o := offer.ClubOffer{
		PlayerAdvertisementID: input.PlayerAdvertisementID,
		StatusID:              statusID,
		PositionID:            input.PositionID,
		Salary:                input.Salary,
		AdditionalInformation: strings.TrimSpace(input.AdditionalInformation),
		CreationDate:          s.now().UTC(),
		OffererID:             input.OffererID,
	}
	if err := o.Validate(); err != nil {
		return offer.ClubOffer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.clubOfferRepo.Create(ctx, &o); err != nil {
		return offer.ClubOffer{}, fmt.Errorf("create club offer: %w", err)
	}

	s.publish(ctx, Event{
		Type:        EventClubOfferSubmitted,
		SubjectID:   o.ID,
		ActorID:     o.OffererID,
		RecipientID: ad.OwnerID,
		OccurredAt:  o.CreationDate,
	})
	s.logger.InfoContext(ctx, "club offer created",
		"offer_id", o.ID,
		"advertisement_id", o.PlayerAdvertisementID,
		"offerer_id", o.OffererID,
	)

	return o, nil
}

func (s *OfferService) CreatePlayerOffer(ctx context.Context, input CreatePlayerOfferInput) (offer.PlayerOffer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.CreatePlayerOffer")
	defer span.End()

	input.OffererID = strings.TrimSpace(input.OffererID)

	ad, exists, err := s.clubAdRepo.GetByID(ctx, input.ClubAdvertisementID)
	if err != nil {
		return offer.PlayerOffer{}, fmt.Errorf("get target club advertisement: %w", err)
	}
	if !exists {
		return offer.PlayerOffer{}, fmt.Errorf("%w: club advertisement=%d", ErrNotFound, input.ClubAdvertisementID)
	}

	statusID, err := s.statusID(ctx, lookup.StatusOffered)
	if err != nil {
		return offer.PlayerOffer{}, err
	}

	o := offer.PlayerOffer{
		ClubAdvertisementID:   input.ClubAdvertisementID,
		StatusID:              statusID,
		PositionID:            input.PositionID,
		Salary:                input.Salary,
		AdditionalInformation: strings.TrimSpace(input.AdditionalInformation),
		CreationDate:          s.now().UTC(),
		OffererID:             input.OffererID,
	}
	if err := o.Validate(); err != nil {
		return offer.PlayerOffer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerOfferRepo.Create(ctx, &o); err != nil {
		return offer.PlayerOffer{}, fmt.Errorf("create player offer: %w", err)
	}

	s.publish(ctx, Event{
		Type:        EventPlayerOfferSubmitted,
		SubjectID:   o.ID,
		ActorID:     o.OffererID,
		RecipientID: ad.OwnerID,
		OccurredAt:  o.CreationDate,
	})
	s.logger.InfoContext(ctx, "player offer created",
		"offer_id", o.ID,
		"advertisement_id", o.ClubAdvertisementID,
		"offerer_id", o.OffererID,
	)

	return o, nil
}

// AcceptClubOffer moves the offer to Accepted. The write is idempotent and
// deliberately unguarded: a later Reject overwrites it, last writer wins.
func (s *OfferService) AcceptClubOffer(ctx context.Context, id int64) error {
	return s.transitionClubOffer(ctx, id, lookup.StatusAccepted, EventClubOfferAccepted)
}

func (s *OfferService) RejectClubOffer(ctx context.Context, id int64) error {
	return s.transitionClubOffer(ctx, id, lookup.StatusRejected, EventClubOfferRejected)
}

func (s *OfferService) AcceptPlayerOffer(ctx context.Context, id int64) error {
	return s.transitionPlayerOffer(ctx, id, lookup.StatusAccepted, EventPlayerOfferAccepted)
}

func (s *OfferService) RejectPlayerOffer(ctx context.Context, id int64) error {
	return s.transitionPlayerOffer(ctx, id, lookup.StatusRejected, EventPlayerOfferRejected)
}

func (s *OfferService) transitionClubOffer(ctx context.Context, id int64, statusName, eventType string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.transitionClubOffer")
	defer span.End()

	o, exists, err := s.clubOfferRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get club offer: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: club offer=%d", ErrNotFound, id)
	}

	statusID, err := s.statusID(ctx, statusName)
	if err != nil {
		return err
	}

	if _, err := s.clubOfferRepo.UpdateStatus(ctx, id, statusID); err != nil {
		return fmt.Errorf("update club offer status: %w", err)
	}

	s.publish(ctx, Event{
		Type:        eventType,
		SubjectID:   id,
		RecipientID: o.OffererID,
		OccurredAt:  s.now().UTC(),
	})
	s.logger.InfoContext(ctx, "club offer status changed", "offer_id", id, "status", statusName)
	return nil
}

func (s *OfferService) transitionPlayerOffer(ctx context.Context, id int64, statusName, eventType string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.OfferService.transitionPlayerOffer")
	defer span.End()

	o, exists, err := s.playerOfferRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get player offer: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player offer=%d", ErrNotFound, id)
	}

	statusID, err := s.statusID(ctx, statusName)
	if err != nil {
		return err
	}

	if _, err := s.playerOfferRepo.UpdateStatus(ctx, id, statusID); err != nil {
		return fmt.Errorf("update player offer status: %w", err)
	}

	s.publish(ctx, Event{
		Type:        eventType,
		SubjectID:   id,
		RecipientID: o.OffererID,
		OccurredAt:  s.now().UTC(),
	})
	s.logger.InfoContext(ctx, "player offer status changed", "offer_id", id, "status", statusName)
	return nil
}

func (s *OfferService) GetClubOffer(ctx context.Context, id int64) (offer.ClubOffer, error) {
	o, exists, err := s.clubOfferRepo.GetByID(ctx, id)
	if err != nil {
		return offer.ClubOffer{}, fmt.Errorf("get club offer: %w", err)
	}
	if !exists {
		return offer.ClubOffer{}, fmt.Errorf("%w: club offer=%d", ErrNotFound, id)
	}
	return o, nil
}

func (s *OfferService) GetPlayerOffer(ctx context.Context, id int64) (offer.PlayerOffer, error) {
	o, exists, err := s.playerOfferRepo.GetByID(ctx, id)
	if err != nil {
		return offer.PlayerOffer{}, fmt.Errorf("get player offer: %w", err)
	}
	if !exists {
		return offer.PlayerOffer{}, fmt.Errorf("%w: player offer=%d", ErrNotFound, id)
	}
	return o, nil
}

func (s *OfferService) ListClubOffers(ctx context.Context) ([]offer.ClubOffer, error) {
	offers, err := s.clubOfferRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list club offers: %w", err)
	}
	return offers, nil
}

func (s *OfferService) ListActiveClubOffers(ctx context.Context) ([]offer.ClubOffer, error) {
	offers, err := s.clubOfferRepo.ListActive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list active club offers: %w", err)
	}
	return offers, nil
}

func (s *OfferService) ListInactiveClubOffers(ctx context.Context) ([]offer.ClubOffer, error) {
	offers, err := s.clubOfferRepo.ListInactive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list inactive club offers: %w", err)
	}
	return offers, nil
}

func (s *OfferService) CountActiveClubOffers(ctx context.Context) (int, error) {
	count, err := s.clubOfferRepo.CountActive(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("count active club offers: %w", err)
	}
	return count, nil
}

func (s *OfferService) ListPlayerOffers(ctx context.Context) ([]offer.PlayerOffer, error) {
	offers, err := s.playerOfferRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player offers: %w", err)
	}
	return offers, nil
}

func (s *OfferService) ListActivePlayerOffers(ctx context.Context) ([]offer.PlayerOffer, error) {
	offers, err := s.playerOfferRepo.ListActive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list active player offers: %w", err)
	}
	return offers, nil
}

func (s *OfferService) ListInactivePlayerOffers(ctx context.Context) ([]offer.PlayerOffer, error) {
	offers, err := s.playerOfferRepo.ListInactive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list inactive player offers: %w", err)
	}
	return offers, nil
}

func (s *OfferService) CountActivePlayerOffers(ctx context.Context) (int, error) {
	count, err := s.playerOfferRepo.CountActive(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("count active player offers: %w", err)
	}
	return count, nil
}

// ClubOfferStatusID returns the status id of the offer userID made against
// the player advertisement, or lookup.NoOfferStatusID when none exists.
func (s *OfferService) ClubOfferStatusID(ctx context.Context, playerAdID int64, userID string) (int, error) {
	statusID, err := s.clubOfferRepo.StatusID(ctx, playerAdID, strings.TrimSpace(userID))
	if err != nil {
		return 0, fmt.Errorf("get club offer status: %w", err)
	}
	return statusID, nil
}

func (s *OfferService) PlayerOfferStatusID(ctx context.Context, clubAdID int64, userID string) (int, error) {
	statusID, err := s.playerOfferRepo.StatusID(ctx, clubAdID, strings.TrimSpace(userID))
	if err != nil {
		return 0, fmt.Errorf("get player offer status: %w", err)
	}
	return statusID, nil
}

func (s *OfferService) DeleteClubOffer(ctx context.Context, id int64) error {
	found, err := s.clubOfferRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete club offer: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: club offer=%d", ErrNotFound, id)
	}
	return nil
}

func (s *OfferService) DeletePlayerOffer(ctx context.Context, id int64) error {
	found, err := s.playerOfferRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete player offer: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player offer=%d", ErrNotFound, id)
	}
	return nil
}

func (s *OfferService) statusID(ctx context.Context, name string) (int, error) {
	id, exists, err := s.registry.StatusIDByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("get offer status id: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: offer status %q is not provisioned", ErrConfiguration, name)
	}
	return id, nil
}

func (s *OfferService) publish(ctx context.Context, event Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "event publish failed", "event_type", event.Type, "error", err)
	}
}
