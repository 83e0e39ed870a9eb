package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
	"github.com/footlink/transfer-market/internal/domain/lookup"
)

// DefaultAdvertisementWindow is the fixed activity window stamped on every
// new advertisement; callers never supply end dates.
const DefaultAdvertisementWindow = 30 * 24 * time.Hour

// CreatePlayerAdInput is the incoming payload for a player posting.
type CreatePlayerAdInput struct {
	PositionID int
	League     string
	Region     string
	Age        int
	Height     int
	FootID     int
	SalaryMin  float64
	SalaryMax  float64
	OwnerID    string
}

// CreateClubAdInput is the incoming payload for a club posting.
type CreateClubAdInput struct {
	PositionID int
	ClubName   string
	League     string
	Region     string
	SalaryMin  float64
	SalaryMax  float64
	OwnerID    string
}

type AdvertisementService struct {
	playerRepo advertisement.PlayerRepository
	clubRepo   advertisement.ClubRepository
	registry   lookup.Registry
	logger     *slog.Logger
	now        func() time.Time
	window     time.Duration
}

func NewAdvertisementService(
	playerRepo advertisement.PlayerRepository,
	clubRepo advertisement.ClubRepository,
	registry lookup.Registry,
	logger *slog.Logger,
) *AdvertisementService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AdvertisementService{
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		registry:   registry,
		logger:     logger,
		now:        time.Now,
		window:     DefaultAdvertisementWindow,
	}
}

func (s *AdvertisementService) CreatePlayerAd(ctx context.Context, input CreatePlayerAdInput) (advertisement.PlayerAdvertisement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.CreatePlayerAd")
	defer span.End()

	input.League = strings.TrimSpace(input.League)
	input.Region = strings.TrimSpace(input.Region)
	input.OwnerID = strings.TrimSpace(input.OwnerID)

	if err := s.validatePosition(ctx, input.PositionID); err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}
	if err := s.validateFoot(ctx, input.FootID); err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}

	now := s.now().UTC()
	ad := advertisement.PlayerAdvertisement{
		PositionID: input.PositionID,
		League:     input.League,
		Region:     input.Region,
		Age:        input.Age,
		Height:     input.Height,
		FootID:     input.FootID,
		SalaryRange: advertisement.SalaryRange{
			Min: input.SalaryMin,
			Max: input.SalaryMax,
		},
		CreationDate: now,
		EndDate:      now.Add(s.window),
		OwnerID:      input.OwnerID,
	}
	if err := ad.Validate(); err != nil {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, &ad); err != nil {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("create player advertisement: %w", err)
	}

	s.logger.InfoContext(ctx, "player advertisement created",
		"advertisement_id", ad.ID,
		"owner_id", ad.OwnerID,
		"end_date", ad.EndDate,
	)

	return ad, nil
}

func (s *AdvertisementService) CreateClubAd(ctx context.Context, input CreateClubAdInput) (advertisement.ClubAdvertisement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.CreateClubAd")
	defer span.End()

	input.ClubName = strings.TrimSpace(input.ClubName)
	input.League = strings.TrimSpace(input.League)
	input.Region = strings.TrimSpace(input.Region)
	input.OwnerID = strings.TrimSpace(input.OwnerID)

	if err := s.validatePosition(ctx, input.PositionID); err != nil {
		return advertisement.ClubAdvertisement{}, err
	}

	now := s.now().UTC()
	ad := advertisement.ClubAdvertisement{
		PositionID: input.PositionID,
		ClubName:   input.ClubName,
		League:     input.League,
		Region:     input.Region,
		SalaryRange: advertisement.SalaryRange{
			Min: input.SalaryMin,
			Max: input.SalaryMax,
		},
		CreationDate: now,
		EndDate:      now.Add(s.window),
		OwnerID:      input.OwnerID,
	}
	if err := ad.Validate(); err != nil {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.clubRepo.Create(ctx, &ad); err != nil {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("create club advertisement: %w", err)
	}

	s.logger.InfoContext(ctx, "club advertisement created",
		"advertisement_id", ad.ID,
		"owner_id", ad.OwnerID,
		"end_date", ad.EndDate,
	)

	return ad, nil
}

func (s *AdvertisementService) GetPlayerAd(ctx context.Context, id int64) (advertisement.PlayerAdvertisement, error) {
	ad, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("get player advertisement: %w", err)
	}
	if !exists {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("%w: player advertisement=%d", ErrNotFound, id)
	}
	return ad, nil
}

func (s *AdvertisementService) GetClubAd(ctx context.Context, id int64) (advertisement.ClubAdvertisement, error) {
	ad, exists, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("get club advertisement: %w", err)
	}
	if !exists {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("%w: club advertisement=%d", ErrNotFound, id)
	}
	return ad, nil
}

func (s *AdvertisementService) ListPlayerAds(ctx context.Context) ([]advertisement.PlayerAdvertisement, error) {
	ads, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player advertisements: %w", err)
	}
	return ads, nil
}

func (s *AdvertisementService) ListActivePlayerAds(ctx context.Context) ([]advertisement.PlayerAdvertisement, error) {
	ads, err := s.playerRepo.ListActive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list active player advertisements: %w", err)
	}
	return ads, nil
}

func (s *AdvertisementService) ListInactivePlayerAds(ctx context.Context) ([]advertisement.PlayerAdvertisement, error) {
	ads, err := s.playerRepo.ListInactive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list inactive player advertisements: %w", err)
	}
	return ads, nil
}

func (s *AdvertisementService) CountActivePlayerAds(ctx context.Context) (int, error) {
	count, err := s.playerRepo.CountActive(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("count active player advertisements: %w", err)
	}
	return count, nil
}

func (s *AdvertisementService) ListClubAds(ctx context.Context) ([]advertisement.ClubAdvertisement, error) {
	ads, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list club advertisements: %w", err)
	}
	return ads, nil
}

func (s *AdvertisementService) ListActiveClubAds(ctx context.Context) ([]advertisement.ClubAdvertisement, error) {
	ads, err := s.clubRepo.ListActive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list active club advertisements: %w", err)
	}
	return ads, nil
}

func (s *AdvertisementService) ListInactiveClubAds(ctx context.Context) ([]advertisement.ClubAdvertisement, error) {
	ads, err := s.clubRepo.ListInactive(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list inactive club advertisements: %w", err)
	}
	return ads, nil
}

func (s *AdvertisementService) CountActiveClubAds(ctx context.Context) (int, error) {
	count, err := s.clubRepo.CountActive(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("count active club advertisements: %w", err)
	}
	return count, nil
}

// UpdatePlayerAd replaces the stored row with the given one. Creation and
// end dates are written as-is, which is also how owners finish a posting
// early through Finish*.
func (s *AdvertisementService) UpdatePlayerAd(ctx context.Context, ad advertisement.PlayerAdvertisement) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.UpdatePlayerAd")
	defer span.End()

	if err := ad.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.playerRepo.Update(ctx, ad)
	if err != nil {
		return fmt.Errorf("update player advertisement: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player advertisement=%d", ErrNotFound, ad.ID)
	}
	return nil
}

func (s *AdvertisementService) UpdateClubAd(ctx context.Context, ad advertisement.ClubAdvertisement) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.UpdateClubAd")
	defer span.End()

	if err := ad.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.clubRepo.Update(ctx, ad)
	if err != nil {
		return fmt.Errorf("update club advertisement: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: club advertisement=%d", ErrNotFound, ad.ID)
	}
	return nil
}

// FinishPlayerAd ends the posting immediately by pulling EndDate to now.
func (s *AdvertisementService) FinishPlayerAd(ctx context.Context, id int64) (advertisement.PlayerAdvertisement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.FinishPlayerAd")
	defer span.End()

	ad, err := s.GetPlayerAd(ctx, id)
	if err != nil {
		return advertisement.PlayerAdvertisement{}, err
	}

	ad.EndDate = s.now().UTC()
	if _, err := s.playerRepo.Update(ctx, ad); err != nil {
		return advertisement.PlayerAdvertisement{}, fmt.Errorf("finish player advertisement: %w", err)
	}

	s.logger.InfoContext(ctx, "player advertisement finished", "advertisement_id", id)
	return ad, nil
}

func (s *AdvertisementService) FinishClubAd(ctx context.Context, id int64) (advertisement.ClubAdvertisement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.FinishClubAd")
	defer span.End()

	ad, err := s.GetClubAd(ctx, id)
	if err != nil {
		return advertisement.ClubAdvertisement{}, err
	}

	ad.EndDate = s.now().UTC()
	if _, err := s.clubRepo.Update(ctx, ad); err != nil {
		return advertisement.ClubAdvertisement{}, fmt.Errorf("finish club advertisement: %w", err)
	}

	s.logger.InfoContext(ctx, "club advertisement finished", "advertisement_id", id)
	return ad, nil
}

// DeletePlayerAd removes the advertisement together with its salary range
// and every favorite and offer referencing it.
func (s *AdvertisementService) DeletePlayerAd(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.DeletePlayerAd")
	defer span.End()

	found, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete player advertisement: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player advertisement=%d", ErrNotFound, id)
	}

	s.logger.InfoContext(ctx, "player advertisement deleted", "advertisement_id", id)
	return nil
}

func (s *AdvertisementService) DeleteClubAd(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvertisementService.DeleteClubAd")
	defer span.End()

	found, err := s.clubRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete club advertisement: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: club advertisement=%d", ErrNotFound, id)
	}

	s.logger.InfoContext(ctx, "club advertisement deleted", "advertisement_id", id)
	return nil
}

func (s *AdvertisementService) validatePosition(ctx context.Context, positionID int) error {
	_, exists, err := s.registry.PositionByID(ctx, positionID)
	if err != nil {
		return fmt.Errorf("get position by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: position=%d", ErrInvalidInput, positionID)
	}
	return nil
}

func (s *AdvertisementService) validateFoot(ctx context.Context, footID int) error {
	_, exists, err := s.registry.FootByID(ctx, footID)
	if err != nil {
		return fmt.Errorf("get foot by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: foot=%d", ErrInvalidInput, footID)
	}
	return nil
}
