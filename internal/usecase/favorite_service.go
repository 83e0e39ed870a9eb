package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
	"github.com/footlink/transfer-market/internal/domain/favorite"
)

type FavoriteService struct {
	playerFavRepo favorite.PlayerAdRepository
	clubFavRepo   favorite.ClubAdRepository
	playerAdRepo  advertisement.PlayerRepository
	clubAdRepo    advertisement.ClubRepository
	logger        *slog.Logger
}

func NewFavoriteService(
	playerFavRepo favorite.PlayerAdRepository,
	clubFavRepo favorite.ClubAdRepository,
	playerAdRepo advertisement.PlayerRepository,
	clubAdRepo advertisement.ClubRepository,
	logger *slog.Logger,
) *FavoriteService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FavoriteService{
		playerFavRepo: playerFavRepo,
		clubFavRepo:   clubFavRepo,
		playerAdRepo:  playerAdRepo,
		clubAdRepo:    clubAdRepo,
		logger:        logger,
	}
}

func (s *FavoriteService) AddPlayerAdFavorite(ctx context.Context, advertisementID int64, userID string) (favorite.PlayerAdFavorite, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.AddPlayerAdFavorite")
	defer span.End()

	userID = strings.TrimSpace(userID)
	f := favorite.PlayerAdFavorite{AdvertisementID: advertisementID, UserID: userID}
	if err := f.Validate(); err != nil {
		return favorite.PlayerAdFavorite{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.playerAdRepo.GetByID(ctx, advertisementID)
	if err != nil {
		return favorite.PlayerAdFavorite{}, fmt.Errorf("get player advertisement: %w", err)
	}
	if !exists {
		return favorite.PlayerAdFavorite{}, fmt.Errorf("%w: player advertisement=%d", ErrNotFound, advertisementID)
	}

	if err := s.playerFavRepo.Add(ctx, &f); err != nil {
		return favorite.PlayerAdFavorite{}, fmt.Errorf("add player advertisement favorite: %w", err)
	}

	s.logger.InfoContext(ctx, "player advertisement favorited",
		"favorite_id", f.ID,
		"advertisement_id", advertisementID,
		"user_id", userID,
	)
	return f, nil
}

func (s *FavoriteService) RemovePlayerAdFavorite(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.RemovePlayerAdFavorite")
	defer span.End()

	found, err := s.playerFavRepo.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("remove player advertisement favorite: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: favorite=%d", ErrNotFound, id)
	}
	return nil
}

// CheckIsFavoritePlayerAd returns the join row id for the pair, or
// favorite.NoFavoriteID when the user has not bookmarked the posting.
// Callers use the id both as a boolean and as the handle for Remove.
func (s *FavoriteService) CheckIsFavoritePlayerAd(ctx context.Context, advertisementID int64, userID string) (int64, error) {
	id, err := s.playerFavRepo.FindByPair(ctx, advertisementID, strings.TrimSpace(userID))
	if err != nil {
		return 0, fmt.Errorf("check player advertisement favorite: %w", err)
	}
	return id, nil
}

func (s *FavoriteService) AddClubAdFavorite(ctx context.Context, advertisementID int64, userID string) (favorite.ClubAdFavorite, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.AddClubAdFavorite")
	defer span.End()

	userID = strings.TrimSpace(userID)
	f := favorite.ClubAdFavorite{AdvertisementID: advertisementID, UserID: userID}
	if err := f.Validate(); err != nil {
		return favorite.ClubAdFavorite{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.clubAdRepo.GetByID(ctx, advertisementID)
	if err != nil {
		return favorite.ClubAdFavorite{}, fmt.Errorf("get club advertisement: %w", err)
	}
	if !exists {
		return favorite.ClubAdFavorite{}, fmt.Errorf("%w: club advertisement=%d", ErrNotFound, advertisementID)
	}

	if err := s.clubFavRepo.Add(ctx, &f); err != nil {
		return favorite.ClubAdFavorite{}, fmt.Errorf("add club advertisement favorite: %w", err)
	}

	s.logger.InfoContext(ctx, "club advertisement favorited",
		"favorite_id", f.ID,
		"advertisement_id", advertisementID,
		"user_id", userID,
	)
	return f, nil
}

func (s *FavoriteService) RemoveClubAdFavorite(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.RemoveClubAdFavorite")
	defer span.End()

	found, err := s.clubFavRepo.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("remove club advertisement favorite: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: favorite=%d", ErrNotFound, id)
	}
	return nil
}

func (s *FavoriteService) CheckIsFavoriteClubAd(ctx context.Context, advertisementID int64, userID string) (int64, error) {
	id, err := s.clubFavRepo.FindByPair(ctx, advertisementID, strings.TrimSpace(userID))
	if err != nil {
		return 0, fmt.Errorf("check club advertisement favorite: %w", err)
	}
	return id, nil
}
