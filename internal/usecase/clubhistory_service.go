package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	"github.com/footlink/transfer-market/internal/domain/lookup"
)

type ClubHistoryService struct {
	historyRepo clubhistory.Repository
	registry    lookup.Registry
	logger      *slog.Logger
}

func NewClubHistoryService(historyRepo clubhistory.Repository, registry lookup.Registry, logger *slog.Logger) *ClubHistoryService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ClubHistoryService{
		historyRepo: historyRepo,
		registry:    registry,
		logger:      logger,
	}
}

func (s *ClubHistoryService) ListByPlayer(ctx context.Context, playerID string) ([]clubhistory.ClubHistory, error) {
	entries, err := s.historyRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list club history: %w", err)
	}
	return entries, nil
}

func (s *ClubHistoryService) Create(ctx context.Context, h clubhistory.ClubHistory) (clubhistory.ClubHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubHistoryService.Create")
	defer span.End()

	if err := h.Validate(); err != nil {
		return clubhistory.ClubHistory{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	_, exists, err := s.registry.PositionByID(ctx, h.PositionID)
	if err != nil {
		return clubhistory.ClubHistory{}, fmt.Errorf("get position by id: %w", err)
	}
	if !exists {
		return clubhistory.ClubHistory{}, fmt.Errorf("%w: position=%d", ErrInvalidInput, h.PositionID)
	}

	if err := s.historyRepo.Create(ctx, &h); err != nil {
		return clubhistory.ClubHistory{}, fmt.Errorf("create club history: %w", err)
	}

	s.logger.InfoContext(ctx, "club history created", "history_id", h.ID, "player_id", h.PlayerID)
	return h, nil
}

func (s *ClubHistoryService) Update(ctx context.Context, h clubhistory.ClubHistory) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubHistoryService.Update")
	defer span.End()

	if err := h.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.historyRepo.Update(ctx, h)
	if err != nil {
		return fmt.Errorf("update club history: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: club history=%d", ErrNotFound, h.ID)
	}
	return nil
}

func (s *ClubHistoryService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubHistoryService.Delete")
	defer span.End()

	found, err := s.historyRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete club history: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: club history=%d", ErrNotFound, id)
	}
	return nil
}
