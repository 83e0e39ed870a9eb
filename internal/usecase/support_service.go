package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/footlink/transfer-market/internal/domain/support"
)

type SupportService struct {
	problemRepo support.Repository
	logger      *slog.Logger
	now         func() time.Time
}

func NewSupportService(problemRepo support.Repository, logger *slog.Logger) *SupportService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SupportService{
		problemRepo: problemRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SupportService) Report(ctx context.Context, p support.Problem) (support.Problem, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SupportService.Report")
	defer span.End()

	p.CreationDate = s.now().UTC()
	p.IsSolved = false
	if err := p.Validate(); err != nil {
		return support.Problem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.problemRepo.Create(ctx, &p); err != nil {
		return support.Problem{}, fmt.Errorf("create problem: %w", err)
	}

	s.logger.InfoContext(ctx, "problem reported", "problem_id", p.ID, "requester_id", p.RequesterID)
	return p, nil
}

func (s *SupportService) ListByRequester(ctx context.Context, requesterID string) ([]support.Problem, error) {
	problems, err := s.problemRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return problems, nil
}

func (s *SupportService) MarkSolved(ctx context.Context, id int64) error {
	found, err := s.problemRepo.MarkSolved(ctx, id)
	if err != nil {
		return fmt.Errorf("mark problem solved: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: problem=%d", ErrNotFound, id)
	}
	return nil
}
