package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/footlink/transfer-market/internal/domain/account"
)

// AccountService owns account deletion: it resolves every row the user
// owns or participates in through the cascade plan, reassigning
// counterparty-visible rows to the sentinel account and purging the rest.
type AccountService struct {
	accountRepo account.Repository
	sentinelID  string
	logger      *slog.Logger
}

func NewAccountService(accountRepo account.Repository, sentinelID string, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountService{
		accountRepo: accountRepo,
		sentinelID:  strings.TrimSpace(sentinelID),
		logger:      logger,
	}
}

func (s *AccountService) GetUser(ctx context.Context, id string) (account.User, error) {
	u, exists, err := s.accountRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return account.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return account.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, id)
	}
	return u, nil
}

// DeleteAccount runs the full cascade for userID. Preconditions are
// checked before any mutation; the cascade itself commits as one unit.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.DeleteAccount")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if s.sentinelID == "" {
		return fmt.Errorf("%w: sentinel account id is not configured", ErrConfiguration)
	}
	if userID == s.sentinelID {
		return fmt.Errorf("%w: sentinel account cannot be deleted", ErrInvalidInput)
	}

	_, exists, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	_, exists, err = s.accountRepo.GetByID(ctx, s.sentinelID)
	if err != nil {
		return fmt.Errorf("get sentinel account: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: sentinel account %q is not provisioned", ErrConfiguration, s.sentinelID)
	}

	if err := s.accountRepo.DeleteCascade(ctx, userID, s.sentinelID); err != nil {
		return fmt.Errorf("delete account cascade: %w", err)
	}

	s.logger.InfoContext(ctx, "account deleted",
		"user_id", userID,
		"sentinel_id", s.sentinelID,
		"cascade_steps", len(account.CascadePlan()),
	)
	return nil
}
