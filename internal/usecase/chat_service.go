package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/footlink/transfer-market/internal/domain/chat"
)

type ChatService struct {
	chatRepo chat.Repository
	logger   *slog.Logger
	now      func() time.Time
}

func NewChatService(chatRepo chat.Repository, logger *slog.Logger) *ChatService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ChatService{
		chatRepo: chatRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Open returns the existing chat between the two users or creates one.
func (s *ChatService) Open(ctx context.Context, user1ID, user2ID string) (chat.Chat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatService.Open")
	defer span.End()

	c := chat.Chat{
		User1ID: strings.TrimSpace(user1ID),
		User2ID: strings.TrimSpace(user2ID),
	}
	if err := c.Validate(); err != nil {
		return chat.Chat{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existingID, err := s.chatRepo.FindByParticipants(ctx, c.User1ID, c.User2ID)
	if err != nil {
		return chat.Chat{}, fmt.Errorf("find chat by participants: %w", err)
	}
	if existingID != 0 {
		existing, _, err := s.chatRepo.GetByID(ctx, existingID)
		if err != nil {
			return chat.Chat{}, fmt.Errorf("get chat: %w", err)
		}
		return existing, nil
	}

	if err := s.chatRepo.Create(ctx, &c); err != nil {
		return chat.Chat{}, fmt.Errorf("create chat: %w", err)
	}

	s.logger.InfoContext(ctx, "chat opened", "chat_id", c.ID)
	return c, nil
}

func (s *ChatService) ListByUser(ctx context.Context, userID string) ([]chat.Chat, error) {
	chats, err := s.chatRepo.ListByUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

func (s *ChatService) Send(ctx context.Context, m chat.Message) (chat.Message, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatService.Send")
	defer span.End()

	m.Timestamp = s.now().UTC()
	if err := m.Validate(); err != nil {
		return chat.Message{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c, exists, err := s.chatRepo.GetByID(ctx, m.ChatID)
	if err != nil {
		return chat.Message{}, fmt.Errorf("get chat: %w", err)
	}
	if !exists {
		return chat.Message{}, fmt.Errorf("%w: chat=%d", ErrNotFound, m.ChatID)
	}
	if !c.HasParticipant(m.SenderID) || !c.HasParticipant(m.ReceiverID) {
		return chat.Message{}, fmt.Errorf("%w: sender and receiver must be chat participants", ErrInvalidInput)
	}

	if err := s.chatRepo.AppendMessage(ctx, &m); err != nil {
		return chat.Message{}, fmt.Errorf("append message: %w", err)
	}
	return m, nil
}

func (s *ChatService) Messages(ctx context.Context, chatID int64) ([]chat.Message, error) {
	_, exists, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: chat=%d", ErrNotFound, chatID)
	}

	messages, err := s.chatRepo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
