package chat

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Chat, bool, error)
	FindByParticipants(ctx context.Context, user1ID, user2ID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]Chat, error)
	Create(ctx context.Context, c *Chat) error
	AppendMessage(ctx context.Context, m *Message) error
	ListMessages(ctx context.Context, chatID int64) ([]Message, error)
}
