package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/chat"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

type chatTableModel struct {
	ID      int64  `db:"id"`
	User1ID string `db:"user1_id"`
	User2ID string `db:"user2_id"`
}

func (m chatTableModel) toDomain() chat.Chat {
	return chat.Chat{ID: m.ID, User1ID: m.User1ID, User2ID: m.User2ID}
}

type messageTableModel struct {
	ID         int64     `db:"id"`
	ChatID     int64     `db:"chat_id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Content    string    `db:"content"`
	Timestamp  time.Time `db:"sent_at"`
}

func (m messageTableModel) toDomain() chat.Message {
	return chat.Message{
		ID:         m.ID,
		ChatID:     m.ChatID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Timestamp:  m.Timestamp,
	}
}

type ChatRepository struct {
	db *sqlx.DB
}

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) GetByID(ctx context.Context, id int64) (chat.Chat, bool, error) {
	query, args, err := qb.Select("*").From("chats").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return chat.Chat{}, false, fmt.Errorf("build get chat query: %w", err)
	}

	var row chatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return chat.Chat{}, false, nil
		}
		return chat.Chat{}, false, fmt.Errorf("get chat: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ChatRepository) FindByParticipants(ctx context.Context, user1ID, user2ID string) (int64, error) {
	query, args, err := qb.Select("id").From("chats").
		Where(qb.Expr("((user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?))",
			user1ID, user2ID, user2ID, user1ID)).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build find chat by participants query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("find chat by participants: %w", err)
	}
	return id, nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID string) ([]chat.Chat, error) {
	query, args, err := qb.Select("*").From("chats").
		Where(qb.Expr("(user1_id = ? OR user2_id = ?)", userID, userID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select chats query: %w", err)
	}

	var rows []chatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select chats: %w", err)
	}

	out := make([]chat.Chat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	query, args, err := qb.InsertInto("chats").
		Columns("user1_id", "user2_id").
		Values(c.User1ID, c.User2ID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert chat query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert chat: %w", err)
	}
	c.ID = id
	return nil
}

func (r *ChatRepository) AppendMessage(ctx context.Context, m *chat.Message) error {
	query, args, err := qb.InsertInto("messages").
		Columns("chat_id", "sender_id", "receiver_id", "content", "sent_at").
		Values(m.ChatID, m.SenderID, m.ReceiverID, m.Content, m.Timestamp).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert message query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert message: chat %d does not exist: %w", m.ChatID, err)
		}
		return fmt.Errorf("insert message: %w", err)
	}
	m.ID = id
	return nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, chatID int64) ([]chat.Message, error) {
	query, args, err := qb.Select("*").From("messages").
		Where(qb.Eq("chat_id", chatID)).
		OrderBy("sent_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select messages query: %w", err)
	}

	var rows []messageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}

	out := make([]chat.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
