package memory

import (
	"context"
	"sort"

	"github.com/footlink/transfer-market/internal/domain/chat"
)

type ChatRepository struct {
	store *Store
}

func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{store: store}
}

func (r *ChatRepository) GetByID(_ context.Context, id int64) (chat.Chat, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.chats[id]
	return c, ok, nil
}

func (r *ChatRepository) FindByParticipants(_ context.Context, user1ID, user2ID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.chats {
		if c.HasParticipant(user1ID) && c.HasParticipant(user2ID) {
			return c.ID, nil
		}
	}
	return 0, nil
}

func (r *ChatRepository) ListByUser(_ context.Context, userID string) ([]chat.Chat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]chat.Chat, 0)
	for _, c := range r.store.chats {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ChatRepository) Create(_ context.Context, c *chat.Chat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c.ID = r.store.nextID()
	r.store.chats[c.ID] = *c
	return nil
}

func (r *ChatRepository) AppendMessage(_ context.Context, m *chat.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m.ID = r.store.nextID()
	r.store.messages[m.ID] = *m
	return nil
}

func (r *ChatRepository) ListMessages(_ context.Context, chatID int64) ([]chat.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]chat.Message, 0)
	for _, m := range r.store.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}
