package chat

import (
	"fmt"
	"time"
)

// Chat is a conversation between two marketplace users. Chats and their
// messages are purged when either participant's account is deleted.
type Chat struct {
	ID      int64
	User1ID string
	User2ID string
}

func (c Chat) Validate() error {
	if c.User1ID == "" || c.User2ID == "" {
		return fmt.Errorf("both participant ids are required")
	}
	if c.User1ID == c.User2ID {
		return fmt.Errorf("chat participants must differ")
	}
	return nil
}

// HasParticipant reports whether userID occupies either slot.
func (c Chat) HasParticipant(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

type Message struct {
	ID         int64
	ChatID     int64
	SenderID   string
	ReceiverID string
	Content    string
	Timestamp  time.Time
}

func (m Message) Validate() error {
	if m.ChatID <= 0 {
		return fmt.Errorf("chat id is required")
	}
	if m.SenderID == "" || m.ReceiverID == "" {
		return fmt.Errorf("sender and receiver ids are required")
	}
	if m.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
