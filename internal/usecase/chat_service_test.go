package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/footlink/transfer-market/internal/domain/chat"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

func newChatFixture(t *testing.T) *ChatService {
	t.Helper()

	svc := NewChatService(memory.NewChatRepository(memory.NewStore()), nil)
	svc.now = func() time.Time { return testClock }
	return svc
}

func TestOpenChatIsIdempotentPerPair(t *testing.T) {
	svc := newChatFixture(t)
	ctx := context.Background()

	first, err := svc.Open(ctx, "player-ana", "club-borussia")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned chat id")
	}

	// Opening with participants swapped returns the same conversation.
	second, err := svc.Open(ctx, "club-borussia", "player-ana")
	if err != nil {
		t.Fatalf("Open again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second open returned chat %d, want %d", second.ID, first.ID)
	}
}

func TestOpenChatRejectsSelfConversation(t *testing.T) {
	svc := newChatFixture(t)

	_, err := svc.Open(context.Background(), "player-ana", "player-ana")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSendAndListMessages(t *testing.T) {
	svc := newChatFixture(t)
	ctx := context.Background()

	c, err := svc.Open(ctx, "player-ana", "club-borussia")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	sent, err := svc.Send(ctx, chat.Message{
		ChatID:     c.ID,
		SenderID:   "club-borussia",
		ReceiverID: "player-ana",
		Content:    "We liked your trial last week.",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !sent.Timestamp.Equal(testClock.UTC()) {
		t.Fatalf("message timestamp %v, want %v", sent.Timestamp, testClock.UTC())
	}

	messages, err := svc.Messages(ctx, c.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if messages[0].Content != "We liked your trial last week." {
		t.Fatalf("unexpected content %q", messages[0].Content)
	}
}

func TestSendRejectsNonParticipant(t *testing.T) {
	svc := newChatFixture(t)
	ctx := context.Background()

	c, err := svc.Open(ctx, "player-ana", "club-borussia")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	_, err = svc.Send(ctx, chat.Message{
		ChatID:     c.ID,
		SenderID:   "club-ajax",
		ReceiverID: "player-ana",
		Content:    "hello",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMessagesUnknownChat(t *testing.T) {
	svc := newChatFixture(t)

	_, err := svc.Messages(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListChatsByUser(t *testing.T) {
	svc := newChatFixture(t)
	ctx := context.Background()

	if _, err := svc.Open(ctx, "player-ana", "club-borussia"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := svc.Open(ctx, "player-ana", "club-ajax"); err != nil {
		t.Fatalf("Open: %v", err)
	}

	chats, err := svc.ListByUser(ctx, "player-ana")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("got %d chats, want 2", len(chats))
	}

	chats, err = svc.ListByUser(ctx, "club-ajax")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(chats) != 1 {
		t.Fatalf("got %d chats, want 1", len(chats))
	}
}
