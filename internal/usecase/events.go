package usecase

import (
	"context"
	"time"
)

// Event types published to the notification relay. The relay contract is
// fire-and-forget; delivery failures never fail the triggering operation.
const (
	EventClubOfferSubmitted    = "club_offer.submitted"
	EventClubOfferAccepted     = "club_offer.accepted"
	EventClubOfferRejected     = "club_offer.rejected"
	EventPlayerOfferSubmitted  = "player_offer.submitted"
	EventPlayerOfferAccepted   = "player_offer.accepted"
	EventPlayerOfferRejected   = "player_offer.rejected"
	EventAdvertisementExpiring = "advertisement.expiring"
)

type Event struct {
	Type        string    `json:"type"`
	SubjectID   int64     `json:"subject_id"`
	ActorID     string    `json:"actor_id,omitempty"`
	RecipientID string    `json:"recipient_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher relays marketplace events to the outbound transport.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopEventPublisher discards events; used when notifications are disabled.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, Event) error { return nil }
