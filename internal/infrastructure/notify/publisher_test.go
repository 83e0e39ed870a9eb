package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/footlink/transfer-market/internal/platform/resilience"
	"github.com/footlink/transfer-market/internal/usecase"
)

func testEvent() usecase.Event {
	return usecase.Event{
		Type:        usecase.EventClubOfferSubmitted,
		SubjectID:   42,
		ActorID:     "club-borussia",
		RecipientID: "player-ana",
		OccurredAt:  time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
}

func newTestPublisher(t *testing.T, serverURL string, breaker resilience.CircuitBreakerConfig) *WebhookPublisher {
	t.Helper()

	return NewWebhookPublisher(WebhookPublisherConfig{
		WebhookURL:     serverURL,
		Token:          "test-token",
		Timeout:        2 * time.Second,
		CircuitBreaker: breaker,
	}, nil, nil)
}

func TestWebhookPublisherDeliversEvent(t *testing.T) {
	var gotAuth, gotDelivery string
	var gotBody usecase.Event

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDelivery = r.Header.Get("X-Delivery-Id")
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	publisher := newTestPublisher(t, server.URL, resilience.DefaultCircuitBreakerConfig())

	if err := publisher.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if gotDelivery == "" {
		t.Fatal("expected X-Delivery-Id header")
	}
	if gotBody.Type != usecase.EventClubOfferSubmitted || gotBody.RecipientID != "player-ana" {
		t.Fatalf("unexpected event payload: %+v", gotBody)
	}
}

func TestWebhookPublisherReportsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown recipient", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	publisher := newTestPublisher(t, server.URL, resilience.DefaultCircuitBreakerConfig())

	err := publisher.Publish(context.Background(), testEvent())
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "status=422") {
		t.Fatalf("error should carry status code, got %v", err)
	}
}

func TestWebhookPublisherOpensCircuitOnServerErrors(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := newTestPublisher(t, server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		if err := publisher.Publish(context.Background(), testEvent()); err == nil {
			t.Fatalf("publish %d: expected error", i)
		}
	}

	err := publisher.Publish(context.Background(), testEvent())
	if err == nil {
		t.Fatal("expected circuit-open rejection")
	}
	if !strings.Contains(err.Error(), "temporarily unavailable") {
		t.Fatalf("expected circuit rejection error, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("server calls = %d, want 2", got)
	}
}

func TestWebhookPublisherClientErrorDoesNotTripCircuit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	publisher := newTestPublisher(t, server.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	if err := publisher.Publish(context.Background(), testEvent()); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if state := publisher.breaker.State(); state != resilience.CircuitStateClosed {
		t.Fatalf("breaker state = %v, want closed", state)
	}
}

func TestWebhookPublisherRejectsInvalidURL(t *testing.T) {
	publisher := newTestPublisher(t, "ftp://queue.invalid", resilience.DefaultCircuitBreakerConfig())

	if err := publisher.Publish(context.Background(), testEvent()); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}
