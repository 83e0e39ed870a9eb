package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/footlink/transfer-market/internal/domain/support"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

func newSupportFixture(t *testing.T) *SupportService {
	t.Helper()

	svc := NewSupportService(memory.NewProblemRepository(memory.NewStore()), nil)
	svc.now = func() time.Time { return testClock }
	return svc
}

func TestReportProblemStampsCreationAndUnsolved(t *testing.T) {
	svc := newSupportFixture(t)
	ctx := context.Background()

	p, err := svc.Report(ctx, support.Problem{
		Title:       "Offer stuck in pending",
		Description: "Accepted an offer yesterday but the status never changed.",
		IsSolved:    true, // must be ignored on intake
		RequesterID: "player-ana",
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected assigned problem id")
	}
	if p.IsSolved {
		t.Fatal("new problem must start unsolved")
	}
	if !p.CreationDate.Equal(testClock.UTC()) {
		t.Fatalf("creation date %v, want %v", p.CreationDate, testClock.UTC())
	}
}

func TestReportProblemValidation(t *testing.T) {
	svc := newSupportFixture(t)

	_, err := svc.Report(context.Background(), support.Problem{
		Title:       "",
		Description: "no title",
		RequesterID: "player-ana",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMarkSolvedAndListByRequester(t *testing.T) {
	svc := newSupportFixture(t)
	ctx := context.Background()

	p, err := svc.Report(ctx, support.Problem{
		Title:       "Cannot delete advertisement",
		Description: "Delete returns an error for ad 12.",
		RequesterID: "club-borussia",
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if err := svc.MarkSolved(ctx, p.ID); err != nil {
		t.Fatalf("MarkSolved: %v", err)
	}

	problems, err := svc.ListByRequester(ctx, "club-borussia")
	if err != nil {
		t.Fatalf("ListByRequester: %v", err)
	}
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1", len(problems))
	}
	if !problems[0].IsSolved {
		t.Fatal("expected problem to be marked solved")
	}

	// Other requesters never see it.
	problems, err = svc.ListByRequester(ctx, "player-ana")
	if err != nil {
		t.Fatalf("ListByRequester: %v", err)
	}
	if len(problems) != 0 {
		t.Fatalf("got %d problems for other requester, want 0", len(problems))
	}
}

func TestMarkSolvedUnknownProblem(t *testing.T) {
	svc := newSupportFixture(t)

	err := svc.MarkSolved(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
