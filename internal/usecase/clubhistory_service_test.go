package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

func newClubHistoryFixture(t *testing.T) *ClubHistoryService {
	t.Helper()

	store := memory.NewStore()
	return NewClubHistoryService(memory.NewClubHistoryRepository(store), memory.SeedLookupRegistry(), nil)
}

func validClubHistory() clubhistory.ClubHistory {
	return clubhistory.ClubHistory{
		PositionID: 1,
		ClubName:   "Borussia",
		League:     "Bundesliga",
		Region:     "Europe",
		StartDate:  testClock.AddDate(-3, 0, 0),
		EndDate:    testClock.AddDate(-1, 0, 0),
		Achievements: clubhistory.Achievements{
			NumberOfMatches: 64,
			Goals:           12,
			Assists:         9,
		},
		PlayerID: "player-ana",
	}
}

func TestCreateAndListClubHistory(t *testing.T) {
	svc := newClubHistoryFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validClubHistory())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned history id")
	}

	entries, err := svc.ListByPlayer(ctx, "player-ana")
	if err != nil {
		t.Fatalf("ListByPlayer: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Achievements.NumberOfMatches != 64 {
		t.Fatalf("unexpected achievements: %+v", entries[0].Achievements)
	}
}

func TestCreateClubHistoryRejectsUnknownPosition(t *testing.T) {
	svc := newClubHistoryFixture(t)

	h := validClubHistory()
	h.PositionID = 999
	if _, err := svc.Create(context.Background(), h); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateClubHistoryRejectsInvertedDates(t *testing.T) {
	svc := newClubHistoryFixture(t)

	h := validClubHistory()
	h.StartDate, h.EndDate = h.EndDate, h.StartDate
	if _, err := svc.Create(context.Background(), h); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateClubHistory(t *testing.T) {
	svc := newClubHistoryFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validClubHistory())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.ClubName = "Ajax"
	created.Achievements.Goals = 20
	if err := svc.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	entries, err := svc.ListByPlayer(ctx, "player-ana")
	if err != nil {
		t.Fatalf("ListByPlayer: %v", err)
	}
	if entries[0].ClubName != "Ajax" || entries[0].Achievements.Goals != 20 {
		t.Fatalf("update not applied: %+v", entries[0])
	}
}

func TestUpdateClubHistoryUnknownEntry(t *testing.T) {
	svc := newClubHistoryFixture(t)

	h := validClubHistory()
	h.ID = 404
	if err := svc.Update(context.Background(), h); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteClubHistory(t *testing.T) {
	svc := newClubHistoryFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validClubHistory())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
