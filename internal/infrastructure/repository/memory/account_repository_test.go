package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footlink/transfer-market/internal/domain/account"
	"github.com/footlink/transfer-market/internal/domain/clubhistory"
)

func seedHistory(t *testing.T, repo *ClubHistoryRepository, playerID string) clubhistory.ClubHistory {
	t.Helper()

	h := clubhistory.ClubHistory{
		PositionID: 10,
		ClubName:   "Old Club",
		League:     "Serie B",
		Region:     "Italy",
		StartDate:  time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		Achievements: clubhistory.Achievements{
			NumberOfMatches: 60,
			Goals:           18,
		},
		PlayerID: playerID,
	}
	require.NoError(t, repo.Create(context.Background(), &h))
	return h
}

// Deleting an account with club history must remove the history rows and
// the achievements rows beneath them. The achievements row is the target
// of the history's reference, so the cascade has to take the histories
// down first; running the steps the other way round fails.
func TestDeleteCascadePurgesClubHistoryAndAchievements(t *testing.T) {
	store := NewStore()
	accounts := NewAccountRepository(store)
	histories := NewClubHistoryRepository(store)
	ctx := context.Background()

	require.NoError(t, accounts.Create(ctx, account.User{ID: "player-ana", Email: "ana@example.com"}))
	require.NoError(t, accounts.Create(ctx, account.User{ID: "player-bo", Email: "bo@example.com"}))

	doomed := seedHistory(t, histories, "player-ana")
	kept := seedHistory(t, histories, "player-bo")

	require.NoError(t, accounts.DeleteCascade(ctx, "player-ana", "unknown-user"))

	_, found, err := histories.GetByID(ctx, doomed.ID)
	require.NoError(t, err)
	require.False(t, found, "history row must be purged")

	store.mu.RLock()
	_, achFound := store.achievements[doomed.Achievements.ID]
	_, keptAchFound := store.achievements[kept.Achievements.ID]
	store.mu.RUnlock()
	require.False(t, achFound, "achievements row must be purged with its history")
	require.True(t, keptAchFound, "other players' achievements must survive")

	got, found, err := histories.GetByID(ctx, kept.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 60, got.Achievements.NumberOfMatches)
}

func TestDeleteCascadeNoHistoryIsANoOpOnAchievements(t *testing.T) {
	store := NewStore()
	accounts := NewAccountRepository(store)
	histories := NewClubHistoryRepository(store)
	ctx := context.Background()

	require.NoError(t, accounts.Create(ctx, account.User{ID: "player-ana", Email: "ana@example.com"}))
	require.NoError(t, accounts.Create(ctx, account.User{ID: "player-bo", Email: "bo@example.com"}))
	kept := seedHistory(t, histories, "player-bo")

	require.NoError(t, accounts.DeleteCascade(ctx, "player-ana", "unknown-user"))

	store.mu.RLock()
	_, keptAchFound := store.achievements[kept.Achievements.ID]
	store.mu.RUnlock()
	require.True(t, keptAchFound)
}
