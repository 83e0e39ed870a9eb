package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footlink/transfer-market/internal/domain/account"
	"github.com/footlink/transfer-market/internal/domain/chat"
	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	"github.com/footlink/transfer-market/internal/domain/favorite"
	"github.com/footlink/transfer-market/internal/domain/support"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

const sentinelUserID = "unknown-user"

type accountFixture struct {
	store     *memory.Store
	accounts  *AccountService
	ads       *AdvertisementService
	offers    *OfferService
	favorites *FavoriteService
	history   *ClubHistoryService
	problems  *SupportService
	chats     *ChatService
}

func newAccountFixture(t *testing.T) accountFixture {
	t.Helper()

	store := memory.NewStore()
	accountRepo := memory.NewAccountRepository(store)
	playerAdRepo := memory.NewPlayerAdvertisementRepository(store)
	clubAdRepo := memory.NewClubAdvertisementRepository(store)
	registry := memory.SeedLookupRegistry()

	ctx := context.Background()
	for _, id := range []string{sentinelUserID, "player-ana", "club-borussia"} {
		require.NoError(t, accountRepo.Create(ctx, account.User{ID: id, Email: id + "@example.com"}))
	}

	ads := NewAdvertisementService(playerAdRepo, clubAdRepo, registry, nil)
	ads.now = func() time.Time { return testClock }

	offers := NewOfferService(
		memory.NewClubOfferRepository(store),
		memory.NewPlayerOfferRepository(store),
		playerAdRepo,
		clubAdRepo,
		registry,
		nil,
		nil,
	)
	offers.now = func() time.Time { return testClock }

	return accountFixture{
		store:    store,
		accounts: NewAccountService(accountRepo, sentinelUserID, nil),
		ads:      ads,
		offers:   offers,
		favorites: NewFavoriteService(
			memory.NewPlayerAdFavoriteRepository(store),
			memory.NewClubAdFavoriteRepository(store),
			playerAdRepo,
			clubAdRepo,
			nil,
		),
		history:  NewClubHistoryService(memory.NewClubHistoryRepository(store), registry, nil),
		problems: NewSupportService(memory.NewProblemRepository(store), nil),
		chats:    NewChatService(memory.NewChatRepository(store), nil),
	}
}

func TestDeleteAccountReassignsMarketRowsAndPurgesPersonalData(t *testing.T) {
	fx := newAccountFixture(t)
	ctx := context.Background()

	// The player under deletion owns an advertisement and has made an
	// offer on the club's posting.
	input := validPlayerAdInput()
	input.OwnerID = "player-ana"
	playerAd, err := fx.ads.CreatePlayerAd(ctx, input)
	require.NoError(t, err)

	clubAd, err := fx.ads.CreateClubAd(ctx, validClubAdInput())
	require.NoError(t, err)

	playerOffer, err := fx.offers.CreatePlayerOffer(ctx, CreatePlayerOfferInput{
		ClubAdvertisementID: clubAd.ID,
		PositionID:          1,
		Salary:              5000,
		OffererID:           "player-ana",
	})
	require.NoError(t, err)

	// A counterparty offer against the player's posting must survive.
	clubOffer, err := fx.offers.CreateClubOffer(ctx, CreateClubOfferInput{
		PlayerAdvertisementID: playerAd.ID,
		PositionID:            10,
		Salary:                6500,
		OffererID:             "club-borussia",
	})
	require.NoError(t, err)

	// Strictly personal rows of the player.
	_, err = fx.favorites.AddClubAdFavorite(ctx, clubAd.ID, "player-ana")
	require.NoError(t, err)

	hist, err := fx.history.Create(ctx, clubhistory.ClubHistory{
		PositionID: 10,
		ClubName:   "Old Club",
		League:     "Serie B",
		Region:     "Italy",
		StartDate:  testClock.AddDate(-3, 0, 0),
		EndDate:    testClock.AddDate(-1, 0, 0),
		Achievements: clubhistory.Achievements{
			NumberOfMatches: 60,
			Goals:           18,
		},
		PlayerID: "player-ana",
	})
	require.NoError(t, err)

	problem, err := fx.problems.Report(ctx, support.Problem{
		Title:       "Cannot upload photo",
		Description: "Profile photo upload times out.",
		RequesterID: "player-ana",
	})
	require.NoError(t, err)

	conversation, err := fx.chats.Open(ctx, "player-ana", "club-borussia")
	require.NoError(t, err)
	_, err = fx.chats.Send(ctx, chat.Message{
		ChatID:     conversation.ID,
		SenderID:   "player-ana",
		ReceiverID: "club-borussia",
		Content:    "Still interested?",
	})
	require.NoError(t, err)

	require.NoError(t, fx.accounts.DeleteAccount(ctx, "player-ana"))

	// The user row is gone.
	_, err = fx.accounts.GetUser(ctx, "player-ana")
	require.ErrorIs(t, err, ErrNotFound)

	// Market rows survive under sentinel ownership.
	gotAd, err := fx.ads.GetPlayerAd(ctx, playerAd.ID)
	require.NoError(t, err)
	require.Equal(t, sentinelUserID, gotAd.OwnerID)

	gotOffer, err := fx.offers.GetPlayerOffer(ctx, playerOffer.ID)
	require.NoError(t, err)
	require.Equal(t, sentinelUserID, gotOffer.OffererID)

	// The counterparty's offer is untouched.
	gotClubOffer, err := fx.offers.GetClubOffer(ctx, clubOffer.ID)
	require.NoError(t, err)
	require.Equal(t, "club-borussia", gotClubOffer.OffererID)

	// Personal rows are purged.
	favID, err := fx.favorites.CheckIsFavoriteClubAd(ctx, clubAd.ID, "player-ana")
	require.NoError(t, err)
	require.Equal(t, favorite.NoFavoriteID, favID)

	entries, err := fx.history.ListByPlayer(ctx, "player-ana")
	require.NoError(t, err)
	require.Empty(t, entries, "club history must be purged, got %v", hist.ID)

	tickets, err := fx.problems.ListByRequester(ctx, "player-ana")
	require.NoError(t, err)
	require.Empty(t, tickets, "problems must be purged, got %v", problem.ID)

	// The chat and its messages disappear for both participants.
	remaining, err := fx.chats.ListByUser(ctx, "club-borussia")
	require.NoError(t, err)
	require.Empty(t, remaining)
	_, err = fx.chats.Messages(ctx, conversation.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	fx := newAccountFixture(t)

	err := fx.accounts.DeleteAccount(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAccountRejectsSentinel(t *testing.T) {
	fx := newAccountFixture(t)

	err := fx.accounts.DeleteAccount(context.Background(), sentinelUserID)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteAccountWithoutSentinelConfigured(t *testing.T) {
	store := memory.NewStore()
	accountRepo := memory.NewAccountRepository(store)
	require.NoError(t, accountRepo.Create(context.Background(), account.User{ID: "player-ana"}))

	svc := NewAccountService(accountRepo, "", nil)
	err := svc.DeleteAccount(context.Background(), "player-ana")
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestDeleteAccountWithUnprovisionedSentinel(t *testing.T) {
	store := memory.NewStore()
	accountRepo := memory.NewAccountRepository(store)
	require.NoError(t, accountRepo.Create(context.Background(), account.User{ID: "player-ana"}))

	svc := NewAccountService(accountRepo, "missing-sentinel", nil)
	err := svc.DeleteAccount(context.Background(), "player-ana")
	require.ErrorIs(t, err, ErrConfiguration)
}
