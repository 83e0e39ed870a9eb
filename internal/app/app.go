package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/footlink/transfer-market/internal/config"
	"github.com/footlink/transfer-market/internal/domain/account"
	"github.com/footlink/transfer-market/internal/domain/advertisement"
	"github.com/footlink/transfer-market/internal/domain/chat"
	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	"github.com/footlink/transfer-market/internal/domain/favorite"
	"github.com/footlink/transfer-market/internal/domain/lookup"
	"github.com/footlink/transfer-market/internal/domain/offer"
	"github.com/footlink/transfer-market/internal/domain/support"
	"github.com/footlink/transfer-market/internal/infrastructure/notify"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/cache"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
	"github.com/footlink/transfer-market/internal/infrastructure/repository/postgres"
	"github.com/footlink/transfer-market/internal/interfaces/httpapi"
	basecache "github.com/footlink/transfer-market/internal/platform/cache"
	"github.com/footlink/transfer-market/internal/platform/logging"
	"github.com/footlink/transfer-market/internal/usecase"
)

type repositories struct {
	playerAds   advertisement.PlayerRepository
	clubAds     advertisement.ClubRepository
	clubOffers  offer.ClubRepository
	playerOffer offer.PlayerRepository
	playerFavs  favorite.PlayerAdRepository
	clubFavs    favorite.ClubAdRepository
	histories   clubhistory.Repository
	problems    support.Repository
	chats       chat.Repository
	accounts    account.Repository
	registry    lookup.Registry
}

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned cleanup closes the database handle
// when one was opened; with an empty DB_URL the service runs on the
// in-memory store.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	registry := repos.registry
	if cfg.CacheEnabled {
		registry = cache.NewLookupRegistry(registry, basecache.NewStore(cfg.CacheTTL))
	}

	events := buildEventPublisher(cfg, logger)

	advertisementSvc := usecase.NewAdvertisementService(repos.playerAds, repos.clubAds, registry, slog.Default())
	offerSvc := usecase.NewOfferService(repos.clubOffers, repos.playerOffer, repos.playerAds, repos.clubAds, registry, events, slog.Default())
	favoriteSvc := usecase.NewFavoriteService(repos.playerFavs, repos.clubFavs, repos.playerAds, repos.clubAds, slog.Default())
	accountSvc := usecase.NewAccountService(repos.accounts, cfg.SentinelAccountID, slog.Default())
	historySvc := usecase.NewClubHistoryService(repos.histories, registry, slog.Default())
	supportSvc := usecase.NewSupportService(repos.problems, slog.Default())
	chatSvc := usecase.NewChatService(repos.chats, slog.Default())
	digestSvc := usecase.NewExpiryDigestService(repos.playerAds, repos.clubAds, events, cfg.ExpiryDigestLead, slog.Default())

	handler := httpapi.NewHandler(
		advertisementSvc,
		offerSvc,
		favoriteSvc,
		accountSvc,
		historySvc,
		supportSvc,
		chatSvc,
		digestSvc,
		registry,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		return buildMemoryRepositories(ctx, cfg)
	}

	db, err := openDB(cfg, dbURL)
	if err != nil {
		return repositories{}, nil, err
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
	}
	if err := postgres.EnsureSentinelAccount(ctx, db, cfg.SentinelAccountID); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("ensure sentinel account: %w", err)
	}

	logger.Info("using postgres repositories", "db_name", dbNameFromURL(dbURL))

	return repositories{
		playerAds:   postgres.NewPlayerAdvertisementRepository(db),
		clubAds:     postgres.NewClubAdvertisementRepository(db),
		clubOffers:  postgres.NewClubOfferRepository(db),
		playerOffer: postgres.NewPlayerOfferRepository(db),
		playerFavs:  postgres.NewPlayerAdFavoriteRepository(db),
		clubFavs:    postgres.NewClubAdFavoriteRepository(db),
		histories:   postgres.NewClubHistoryRepository(db),
		problems:    postgres.NewProblemRepository(db),
		chats:       postgres.NewChatRepository(db),
		accounts:    postgres.NewAccountRepository(db),
		registry:    postgres.NewLookupRegistry(db),
	}, db.Close, nil
}

func buildMemoryRepositories(ctx context.Context, cfg config.Config) (repositories, func() error, error) {
	store := memory.NewStore()
	accounts := memory.NewAccountRepository(store)

	sentinel := account.User{
		ID:        cfg.SentinelAccountID,
		Email:     cfg.SentinelAccountID + "@system.invalid",
		FirstName: "Deleted",
		LastName:  "Account",
	}
	if err := accounts.Create(ctx, sentinel); err != nil {
		return repositories{}, nil, fmt.Errorf("provision sentinel account: %w", err)
	}

	return repositories{
		playerAds:   memory.NewPlayerAdvertisementRepository(store),
		clubAds:     memory.NewClubAdvertisementRepository(store),
		clubOffers:  memory.NewClubOfferRepository(store),
		playerOffer: memory.NewPlayerOfferRepository(store),
		playerFavs:  memory.NewPlayerAdFavoriteRepository(store),
		clubFavs:    memory.NewClubAdFavoriteRepository(store),
		histories:   memory.NewClubHistoryRepository(store),
		problems:    memory.NewProblemRepository(store),
		chats:       memory.NewChatRepository(store),
		accounts:    accounts,
		registry:    memory.SeedLookupRegistry(),
	}, func() error { return nil }, nil
}

func openDB(cfg config.Config, dbURL string) (*sqlx.DB, error) {
	normalized := normalizeDBURL(dbURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Connect("postgres", normalized, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}

func buildEventPublisher(cfg config.Config, logger *logging.Logger) usecase.EventPublisher {
	if !cfg.NotifyWebhookEnabled {
		logger.Info("event notifications disabled", "reason", "NOTIFY_WEBHOOK_ENABLED=false")
		return usecase.NopEventPublisher{}
	}

	return notify.NewWebhookPublisher(notify.WebhookPublisherConfig{
		WebhookURL:     cfg.NotifyWebhookURL,
		Token:          cfg.NotifyWebhookToken,
		Timeout:        cfg.NotifyWebhookTimeout,
		CircuitBreaker: cfg.NotifyCircuit,
	}, nil, slog.Default())
}
