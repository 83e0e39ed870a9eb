package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/favorite"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

type PlayerAdFavoriteRepository struct {
	db *sqlx.DB
}

func NewPlayerAdFavoriteRepository(db *sqlx.DB) *PlayerAdFavoriteRepository {
	return &PlayerAdFavoriteRepository{db: db}
}

func (r *PlayerAdFavoriteRepository) Add(ctx context.Context, f *favorite.PlayerAdFavorite) error {
	query, args, err := qb.InsertInto("favorite_player_advertisements").
		Columns("player_advertisement_id", "user_id").
		Values(f.AdvertisementID, f.UserID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player advertisement favorite query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert player advertisement favorite: %w", err)
	}
	f.ID = id
	return nil
}

func (r *PlayerAdFavoriteRepository) Remove(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Delete("favorite_player_advertisements").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player advertisement favorite query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "delete player advertisement favorite")
}

func (r *PlayerAdFavoriteRepository) FindByPair(ctx context.Context, adID int64, userID string) (int64, error) {
	query, args, err := qb.Select("id").From("favorite_player_advertisements").
		Where(
			qb.Eq("player_advertisement_id", adID),
			qb.Eq("user_id", userID),
		).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build find player advertisement favorite query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return favorite.NoFavoriteID, nil
		}
		return 0, fmt.Errorf("find player advertisement favorite: %w", err)
	}
	return id, nil
}

type ClubAdFavoriteRepository struct {
	db *sqlx.DB
}

func NewClubAdFavoriteRepository(db *sqlx.DB) *ClubAdFavoriteRepository {
	return &ClubAdFavoriteRepository{db: db}
}

func (r *ClubAdFavoriteRepository) Add(ctx context.Context, f *favorite.ClubAdFavorite) error {
	query, args, err := qb.InsertInto("favorite_club_advertisements").
		Columns("club_advertisement_id", "user_id").
		Values(f.AdvertisementID, f.UserID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert club advertisement favorite query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert club advertisement favorite: %w", err)
	}
	f.ID = id
	return nil
}

func (r *ClubAdFavoriteRepository) Remove(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Delete("favorite_club_advertisements").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete club advertisement favorite query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "delete club advertisement favorite")
}

func (r *ClubAdFavoriteRepository) FindByPair(ctx context.Context, adID int64, userID string) (int64, error) {
	query, args, err := qb.Select("id").From("favorite_club_advertisements").
		Where(
			qb.Eq("club_advertisement_id", adID),
			qb.Eq("user_id", userID),
		).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build find club advertisement favorite query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return favorite.NoFavoriteID, nil
		}
		return 0, fmt.Errorf("find club advertisement favorite: %w", err)
	}
	return id, nil
}
