package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/lookup"
	"github.com/footlink/transfer-market/internal/domain/offer"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

var clubOfferColumns = []string{
	"o.id", "o.player_advertisement_id", "o.offer_status_id", "o.position_id",
	"o.salary", "o.additional_information", "o.creation_date", "o.offerer_id",
}

const clubOfferFrom = "club_offers o JOIN player_advertisements a ON a.id = o.player_advertisement_id"

type ClubOfferRepository struct {
	db *sqlx.DB
}

func NewClubOfferRepository(db *sqlx.DB) *ClubOfferRepository {
	return &ClubOfferRepository{db: db}
}

func (r *ClubOfferRepository) GetByID(ctx context.Context, id int64) (offer.ClubOffer, bool, error) {
	query, args, err := qb.Select("*").From("club_offers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return offer.ClubOffer{}, false, fmt.Errorf("build get club offer query: %w", err)
	}

	var row clubOfferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return offer.ClubOffer{}, false, nil
		}
		return offer.ClubOffer{}, false, fmt.Errorf("get club offer: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ClubOfferRepository) List(ctx context.Context) ([]offer.ClubOffer, error) {
	query, args, err := qb.Select("*").From("club_offers").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club offers query: %w", err)
	}

	var rows []clubOfferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club offers: %w", err)
	}
	return clubOfferRowsToDomain(rows), nil
}

// Activity partitions follow the target advertisement's end date.
func (r *ClubOfferRepository) ListActive(ctx context.Context, now time.Time) ([]offer.ClubOffer, error) {
	return r.selectOffers(ctx, qb.Gte("a.end_date", now))
}

func (r *ClubOfferRepository) ListInactive(ctx context.Context, now time.Time) ([]offer.ClubOffer, error) {
	return r.selectOffers(ctx, qb.Lt("a.end_date", now))
}

func (r *ClubOfferRepository) selectOffers(ctx context.Context, where qb.Condition) ([]offer.ClubOffer, error) {
	query, args, err := qb.Select(clubOfferColumns...).From(clubOfferFrom).
		Where(where).
		OrderBy("o.creation_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club offers query: %w", err)
	}

	var rows []clubOfferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club offers: %w", err)
	}
	return clubOfferRowsToDomain(rows), nil
}

func (r *ClubOfferRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(clubOfferFrom).
		Where(qb.Gte("a.end_date", now)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count club offers query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count active club offers: %w", err)
	}
	return count, nil
}

func (r *ClubOfferRepository) Create(ctx context.Context, o *offer.ClubOffer) error {
	query, args, err := qb.InsertInto("club_offers").
		Columns("player_advertisement_id", "offer_status_id", "position_id", "salary", "additional_information", "creation_date", "offerer_id").
		Values(o.PlayerAdvertisementID, o.StatusID, o.PositionID, o.Salary, o.AdditionalInformation, o.CreationDate, o.OffererID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert club offer query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert club offer: %w", err)
	}
	o.ID = id
	return nil
}

func (r *ClubOfferRepository) Update(ctx context.Context, o offer.ClubOffer) (bool, error) {
	query, args, err := qb.Update("club_offers").
		Set("player_advertisement_id", o.PlayerAdvertisementID).
		Set("offer_status_id", o.StatusID).
		Set("position_id", o.PositionID).
		Set("salary", o.Salary).
		Set("additional_information", o.AdditionalInformation).
		Set("offerer_id", o.OffererID).
		Where(qb.Eq("id", o.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update club offer query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "update club offer")
}

func (r *ClubOfferRepository) UpdateStatus(ctx context.Context, id int64, statusID int) (bool, error) {
	query, args, err := qb.Update("club_offers").
		Set("offer_status_id", statusID).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update club offer status query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "update club offer status")
}

func (r *ClubOfferRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Delete("club_offers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete club offer query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "delete club offer")
}

func (r *ClubOfferRepository) StatusID(ctx context.Context, playerAdID int64, userID string) (int, error) {
	query, args, err := qb.Select("offer_status_id").From("club_offers").
		Where(
			qb.Eq("player_advertisement_id", playerAdID),
			qb.Eq("offerer_id", userID),
		).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build get club offer status query: %w", err)
	}

	var statusID int
	if err := r.db.GetContext(ctx, &statusID, query, args...); err != nil {
		if isNotFound(err) {
			return lookup.NoOfferStatusID, nil
		}
		return 0, fmt.Errorf("get club offer status: %w", err)
	}
	return statusID, nil
}

func clubOfferRowsToDomain(rows []clubOfferTableModel) []offer.ClubOffer {
	out := make([]offer.ClubOffer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

var playerOfferColumns = []string{
	"o.id", "o.club_advertisement_id", "o.offer_status_id", "o.position_id",
	"o.salary", "o.additional_information", "o.creation_date", "o.offerer_id",
}

const playerOfferFrom = "player_offers o JOIN club_advertisements a ON a.id = o.club_advertisement_id"

type PlayerOfferRepository struct {
	db *sqlx.DB
}

func NewPlayerOfferRepository(db *sqlx.DB) *PlayerOfferRepository {
	return &PlayerOfferRepository{db: db}
}

func (r *PlayerOfferRepository) GetByID(ctx context.Context, id int64) (offer.PlayerOffer, bool, error) {
	query, args, err := qb.Select("*").From("player_offers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return offer.PlayerOffer{}, false, fmt.Errorf("build get player offer query: %w", err)
	}

	var row playerOfferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return offer.PlayerOffer{}, false, nil
		}
		return offer.PlayerOffer{}, false, fmt.Errorf("get player offer: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerOfferRepository) List(ctx context.Context) ([]offer.PlayerOffer, error) {
	query, args, err := qb.Select("*").From("player_offers").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player offers query: %w", err)
	}

	var rows []playerOfferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player offers: %w", err)
	}
	return playerOfferRowsToDomain(rows), nil
}

func (r *PlayerOfferRepository) ListActive(ctx context.Context, now time.Time) ([]offer.PlayerOffer, error) {
	return r.selectOffers(ctx, qb.Gte("a.end_date", now))
}

func (r *PlayerOfferRepository) ListInactive(ctx context.Context, now time.Time) ([]offer.PlayerOffer, error) {
	return r.selectOffers(ctx, qb.Lt("a.end_date", now))
}

func (r *PlayerOfferRepository) selectOffers(ctx context.Context, where qb.Condition) ([]offer.PlayerOffer, error) {
	query, args, err := qb.Select(playerOfferColumns...).From(playerOfferFrom).
		Where(where).
		OrderBy("o.creation_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player offers query: %w", err)
	}

	var rows []playerOfferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player offers: %w", err)
	}
	return playerOfferRowsToDomain(rows), nil
}

func (r *PlayerOfferRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(playerOfferFrom).
		Where(qb.Gte("a.end_date", now)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count player offers query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count active player offers: %w", err)
	}
	return count, nil
}

func (r *PlayerOfferRepository) Create(ctx context.Context, o *offer.PlayerOffer) error {
	query, args, err := qb.InsertInto("player_offers").
		Columns("club_advertisement_id", "offer_status_id", "position_id", "salary", "additional_information", "creation_date", "offerer_id").
		Values(o.ClubAdvertisementID, o.StatusID, o.PositionID, o.Salary, o.AdditionalInformation, o.CreationDate, o.OffererID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player offer query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert player offer: %w", err)
	}
	o.ID = id
	return nil
}

func (r *PlayerOfferRepository) Update(ctx context.Context, o offer.PlayerOffer) (bool, error) {
	query, args, err := qb.Update("player_offers").
		Set("club_advertisement_id", o.ClubAdvertisementID).
		Set("offer_status_id", o.StatusID).
		Set("position_id", o.PositionID).
		Set("salary", o.Salary).
		Set("additional_information", o.AdditionalInformation).
		Set("offerer_id", o.OffererID).
		Where(qb.Eq("id", o.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player offer query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "update player offer")
}

func (r *PlayerOfferRepository) UpdateStatus(ctx context.Context, id int64, statusID int) (bool, error) {
	query, args, err := qb.Update("player_offers").
		Set("offer_status_id", statusID).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player offer status query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "update player offer status")
}

func (r *PlayerOfferRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Delete("player_offers").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player offer query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "delete player offer")
}

func (r *PlayerOfferRepository) StatusID(ctx context.Context, clubAdID int64, userID string) (int, error) {
	query, args, err := qb.Select("offer_status_id").From("player_offers").
		Where(
			qb.Eq("club_advertisement_id", clubAdID),
			qb.Eq("offerer_id", userID),
		).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build get player offer status query: %w", err)
	}

	var statusID int
	if err := r.db.GetContext(ctx, &statusID, query, args...); err != nil {
		if isNotFound(err) {
			return lookup.NoOfferStatusID, nil
		}
		return 0, fmt.Errorf("get player offer status: %w", err)
	}
	return statusID, nil
}

func playerOfferRowsToDomain(rows []playerOfferTableModel) []offer.PlayerOffer {
	out := make([]offer.PlayerOffer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

func execReportingFound(ctx context.Context, db *sqlx.DB, query string, args []any, op string) (bool, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected %s: %w", op, err)
	}
	return affected > 0, nil
}
