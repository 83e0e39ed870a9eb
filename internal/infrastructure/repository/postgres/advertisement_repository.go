package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/advertisement"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

var playerAdColumns = []string{
	"a.id", "a.position_id", "a.league", "a.region", "a.age", "a.height",
	"a.foot_id", "a.salary_range_id",
	"s.min_value AS salary_min", "s.max_value AS salary_max",
	"a.creation_date", "a.end_date", "a.owner_id",
}

const playerAdFrom = "player_advertisements a JOIN salary_ranges s ON s.id = a.salary_range_id"

type PlayerAdvertisementRepository struct {
	db *sqlx.DB
}

func NewPlayerAdvertisementRepository(db *sqlx.DB) *PlayerAdvertisementRepository {
	return &PlayerAdvertisementRepository{db: db}
}

func (r *PlayerAdvertisementRepository) GetByID(ctx context.Context, id int64) (advertisement.PlayerAdvertisement, bool, error) {
	query, args, err := qb.Select(playerAdColumns...).From(playerAdFrom).
		Where(qb.Eq("a.id", id)).
		ToSQL()
	if err != nil {
		return advertisement.PlayerAdvertisement{}, false, fmt.Errorf("build get player advertisement query: %w", err)
	}

	var row playerAdvertisementTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return advertisement.PlayerAdvertisement{}, false, nil
		}
		return advertisement.PlayerAdvertisement{}, false, fmt.Errorf("get player advertisement: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerAdvertisementRepository) List(ctx context.Context) ([]advertisement.PlayerAdvertisement, error) {
	return r.selectAds(ctx, nil, "a.id")
}

func (r *PlayerAdvertisementRepository) ListActive(ctx context.Context, now time.Time) ([]advertisement.PlayerAdvertisement, error) {
	return r.selectAds(ctx, []qb.Condition{qb.Gte("a.end_date", now)}, "a.end_date DESC")
}

func (r *PlayerAdvertisementRepository) ListInactive(ctx context.Context, now time.Time) ([]advertisement.PlayerAdvertisement, error) {
	return r.selectAds(ctx, []qb.Condition{qb.Lt("a.end_date", now)}, "a.end_date DESC")
}

func (r *PlayerAdvertisementRepository) selectAds(ctx context.Context, where []qb.Condition, orderBy string) ([]advertisement.PlayerAdvertisement, error) {
	query, args, err := qb.Select(playerAdColumns...).From(playerAdFrom).
		Where(where...).
		OrderBy(orderBy).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player advertisements query: %w", err)
	}

	var rows []playerAdvertisementTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player advertisements: %w", err)
	}

	out := make([]advertisement.PlayerAdvertisement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerAdvertisementRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("player_advertisements").
		Where(qb.Gte("end_date", now)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count player advertisements query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count active player advertisements: %w", err)
	}
	return count, nil
}

func (r *PlayerAdvertisementRepository) Create(ctx context.Context, ad *advertisement.PlayerAdvertisement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create player advertisement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rangeID, err := insertSalaryRange(ctx, tx, ad.SalaryRange)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("player_advertisements").
		Columns("position_id", "league", "region", "age", "height", "foot_id", "salary_range_id", "creation_date", "end_date", "owner_id").
		Values(ad.PositionID, ad.League, ad.Region, ad.Age, ad.Height, ad.FootID, rangeID, ad.CreationDate, ad.EndDate, ad.OwnerID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player advertisement query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert player advertisement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create player advertisement: %w", err)
	}

	ad.ID = id
	ad.SalaryRange.ID = rangeID
	return nil
}

func (r *PlayerAdvertisementRepository) Update(ctx context.Context, ad advertisement.PlayerAdvertisement) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx update player advertisement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("player_advertisements").
		Set("position_id", ad.PositionID).
		Set("league", ad.League).
		Set("region", ad.Region).
		Set("age", ad.Age).
		Set("height", ad.Height).
		Set("foot_id", ad.FootID).
		Set("creation_date", ad.CreationDate).
		Set("end_date", ad.EndDate).
		Set("owner_id", ad.OwnerID).
		Where(qb.Eq("id", ad.ID)).
		Suffix("RETURNING salary_range_id").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player advertisement query: %w", err)
	}

	var rangeID int64
	if err := tx.GetContext(ctx, &rangeID, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("update player advertisement: %w", err)
	}

	if err := updateSalaryRange(ctx, tx, rangeID, ad.SalaryRange); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit update player advertisement: %w", err)
	}
	return true, nil
}

// Delete removes the advertisement, its salary range and every favorite
// and club offer that references it, in one transaction.
func (r *PlayerAdvertisementRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx delete player advertisement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, step := range []struct {
		table  string
		column string
	}{
		{table: "favorite_player_advertisements", column: "player_advertisement_id"},
		{table: "club_offers", column: "player_advertisement_id"},
	} {
		if err := deleteWhere(ctx, tx, step.table, qb.Eq(step.column, id)); err != nil {
			return false, err
		}
	}

	query, args, err := qb.Delete("player_advertisements").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING salary_range_id").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player advertisement query: %w", err)
	}

	var rangeID int64
	if err := tx.GetContext(ctx, &rangeID, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete player advertisement: %w", err)
	}

	if err := deleteWhere(ctx, tx, "salary_ranges", qb.Eq("id", rangeID)); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete player advertisement: %w", err)
	}
	return true, nil
}

var clubAdColumns = []string{
	"a.id", "a.position_id", "a.club_name", "a.league", "a.region",
	"a.salary_range_id",
	"s.min_value AS salary_min", "s.max_value AS salary_max",
	"a.creation_date", "a.end_date", "a.owner_id",
}

const clubAdFrom = "club_advertisements a JOIN salary_ranges s ON s.id = a.salary_range_id"

type ClubAdvertisementRepository struct {
	db *sqlx.DB
}

func NewClubAdvertisementRepository(db *sqlx.DB) *ClubAdvertisementRepository {
	return &ClubAdvertisementRepository{db: db}
}

func (r *ClubAdvertisementRepository) GetByID(ctx context.Context, id int64) (advertisement.ClubAdvertisement, bool, error) {
	query, args, err := qb.Select(clubAdColumns...).From(clubAdFrom).
		Where(qb.Eq("a.id", id)).
		ToSQL()
	if err != nil {
		return advertisement.ClubAdvertisement{}, false, fmt.Errorf("build get club advertisement query: %w", err)
	}

	var row clubAdvertisementTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return advertisement.ClubAdvertisement{}, false, nil
		}
		return advertisement.ClubAdvertisement{}, false, fmt.Errorf("get club advertisement: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ClubAdvertisementRepository) List(ctx context.Context) ([]advertisement.ClubAdvertisement, error) {
	return r.selectAds(ctx, nil, "a.id")
}

func (r *ClubAdvertisementRepository) ListActive(ctx context.Context, now time.Time) ([]advertisement.ClubAdvertisement, error) {
	return r.selectAds(ctx, []qb.Condition{qb.Gte("a.end_date", now)}, "a.end_date DESC")
}

func (r *ClubAdvertisementRepository) ListInactive(ctx context.Context, now time.Time) ([]advertisement.ClubAdvertisement, error) {
	return r.selectAds(ctx, []qb.Condition{qb.Lt("a.end_date", now)}, "a.end_date DESC")
}

func (r *ClubAdvertisementRepository) selectAds(ctx context.Context, where []qb.Condition, orderBy string) ([]advertisement.ClubAdvertisement, error) {
	query, args, err := qb.Select(clubAdColumns...).From(clubAdFrom).
		Where(where...).
		OrderBy(orderBy).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club advertisements query: %w", err)
	}

	var rows []clubAdvertisementTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club advertisements: %w", err)
	}

	out := make([]advertisement.ClubAdvertisement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubAdvertisementRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("club_advertisements").
		Where(qb.Gte("end_date", now)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count club advertisements query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count active club advertisements: %w", err)
	}
	return count, nil
}

func (r *ClubAdvertisementRepository) Create(ctx context.Context, ad *advertisement.ClubAdvertisement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create club advertisement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rangeID, err := insertSalaryRange(ctx, tx, ad.SalaryRange)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("club_advertisements").
		Columns("position_id", "club_name", "league", "region", "salary_range_id", "creation_date", "end_date", "owner_id").
		Values(ad.PositionID, ad.ClubName, ad.League, ad.Region, rangeID, ad.CreationDate, ad.EndDate, ad.OwnerID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert club advertisement query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert club advertisement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create club advertisement: %w", err)
	}

	ad.ID = id
	ad.SalaryRange.ID = rangeID
	return nil
}

func (r *ClubAdvertisementRepository) Update(ctx context.Context, ad advertisement.ClubAdvertisement) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx update club advertisement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("club_advertisements").
		Set("position_id", ad.PositionID).
		Set("club_name", ad.ClubName).
		Set("league", ad.League).
		Set("region", ad.Region).
		Set("creation_date", ad.CreationDate).
		Set("end_date", ad.EndDate).
		Set("owner_id", ad.OwnerID).
		Where(qb.Eq("id", ad.ID)).
		Suffix("RETURNING salary_range_id").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update club advertisement query: %w", err)
	}

	var rangeID int64
	if err := tx.GetContext(ctx, &rangeID, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("update club advertisement: %w", err)
	}

	if err := updateSalaryRange(ctx, tx, rangeID, ad.SalaryRange); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit update club advertisement: %w", err)
	}
	return true, nil
}

func (r *ClubAdvertisementRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx delete club advertisement: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, step := range []struct {
		table  string
		column string
	}{
		{table: "favorite_club_advertisements", column: "club_advertisement_id"},
		{table: "player_offers", column: "club_advertisement_id"},
	} {
		if err := deleteWhere(ctx, tx, step.table, qb.Eq(step.column, id)); err != nil {
			return false, err
		}
	}

	query, args, err := qb.Delete("club_advertisements").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING salary_range_id").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete club advertisement query: %w", err)
	}

	var rangeID int64
	if err := tx.GetContext(ctx, &rangeID, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete club advertisement: %w", err)
	}

	if err := deleteWhere(ctx, tx, "salary_ranges", qb.Eq("id", rangeID)); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete club advertisement: %w", err)
	}
	return true, nil
}

func insertSalaryRange(ctx context.Context, tx *sqlx.Tx, sr advertisement.SalaryRange) (int64, error) {
	query, args, err := qb.InsertInto("salary_ranges").
		Columns("min_value", "max_value").
		Values(sr.Min, sr.Max).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert salary range query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert salary range: %w", err)
	}
	return id, nil
}

func updateSalaryRange(ctx context.Context, tx *sqlx.Tx, id int64, sr advertisement.SalaryRange) error {
	query, args, err := qb.Update("salary_ranges").
		Set("min_value", sr.Min).
		Set("max_value", sr.Max).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update salary range query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update salary range: %w", err)
	}
	return nil
}

func deleteWhere(ctx context.Context, tx *sqlx.Tx, table string, conditions ...qb.Condition) error {
	query, args, err := qb.Delete(table).Where(conditions...).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}
