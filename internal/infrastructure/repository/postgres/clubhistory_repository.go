package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/clubhistory"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

type clubHistoryTableModel struct {
	ID                     int64     `db:"id"`
	PositionID             int       `db:"position_id"`
	ClubName               string    `db:"club_name"`
	League                 string    `db:"league"`
	Region                 string    `db:"region"`
	StartDate              time.Time `db:"start_date"`
	EndDate                time.Time `db:"end_date"`
	AchievementsID         int64     `db:"achievements_id"`
	NumberOfMatches        int       `db:"number_of_matches"`
	Goals                  int       `db:"goals"`
	Assists                int       `db:"assists"`
	AdditionalAchievements string    `db:"additional_achievements"`
	PlayerID               string    `db:"player_id"`
}

func (m clubHistoryTableModel) toDomain() clubhistory.ClubHistory {
	return clubhistory.ClubHistory{
		ID:         m.ID,
		PositionID: m.PositionID,
		ClubName:   m.ClubName,
		League:     m.League,
		Region:     m.Region,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Achievements: clubhistory.Achievements{
			ID:                     m.AchievementsID,
			NumberOfMatches:        m.NumberOfMatches,
			Goals:                  m.Goals,
			Assists:                m.Assists,
			AdditionalAchievements: m.AdditionalAchievements,
		},
		PlayerID: m.PlayerID,
	}
}

var clubHistoryColumns = []string{
	"h.id", "h.position_id", "h.club_name", "h.league", "h.region",
	"h.start_date", "h.end_date", "h.achievements_id",
	"ach.number_of_matches", "ach.goals", "ach.assists", "ach.additional_achievements",
	"h.player_id",
}

const clubHistoryFrom = "club_histories h JOIN achievements ach ON ach.id = h.achievements_id"

type ClubHistoryRepository struct {
	db *sqlx.DB
}

func NewClubHistoryRepository(db *sqlx.DB) *ClubHistoryRepository {
	return &ClubHistoryRepository{db: db}
}

func (r *ClubHistoryRepository) GetByID(ctx context.Context, id int64) (clubhistory.ClubHistory, bool, error) {
	query, args, err := qb.Select(clubHistoryColumns...).From(clubHistoryFrom).
		Where(qb.Eq("h.id", id)).
		ToSQL()
	if err != nil {
		return clubhistory.ClubHistory{}, false, fmt.Errorf("build get club history query: %w", err)
	}

	var row clubHistoryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clubhistory.ClubHistory{}, false, nil
		}
		return clubhistory.ClubHistory{}, false, fmt.Errorf("get club history: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ClubHistoryRepository) ListByPlayer(ctx context.Context, playerID string) ([]clubhistory.ClubHistory, error) {
	query, args, err := qb.Select(clubHistoryColumns...).From(clubHistoryFrom).
		Where(qb.Eq("h.player_id", playerID)).
		OrderBy("h.start_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club histories query: %w", err)
	}

	var rows []clubHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club histories: %w", err)
	}

	out := make([]clubhistory.ClubHistory, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubHistoryRepository) Create(ctx context.Context, h *clubhistory.ClubHistory) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create club history: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	achQuery, achArgs, err := qb.InsertInto("achievements").
		Columns("number_of_matches", "goals", "assists", "additional_achievements").
		Values(h.Achievements.NumberOfMatches, h.Achievements.Goals, h.Achievements.Assists, h.Achievements.AdditionalAchievements).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert achievements query: %w", err)
	}

	var achID int64
	if err := tx.GetContext(ctx, &achID, achQuery, achArgs...); err != nil {
		return fmt.Errorf("insert achievements: %w", err)
	}

	query, args, err := qb.InsertInto("club_histories").
		Columns("position_id", "club_name", "league", "region", "start_date", "end_date", "achievements_id", "player_id").
		Values(h.PositionID, h.ClubName, h.League, h.Region, h.StartDate, h.EndDate, achID, h.PlayerID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert club history query: %w", err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert club history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create club history: %w", err)
	}

	h.ID = id
	h.Achievements.ID = achID
	return nil
}

func (r *ClubHistoryRepository) Update(ctx context.Context, h clubhistory.ClubHistory) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx update club history: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("club_histories").
		Set("position_id", h.PositionID).
		Set("club_name", h.ClubName).
		Set("league", h.League).
		Set("region", h.Region).
		Set("start_date", h.StartDate).
		Set("end_date", h.EndDate).
		Set("player_id", h.PlayerID).
		Where(qb.Eq("id", h.ID)).
		Suffix("RETURNING achievements_id").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update club history query: %w", err)
	}

	var achID int64
	if err := tx.GetContext(ctx, &achID, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("update club history: %w", err)
	}

	achQuery, achArgs, err := qb.Update("achievements").
		Set("number_of_matches", h.Achievements.NumberOfMatches).
		Set("goals", h.Achievements.Goals).
		Set("assists", h.Achievements.Assists).
		Set("additional_achievements", h.Achievements.AdditionalAchievements).
		Where(qb.Eq("id", achID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update achievements query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, achQuery, achArgs...); err != nil {
		return false, fmt.Errorf("update achievements: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit update club history: %w", err)
	}
	return true, nil
}

func (r *ClubHistoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx delete club history: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Delete("club_histories").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING achievements_id").
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete club history query: %w", err)
	}

	var achID int64
	if err := tx.GetContext(ctx, &achID, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete club history: %w", err)
	}

	if err := deleteWhere(ctx, tx, "achievements", qb.Eq("id", achID)); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete club history: %w", err)
	}
	return true, nil
}
