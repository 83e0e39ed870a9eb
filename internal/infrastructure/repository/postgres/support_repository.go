package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/support"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

type problemTableModel struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	CreationDate time.Time `db:"creation_date"`
	IsSolved     bool      `db:"is_solved"`
	RequesterID  string    `db:"requester_id"`
}

func (m problemTableModel) toDomain() support.Problem {
	return support.Problem{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		CreationDate: m.CreationDate,
		IsSolved:     m.IsSolved,
		RequesterID:  m.RequesterID,
	}
}

type ProblemRepository struct {
	db *sqlx.DB
}

func NewProblemRepository(db *sqlx.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

func (r *ProblemRepository) GetByID(ctx context.Context, id int64) (support.Problem, bool, error) {
	query, args, err := qb.Select("*").From("problems").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return support.Problem{}, false, fmt.Errorf("build get problem query: %w", err)
	}

	var row problemTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return support.Problem{}, false, nil
		}
		return support.Problem{}, false, fmt.Errorf("get problem: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ProblemRepository) ListByRequester(ctx context.Context, requesterID string) ([]support.Problem, error) {
	query, args, err := qb.Select("*").From("problems").
		Where(qb.Eq("requester_id", requesterID)).
		OrderBy("creation_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select problems query: %w", err)
	}

	var rows []problemTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select problems: %w", err)
	}

	out := make([]support.Problem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ProblemRepository) Create(ctx context.Context, p *support.Problem) error {
	query, args, err := qb.InsertInto("problems").
		Columns("title", "description", "creation_date", "is_solved", "requester_id").
		Values(p.Title, p.Description, p.CreationDate, p.IsSolved, p.RequesterID).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert problem query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return fmt.Errorf("insert problem: %w", err)
	}
	p.ID = id
	return nil
}

func (r *ProblemRepository) MarkSolved(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Update("problems").
		Set("is_solved", true).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build mark problem solved query: %w", err)
	}

	return execReportingFound(ctx, r.db, query, args, "mark problem solved")
}
