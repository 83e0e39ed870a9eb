package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/lookup"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

type positionTableModel struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type footTableModel struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type offerStatusTableModel struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// LookupRegistry serves the static reference tables. Rows change only via
// seed migrations, so callers usually wrap it in the cached decorator.
type LookupRegistry struct {
	db *sqlx.DB
}

func NewLookupRegistry(db *sqlx.DB) *LookupRegistry {
	return &LookupRegistry{db: db}
}

func (r *LookupRegistry) Positions(ctx context.Context) ([]lookup.Position, error) {
	query, args, err := qb.Select("*").From("positions").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select positions query: %w", err)
	}

	var rows []positionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select positions: %w", err)
	}

	out := make([]lookup.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, lookup.Position{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *LookupRegistry) PositionByID(ctx context.Context, id int) (lookup.Position, bool, error) {
	query, args, err := qb.Select("*").From("positions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return lookup.Position{}, false, fmt.Errorf("build get position query: %w", err)
	}

	var row positionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lookup.Position{}, false, nil
		}
		return lookup.Position{}, false, fmt.Errorf("get position by id: %w", err)
	}
	return lookup.Position{ID: row.ID, Name: row.Name}, true, nil
}

func (r *LookupRegistry) Feet(ctx context.Context) ([]lookup.Foot, error) {
	query, args, err := qb.Select("*").From("feet").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select feet query: %w", err)
	}

	var rows []footTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select feet: %w", err)
	}

	out := make([]lookup.Foot, 0, len(rows))
	for _, row := range rows {
		out = append(out, lookup.Foot{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *LookupRegistry) FootByID(ctx context.Context, id int) (lookup.Foot, bool, error) {
	query, args, err := qb.Select("*").From("feet").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return lookup.Foot{}, false, fmt.Errorf("build get foot query: %w", err)
	}

	var row footTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lookup.Foot{}, false, nil
		}
		return lookup.Foot{}, false, fmt.Errorf("get foot by id: %w", err)
	}
	return lookup.Foot{ID: row.ID, Name: row.Name}, true, nil
}

func (r *LookupRegistry) StatusIDByName(ctx context.Context, name string) (int, bool, error) {
	query, args, err := qb.Select("*").From("offer_statuses").Where(qb.Eq("name", name)).ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build get offer status query: %w", err)
	}

	var row offerStatusTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get offer status by name: %w", err)
	}
	return row.ID, true, nil
}

func (r *LookupRegistry) StatusNameByID(ctx context.Context, id int) (string, bool, error) {
	query, args, err := qb.Select("*").From("offer_statuses").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return "", false, fmt.Errorf("build get offer status query: %w", err)
	}

	var row offerStatusTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get offer status by id: %w", err)
	}
	return row.Name, true, nil
}
