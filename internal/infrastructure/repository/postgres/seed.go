package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/infrastructure/repository/memory"
)

// BootstrapSeed inserts the lookup tables if they have never been seeded.
// Ids match the memory backend so status ids line up across backends.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM positions`); err != nil {
		return fmt.Errorf("count positions for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPositions() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO positions (id, name)
VALUES (:id, :name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":   p.ID,
			"name": p.Name,
		})
		if err != nil {
			return fmt.Errorf("bind seed position %s query: %w", p.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed position %s: %w", p.Name, err)
		}
	}

	for _, f := range memory.SeedFeet() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO feet (id, name)
VALUES (:id, :name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":   f.ID,
			"name": f.Name,
		})
		if err != nil {
			return fmt.Errorf("bind seed foot %s query: %w", f.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed foot %s: %w", f.Name, err)
		}
	}

	for _, st := range memory.SeedOfferStatuses() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO offer_statuses (id, name)
VALUES (:id, :name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":   st.ID,
			"name": st.Name,
		})
		if err != nil {
			return fmt.Errorf("bind seed offer status %s query: %w", st.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed offer status %s: %w", st.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

// EnsureSentinelAccount provisions the account that deleted users' market
// rows are reassigned to. Account deletion refuses to run without it.
func EnsureSentinelAccount(ctx context.Context, db *sqlx.DB, sentinelID string) error {
	if sentinelID == "" {
		return fmt.Errorf("sentinel account id is empty")
	}

	sqlQuery, args, err := sqlx.Named(`
INSERT INTO users (id, email, first_name, last_name, created_at)
VALUES (:id, :email, :first_name, :last_name, :created_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
		"id":         sentinelID,
		"email":      sentinelID + "@system.invalid",
		"first_name": "Deleted",
		"last_name":  "Account",
		"created_at": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("bind ensure sentinel account query: %w", err)
	}
	sqlQuery = db.Rebind(sqlQuery)
	if _, err := db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("ensure sentinel account: %w", err)
	}

	return nil
}
