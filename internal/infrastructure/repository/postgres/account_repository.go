package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footlink/transfer-market/internal/domain/account"
	qb "github.com/footlink/transfer-market/internal/platform/querybuilder"
)

type userTableModel struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at"`
}

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (account.User, bool, error) {
	query, args, err := qb.Select("*").From("users").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return account.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.User{}, false, nil
		}
		return account.User{}, false, fmt.Errorf("get user: %w", err)
	}

	return account.User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		CreatedAt: row.CreatedAt,
	}, true, nil
}

func (r *AccountRepository) Create(ctx context.Context, u account.User) error {
	row := userTableModel{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
	query, args, err := qb.InsertModel("users", row, "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// cascadeState carries row ids across cascade steps within one run.
// club_histories holds the foreign key to achievements, so the history
// purge has to record which achievements rows it orphaned before the
// achievements step can delete them.
type cascadeState struct {
	achievementIDs []int64
}

// DeleteCascade runs every step of account.CascadePlan in one transaction.
// Reassign steps rewrite the ownership column to the sentinel id; purge
// steps hard-delete, referencing rows before the rows they point at.
func (r *AccountRepository) DeleteCascade(ctx context.Context, userID, sentinelID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete account cascade: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	state := &cascadeState{}
	for _, step := range account.CascadePlan() {
		if err := applyCascadeStep(ctx, tx, step, userID, sentinelID, state); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete account cascade: %w", err)
	}
	return nil
}

func applyCascadeStep(ctx context.Context, tx *sqlx.Tx, step account.CascadeStep, userID, sentinelID string, state *cascadeState) error {
	switch step.Kind {
	case account.KindPlayerAdvertisement:
		return reassignColumn(ctx, tx, "player_advertisements", "owner_id", userID, sentinelID)
	case account.KindClubAdvertisement:
		return reassignColumn(ctx, tx, "club_advertisements", "owner_id", userID, sentinelID)
	case account.KindClubOffers:
		return reassignColumn(ctx, tx, "club_offers", "offerer_id", userID, sentinelID)
	case account.KindPlayerOffers:
		return reassignColumn(ctx, tx, "player_offers", "offerer_id", userID, sentinelID)
	case account.KindClubHistory:
		query, args, err := qb.Delete("club_histories").
			Where(qb.Eq("player_id", userID)).
			Suffix("RETURNING achievements_id").
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete club histories query: %w", err)
		}
		if err := tx.SelectContext(ctx, &state.achievementIDs, query, args...); err != nil {
			return fmt.Errorf("delete club histories: %w", err)
		}
		return nil
	case account.KindAchievements:
		for _, achID := range state.achievementIDs {
			if err := deleteWhere(ctx, tx, "achievements", qb.Eq("id", achID)); err != nil {
				return err
			}
		}
		return nil
	case account.KindMessages:
		return deleteWhere(ctx, tx, "messages",
			qb.Expr("chat_id IN (SELECT id FROM chats WHERE user1_id = ? OR user2_id = ?)", userID, userID))
	case account.KindChats:
		return deleteWhere(ctx, tx, "chats",
			qb.Expr("(user1_id = ? OR user2_id = ?)", userID, userID))
	case account.KindProblems:
		return deleteWhere(ctx, tx, "problems", qb.Eq("requester_id", userID))
	case account.KindFavoritePlayerAds:
		return deleteWhere(ctx, tx, "favorite_player_advertisements", qb.Eq("user_id", userID))
	case account.KindFavoriteClubAds:
		return deleteWhere(ctx, tx, "favorite_club_advertisements", qb.Eq("user_id", userID))
	case account.KindUser:
		return deleteWhere(ctx, tx, "users", qb.Eq("id", userID))
	default:
		return fmt.Errorf("unhandled cascade step %q", step.Kind)
	}
}

func reassignColumn(ctx context.Context, tx *sqlx.Tx, table, column, userID, sentinelID string) error {
	query, args, err := qb.Update(table).
		Set(column, sentinelID).
		Where(qb.Eq(column, userID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build reassign %s query: %w", table, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reassign %s: %w", table, err)
	}
	return nil
}
