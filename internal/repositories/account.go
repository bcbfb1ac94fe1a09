package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/models"
)

// AccountReadRepository handles account lookups.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByUserID returns the account for the given identifier, or nil when
// no such account exists. The match is exact and case-sensitive.
func (r *AccountReadRepository) GetByUserID(ctx context.Context, userID string) (*models.AccountDB, error) {
	const query = `
		SELECT user_id, created_at
		FROM users
		WHERE user_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", account,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// AccountWriteRepository handles account inserts.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new account. Accounts are immutable: a conflicting
// identifier is never overwritten, and sql.ErrNoRows is returned when
// the uniqueness constraint rejects the insert.
func (r *AccountWriteRepository) Save(ctx context.Context, userID string) error {
	query := `
		INSERT INTO users (user_id, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	args := []any{userID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
