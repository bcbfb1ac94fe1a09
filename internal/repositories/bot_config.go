package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/models"
)

// BotConfigWriteRepository handles bot-configuration inserts.
type BotConfigWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBotConfigWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BotConfigWriteRepository {
	return &BotConfigWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a bot configuration and returns the stored row.
func (r *BotConfigWriteRepository) Save(ctx context.Context, cfg models.BotConfigDB) (*models.BotConfigDB, error) {
	query := `
		INSERT INTO bots (bot_id, user_id, name, token_address, quantity, slippage,
			priority_fee, gas_limit, max_gas, stop_loss, take_profit, custom_rpc, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING bot_id, user_id, name, token_address, quantity, slippage,
			priority_fee, gas_limit, max_gas, stop_loss, take_profit, custom_rpc, created_at
	`
	args := []any{
		uuid.New(), cfg.UserID, cfg.Name, cfg.TokenAddress, cfg.Quantity, cfg.Slippage,
		cfg.PriorityFee, cfg.GasLimit, cfg.MaxGas, cfg.StopLoss, cfg.TakeProfit, cfg.CustomRPC,
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var saved models.BotConfigDB
	err := sqlx.GetContext(ctx, executor, &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// BotConfigReadRepository handles bot-configuration lookups.
type BotConfigReadRepository struct {
	db *sqlx.DB
}

func NewBotConfigReadRepository(db *sqlx.DB) *BotConfigReadRepository {
	return &BotConfigReadRepository{db: db}
}

// GetByUserID returns all bot configurations for the given identifier,
// oldest first.
func (r *BotConfigReadRepository) GetByUserID(ctx context.Context, userID string) ([]models.BotConfigDB, error) {
	const query = `
		SELECT bot_id, user_id, name, token_address, quantity, slippage,
			priority_fee, gas_limit, max_gas, stop_loss, take_profit, custom_rpc, created_at
		FROM bots
		WHERE user_id = $1
		ORDER BY created_at
	`

	var configs []models.BotConfigDB
	err := r.db.SelectContext(ctx, &configs, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(configs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return configs, nil
}
