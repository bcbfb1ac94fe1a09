package models

import (
	"time"

	"github.com/google/uuid"
)

// BotConfigDB represents a user-created bot configuration row.
// Unlike the snapshot's mock bots, these are explicitly created via the API.
type BotConfigDB struct {
	BotID        uuid.UUID `json:"id" db:"bot_id"`                // Primary key
	UserID       string    `json:"userId" db:"user_id"`           // Owning account identifier
	Name         string    `json:"name" db:"name"`                // Display name
	TokenAddress string    `json:"tokenAddress" db:"token_address"`
	Quantity     float64   `json:"quantity" db:"quantity"`        // Amount to buy per trade
	Slippage     float64   `json:"slippage" db:"slippage"`        // Percent
	PriorityFee  float64   `json:"priorityFee" db:"priority_fee"` // GWEI
	GasLimit     int64     `json:"gasLimit" db:"gas_limit"`
	MaxGas       int64     `json:"maxGas" db:"max_gas"`           // GWEI
	StopLoss     float64   `json:"stopLoss" db:"stop_loss"`       // Percent
	TakeProfit   float64   `json:"takeProfit" db:"take_profit"`   // Percent
	CustomRPC    string    `json:"customRpc" db:"custom_rpc"`     // Optional RPC endpoint
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
