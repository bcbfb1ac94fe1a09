package models

// Bot statuses present in generated snapshots.
const (
	BotStatusActive  = "active"
	BotStatusPaused  = "paused"
	BotStatusStopped = "stopped"
)

// Transaction statuses present in generated snapshots.
const (
	TxStatusCompleted = "completed"
	TxStatusPending   = "pending"
	TxStatusFailed    = "failed"
)

// Transaction directions.
const (
	TxTypeBuy  = "buy"
	TxTypeSell = "sell"
)

// Bot is a simulated trading-bot record inside a dashboard snapshot.
type Bot struct {
	ID           string  `json:"id"`           // e.g. "bot-1-a1b2"
	Name         string  `json:"name"`         // Chosen from a fixed name pool
	Status       string  `json:"status"`       // active or paused
	TokenAddress string  `json:"tokenAddress"` // 42-character hex address
	Profit       float64 `json:"profit"`       // Signed percentage, one decimal
	Transactions int     `json:"transactions"` // Independently randomized, not the snapshot list length
	CreatedAt    string  `json:"createdAt"`    // Humanized, e.g. "3 days ago"
}

// Transaction is a simulated trade referencing a bot from the same snapshot.
type Transaction struct {
	ID           string `json:"id"`           // e.g. "tx-1-a1b2"
	BotName      string `json:"botName"`      // Name of the referenced bot
	Type         string `json:"type"`         // buy or sell
	Amount       string `json:"amount"`       // e.g. "0.52 ETH"
	Token        string `json:"token"`        // ETH, SOL or BTC
	TokenAddress string `json:"tokenAddress"` // Truncated display form "0xAAAAAA...ZZZZ"
	Date         string `json:"date"`         // Humanized, e.g. "5 hours ago"
	Status       string `json:"status"`       // completed, pending or failed
}

// DashboardSnapshot is the generated per-user dashboard, created once
// per identifier and persisted for subsequent reads.
type DashboardSnapshot struct {
	ActiveBots        int           `json:"activeBots"`        // Count of bots with status active
	TotalProfit       float64       `json:"totalProfit"`       // Dollars, independent of per-bot profits
	TotalTransactions int           `json:"totalTransactions"` // Length of Transactions
	WalletBalance     float64       `json:"walletBalance"`     // ETH-denominated
	Bots              []Bot         `json:"bots"`
	Transactions      []Transaction `json:"transactions"`
}
