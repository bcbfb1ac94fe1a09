package models

// Event types published to Kafka.
const (
	EventAccountCreated = "account.created"
	EventBotCreated     = "bot.created"
)

// Event represents a domain event published to Kafka, e.g. an account
// being issued or a bot configuration being created.
type Event struct {
	EventID   string `json:"event_id"`  // Unique identifier for the event
	Type      string `json:"type"`      // Event type, e.g. "account.created"
	Timestamp int64  `json:"timestamp"` // Unix timestamp in seconds
	UserID    string `json:"user_id"`   // Account identifier the event belongs to
}
