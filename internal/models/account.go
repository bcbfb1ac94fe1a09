package models

import "time"

// AccountDB represents an account record in the database.
// The identifier itself is the credential: no password or email exists.
type AccountDB struct {
	UserID    string    `json:"userId" db:"user_id"`        // Opaque 16-character identifier, primary key
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Issuance timestamp
}
