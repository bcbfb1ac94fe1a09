package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

// TokenIssuer defines the interface that the service must implement.
type TokenIssuer interface {
	IssueToken(ctx context.Context, userID string) (string, error)
}

// TokenRequest represents the JSON body for token issuance
// swagger:model TokenRequest
type TokenRequest struct {
	// Account identifier
	// required: true
	// example: a1b2c3d4e5f6a7b8
	UserID string `json:"userId"`
}

// TokenResponse represents a successful token issuance response
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT session token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// TokenErrorResponse represents an error response for token issuance
// swagger:model TokenErrorResponse
type TokenErrorResponse struct {
	// Error message
	// example: Invalid user ID
	Error string `json:"error"`
}

// NewTokenHandler returns an HTTP handler exchanging an identifier for
// a session token.
// @Summary Issue a session token
// @Description Exchanges a valid account identifier for a short-lived JWT usable as Bearer auth on bot endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenRequest body handlers.TokenRequest true "Account identifier"
// @Success 200 {object} handlers.TokenResponse "Session token"
// @Failure 400 {object} handlers.TokenErrorResponse "Missing identifier"
// @Failure 401 {object} handlers.TokenErrorResponse "Unknown identifier"
// @Router /api/auth/token [post]
func NewTokenHandler(svc TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TokenErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		token, err := svc.IssueToken(r.Context(), req.UserID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Invalid user ID",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{
			Token: token,
		})
	}
}
