package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tradebothq/tradebot-hq/internal/logger"
)

// IdentityVerifier defines the interface that the service must implement.
type IdentityVerifier interface {
	Verify(ctx context.Context, userID string) (bool, error)
}

// VerifyUserRequest represents the JSON body for identifier verification
// swagger:model VerifyUserRequest
type VerifyUserRequest struct {
	// Identifier to verify
	// required: true
	// example: a1b2c3d4e5f6a7b8
	UserID string `json:"userId"`
}

// VerifyUserResponse represents a verification result
// swagger:model VerifyUserResponse
type VerifyUserResponse struct {
	// Whether the identifier belongs to a known account
	// example: true
	Valid bool `json:"valid"`
}

// VerifyUserErrorResponse represents an error response for verification
// swagger:model VerifyUserErrorResponse
type VerifyUserErrorResponse struct {
	// Error message
	// example: User ID is required
	Error string `json:"error"`
}

// NewVerifyUserHandler returns an HTTP handler for identifier verification.
// @Summary Verify an identifier
// @Description Returns valid=true iff an account exists for exactly this identifier. Malformed and unknown identifiers both produce valid=false.
// @Tags users
// @Accept json
// @Produce json
// @Param verifyUserRequest body handlers.VerifyUserRequest true "Identifier to verify"
// @Success 200 {object} handlers.VerifyUserResponse "Identifier is known"
// @Failure 400 {object} handlers.VerifyUserErrorResponse "Missing identifier"
// @Failure 404 {object} handlers.VerifyUserResponse "Identifier is unknown"
// @Router /api/users/verify [post]
func NewVerifyUserHandler(svc IdentityVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyUserErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		valid, err := svc.Verify(r.Context(), req.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(VerifyUserErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if !valid {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(VerifyUserResponse{Valid: false})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyUserResponse{Valid: true})
	}
}
