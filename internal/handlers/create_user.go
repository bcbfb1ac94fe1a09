package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

// IdentityIssuer defines the interface that the service must implement.
type IdentityIssuer interface {
	Issue(ctx context.Context, candidate string) (string, error)
}

// CreateUserRequest represents the JSON body for account creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Optional caller-supplied identifier, 16 alphanumeric characters
	// example: a1b2c3d4e5f6a7b8
	UserID string `json:"userId,omitempty"`
}

// CreateUserResponse represents a successful account creation response
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Issued identifier
	// example: a1b2c3d4e5f6a7b8
	UserID string `json:"userId"`
}

// CreateUserErrorResponse represents an error response for account creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// example: This ID is already in use
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for account creation.
// @Summary Create a new account
// @Description Issues a unique 16-character identifier, stores the account and generates its dashboard snapshot. An optional caller-supplied identifier is validated and rejected with a conflict when already taken.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest false "Optional caller-supplied identifier"
// @Success 201 {object} handlers.CreateUserResponse "Account created"
// @Failure 400 {object} handlers.CreateUserErrorResponse "Invalid identifier"
// @Failure 409 {object} handlers.CreateUserErrorResponse "Identifier already in use"
// @Router /api/users [post]
func NewCreateUserHandler(svc IdentityIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		// An empty body means "generate one for me".
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		userID, err := svc.Issue(r.Context(), req.UserID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrInvalidIdentifier):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "User ID must be exactly 16 characters",
				})
			case errors.Is(err, services.ErrAccountAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "This ID is already in use",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateUserResponse{
			UserID: userID,
		})
	}
}
