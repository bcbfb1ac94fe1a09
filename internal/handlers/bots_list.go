package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tradebothq/tradebot-hq/internal/logger"
	"github.com/tradebothq/tradebot-hq/internal/models"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

// BotLister defines the interface that the service must implement.
type BotLister interface {
	List(ctx context.Context, userID string) ([]models.BotConfigDB, error)
}

// BotsTokener defines only the token methods needed by this handler.
type BotsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (string, error)
}

// ListBotsErrorResponse represents an error response when listing bots
// swagger:model ListBotsErrorResponse
type ListBotsErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewListBotsHandler returns an HTTP handler listing the account's bot
// configurations. The identifier comes from the userId query parameter
// or, failing that, from a Bearer session token.
// @Summary List bot configurations
// @Description Returns the account's persisted bot configurations, oldest first.
// @Tags bots
// @Produce json
// @Param userId query string false "Account identifier (alternative to Bearer token)"
// @Success 200 {array} models.BotConfigDB "Bot configurations"
// @Failure 400 {object} handlers.ListBotsErrorResponse "Missing identifier"
// @Failure 404 {object} handlers.ListBotsErrorResponse "Unknown identifier"
// @Router /api/bots [get]
// @Security BearerAuth
func NewListBotsHandler(svc BotLister, tokener BotsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := r.URL.Query().Get("userId")
		if userID == "" {
			if tokenStr, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				if id, err := tokener.GetUserID(ctx, tokenStr); err == nil {
					userID = id
				}
			}
		}
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListBotsErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		configs, err := svc.List(ctx, userID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListBotsErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListBotsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if configs == nil {
			configs = []models.BotConfigDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(configs)
	}
}
