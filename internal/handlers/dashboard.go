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

// DashboardReader defines the interface that the service must implement.
type DashboardReader interface {
	GetByUserID(ctx context.Context, userID string) (*models.DashboardSnapshot, error)
}

// DashboardErrorResponse represents an error response for dashboard reads
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewGetDashboardHandler returns an HTTP handler for dashboard reads.
// @Summary Get dashboard snapshot
// @Description Returns the account's stored dashboard snapshot, generating one lazily when absent.
// @Tags dashboard
// @Produce json
// @Param userId query string true "Account identifier"
// @Success 200 {object} models.DashboardSnapshot "Dashboard snapshot"
// @Failure 400 {object} handlers.DashboardErrorResponse "Missing identifier"
// @Failure 404 {object} handlers.DashboardErrorResponse "Unknown identifier"
// @Router /api/dashboard [get]
func NewGetDashboardHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DashboardErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		snapshot, err := svc.GetByUserID(r.Context(), userID)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DashboardErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DashboardErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(snapshot)
	}
}
