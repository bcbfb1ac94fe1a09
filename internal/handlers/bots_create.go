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

// BotCreator defines the interface that the service must implement.
type BotCreator interface {
	Create(ctx context.Context, cfg models.BotConfigDB) (*models.BotConfigDB, error)
}

// CreateBotRequest represents the JSON body for bot creation
// swagger:model CreateBotRequest
type CreateBotRequest struct {
	// Owning account identifier
	// required: true
	// example: a1b2c3d4e5f6a7b8
	UserID string `json:"userId"`

	// Bot display name
	// required: true
	// example: ETH Trading Bot
	Name string `json:"name"`

	// Token contract address
	// required: true
	// example: 0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D
	TokenAddress string `json:"tokenAddress"`

	// Quantity to buy per trade
	// example: 0.5
	Quantity float64 `json:"quantity"`

	// Slippage tolerance, percent
	// example: 1
	Slippage float64 `json:"slippage"`

	// Priority fee, GWEI
	// example: 5
	PriorityFee float64 `json:"priorityFee"`

	// Gas limit
	// example: 300000
	GasLimit int64 `json:"gasLimit"`

	// Max gas price, GWEI
	// example: 100
	MaxGas int64 `json:"maxGas"`

	// Stop loss, percent
	// example: 10
	StopLoss float64 `json:"stopLoss"`

	// Take profit, percent
	// example: 25
	TakeProfit float64 `json:"takeProfit"`

	// Optional custom RPC endpoint
	CustomRPC string `json:"customRpc,omitempty"`
}

// CreateBotErrorResponse represents an error response for bot creation
// swagger:model CreateBotErrorResponse
type CreateBotErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewCreateBotHandler returns an HTTP handler for bot creation.
// @Summary Create a bot configuration
// @Description Persists a bot configuration for an existing account and returns the created record.
// @Tags bots
// @Accept json
// @Produce json
// @Param createBotRequest body handlers.CreateBotRequest true "Bot configuration"
// @Success 201 {object} models.BotConfigDB "Created bot configuration"
// @Failure 400 {object} handlers.CreateBotErrorResponse "Missing identifier or name"
// @Failure 404 {object} handlers.CreateBotErrorResponse "Unknown identifier"
// @Router /api/bots [post]
func NewCreateBotHandler(svc BotCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBotRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBotErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.UserID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBotErrorResponse{
				Error: "User ID is required",
			})
			return
		}
		if req.Name == "" || req.TokenAddress == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBotErrorResponse{
				Error: "Name and token address are required",
			})
			return
		}

		saved, err := svc.Create(r.Context(), models.BotConfigDB{
			UserID:       req.UserID,
			Name:         req.Name,
			TokenAddress: req.TokenAddress,
			Quantity:     req.Quantity,
			Slippage:     req.Slippage,
			PriorityFee:  req.PriorityFee,
			GasLimit:     req.GasLimit,
			MaxGas:       req.MaxGas,
			StopLoss:     req.StopLoss,
			TakeProfit:   req.TakeProfit,
			CustomRPC:    req.CustomRPC,
		})
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateBotErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateBotErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}
}
