package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tradebothq/tradebot-hq/internal/models"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

func TestGetDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshot := &models.DashboardSnapshot{
		ActiveBots:        1,
		TotalProfit:       1234,
		TotalTransactions: 3,
		WalletBalance:     2.5,
		Bots: []models.Bot{
			{
				ID:           "bot-1-a1b2",
				Name:         "ETH Scalper Pro",
				Status:       models.BotStatusActive,
				TokenAddress: "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
				Profit:       12.3,
				Transactions: 42,
				CreatedAt:    "3 days ago",
			},
		},
		Transactions: []models.Transaction{
			{ID: "tx-1-a1b2", BotName: "ETH Scalper Pro", Type: models.TxTypeBuy, Amount: "0.52 ETH", Token: "ETH", TokenAddress: "0x7a25...488D", Date: "5 hours ago", Status: models.TxStatusCompleted},
			{ID: "tx-2-a1b2", BotName: "ETH Scalper Pro", Type: models.TxTypeSell, Amount: "1.10 ETH", Token: "ETH", TokenAddress: "0x7a25...488D", Date: "9 hours ago", Status: models.TxStatusPending},
			{ID: "tx-3-a1b2", BotName: "ETH Scalper Pro", Type: models.TxTypeBuy, Amount: "0.07 ETH", Token: "ETH", TokenAddress: "0x7a25...488D", Date: "21 hours ago", Status: models.TxStatusCompleted},
		},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(svc *MockDashboardReader)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "success",
			target: "/api/dashboard?userId=a1b2c3d4e5f6a7b8",
			mockSetup: func(svc *MockDashboardReader) {
				svc.EXPECT().
					GetByUserID(gomock.Any(), "a1b2c3d4e5f6a7b8").
					Return(snapshot, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing identifier",
			target:       "/api/dashboard",
			mockSetup:    func(svc *MockDashboardReader) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"User ID is required"}`,
		},
		{
			name:   "unknown identifier",
			target: "/api/dashboard?userId=ffffffffffffffff",
			mockSetup: func(svc *MockDashboardReader) {
				svc.EXPECT().
					GetByUserID(gomock.Any(), "ffffffffffffffff").
					Return(nil, services.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name:   "internal error",
			target: "/api/dashboard?userId=a1b2c3d4e5f6a7b8",
			mockSetup: func(svc *MockDashboardReader) {
				svc.EXPECT().
					GetByUserID(gomock.Any(), "a1b2c3d4e5f6a7b8").
					Return(nil, errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDashboardReader(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetDashboardHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetDashboardHandler_SnapshotWireFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDashboardReader(ctrl)
	mockSvc.EXPECT().
		GetByUserID(gomock.Any(), "a1b2c3d4e5f6a7b8").
		Return(&models.DashboardSnapshot{
			ActiveBots:    2,
			TotalProfit:   999,
			WalletBalance: 3.14,
			Bots:          []models.Bot{},
			Transactions:  []models.Transaction{},
		}, nil)

	handler := NewGetDashboardHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?userId=a1b2c3d4e5f6a7b8", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"activeBots", "totalProfit", "totalTransactions", "walletBalance", "bots", "transactions"} {
		assert.Contains(t, body, key)
	}
}
