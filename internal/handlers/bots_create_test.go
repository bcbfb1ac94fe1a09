package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tradebothq/tradebot-hq/internal/models"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

func TestCreateBotHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	botID := uuid.New()

	tests := []struct {
		name         string
		reqBody      string
		mockSetup    func(svc *MockBotCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			reqBody: `{"userId":"a1b2c3d4e5f6a7b8","name":"My Sniper","tokenAddress":"0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D","quantity":0.5,"slippage":10}`,
			mockSetup: func(svc *MockBotCreator) {
				svc.EXPECT().
					Create(gomock.Any(), models.BotConfigDB{
						UserID:       "a1b2c3d4e5f6a7b8",
						Name:         "My Sniper",
						TokenAddress: "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
						Quantity:     0.5,
						Slippage:     10,
					}).
					DoAndReturn(func(_ any, cfg models.BotConfigDB) (*models.BotConfigDB, error) {
						cfg.BotID = botID
						return &cfg, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "malformed body",
			reqBody:      `{"userId":`,
			mockSetup:    func(svc *MockBotCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:         "missing identifier",
			reqBody:      `{"name":"My Sniper","tokenAddress":"0xabc"}`,
			mockSetup:    func(svc *MockBotCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"User ID is required"}`,
		},
		{
			name:         "missing name",
			reqBody:      `{"userId":"a1b2c3d4e5f6a7b8","tokenAddress":"0xabc"}`,
			mockSetup:    func(svc *MockBotCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Name and token address are required"}`,
		},
		{
			name:         "missing token address",
			reqBody:      `{"userId":"a1b2c3d4e5f6a7b8","name":"My Sniper"}`,
			mockSetup:    func(svc *MockBotCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Name and token address are required"}`,
		},
		{
			name:    "unknown identifier",
			reqBody: `{"userId":"ffffffffffffffff","name":"My Sniper","tokenAddress":"0xabc"}`,
			mockSetup: func(svc *MockBotCreator) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"User not found"}`,
		},
		{
			name:    "internal error",
			reqBody: `{"userId":"a1b2c3d4e5f6a7b8","name":"My Sniper","tokenAddress":"0xabc"}`,
			mockSetup: func(svc *MockBotCreator) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBotCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCreateBotHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/bots", strings.NewReader(tt.reqBody))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedCode == http.StatusCreated {
				var saved models.BotConfigDB
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
				assert.Equal(t, botID, saved.BotID)
				assert.Equal(t, "My Sniper", saved.Name)
			}
		})
	}
}
