package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tradebothq/tradebot-hq/internal/models"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

func TestListBotsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		authHeader   string
		mockSetup    func(svc *MockBotLister, tokener *MockBotsTokener)
		expectedCode int
		checkBody    func(t *testing.T, body string)
	}{
		{
			name:   "query parameter identifier",
			target: "/api/bots?userId=a1b2c3d4e5f6a7b8",
			mockSetup: func(svc *MockBotLister, tokener *MockBotsTokener) {
				svc.EXPECT().
					List(gomock.Any(), "a1b2c3d4e5f6a7b8").
					Return([]models.BotConfigDB{
						{BotID: uuid.New(), UserID: "a1b2c3d4e5f6a7b8", Name: "Alpha"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"Alpha"`)
			},
		},
		{
			name:       "bearer token identifier",
			target:     "/api/bots",
			authHeader: "Bearer some-token",
			mockSetup: func(svc *MockBotLister, tokener *MockBotsTokener) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("some-token", nil)
				tokener.EXPECT().
					GetUserID(gomock.Any(), "some-token").
					Return("a1b2c3d4e5f6a7b8", nil)
				svc.EXPECT().
					List(gomock.Any(), "a1b2c3d4e5f6a7b8").
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				// nil result is normalized to an empty JSON array
				assert.JSONEq(t, `[]`, body)
			},
		},
		{
			name:   "no identifier at all",
			target: "/api/bots",
			mockSetup: func(svc *MockBotLister, tokener *MockBotsTokener) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no authorization header"))
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"User ID is required"}`, body)
			},
		},
		{
			name:       "invalid bearer token",
			target:     "/api/bots",
			authHeader: "Bearer bad-token",
			mockSetup: func(svc *MockBotLister, tokener *MockBotsTokener) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("bad-token", nil)
				tokener.EXPECT().
					GetUserID(gomock.Any(), "bad-token").
					Return("", errors.New("invalid token"))
			},
			expectedCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"User ID is required"}`, body)
			},
		},
		{
			name:   "unknown identifier",
			target: "/api/bots?userId=ffffffffffffffff",
			mockSetup: func(svc *MockBotLister, tokener *MockBotsTokener) {
				svc.EXPECT().
					List(gomock.Any(), "ffffffffffffffff").
					Return(nil, services.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"User not found"}`, body)
			},
		},
		{
			name:   "internal error",
			target: "/api/bots?userId=a1b2c3d4e5f6a7b8",
			mockSetup: func(svc *MockBotLister, tokener *MockBotsTokener) {
				svc.EXPECT().
					List(gomock.Any(), "a1b2c3d4e5f6a7b8").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"error":"Internal server error"}`, body)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBotLister(ctrl)
			mockTokener := NewMockBotsTokener(ctrl)
			tt.mockSetup(mockSvc, mockTokener)

			handler := NewListBotsHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			tt.checkBody(t, w.Body.String())
		})
	}
}
