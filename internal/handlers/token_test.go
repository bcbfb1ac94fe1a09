package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

func TestTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      string
		mockSetup    func(svc *MockTokenIssuer)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			reqBody: `{"userId":"a1b2c3d4e5f6a7b8"}`,
			mockSetup: func(svc *MockTokenIssuer) {
				svc.EXPECT().
					IssueToken(gomock.Any(), "a1b2c3d4e5f6a7b8").
					Return("signed-token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"token":"signed-token"}`,
		},
		{
			name:         "missing identifier",
			reqBody:      `{}`,
			mockSetup:    func(svc *MockTokenIssuer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"User ID is required"}`,
		},
		{
			name:         "malformed body",
			reqBody:      `{"userId":`,
			mockSetup:    func(svc *MockTokenIssuer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"User ID is required"}`,
		},
		{
			name:    "unknown identifier",
			reqBody: `{"userId":"ffffffffffffffff"}`,
			mockSetup: func(svc *MockTokenIssuer) {
				svc.EXPECT().
					IssueToken(gomock.Any(), "ffffffffffffffff").
					Return("", services.ErrAccountNotFound)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Invalid user ID"}`,
		},
		{
			name:    "internal error",
			reqBody: `{"userId":"a1b2c3d4e5f6a7b8"}`,
			mockSetup: func(svc *MockTokenIssuer) {
				svc.EXPECT().
					IssueToken(gomock.Any(), "a1b2c3d4e5f6a7b8").
					Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTokenIssuer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewTokenHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(tt.reqBody))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
