package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tradebothq/tradebot-hq/internal/models"
	"github.com/tradebothq/tradebot-hq/internal/services"
)

func TestAuthService_IssueToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := "a1b2c3d4e5f6a7b8"

	tests := []struct {
		name      string
		mockSetup func(accounts *services.MockAccountReader, jwt *services.MockJWTGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name: "success",
			mockSetup: func(accounts *services.MockAccountReader, jwt *services.MockJWTGenerator) {
				accounts.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.AccountDB{UserID: userID}, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("signed-token", nil)
			},
			wantToken: "signed-token",
		},
		{
			name: "account missing",
			mockSetup: func(accounts *services.MockAccountReader, jwt *services.MockJWTGenerator) {
				accounts.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)
			},
			wantErr: services.ErrAccountNotFound,
		},
		{
			name: "account lookup error",
			mockSetup: func(accounts *services.MockAccountReader, jwt *services.MockJWTGenerator) {
				accounts.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name: "token generation error",
			mockSetup: func(accounts *services.MockAccountReader, jwt *services.MockJWTGenerator) {
				accounts.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.AccountDB{UserID: userID}, nil)
				jwt.EXPECT().Generate(gomock.Any(), userID).Return("", errors.New("signing error"))
			},
			wantErr: errors.New("signing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAccounts := services.NewMockAccountReader(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			tt.mockSetup(mockAccounts, mockJWT)

			svc := services.NewAuthService(mockAccounts, mockJWT)

			token, err := svc.IssueToken(context.Background(), userID)
			if tt.wantErr != nil {
				assert.Empty(t, token)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
