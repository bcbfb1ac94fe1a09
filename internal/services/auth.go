package services

import (
	"context"

	"github.com/tradebothq/tradebot-hq/internal/logger"
)

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}

// AuthService exchanges a valid account identifier for a session token.
// Possession of the identifier is the only credential checked.
type AuthService struct {
	accounts AccountReader
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(accounts AccountReader, jwt JWTGenerator) *AuthService {
	return &AuthService{
		accounts: accounts,
		jwt:      jwt,
	}
}

// IssueToken returns a signed token for an existing account.
func (svc *AuthService) IssueToken(ctx context.Context, userID string) (string, error) {
	account, err := svc.accounts.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up account", "userID", userID, "err", err)
		return "", err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "userID", userID)
		return "", ErrAccountNotFound
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
