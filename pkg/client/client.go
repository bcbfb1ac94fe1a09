// Package client is a Go client for the TradeBot HQ API. Dashboard
// reads degrade to a zeroed default snapshot when the backend is
// unreachable, keeping callers usable without a server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tradebothq/tradebot-hq/internal/models"
)

// Client calls the TradeBot HQ HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewWithHTTPClient creates a Client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateUser requests a new account and returns the issued identifier.
func (c *Client) CreateUser(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users", bytes.NewBufferString("{}"))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return "", fmt.Errorf("create user: %s", errResp.Error)
		}
		return "", fmt.Errorf("create user: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.UserID, nil
}

// VerifyUser reports whether the identifier belongs to a known account.
// An unknown identifier is not an error.
func (c *Client) VerifyUser(ctx context.Context, userID string) (bool, error) {
	payload, err := json.Marshal(map[string]string{"userId": userID})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users/verify", bytes.NewBuffer(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body struct {
			Valid bool `json:"valid"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, err
		}
		return body.Valid, nil
	case http.StatusNotFound:
		return false, nil
	default:
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return false, fmt.Errorf("verify user: %s", errResp.Error)
		}
		return false, fmt.Errorf("verify user: unexpected status %d", resp.StatusCode)
	}
}

// GetDashboard fetches the account's dashboard snapshot. When the
// backend is unreachable, responds with an error status, or returns an
// unparsable body, a zeroed default snapshot is substituted and
// degraded is reported as true.
func (c *Client) GetDashboard(ctx context.Context, userID string) (snapshot *models.DashboardSnapshot, degraded bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/dashboard?userId="+userID, nil)
	if err != nil {
		return DefaultSnapshot(), true
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return DefaultSnapshot(), true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultSnapshot(), true
	}

	var s models.DashboardSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return DefaultSnapshot(), true
	}
	return &s, false
}

// DefaultSnapshot is the zeroed snapshot served in degraded mode.
func DefaultSnapshot() *models.DashboardSnapshot {
	return &models.DashboardSnapshot{
		Bots:         []models.Bot{},
		Transactions: []models.Transaction{},
	}
}
