package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/arturyumaev/casinodesk/internal/model"
)

// Client is an HTTP client for the game service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client from the given config. A missing base URL does not
// fail construction; fetches degrade to empty data and mutations report
// model.ErrNoBaseURL when attempted.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL(), "/")
	if baseURL == "" {
		logger.Error("API base URL is not configured; set CASINODESK_INTERNAL_API_URL or CASINODESK_PUBLIC_API_URL")
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// APIError is an error response from the game service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the service's error payload shape.
type errorBody struct {
	Error string `json:"error"`
}

// do performs a request against the service. Responses are always fetched
// fresh; the service's answers are never cached.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	if c.baseURL == "" {
		return model.ErrNoBaseURL
	}

	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if err := json.Unmarshal(respBody, &eb); err == nil && eb.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: eb.Error}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Users fetches the full player collection. With no base URL configured it
// returns an empty collection so the grid renders degraded rather than
// crashing.
func (c *Client) Users(ctx context.Context) ([]model.PlayerRecord, error) {
	if c.baseURL == "" {
		c.logger.Warn("no API base URL; returning empty player collection")
		return []model.PlayerRecord{}, nil
	}

	var users []model.PlayerRecord
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.PlayerRecord{}
	}
	return users, nil
}

// SetRole requests a role change for one player.
func (c *Client) SetRole(ctx context.Context, id model.RecordID, role model.Role) error {
	body := map[string]model.Role{"role": role}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/users/%s/role", id), body, nil)
}

// GrantReward credits play money to one player.
func (c *Client) GrantReward(ctx context.Context, id model.RecordID, amount float64) error {
	body := map[string]float64{"amount": amount}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/users/%s/reward", id), body, nil)
}

// FetchAssets retrieves the current asset configuration document.
func (c *Client) FetchAssets(ctx context.Context) (*model.AssetConfig, error) {
	var cfg model.AssetConfig
	if err := c.do(ctx, http.MethodGet, "/api/assets", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveAssets submits the whole document and returns the server's
// (possibly normalized) copy.
func (c *Client) SaveAssets(ctx context.Context, cfg *model.AssetConfig) (*model.AssetConfig, error) {
	var saved model.AssetConfig
	if err := c.do(ctx, http.MethodPost, "/api/assets", cfg, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ResetAssets asks the server for its default document.
func (c *Client) ResetAssets(ctx context.Context) (*model.AssetConfig, error) {
	var defaults model.AssetConfig
	if err := c.do(ctx, http.MethodPost, "/api/assets/reset", nil, &defaults); err != nil {
		return nil, err
	}
	return &defaults, nil
}

// API is the subset of the game service the console's services depend on.
type API interface {
	Users(ctx context.Context) ([]model.PlayerRecord, error)
	SetRole(ctx context.Context, id model.RecordID, role model.Role) error
	GrantReward(ctx context.Context, id model.RecordID, amount float64) error
	FetchAssets(ctx context.Context) (*model.AssetConfig, error)
	SaveAssets(ctx context.Context, cfg *model.AssetConfig) (*model.AssetConfig, error)
	ResetAssets(ctx context.Context) (*model.AssetConfig, error)
}

var _ API = (*Client)(nil)
