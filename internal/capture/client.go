package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Sebv03/captura/internal/logger"
	"github.com/Sebv03/captura/pkg/product"
)

// capturePath is the capture endpoint, relative to the API base URL.
const capturePath = "/api/productos/capture"

// Client posts extracted records to the capture API.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

// ClientConfig holds capture API settings.
type ClientConfig struct {
	BaseURL string // e.g. http://localhost:3000
	APIKey  string // sent as X-API-Key
	Timeout time.Duration
}

// NewClient creates a capture API client with retrying transport.
func NewClient(cfg ClientConfig) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil // slog below instead of retryablehttp's own logger
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    rc,
	}
}

// captureResponse is the capture endpoint's reply.
type captureResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"` // "created" or "updated"
	Error   string `json:"error"`
}

// Send validates and posts a record. Returns the server's action tag
// ("created"/"updated") on success.
func (c *Client) Send(ctx context.Context, rec *product.Product) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+capturePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("capture request failed: %w", err)
	}
	defer resp.Body.Close()

	var reply captureResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("failed to decode capture response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", fmt.Errorf("capture API rejected the API key")
	case resp.StatusCode != http.StatusOK:
		if reply.Error != "" {
			return "", fmt.Errorf("capture API error (%d): %s", resp.StatusCode, reply.Error)
		}
		return "", fmt.Errorf("capture API error: status %d", resp.StatusCode)
	}

	logger.Debug("record captured",
		"action", reply.Action,
		"host", rec.SiteHost,
		"strategy", rec.Strategy)
	return reply.Action, nil
}
