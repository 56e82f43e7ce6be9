// Package atlas implements a client for the MongoDB Atlas App Services
// Admin API: credential exchange and paginated log retrieval.
package atlas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public Admin API endpoint.
const DefaultBaseURL = "https://services.cloud.mongodb.com/api/admin/v3.0"

const (
	defaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of an error response body is kept.
	maxErrorBody = 4 << 10
)

// Client talks to the Admin API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	// BaseURL is the Admin API root, without trailing slash.
	BaseURL string

	// HTTPClient performs all outbound requests. Replace it to control
	// per-request deadlines or transport settings.
	HTTPClient *http.Client

	// TokenCache, when set, lets Authenticate reuse a live access token
	// for the same public key within this process. Nil disables caching.
	TokenCache *TokenCache

	logger *slog.Logger
}

// NewClient creates an Admin API client. An empty baseURL selects
// DefaultBaseURL; a nil logger falls back to slog.Default().
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	APIKey   string `json:"apiKey"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate exchanges an Atlas programmatic API key pair for a bearer
// token. Both keys are treated as opaque; format validation is the CLI's
// concern. Any non-2xx status or a response without an access_token field
// is a hard failure. There are no retries: nothing has been fetched yet,
// so the caller can simply re-run.
func (c *Client) Authenticate(ctx context.Context, publicKey, privateKey string) (string, error) {
	if publicKey == "" || privateKey == "" {
		return "", ErrEmptyCredentials
	}

	if c.TokenCache != nil {
		if token, ok := c.TokenCache.Get(publicKey); ok {
			c.logger.Debug("reusing cached access token", "public_key", publicKey)
			return token, nil
		}
	}

	body, err := json.Marshal(loginRequest{Username: publicKey, APIKey: privateKey})
	if err != nil {
		return "", fmt.Errorf("encode login request: %w", err)
	}

	url := c.BaseURL + "/auth/providers/mongodb-cloud/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("login: %w", newStatusError(resp))
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.AccessToken == "" {
		return "", ErrNoAccessToken
	}

	if c.TokenCache != nil {
		c.TokenCache.Set(publicKey, lr.AccessToken)
	}

	c.logger.Debug("authenticated against Admin API")
	return lr.AccessToken, nil
}

// LogPager builds a retrieval session for one application's logs using
// this client's base URL, HTTP client and logger.
func (c *Client) LogPager(projectID, appID, accessToken string, filter Filter) *LogPager {
	return newLogPager(c.BaseURL, projectID, appID, accessToken, filter, c.HTTPClient, c.logger)
}

// newStatusError reads a bounded amount of the response body into a
// StatusError for diagnosis.
func newStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
