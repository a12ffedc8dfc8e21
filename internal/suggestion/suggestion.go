// Package suggestion calls the external AI suggestion service to produce
// a short contextual tip after a calculation. The call is best-effort:
// any failure yields a static calculator-specific fallback sentence and
// never affects the numeric result.
package suggestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Husnain585/Calculator-sub000/internal/config"
	"go.uber.org/zap"
)

// Client is the suggestion service client.
type Client struct {
	logger     *zap.Logger
	url        string
	apiKey     string
	enabled    bool
	httpClient *http.Client
}

// NewClient constructs a Client from the suggestion configuration. A nil
// logger is replaced with a no-op logger.
func NewClient(logger *zap.Logger, cfg config.SuggestionConfig) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		logger:  logger,
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		enabled: cfg.Enabled && cfg.URL != "",
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

type suggestionRequest struct {
	Calculator string      `json:"calculator"`
	Result     interface{} `json:"result"`
}

type suggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// Suggest asks the suggestion service for a tip about the given
// calculation. Every failure path returns the calculator's fallback
// sentence; errors are logged at debug level only.
func (c *Client) Suggest(ctx context.Context, calculator string, result interface{}) string {
	if !c.enabled {
		return Fallback(calculator)
	}

	tip, err := c.call(ctx, calculator, result)
	if err != nil {
		c.logger.Debug("suggestion service unavailable, using fallback",
			zap.String("op", "suggestion.Suggest"),
			zap.String("calculator", calculator),
			zap.Error(err),
		)
		return Fallback(calculator)
	}
	return tip
}

func (c *Client) call(ctx context.Context, calculator string, result interface{}) (string, error) {
	payload, err := json.Marshal(suggestionRequest{Calculator: calculator, Result: result})
	if err != nil {
		return "", fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var decoded suggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode suggestion response: %w", err)
	}
	if strings.TrimSpace(decoded.Suggestion) == "" {
		return "", fmt.Errorf("suggestion service returned an empty suggestion")
	}
	return decoded.Suggestion, nil
}

// Timeout exposes the configured client timeout, mainly for tests.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}
