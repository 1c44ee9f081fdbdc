// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agent implements the client side of the question-answering
// exchange protocol.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/bsi-agent-tui/internal/model"
)

// Configuration constants for the backend client.
const (
	// DefaultTimeout is the default timeout for one exchange.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 4 * 1024 * 1024 // 4MB limit

	// userAgent identifies the client to the backend.
	userAgent = "bsi-agent/0.1"
)

// commFailurePrefix marks bot messages synthesized from transport-level
// failures. Tests and the UI rely on it being present.
const commFailurePrefix = "Could not reach the assistant"

// Client talks to the question-answering backend.
//
// PERFORMANCE: a single pooled http.Client is reused for all exchanges.
type Client struct {
	mu         sync.RWMutex
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		timeout:  DefaultTimeout,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// WithTimeout sets the per-exchange timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	c.httpClient.Timeout = timeout
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Endpoint returns the configured backend URL.
func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// SetEndpoint changes the backend URL. Safe to call while an exchange is in
// flight; the in-flight request keeps the endpoint it started with.
func (c *Client) SetEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endpoint = strings.TrimSuffix(endpoint, "/")
}

// Ask performs a single exchange: one POST, no retries.
//
// History must be in chronological order (oldest first) and must not include
// the question itself; the question travels in its own field.
func (c *Client) Ask(ctx context.Context, question string, history []model.Message) (string, error) {
	reqBody := AskRequest{
		Question: question,
		History:  history,
	}
	if reqBody.History == nil {
		reqBody.History = []model.Message{}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		// An oversized diagnostic body must not mask the status code.
		if errors.Is(err, ErrResponseTooLarge) && (resp.StatusCode < 200 || resp.StatusCode > 299) {
			return "", &ServerError{
				Status: resp.StatusCode,
				Body:   ErrResponseTooLarge.Error(),
			}
		}
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ServerError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	var askResp AskResponse
	if err := json.Unmarshal(body, &askResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingAnswer, err)
	}

	// A 2xx body without an answer is treated as a failure rather than
	// rendered as an empty bubble.
	if askResp.Answer == "" {
		return "", ErrMissingAnswer
	}

	return askResp.Answer, nil
}

// Exchange resolves one question/answer round trip to exactly one bot
// message. It never returns an error: transport failures, server errors and
// malformed bodies are all folded into the text of the returned message, so
// the caller's completion path is identical for every outcome.
func (c *Client) Exchange(ctx context.Context, question string, history []model.Message) model.Message {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	answer, err := c.Ask(ctx, question, history)
	if err != nil {
		return model.NewBotMessage(describeFailure(err))
	}
	return model.NewBotMessage(answer)
}

// IsFailureText reports whether a bot message text came from a failed
// exchange rather than a real answer. The UI styles such messages as errors.
func IsFailureText(text string) bool {
	return strings.HasPrefix(text, commFailurePrefix) ||
		strings.HasPrefix(text, "The assistant returned an error")
}

// describeFailure turns an exchange error into user-facing bot message text.
func describeFailure(err error) string {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		detail := srvErr.Body
		if detail == "" {
			detail = http.StatusText(srvErr.Status)
		}
		return fmt.Sprintf("The assistant returned an error (HTTP %d): %s", srvErr.Status, detail)
	}
	return fmt.Sprintf("%s: %v", commFailurePrefix, err)
}

// readResponse reads the response body with a size limit.
//
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	// Read one byte past the limit so a body of exactly MaxResponseSize
	// bytes is still accepted.
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, ErrResponseTooLarge
	}
	return body, nil
}
