package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource supplies the stored credential token. An empty token means no
// Authorization header is sent.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is a thin JSON-over-HTTP wrapper around the backend REST API.
//
// Every request carries Content-Type: application/json, an X-Request-Id for
// log correlation, and Authorization: Bearer <token> when the token source
// holds one. Caller-supplied headers are applied last, so they win on
// conflict. The wrapper does not retry, cache, or time out.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{}, tokens: tokens}
}

// Call performs an API request and decodes the JSON response into out (when
// out is non-nil). body, when non-nil, is JSON-encoded into the request.
func (c *Client) Call(ctx context.Context, method, endpoint string, body, out any) error {
	return c.CallWithHeaders(ctx, method, endpoint, body, out, nil)
}

// CallWithHeaders is Call with extra request headers. Caller values override
// the defaults, including Content-Type and Authorization.
func (c *Client) CallWithHeaders(ctx context.Context, method, endpoint string, body, out any, headers map[string]string) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token, err := c.tokens.Token(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the backend's message field from an error body,
// falling back to a generic text when the body is not usable.
func errorMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Message == "" {
		return fallbackMessage
	}
	return payload.Message
}
