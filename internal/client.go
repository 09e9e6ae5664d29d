package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single backend round trip
const DefaultTimeout = 60 * time.Second

// Asker is the backend as seen by a transcript
type Asker interface {
	// Ask resolves a question. The error is a *TransportError or an
	// *ApplicationError; exactly one of the return values is non-nil.
	Ask(ctx context.Context, question, sessionID string) (*Result, error)
	// Clear resets server-side conversation state. Failures are swallowed.
	Clear(ctx context.Context, sessionID string)
}

// Client talks to the natural-language query backend over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ask posts a question for the given session
func (c *Client) Ask(ctx context.Context, question, sessionID string) (*Result, error) {
	endpoint := c.baseURL + "/ask"

	body, err := json.Marshal(AskRequest{Question: question, SessionID: sessionID})
	if err != nil {
		return nil, &TransportError{Op: "ask", URL: endpoint, Err: err}
	}

	LogDebug("POST %s session=%s", endpoint, sessionID)
	var resp AskResponse
	if err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(body), &resp); err != nil {
		terr := &TransportError{Op: "ask", URL: endpoint, Err: err}
		LogWarn("%v", terr)
		return nil, terr
	}

	result, err := resp.ToResult()
	if err != nil {
		LogDebug("backend reported failure: %v", err)
		return nil, err
	}
	LogDebug("answer: rows=%d cached=%t", result.RowCount, result.Cached)
	return result, nil
}

// Clear asks the backend to forget the session's conversational context.
// It is best effort: every failure is logged and dropped.
func (c *Client) Clear(ctx context.Context, sessionID string) {
	endpoint := c.baseURL + "/clear/" + url.PathEscape(sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		LogDebug("clear %s: %v", sessionID, err)
		return
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		LogDebug("clear %s: %v", sessionID, err)
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	LogDebug("clear %s: %s", sessionID, resp.Status)
}

// Health returns the status reported by GET /health
func (c *Client) Health(ctx context.Context) (string, error) {
	endpoint := c.baseURL + "/health"

	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return "", &TransportError{Op: "health", URL: endpoint, Err: err}
	}
	return resp.Status, nil
}

// do performs a request and decodes a JSON body. The status code is not
// checked: an error status with a JSON body is still a parseable answer.
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}
