// Package clickup implements a minimal client for the ClickUp REST API (v2).
package clickup

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

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"

	"github.com/taskbridge/clickup-mcp/internal/logging"
)

// DefaultBaseURL is the public ClickUp v2 API endpoint.
const DefaultBaseURL = "https://api.clickup.com/api/v2"

// Client talks to the ClickUp API. ClickUp authenticates with the raw token
// in the Authorization header, without a scheme prefix.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger attaches a logger to the client.
func WithLogger(log logging.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New builds a Client for the given base URL and token. An empty base URL
// selects the public endpoint.
func New(baseURL, token string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logging.New(logr.Discard()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTasks fetches the tasks of a list and returns the raw JSON array under
// the response's "tasks" key, byte-for-byte as the API sent it.
func (c *Client) ListTasks(ctx context.Context, listID string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/list/%s/task", url.PathEscape(listID)), nil)
	if err != nil {
		return nil, err
	}
	tasks := gjson.GetBytes(body, "tasks")
	if !tasks.Exists() || !tasks.IsArray() {
		return nil, fmt.Errorf("clickup response is missing the tasks array")
	}
	return json.RawMessage(tasks.Raw), nil
}

// CreateTask creates a task in a list and returns the full created-task
// object exactly as the API sent it.
func (c *Client) CreateTask(ctx context.Context, listID string, params TaskParams) (json.RawMessage, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode task params: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/list/%s/task", url.PathEscape(listID)), payload)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clickup %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read clickup response: %w", err)
	}
	c.log.Debug("clickup response", "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("clickup returned malformed JSON (status %d)", resp.StatusCode)
	}
	return body, nil
}
