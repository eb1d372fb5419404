// Package backend wraps outbound HTTP access to the external user backend.
// The Client carries its own base URL, default headers, and http.Client, so
// independently constructed instances share no state.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/userdash/user-dashboard/internal/api/metrics"
	"github.com/userdash/user-dashboard/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client implements ports.Gateway over net/http.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
}

// NewClient constructs a Client for the given origin. headers are applied to
// every outbound request; the map is copied, so the caller may reuse it.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, headers map[string]string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[k] = v
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		headers:    h,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Get(ctx context.Context, path string) (*ports.UpstreamResponse, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*ports.UpstreamResponse, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*ports.UpstreamResponse, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*ports.UpstreamResponse, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*ports.UpstreamResponse, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &ports.UpstreamError{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &ports.UpstreamError{Message: err.Error()}
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, &ports.UpstreamError{Message: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ports.UpstreamError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &ports.UpstreamError{
			Status:  resp.StatusCode,
			Message: extractMessage(data, resp.StatusCode),
		}
	}

	return &ports.UpstreamResponse{
		Status: resp.StatusCode,
		Body:   data,
		Header: resp.Header,
	}, nil
}

// extractMessage pulls the backend's {"message": ...} field out of an error
// body, falling back to the HTTP status text, then to a generic message.
func extractMessage(body []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "upstream request failed"
}
