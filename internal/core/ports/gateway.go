package ports

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// UpstreamResponse is a successful (2xx/3xx) backend response.
type UpstreamResponse struct {
	Status int
	Body   []byte
	Header http.Header
}

// UpstreamError describes a failed backend call. Status is the HTTP status
// when a response was received, and 0 when the failure happened before one
// arrived (connection refused, timeout, body read error).
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream: %s", e.Message)
	}
	return fmt.Sprintf("upstream: %d %s", e.Status, e.Message)
}

// Gateway is the outbound transport to the external user backend. A path may
// carry a query string. Bodies are JSON-encoded; nil means no body. Calls
// failing for any reason return a *UpstreamError.
type Gateway interface {
	Get(ctx context.Context, path string) (*UpstreamResponse, error)
	Post(ctx context.Context, path string, body any) (*UpstreamResponse, error)
	Put(ctx context.Context, path string, body any) (*UpstreamResponse, error)
	Delete(ctx context.Context, path string) (*UpstreamResponse, error)
}

// UpstreamStatus extracts the HTTP status from an upstream error chain,
// returning 0 when err is not an *UpstreamError or no response was received.
func UpstreamStatus(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Status
	}
	return 0
}
