// Package client is the Go SDK for the dashboard proxy: CRUD passthrough,
// statistics aggregation, and PDF export. It talks to the BFF, never to the
// external backend directly.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/infrastructure/backend"
)

// DefaultBaseURL is the local proxy origin used when none is given.
const DefaultBaseURL = "http://localhost:8080"

// Client is a dashboard API client. Each Client owns its transport; two
// instances share no state.
type Client struct {
	api *backend.Client
	log zerolog.Logger
}

// Option customises a Client.
type Option func(*options)

type options struct {
	timeout time.Duration
	log     zerolog.Logger
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New returns a Client for the proxy at baseURL, defaulting to
// DefaultBaseURL when empty.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		api: backend.NewClient(baseURL, map[string]string{
			"Content-Type": "application/json",
		}, o.timeout),
		log: o.log,
	}
}

// GetAllUsers returns every user known to the backend.
func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a single user by ID.
func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser submits a new user. UserFormData always carries middleName on
// the wire, as an empty string when unset, which is the shape the backend
// expects.
func (c *Client) CreateUser(ctx context.Context, data domain.UserFormData) (*domain.User, error) {
	resp, err := c.api.Post(ctx, "/users", data)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("decode created user: %w", err)
	}
	return &user, nil
}

// UpdateUser sends a partial update. Only the fields set on patch appear in
// the request body; absent fields are neither sent nor nulled.
func (c *Client) UpdateUser(ctx context.Context, id int, patch domain.UserUpdate) (*domain.User, error) {
	resp, err := c.api.Put(ctx, fmt.Sprintf("/users/%d", id), patch)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("decode updated user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes a user by ID.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, fmt.Sprintf("/users/%d", id))
	return err
}

// GetAllRoles returns the role reference data.
func (c *Client) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := c.getJSON(ctx, "/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.api.Get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
