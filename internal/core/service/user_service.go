package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/userdash/user-dashboard/internal/api/metrics"
	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
)

// UserService proxies user CRUD to the external backend. It owns the mapping
// of upstream 404s to domain.ErrUserNotFound so raw backend bodies never
// reach the API layer.
type UserService struct {
	gateway ports.Gateway
	logger  zerolog.Logger
}

func NewUserService(gateway ports.Gateway, logger zerolog.Logger) *UserService {
	return &UserService{gateway: gateway, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	resp, err := s.gateway.Get(ctx, "/users")
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("users", "error").Inc()
		s.logger.Error().Err(err).Msg("list users failed")
		return nil, err
	}

	var users []domain.User
	if err := json.Unmarshal(resp.Body, &users); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("users", "error").Inc()
		return nil, fmt.Errorf("decode users: %w", err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("users", "ok").Inc()
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	resp, err := s.gateway.Get(ctx, fmt.Sprintf("/users/%d", id))
	if err != nil {
		return nil, s.mapUserError(err, "get user", id)
	}

	var user domain.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("users", "error").Inc()
		return nil, fmt.Errorf("decode user: %w", err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("users", "ok").Inc()
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, data domain.UserFormData) (*domain.User, error) {
	resp, err := s.gateway.Post(ctx, "/users", data)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("users", "error").Inc()
		s.logger.Error().Err(err).Str("email", data.Email).Msg("create user failed")
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("users", "error").Inc()
		return nil, fmt.Errorf("decode created user: %w", err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("users", "ok").Inc()
	s.logger.Info().Int("user_id", user.ID).Msg("user created")
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id int, patch domain.UserUpdate) (*domain.User, error) {
	resp, err := s.gateway.Put(ctx, fmt.Sprintf("/users/%d", id), patch)
	if err != nil {
		return nil, s.mapUserError(err, "update user", id)
	}

	var user domain.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("users", "error").Inc()
		return nil, fmt.Errorf("decode updated user: %w", err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("users", "ok").Inc()
	s.logger.Info().Int("user_id", id).Msg("user updated")
	return &user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if _, err := s.gateway.Delete(ctx, fmt.Sprintf("/users/%d", id)); err != nil {
		return s.mapUserError(err, "delete user", id)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("users", "ok").Inc()
	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}

// mapUserError normalizes an upstream failure: 404 becomes the domain
// sentinel, everything else is passed through for the handler to relay.
func (s *UserService) mapUserError(err error, op string, id int) error {
	if ports.UpstreamStatus(err) == http.StatusNotFound {
		metrics.UpstreamRequestsTotal.WithLabelValues("users", "not_found").Inc()
		return domain.ErrUserNotFound
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("users", "error").Inc()
	s.logger.Error().Err(err).Int("user_id", id).Msg(op + " failed")
	return err
}
