package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/userdash/user-dashboard/internal/api/metrics"
	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
)

// RoleService relays the backend's role reference data.
// The backend exposes it under /Roles (capitalized).
type RoleService struct {
	gateway ports.Gateway
	logger  zerolog.Logger
}

func NewRoleService(gateway ports.Gateway, logger zerolog.Logger) *RoleService {
	return &RoleService{gateway: gateway, logger: logger}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	resp, err := s.gateway.Get(ctx, "/Roles")
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("roles", "error").Inc()
		s.logger.Error().Err(err).Msg("list roles failed")
		return nil, err
	}

	var roles []domain.Role
	if err := json.Unmarshal(resp.Body, &roles); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("roles", "error").Inc()
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("roles", "ok").Inc()
	return roles, nil
}
