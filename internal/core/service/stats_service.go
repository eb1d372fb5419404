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

// StatsService relays the three raw statistics reads from the backend's
// /Stats endpoints. No aggregation happens here; the client SDK combines
// the three responses into a domain.UserStats.
type StatsService struct {
	gateway ports.Gateway
	logger  zerolog.Logger
}

func NewStatsService(gateway ports.Gateway, logger zerolog.Logger) *StatsService {
	return &StatsService{gateway: gateway, logger: logger}
}

func (s *StatsService) ActiveCounts(ctx context.Context) (*domain.ActiveCounts, error) {
	var counts domain.ActiveCounts
	if err := s.fetch(ctx, "/Stats/active", &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (s *StatsService) RoleDistribution(ctx context.Context) ([]domain.RoleCount, error) {
	var dist []domain.RoleCount
	if err := s.fetch(ctx, "/Stats/roles", &dist); err != nil {
		return nil, err
	}
	return dist, nil
}

func (s *StatsService) MonthlyRegistrations(ctx context.Context) ([]domain.MonthlyRegistration, error) {
	var regs []domain.MonthlyRegistration
	if err := s.fetch(ctx, "/Stats/registration", &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *StatsService) fetch(ctx context.Context, path string, out any) error {
	resp, err := s.gateway.Get(ctx, path)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("stats", "error").Inc()
		s.logger.Error().Err(err).Str("path", path).Msg("stats read failed")
		return err
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("stats", "error").Inc()
		return fmt.Errorf("decode %s: %w", path, err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("stats", "ok").Inc()
	return nil
}
