package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/userdash/user-dashboard/internal/core/domain"
)

// UserStats issues the three statistics reads concurrently and combines them
// into one dashboard shape:
//   - role names outside the fixed Admin/User/Guest set are dropped,
//   - monthly entries are reshaped to {month: "YYYY-MM", count},
//     chronological order preserved as returned, no gap-filling.
//
// If any of the three reads fails, the whole aggregation fails soft: the
// zero-valued stats are returned with a nil error, so dashboards render an
// empty state instead of crashing. The failure is logged, as silent zeros
// can otherwise mask a real outage.
func (c *Client) UserStats(ctx context.Context) (domain.UserStats, error) {
	var (
		counts domain.ActiveCounts
		dist   []domain.RoleCount
		regs   []domain.MonthlyRegistration
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.getJSON(gctx, "/stats/active", &counts) })
	g.Go(func() error { return c.getJSON(gctx, "/stats/roles", &dist) })
	g.Go(func() error { return c.getJSON(gctx, "/stats/registration", &regs) })

	if err := g.Wait(); err != nil {
		c.log.Error().Err(err).Msg("stats aggregation degraded to empty state")
		return domain.EmptyUserStats(), nil
	}

	stats := domain.UserStats{
		Active:               counts.Active,
		Inactive:             counts.Inactive,
		MonthlyRegistrations: make([]domain.MonthlyCount, 0, len(regs)),
	}
	for _, rc := range dist {
		switch rc.Role {
		case domain.RoleAdmin:
			stats.RoleDistribution.Admin = rc.Count
		case domain.RoleUser:
			stats.RoleDistribution.User = rc.Count
		case domain.RoleGuest:
			stats.RoleDistribution.Guest = rc.Count
		}
	}
	for _, r := range regs {
		stats.MonthlyRegistrations = append(stats.MonthlyRegistrations, domain.MonthlyCount{
			Month: r.MonthKey(),
			Count: r.Count,
		})
	}
	return stats, nil
}
