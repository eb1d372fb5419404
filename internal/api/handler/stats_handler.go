package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
)

// StatsHandler relays the three raw statistics endpoints. Each failure body
// is a zeroed/empty shape of the success body, so chart components degrade
// instead of crashing.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Active handles GET /stats/active.
//
// @Summary      Active vs inactive user counts
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.ActiveCounts
// @Failure      500  {object}  activeStatsFallback
// @Router       /stats/active [get]
func (h *StatsHandler) Active(c echo.Context) error {
	counts, err := h.service.ActiveCounts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, activeStatsFallback{
			Message: "Error fetching active/inactive stats",
		})
	}
	return c.JSON(http.StatusOK, counts)
}

// Roles handles GET /stats/roles.
//
// @Summary      User counts per role
// @Tags         stats
// @Produce      json
// @Success      200  {array}  domain.RoleCount
// @Failure      500  {array}  domain.RoleCount
// @Router       /stats/roles [get]
func (h *StatsHandler) Roles(c echo.Context) error {
	dist, err := h.service.RoleDistribution(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []domain.RoleCount{})
	}
	if dist == nil {
		dist = []domain.RoleCount{}
	}
	return c.JSON(http.StatusOK, dist)
}

// Registrations handles GET /stats/registration.
//
// @Summary      Monthly registration counts
// @Tags         stats
// @Produce      json
// @Success      200  {array}  domain.MonthlyRegistration
// @Failure      500  {array}  domain.MonthlyRegistration
// @Router       /stats/registration [get]
func (h *StatsHandler) Registrations(c echo.Context) error {
	regs, err := h.service.MonthlyRegistrations(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []domain.MonthlyRegistration{})
	}
	if regs == nil {
		regs = []domain.MonthlyRegistration{}
	}
	return c.JSON(http.StatusOK, regs)
}
