package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
)

// RoleHandler relays the backend's role reference data. On failure the body
// is an empty array so table and form widgets always have something to bind.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /roles.
//
// @Summary      List all roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.Role
// @Failure      500  {array}  domain.Role
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, []domain.Role{})
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	return c.JSON(http.StatusOK, roles)
}
