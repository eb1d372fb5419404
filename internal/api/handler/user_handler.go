package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userdash/user-dashboard/internal/api/metrics"
	"github.com/userdash/user-dashboard/internal/core/domain"
	"github.com/userdash/user-dashboard/internal/core/ports"
	"github.com/userdash/user-dashboard/internal/core/validation"
)

// UserHandler proxies user CRUD. Validation happens here, once, before any
// backend call; the backend is never trusted to re-validate.
type UserHandler struct {
	service   ports.UserService
	validator *validation.Validator
}

func NewUserHandler(service ports.UserService, validator *validation.Validator) *UserHandler {
	return &UserHandler{service: service, validator: validator}
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error fetching users"})
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return nil
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error fetching user"})
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      validation.UserPayload  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  validationErrorResponse
// @Failure      500   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var payload validation.UserPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	data, fieldErrs := h.validator.ValidateNew(payload)
	if fieldErrs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("create").Inc()
		return c.JSON(http.StatusBadRequest, validationErrorResponse{
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
	}

	user, err := h.service.Create(c.Request().Context(), data)
	if err != nil {
		return respondUpstreamError(c, err, "Error creating user")
	}
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /users/:id with a partial payload.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      domain.UserUpdate  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  validationErrorResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return nil
	}

	var patch domain.UserUpdate
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	if fieldErrs := h.validator.ValidatePatch(patch); fieldErrs != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("update").Inc()
		return c.JSON(http.StatusBadRequest, validationErrorResponse{
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
	}

	user, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return respondUpstreamError(c, err, "Error updating user")
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      204  "No Content"
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return nil
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Error deleting user"})
	}
	return c.NoContent(http.StatusNoContent)
}

// userID parses the :id path parameter, writing a 400 itself on failure.
func userID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		_ = c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid user ID"})
		return 0, false
	}
	return id, true
}

// respondUpstreamError relays the backend's status and message when both are
// present, falling back to a generic 500. Raw backend bodies never pass
// through here.
func respondUpstreamError(c echo.Context, err error, fallback string) error {
	var ue *ports.UpstreamError
	if errors.As(err, &ue) && ue.Status > 0 && ue.Message != "" {
		return c.JSON(ue.Status, messageResponse{Message: ue.Message})
	}
	return c.JSON(http.StatusInternalServerError, messageResponse{Message: fallback})
}
