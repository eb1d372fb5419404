package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/userdash/user-dashboard/internal/api/handler"
	"github.com/userdash/user-dashboard/internal/core/ports"
	"github.com/userdash/user-dashboard/internal/core/service"
	"github.com/userdash/user-dashboard/internal/core/validation"
	"github.com/userdash/user-dashboard/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The gateway is the single outbound dependency; everything else is wired
// from it so tests can swap in a stub.
func NewRouter(cfg *config.Config, gateway ports.Gateway, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userdash"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	// --- Dependencies ---
	v := validation.New()
	userHandler := handler.NewUserHandler(service.NewUserService(gateway, log), v)
	roleHandler := handler.NewRoleHandler(service.NewRoleService(gateway, log))
	statsHandler := handler.NewStatsHandler(service.NewStatsService(gateway, log))
	pdfHandler := handler.NewPDFHandler(service.NewPDFService(gateway, log), cfg.FrontendURL)

	// --- User routes ---
	e.GET("/users", userHandler.List)
	e.POST("/users", userHandler.Create)
	e.GET("/users/:id", userHandler.Get)
	e.PUT("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Roles and statistics ---
	e.GET("/roles", roleHandler.List)
	e.GET("/stats/active", statsHandler.Active)
	e.GET("/stats/roles", statsHandler.Roles)
	e.GET("/stats/registration", statsHandler.Registrations)

	// --- PDF export ---
	e.POST("/pdf/current", pdfHandler.Current)

	// --- Health probes and operational endpoints ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(gateway).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
