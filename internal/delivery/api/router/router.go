// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"contacts/config"
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"
	"contacts/internal/domain/entity"
	"contacts/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// UploadPath is the only route allowed past the default body limit.
const UploadPath = "/countries/upload"

type RouterParams struct {
	fx.In

	PersonsHandler   *handler.PersonsHandler
	ReportsHandler   *handler.ReportsHandler
	CountriesHandler *handler.CountriesHandler
	AccountHandler   *handler.AccountHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	personsHandler   *handler.PersonsHandler
	reportsHandler   *handler.ReportsHandler
	countriesHandler *handler.CountriesHandler
	accountHandler   *handler.AccountHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		personsHandler:   params.PersonsHandler,
		reportsHandler:   params.ReportsHandler,
		countriesHandler: params.CountriesHandler,
		accountHandler:   params.AccountHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	accountGroup := e.Group("/account")
	{
		accountGroup.POST("/register", r.accountHandler.Register)
		accountGroup.POST("/login", r.accountHandler.Login, middleware.LoginRateLimiter(r.config.RateLimit))
		accountGroup.POST("/refresh", r.accountHandler.RefreshToken)
		accountGroup.POST("/logout", r.accountHandler.Logout)
	}

	headers := middleware.ResponseHeaders(r.config.ResponseHeaders)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	list := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		headers,
		middleware.PersonsListParams,
		middleware.LastModified(nil),
	}

	e.GET("/", r.personsHandler.List, list...)

	personsGroup := e.Group("/persons")
	personsGroup.Use(r.authMiddleware.Authenticate, headers)
	{
		personsGroup.GET("", r.personsHandler.List, list[2:]...)
		personsGroup.GET("/index", r.personsHandler.List, list[2:]...)
		personsGroup.GET("/new", r.personsHandler.NewForm)
		personsGroup.POST("", r.personsHandler.Create)

		personsGroup.GET("/reports/csv", r.reportsHandler.CSV)
		personsGroup.GET("/reports/excel", r.reportsHandler.Excel)
		personsGroup.GET("/reports/pdf", r.reportsHandler.PDF)

		personsGroup.GET("/:id", r.personsHandler.Get)
		personsGroup.GET("/:id/edit", r.personsHandler.EditForm)
		personsGroup.GET("/:id/qrcode", r.personsHandler.QRCode)
		personsGroup.PUT("/:id", r.personsHandler.Update)
		personsGroup.DELETE("/:id", r.personsHandler.Delete, adminOnly)
	}

	countriesGroup := e.Group("/countries")
	countriesGroup.Use(r.authMiddleware.Authenticate)
	{
		countriesGroup.GET("", r.countriesHandler.List)
		countriesGroup.GET("/:id", r.countriesHandler.Get)
		countriesGroup.POST("", r.countriesHandler.Create, adminOnly)
	}
	e.POST(UploadPath, r.countriesHandler.Upload,
		r.authMiddleware.Authenticate,
		adminOnly,
		echomiddleware.BodyLimit(r.config.HTTP.MaxUploadBodySize),
	)
}
