package api

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oakmont/members-portal/internal/api/handler"
	"github.com/oakmont/members-portal/internal/api/middleware"
	"github.com/oakmont/members-portal/internal/api/view"
	"github.com/oakmont/members-portal/internal/core/service"
	mongoinfra "github.com/oakmont/members-portal/internal/infrastructure/db/mongo"
	redisinfra "github.com/oakmont/members-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// store is the server-side session store the session middleware loads from.
func NewRouter(db *mongo.Database, rdb *redis.Client, store sessions.Store, log zerolog.Logger) *echo.Echo {
	e := newEcho(store, log)

	// --- Metrics ---
	e.Use(echoprometheus.NewMiddleware("portal"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Dependencies ---
	userRepo := mongoinfra.NewUserRepository(db)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	visits := redisinfra.NewVisitCounter(rdb)

	authHandler := handler.NewAuthHandler(authService)
	pageHandler := handler.NewPageHandler(visits, log)
	adminHandler := handler.NewAdminHandler(userService)

	RegisterRoutes(e, authHandler, pageHandler, adminHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}

// newEcho assembles the Echo instance with the global middleware, renderer,
// validator and error handler shared by NewRouter and the route tests.
func newEcho(store sessions.Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Renderer = view.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(session.Middleware(store))

	return e
}

// RegisterRoutes wires the portal's route surface onto e. Split out from
// NewRouter so tests can assemble the router with stub services.
func RegisterRoutes(e *echo.Echo, auth *handler.AuthHandler, pages *handler.PageHandler, admin *handler.AdminHandler) {
	e.GET("/", pages.Home)

	e.GET("/signup", auth.ShowSignup)
	e.POST("/signup", auth.Signup)
	e.GET("/login", auth.ShowLogin)
	e.POST("/login", auth.Login)
	e.GET("/logout", auth.Logout)

	e.GET("/members", pages.Members, middleware.RequireAuth())

	// The admin guard re-checks authentication itself; RequireAuth is not
	// stacked in front of it.
	adminGroup := e.Group("/admin", middleware.RequireAdmin())
	adminGroup.GET("", admin.Dashboard)
	adminGroup.GET("/promote", admin.Promote)
	adminGroup.GET("/demote", admin.Demote)

	e.Static("/public", "public")
}
