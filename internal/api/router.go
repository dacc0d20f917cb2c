package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eventease/platform-api/internal/api/handler"
	"github.com/eventease/platform-api/internal/api/middleware"
	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/service"
	"github.com/eventease/platform-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/eventease/platform-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("eventease"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	claims := redisinfra.NewRoleClaimStore(rdb)
	bookingCache := redisinfra.NewBookingCache(rdb, log)

	accountService := service.NewAccountService(accountRepo, roleRepo, claims, jwtSecret, 24*time.Hour, log)
	eventService := service.NewEventService(eventRepo, bookingCache, log)

	authHandler := handler.NewAuthHandler(accountService)
	eventHandler := handler.NewEventHandler(eventService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Account routes ---
	e.POST("/api/register/customer", authHandler.RegisterCustomer)
	e.POST("/api/register/vendor", authHandler.RegisterVendor)
	e.POST("/api/register/organizer", authHandler.RegisterOrganizer)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/sync", authHandler.SyncUser)
	e.POST("/api/users/type", authHandler.UserType)
	e.POST("/api/roles/lookup", authHandler.GetRole)
	e.POST("/api/roles/assign", authHandler.AssignRole,
		authMiddleware, middleware.RequireKind(domain.KindOrganizer))

	// --- Event routes ---
	e.POST("/api/events", eventHandler.CreateEvent)
	e.GET("/api/events", eventHandler.ListEvents)
	e.GET("/api/bookings", eventHandler.ListBookings)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
