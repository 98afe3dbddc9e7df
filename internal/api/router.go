package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userhub/account-api/docs"
	"github.com/userhub/account-api/internal/api/handler"
	"github.com/userhub/account-api/internal/api/middleware"
	"github.com/userhub/account-api/internal/core/service"
	mongostore "github.com/userhub/account-api/internal/infrastructure/db/mongo"
	redisstore "github.com/userhub/account-api/internal/infrastructure/db/redis"
	"github.com/userhub/account-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, bcryptCost int, exposeErrDetail bool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, exposeErrDetail)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("account_api"))

	// --- Dependencies ---
	accountRepo := mongostore.NewAccountRepository(db)
	tokenStore := redisstore.NewTokenStore(rdb)
	sessionService := service.NewSessionService(accountRepo, tokenStore, bcryptCost)
	authHandler := handler.NewAuthHandler(sessionService)
	authMiddleware := middleware.Auth(sessionService)

	// --- Session routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/logout", authHandler.Logout, authMiddleware)
	apiGroup.GET("/user", authHandler.Profile, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
