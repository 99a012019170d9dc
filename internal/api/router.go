package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sahayog/membership-system/docs"
	"github.com/sahayog/membership-system/internal/api/handler"
	"github.com/sahayog/membership-system/internal/core/service"
	"github.com/sahayog/membership-system/internal/infrastructure/config"
	mongodb "github.com/sahayog/membership-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sahayog/membership-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("membership"))

	// --- Dependencies ---
	memberRepo := mongodb.NewMemberRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	memberService := service.NewMemberService(memberRepo, dedup, log)
	memberHandler := handler.NewMemberHandler(memberService)

	adminRepo := mongodb.NewAdminRepository(db)
	adminService := service.NewAdminService(adminRepo, cfg.AdminToken, log)
	adminHandler := handler.NewAdminHandler(adminService)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- /api routes ---
	// CORS is configured per path group: the public API allows the read and
	// write methods the frontend uses, the admin group only POST.
	api := e.Group("/api", echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, "Idempotency-Key"},
		AllowCredentials: true,
	}))
	api.POST("/register", memberHandler.Register)
	api.GET("/members", memberHandler.Search)
	api.PUT("/members/:id", memberHandler.Update)
	api.GET("/health", healthHandler.Liveness)
	api.GET("/health/ready", readinessHandler.Readiness)

	// --- /admin routes ---
	admin := e.Group("/admin", echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType},
		AllowCredentials: true,
	}))
	admin.POST("/login", adminHandler.Login)

	// --- Operational endpoints (not CORS-exposed) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
