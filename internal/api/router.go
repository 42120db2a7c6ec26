package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dermtrack/skincare-system/internal/api/handler"
	"github.com/dermtrack/skincare-system/internal/api/middleware"
	"github.com/dermtrack/skincare-system/internal/core/service"
	mongodb "github.com/dermtrack/skincare-system/internal/infrastructure/db/mongo"
	redisdb "github.com/dermtrack/skincare-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("skincare"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	usageLogRepo := mongodb.NewUsageLogRepository(db)
	dietLogRepo := mongodb.NewDietLogRepository(db)
	wellBeingRepo := mongodb.NewWellBeingRepository(db)

	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL)
	profileService := service.NewProfileService(profileRepo, log)
	productService := service.NewProductService(productRepo, usageLogRepo, log)
	dietService := service.NewDietService(dietLogRepo, redisdb.NewDayGuard(rdb), log)
	wellBeingService := service.NewWellBeingService(wellBeingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	productHandler := handler.NewProductHandler(productService)
	dietHandler := handler.NewDietHandler(dietService)
	wellBeingHandler := handler.NewWellBeingHandler(wellBeingService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes (no token required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile ---
	profile := e.Group("/profile", authMiddleware)
	profile.GET("/:userId", profileHandler.Get)
	profile.POST("/:userId", profileHandler.Save)

	// --- Products + usage logs ---
	product := e.Group("/product", authMiddleware)
	product.GET("", productHandler.List)
	product.POST("", productHandler.Create)
	product.GET("/:id", productHandler.Get)
	product.PUT("/:id", productHandler.Update)
	product.DELETE("/:id", productHandler.Delete)
	product.POST("/:id/log", productHandler.AddUsage)
	product.GET("/:id/logs", productHandler.ListUsage)
	product.GET("/:id/logs/:logId", productHandler.GetUsage)
	product.PUT("/:id/logs/:logId", productHandler.UpdateUsage)

	// --- Diet logs ---
	diet := e.Group("/diet-log", authMiddleware)
	diet.GET("", dietHandler.List)
	diet.POST("", dietHandler.Create)
	diet.PUT("/:logId", dietHandler.Update)
	diet.DELETE("/:logId", dietHandler.Delete)

	// --- Well-being logs ---
	wellbeing := e.Group("/wellbeing-log", authMiddleware)
	wellbeing.GET("", wellBeingHandler.List)
	wellbeing.POST("", wellBeingHandler.Create)
	wellbeing.PUT("/:logId", wellBeingHandler.Update)
	wellbeing.DELETE("/:logId", wellBeingHandler.Delete)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
