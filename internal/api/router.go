package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/vstdesk/rental-expense-manager/docs"
	"github.com/vstdesk/rental-expense-manager/internal/api/handler"
	"github.com/vstdesk/rental-expense-manager/internal/api/middleware"
	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
	"github.com/vstdesk/rental-expense-manager/internal/core/ports"
	"github.com/vstdesk/rental-expense-manager/internal/core/service"
	mongodb "github.com/vstdesk/rental-expense-manager/internal/infrastructure/db/mongo"
	"github.com/vstdesk/rental-expense-manager/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, store ports.FileStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)
	shopRepo := mongodb.NewShopRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.BcryptCost, log)
	documentService := service.NewDocumentService(documentRepo, store, log)
	shopService := service.NewShopService(shopRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	documentHandler := handler.NewDocumentHandler(documentService)
	shopHandler := handler.NewShopHandler(shopService)

	authRequired := middleware.Auth(cfg.JWTSecret, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	loginLimiter := middleware.LoginLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow, log)

	// --- API routes ---
	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login, loginLimiter)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.PUT("/me", authHandler.UpdateMe, authRequired)
	auth.PUT("/password", authHandler.ChangePassword, authRequired)
	auth.GET("/users", authHandler.Users, authRequired, adminOnly)

	shops := apiGroup.Group("/shops", authRequired)
	shops.POST("", shopHandler.Create)
	shops.GET("", shopHandler.List)
	shops.GET("/:id", shopHandler.Get)
	shops.PUT("/:id", shopHandler.Update)
	shops.PATCH("/:id/status", shopHandler.UpdateStatus)

	documents := apiGroup.Group("/:entityType/:entityId/documents", authRequired)
	documents.GET("", documentHandler.List)
	documents.POST("", documentHandler.Upload, echomiddleware.BodyLimit(cfg.MaxUploadSize))
	documents.GET("/:documentId", documentHandler.Get)
	documents.GET("/:documentId/download", documentHandler.Download)
	documents.DELETE("/:documentId", documentHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
