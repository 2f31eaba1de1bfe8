package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/stylesphere/storefront/internal/application/catalog"
	checkoutapp "github.com/stylesphere/storefront/internal/application/checkout"
	identityapp "github.com/stylesphere/storefront/internal/application/identity"
	"github.com/stylesphere/storefront/internal/infrastructure/auth"
	"github.com/stylesphere/storefront/internal/infrastructure/config"
	"github.com/stylesphere/storefront/internal/infrastructure/logger"
	"github.com/stylesphere/storefront/internal/infrastructure/orderapi"
	"github.com/stylesphere/storefront/internal/infrastructure/persistence"
	"github.com/stylesphere/storefront/internal/interfaces/http/handler"
	"github.com/stylesphere/storefront/internal/interfaces/http/middleware"
	"github.com/stylesphere/storefront/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connected and migrated")

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Seed the demo catalog on an empty database
	if err := persistence.SeedCatalog(context.Background(), categoryRepo, productRepo, log); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	// Auth infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		defer func() {
			_ = redisBlacklist.Close()
		}()
		blacklist = redisBlacklist
	}

	// Remote order service client
	orderClient, err := orderapi.NewClient(cfg.OrderAPI, log)
	if err != nil {
		log.Fatal("Failed to create order API client", zap.Error(err))
	}

	// Application services
	catalogService := catalogapp.NewCatalogService(categoryRepo, productRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	checkoutService := checkoutapp.NewCheckoutService(
		orderClient, orderClient, orderClient, cfg.OrderAPI.SubmitTimeout, log)

	// HTTP engine and middleware chain
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsCfg))

	jwtAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	// Routes
	router.NewRouter(engine).
		Register(handler.NewSystemHandler(db)).
		Register(handler.NewCatalogHandler(catalogService)).
		Register(handler.NewCheckoutHandler(checkoutService)).
		Register(handler.NewAuthHandler(authService, jwtAuth)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
