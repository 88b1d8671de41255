package main

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cachefront/backend/internal/cache"
	"github.com/cachefront/backend/internal/config"
	"github.com/cachefront/backend/internal/health"
	httpHandler "github.com/cachefront/backend/internal/http"
	"github.com/cachefront/backend/internal/logger"
	"github.com/cachefront/backend/internal/notification"
	"github.com/cachefront/backend/internal/product"
	"github.com/cachefront/backend/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// App holds all application dependencies
type App struct {
	ctx             context.Context
	Config          *config.Config
	logger          logger.Logger
	responseHandler httpHandler.ResponseHandler
	cache           *cache.Cache
	loader          *cache.Loader
	products        *product.Service
	notifications   *notification.Service
	router          *gin.Engine
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	responseHandler := httpHandler.NewResponseHandler(log)
	clk := clock.New()

	// The cache is constructed once here and handed to the services that
	// need it; nothing reaches for it as a global.
	cacheStore := cache.New(clk, log)
	loader := cache.NewLoader(cacheStore)

	source := product.NewCatalogSource(cfg.Catalog.FetchDelay)
	products := product.NewService(source, loader, cfg.Cache.ProductTTL, log)

	sender := notification.NewSimulatedSender(cfg.Notification.SendDelay, clk)
	notifications := notification.NewService(notification.Config{
		Workers:   cfg.Notification.Workers,
		QueueSize: cfg.Notification.QueueSize,
	}, log, notification.NewRepository(), sender, clk)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(httpHandler.RequestIDMiddleware())
	router.Use(httpHandler.RequestLoggerMiddleware(log))
	router.Use(httpHandler.RecoveryMiddleware(responseHandler, log))
	router.Use(httpHandler.CORSMiddleware())

	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window, clk)
		router.Use(ratelimit.Middleware(limiter, responseHandler, log))
	}

	app := &App{
		ctx:             ctx,
		Config:          cfg,
		logger:          log,
		responseHandler: responseHandler,
		cache:           cacheStore,
		loader:          loader,
		products:        products,
		notifications:   notifications,
		router:          router,
	}

	app.setupRoutes()

	return app, nil
}

func (a *App) setupRoutes() {
	healthHandler := health.NewHandler(a.responseHandler)
	a.router.GET("/health", healthHandler.HandleHealthCheck)

	productHandler := product.NewHandler(a.products, a.responseHandler, a.logger)
	productHandler.RegisterRoutes(a.router)

	notificationHandler := notification.NewHandler(a.notifications, a.responseHandler, a.logger)
	notificationHandler.RegisterRoutes(a.router)

	a.router.POST("/cache/clear", a.handleClearCache)
}

// Run starts the application
func (a *App) Run() error {
	a.notifications.Start()

	port := a.Config.Server.Port
	a.logger.LogInfo(fmt.Sprintf("Starting server on port %d", port), nil)
	if err := a.router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return a.logger.LogError(err, "server failed to start")
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.notifications.Stop(ctx); err != nil {
		return err
	}

	a.logger.LogInfo("Application shutdown complete", nil)
	return nil
}
