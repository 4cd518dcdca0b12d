package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pehchaan/storefront-backend/config"
	"github.com/pehchaan/storefront-backend/internal/app/controller"
	"github.com/pehchaan/storefront-backend/internal/app/repository"
	"github.com/pehchaan/storefront-backend/internal/app/service"
	"github.com/pehchaan/storefront-backend/internal/db"
	"github.com/pehchaan/storefront-backend/internal/router"
	"github.com/pehchaan/storefront-backend/internal/scheduler"
	"github.com/pehchaan/storefront-backend/pkg/logger"
	"github.com/pehchaan/storefront-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Pehchaan storefront server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"cart_store":  cfg.Cart.StoreBackend,
		"log_level":   logLevel,
	})

	// Pick the cart snapshot backend
	var cartStore repository.CartStore
	switch cfg.Cart.StoreBackend {
	case "redis":
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		cartStore = repository.NewRedisCartStore(redis.GetClient(), cfg.Cart.Retention)

	case "memory":
		cartStore = repository.NewMemoryCartStore()

	default: // database
		if err := db.Initialize(&cfg.Database); err != nil {
			logger.Fatal("Failed to initialize database", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", err)
			}
		}()

		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}
		cartStore = repository.NewGormCartStore(db.GetDB())
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(repository.DefaultCatalog())

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(cartStore, catalogRepo)

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService)
	pageController := controller.NewPageController(catalogService, cartService)

	// Stale-cart cleanup (redis carts expire on their own, but the job is
	// harmless there)
	cleanup := scheduler.NewCartCleanupScheduler(cartStore, cfg.Cart.CleanupSchedule, cfg.Cart.Retention)
	if err := cleanup.Start(); err != nil {
		logger.Fatal("Failed to start cart cleanup scheduler", err)
	}
	defer cleanup.Stop()

	// Setup router
	r := router.NewRouter(catalogController, cartController, pageController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
