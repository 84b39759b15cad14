package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/digimarketpro/digimarket-backend/config"
	"github.com/digimarketpro/digimarket-backend/internal/app/controller"
	"github.com/digimarketpro/digimarket-backend/internal/app/repository"
	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
	"github.com/digimarketpro/digimarket-backend/internal/router"
	"github.com/digimarketpro/digimarket-backend/internal/scheduler"
	"github.com/digimarketpro/digimarket-backend/internal/storage"
	"github.com/digimarketpro/digimarket-backend/internal/websocket"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
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

	logger.Info("Starting DigiMarket Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"backend":     cfg.Store.Backend,
		"log_level":   logLevel,
	})

	// Initialize persistence
	store, err := kvstore.New(&cfg.Store)
	if err != nil {
		logger.Fatal("Failed to initialize store", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", err)
		}
	}()

	ctx := context.Background()

	// Initialize repositories
	productRepo := repository.NewProductRepository(ctx, store)
	pageRepo := repository.NewPageRepository(ctx, store)
	postRepo := repository.NewPostRepository(ctx, store)
	customerRepo := repository.NewCustomerRepository(ctx, store)
	settingsRepo := repository.NewSettingsRepository(ctx, store)
	collectionRepo := repository.NewCollectionRepository(store)

	// Initialize services
	authService := service.NewAuthService(
		customerRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(productRepo)
	checkoutService := service.NewCheckoutService(cartService)
	contentService := service.NewContentService(pageRepo, postRepo)
	wishlistService := service.NewWishlistService(collectionRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo, productRepo, pageRepo, postRepo)
	sitemapService := service.NewSitemapService(settingsRepo, productRepo, pageRepo, postRepo)
	assistantService := service.NewAssistantService(cfg.Assistant, productRepo, settingsRepo)
	exportService := service.NewExportService(productRepo, customerRepo)

	// Bootstrap the admin account from configuration
	if err := authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatal("Failed to bootstrap admin account", err)
	}

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService)
	checkoutController := controller.NewCheckoutController(checkoutService)
	contentController := controller.NewContentController(contentService)
	wishlistController := controller.NewWishlistController(wishlistService)
	settingsController := controller.NewSettingsController(settingsService)
	assistantController := controller.NewAssistantController(assistantService)
	adminController := controller.NewAdminController(
		catalogService,
		contentService,
		authService,
		sitemapService,
		exportService,
	)
	uploadController := controller.NewUploadController(storage.NewS3Storage(cfg.S3))

	assistantWS := websocket.NewHandler(assistantService, cfg.CORS.AllowedOrigins)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start the backup job
	backupScheduler := scheduler.NewBackupScheduler(store, cfg.Backup)
	if err := backupScheduler.Start(); err != nil {
		logger.Fatal("Failed to start backup scheduler", err)
	}
	defer backupScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		catalogController,
		cartController,
		checkoutController,
		contentController,
		wishlistController,
		settingsController,
		assistantController,
		adminController,
		uploadController,
		assistantWS,
		authMiddleware,
		cfg,
	)
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
