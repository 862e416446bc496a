package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wednes/wednes-backend/config"
	"github.com/wednes/wednes-backend/internal/app/controller"
	"github.com/wednes/wednes-backend/internal/app/repository"
	"github.com/wednes/wednes-backend/internal/app/service"
	"github.com/wednes/wednes-backend/internal/db"
	"github.com/wednes/wednes-backend/internal/router"
	"github.com/wednes/wednes-backend/internal/scheduler"
	"github.com/wednes/wednes-backend/pkg/logger"
	"github.com/wednes/wednes-backend/pkg/lostark"
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

	logger.Info("Starting WEDNES Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize upstream API client
	lostarkClient, err := lostark.NewClient(lostark.Config{
		BaseURL: cfg.Lostark.BaseURL,
		APIKey:  cfg.Lostark.APIKey,
		Timeout: cfg.Lostark.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to initialize Lost Ark API client", err)
	}

	// Initialize repositories
	marketItemRepo := repository.NewMarketItemRepository(db.GetDB())
	apiLogRepo := repository.NewApiLogRepository(db.GetDB())
	contentRepo := repository.NewContentRepository(db.GetDB())

	// Initialize services
	marketService := service.NewMarketService(marketItemRepo, lostarkClient, service.MarketServiceConfig{
		PageSize:          cfg.Market.PageSize,
		PageDelay:         cfg.Market.PageDelay,
		CacheTTL:          cfg.Market.CacheTTL,
		EnhancementFilter: cfg.Market.EnhancementFilter,
	})
	contentService := service.NewContentService(contentRepo, lostarkClient)
	schedulerService := service.NewSchedulerService(
		apiLogRepo,
		marketService,
		contentService,
		cfg.Batch.ThresholdMinutes,
		nil,
	)

	// Initialize controllers
	marketController := controller.NewMarketController(marketService, apiLogRepo)
	schedulerController := controller.NewSchedulerController(schedulerService)
	contentController := controller.NewContentController(contentService)

	// Start in-process batch scheduler
	var batchScheduler *scheduler.BatchScheduler
	if cfg.Scheduler.Enabled {
		batchScheduler = scheduler.NewBatchScheduler(schedulerService, cfg.Scheduler.CronSpec)
		if err := batchScheduler.Start(); err != nil {
			logger.Fatal("Failed to start batch scheduler", err)
		}
		defer batchScheduler.Stop()
	}

	// Setup router
	r := router.NewRouter(
		marketController,
		schedulerController,
		contentController,
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
