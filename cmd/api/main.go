package main

import (
	"context"
	"fmt"
	"os"

	"luxeledger/internal/config"
	"luxeledger/internal/database"
	"luxeledger/internal/insight"
	"luxeledger/internal/logger"
	"luxeledger/internal/notify"
	"luxeledger/internal/server"
	"luxeledger/internal/services"
	"luxeledger/internal/validator"
)

// @title           Luxe Ledger API
// @version         1.0
// @description     Personal finance ledger with custom accounting months, budgets and period statistics.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()
	ctx := context.Background()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	seeded, err := services.NewCategoryService(db).SeedDefaults()
	if err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	if seeded > 0 {
		log.Infow("Seeded default categories", "count", seeded)
	}

	validator.Register()

	var notifier notify.Notifier = notify.NewLogNotifier(logger.Named("notify"))
	if appConfig.FirebaseCredentialsFile != "" {
		fcm, err := notify.NewFCMNotifier(ctx, appConfig.FirebaseCredentialsFile, appConfig.FCMTopic)
		if err != nil {
			return fmt.Errorf("failed to initialize push notifications: %w", err)
		}
		notifier = fcm
		log.Infow("Budget alerts will be pushed", "topic", appConfig.FCMTopic)
	}

	var model insight.Model
	if appConfig.GeminiAPIKey != "" {
		gemini, err := insight.NewGeminiModel(ctx, appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to initialize insight model: %w", err)
		}
		model = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, insights are disabled")
	}

	router := server.NewRouter(server.Options{
		DB:       db,
		Clock:    services.SystemClock(appConfig.Location),
		Notifier: notifier,
		Insight:  insight.NewGenerator(model),
	})

	log.Infof("Starting Luxe Ledger server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
