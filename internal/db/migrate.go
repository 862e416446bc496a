package db

import (
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.MarketItem{},
		&model.ApiLog{},
		&model.Notice{},
		&model.Event{},
		&model.Alarm{},
		&model.GameContent{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
