package database

import (
	"fmt"

	"github.com/sangkips/restaurant-pos/internal/config"
	"github.com/sangkips/restaurant-pos/internal/domain/entity"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool, log logger.ZapLogger) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// A single till issues one request at a time
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)

	log.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Name))
	return db, nil
}

// AutoMigrate creates the key-value table
func AutoMigrate(db *gorm.DB, log logger.ZapLogger) error {
	log.Info("Running database migrations")

	if err := db.AutoMigrate(&entity.KVEntry{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}
