package gormfx

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New connects to the configured database. Driver errors are translated, so
// unique constraint violations surface as gorm.ErrDuplicatedKey.
func New(config Config, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := config.dialector()
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if config.Debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger(logger).LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if closeErr := sqlDB.Close(); closeErr != nil {
		return fmt.Errorf("failed to close database: %w", closeErr)
	}

	return nil
}
