package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/SampleSite/SampleSite-Backend/src/config"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the database selected by cfg.Driver.
func Connect(cfg config.DatabaseConfig, log logrus.FieldLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.WithError(err).WithField("driver", cfg.Driver).Error("Error connecting to database")
		return nil, err
	}

	// Every pooled connection to an in-memory sqlite database is a separate
	// database, so keep exactly one.
	if cfg.Driver == "sqlite" && strings.Contains(cfg.DSN, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.WithField("driver", cfg.Driver).Info("SampleSite DB connected successfully!")
	return db, nil
}

// Migrate creates or updates the tables of every record kind.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.EntityModel{}, &models.LocationDetailModel{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
