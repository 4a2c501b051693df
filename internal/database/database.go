package database

import (
	"fmt"
	"time"

	"rental-portal-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipAutoMigrate leaves the schema alone; the zero value migrates.
	SkipAutoMigrate bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// The join table carries effective occupancy dates, so it must be
	// registered explicitly before AutoMigrate sees the many2many relation.
	if err := db.SetupJoinTable(&models.TenancyPeriod{}, "Tenants", &models.TenancyAssignment{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tenant{}, "TenancyPeriods", &models.TenancyAssignment{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}

	// AutoMigrate all models, parents before children
	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.User{},
			&models.Corporation{},
			&models.Building{},
			&models.Property{},
			&models.TenancyPeriod{},
			&models.Tenant{},
			&models.TenancyAssignment{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
