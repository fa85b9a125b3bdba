package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkpoint/ordering-api/internal/config"
	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Branch{},
		&entity.CartStateRecord{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds a couple of demo branches when the table is empty so
// a fresh environment can price carts immediately.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Branch{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default branches...")

	branches := []entity.Branch{
		{
			Name:                 "Downtown",
			Currency:             "USD",
			DeliveryCharge:       decimal.NewFromInt(5),
			ServiceChargePercent: decimal.NewFromInt(10),
			TaxPercent:           decimal.NewFromInt(8),
			TaxAppliedType:       enum.TaxOnDiscountedTotal,
			MaxDiscountAmount:    decimal.NewFromInt(50),
		},
		{
			Name:                 "Riverside",
			Currency:             "USD",
			DeliveryCharge:       decimal.NewFromFloat(3.5),
			ServiceChargePercent: decimal.NewFromFloat(12.5),
			TaxPercent:           decimal.NewFromInt(8),
			TaxAppliedType:       enum.TaxOnTotal,
			MaxDiscountAmount:    decimal.Zero,
		},
	}

	for i := range branches {
		if err := db.Create(&branches[i]).Error; err != nil {
			return fmt.Errorf("failed to seed branch %q: %w", branches[i].Name, err)
		}
	}
	return nil
}
