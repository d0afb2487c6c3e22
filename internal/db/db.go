package db

import (
	"time"

	"github.com/BruksfildServices01/mesa-api/internal/config"
	"github.com/BruksfildServices01/mesa-api/internal/logger"
	"github.com/BruksfildServices01/mesa-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Error.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Mesa{},
		&models.AuditLog{},
	); err != nil {
		logger.Error.Fatalf("failed to migrate: %v", err)
	}

	return db
}
