// Package database provides the Postgres connection for the todo service.
package database

import (
	"fmt"

	"github.com/MaxKtzv/TodoAppPetProject/internal/config"
	"github.com/MaxKtzv/TodoAppPetProject/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a gorm connection to Postgres using the service config.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Todo{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
