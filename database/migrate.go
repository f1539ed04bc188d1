package database

import (
	"afrilance_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Proposal{},
		&models.Contract{},
		&models.Wallet{},
		&models.WalletTransaction{},
	)
}
