package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Init creates or updates the tables owned by this package.
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&Post{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
