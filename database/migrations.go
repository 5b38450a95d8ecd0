package database

import (
	"github.com/medwatch-dev/medwatch/database/models"
	"gorm.io/gorm"
)

// RunMigrations creates the reports table on first use. The schema is fixed,
// there is no migration history to replay.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Report{},
	)
}
