package postgres

import (
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the store needs.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}
