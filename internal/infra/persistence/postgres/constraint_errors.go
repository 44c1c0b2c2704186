package postgres

import (
	"strings"

	"scrobbler/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on TranslateError being enabled on the connection.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// SQLite before translation support reports the constraint by name only.
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	return err != nil && errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
