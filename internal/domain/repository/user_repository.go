// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"scrobbler/internal/domain/entity"
	"scrobbler/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindOrCreate returns the user with the given username, inserting it if it does not exist.
	// Concurrent callers with the same username observe the same row.
	FindOrCreate(ctx context.Context, username string) (*entity.User, error)

	// LockByID reads the user row with a write lock held until the surrounding transaction ends.
	// Scrobble ingestion uses it to serialize check-then-create sequences per user.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
