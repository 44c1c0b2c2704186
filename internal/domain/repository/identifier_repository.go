package repository

import (
	"context"

	"scrobbler/internal/domain/entity"
	"scrobbler/internal/errors"

	"github.com/google/uuid"
)

// ErrIdentifierNotFound is returned when an identifier lookup matches no row.
var ErrIdentifierNotFound = errors.New("identifier not found")

// IdentifierRepository stores the global (source, value) namespace and answers per-user scoped lookups through the content join.
type IdentifierRepository interface {
	// FindLinkedForUser returns the identifier for (source, value) only if it is linked to content owned by userID.
	FindLinkedForUser(ctx context.Context, userID uuid.UUID, source string, value int64) (*entity.Identifier, error)

	// FindOrCreate returns the global identifier row for (source, value), inserting it when absent.
	FindOrCreate(ctx context.Context, source string, value int64) (*entity.Identifier, error)

	// ListByContentIDs returns the identifiers attached to each of the given content records.
	ListByContentIDs(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID][]*entity.Identifier, error)
}
