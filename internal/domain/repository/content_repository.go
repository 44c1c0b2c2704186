package repository

import (
	"context"

	"scrobbler/internal/domain/entity"
	"scrobbler/internal/errors"

	"github.com/google/uuid"
)

// ErrContentNotFound is returned when a content lookup matches no row.
var ErrContentNotFound = errors.New("content not found")

// ContentRepository stores user-owned shows, episodes and movies.
type ContentRepository interface {
	// FindByIdentifier returns the content of the given kind owned by userID that is linked to identifierID.
	FindByIdentifier(ctx context.Context, userID uuid.UUID, kind entity.ContentKind, identifierID uuid.UUID) (*entity.Content, error)

	// FindByID returns content owned by userID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Content, error)

	// Create inserts content and fills its ID and timestamps.
	Create(ctx context.Context, content *entity.Content) error

	// Update persists metadata, watched state and play count.
	Update(ctx context.Context, content *entity.Content) error

	// AttachIdentifiers links identifiers to content; already attached pairs are left untouched.
	AttachIdentifiers(ctx context.Context, contentID uuid.UUID, identifierIDs []uuid.UUID) error

	// ListByKind returns all content of one kind owned by userID, oldest first.
	ListByKind(ctx context.Context, userID uuid.UUID, kind entity.ContentKind) ([]*entity.Content, error)

	// ListEpisodes returns the episodes whose parent is showID.
	ListEpisodes(ctx context.Context, userID, showID uuid.UUID) ([]*entity.Content, error)
}
