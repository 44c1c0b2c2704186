package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentKind enumerates what a content record represents.
type ContentKind string

const (
	ContentKindMovie   ContentKind = "movie"
	ContentKindShow    ContentKind = "show"
	ContentKindEpisode ContentKind = "episode"
)

// IsValid reports whether k is one of the known kinds.
func (k ContentKind) IsValid() bool {
	switch k {
	case ContentKindMovie, ContentKindShow, ContentKindEpisode:
		return true
	default:
		return false
	}
}

// Content is a show, episode or movie record owned by exactly one user.
type Content struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        ContentKind
	Metadata    Metadata   // payload fields without "ids"
	ShowID      *uuid.UUID // parent show for episodes
	Watched     bool
	Plays       int
	Identifiers []*Identifier // populated only by readers that ask for it
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewContent builds an unsaved content record. Plays starts at 1 for watched content, 0 otherwise.
func NewContent(userID uuid.UUID, kind ContentKind, metadata Metadata, watched bool, showID *uuid.UUID) *Content {
	plays := 0
	if watched {
		plays = 1
	}

	return &Content{
		UserID:   userID,
		Kind:     kind,
		Metadata: metadata,
		ShowID:   showID,
		Watched:  watched,
		Plays:    plays,
	}
}

// IdentifierMap renders the attached identifiers as {source: value}.
func (c *Content) IdentifierMap() map[string]int64 {
	ids := make(map[string]int64, len(c.Identifiers))
	for _, identifier := range c.Identifiers {
		ids[identifier.Source] = identifier.Value
	}

	return ids
}
