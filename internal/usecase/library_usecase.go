package usecase

import (
	"context"
	"encoding/json"

	"scrobbler/internal/domain/entity"
	"scrobbler/internal/errors"

	"github.com/google/uuid"
)

// ContentView renders a stored record the way clients read it back:
// the stored metadata fields in order, then ids, show_id, id, watched and plays.
type ContentView struct {
	Content *entity.Content
}

// MarshalJSON writes the metadata followed by the record's own fields.
func (v ContentView) MarshalJSON() ([]byte, error) {
	if v.Content == nil {
		return []byte("null"), nil
	}

	out := v.Content.Metadata.Clone()
	var showID *string
	if v.Content.ShowID != nil {
		id := v.Content.ShowID.String()
		showID = &id
	}

	for _, field := range []struct {
		key   string
		value any
	}{
		{"ids", v.Content.IdentifierMap()},
		{"show_id", showID},
		{"id", v.Content.ID.String()},
		{"watched", v.Content.Watched},
		{"plays", v.Content.Plays},
	} {
		if err := out.Set(field.key, field.value); err != nil {
			return nil, err
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// WatchedShow is one entry of the watched-shows sync listing.
type WatchedShow struct {
	Plays    int           `json:"plays"`
	Show     ContentView   `json:"show"`
	Episodes []ContentView `json:"episodes"`
}

// PlaybackEpisode is an episode the user stopped part-way through.
type PlaybackEpisode struct {
	Progress *float64     `json:"progress"`
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Episode  ContentView  `json:"episode"`
	Show     *ContentView `json:"show,omitempty"`
}

// LibraryUsecase reads back a user's scrobbled library.
type LibraryUsecase interface {
	// ListShows returns every show of the user.
	ListShows(ctx context.Context, userID uuid.UUID) ([]ContentView, error)

	// ListEpisodes returns the episodes of one of the user's shows.
	ListEpisodes(ctx context.Context, userID, showID uuid.UUID) ([]ContentView, error)

	// ListWatchedShows returns shows together with their watched episodes.
	ListWatchedShows(ctx context.Context, userID uuid.UUID) ([]WatchedShow, error)

	// ListPlayback returns episodes that are in progress.
	ListPlayback(ctx context.Context, userID uuid.UUID) ([]PlaybackEpisode, error)
}
