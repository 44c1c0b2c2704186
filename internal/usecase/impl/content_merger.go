package impl

import (
	"context"
	"log/slog"

	deliverycontext "scrobbler/internal/delivery/context"
	"scrobbler/internal/domain/entity"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/errors"

	"github.com/google/uuid"
)

const (
	progressKey = "progress"

	// Progress above this counts as fully watched and is not stored.
	fullyWatchedProgress = 99.9
)

// contentMerger upserts shows and episodes against the identifiers they carry.
type contentMerger struct {
	resolver *identityResolver
	logger   *slog.Logger
}

func newContentMerger(resolver *identityResolver, logger *slog.Logger) *contentMerger {
	return &contentMerger{resolver: resolver, logger: logger}
}

func (m *contentMerger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// AddShow merges a show payload. The first resolved identifier already attached to one of the
// user's shows picks the show to update; otherwise a new watched show is created.
func (m *contentMerger) AddShow(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, payload entity.Metadata) (*entity.Content, error) {
	identifiers, err := m.resolver.ResolveAll(ctx, repos, userID, flatIdentifierRefs(m.log(ctx), payload))
	if err != nil {
		return nil, err
	}

	contentRepo := repos.ContentRepo()
	show, err := m.findCanonical(ctx, contentRepo, userID, entity.ContentKindShow, identifiers)
	if err != nil {
		return nil, err
	}

	metadata := payload.Without(idsKey)
	if show != nil {
		show.Metadata = metadata
		if err := contentRepo.Update(ctx, show); err != nil {
			return nil, errors.Wrap(err, "failed to update show")
		}
		m.log(ctx).Debug("Updated show", slog.String("show_id", show.ID.String()))
	} else {
		show = entity.NewContent(userID, entity.ContentKindShow, metadata, true, nil)
		if err := contentRepo.Create(ctx, show); err != nil {
			return nil, errors.Wrap(err, "failed to create show")
		}
		m.log(ctx).Debug("Created show", slog.String("show_id", show.ID.String()))
	}

	if err := m.attach(ctx, contentRepo, show, identifiers); err != nil {
		return nil, err
	}

	return show, nil
}

// AddEpisode merges an episode payload under show, which may be nil.
// Only nested identifier groups are read from the episode's ids.
func (m *contentMerger) AddEpisode(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, payload entity.Metadata, show *entity.Content, progress *float64) (*entity.Content, error) {
	progress = normalizeProgress(progress)
	watched := progress == nil

	metadata := payload.Without(idsKey)
	if progress != nil {
		if err := metadata.Set(progressKey, *progress); err != nil {
			return nil, err
		}
	}

	identifiers, err := m.resolver.ResolveAll(ctx, repos, userID, nestedIdentifierRefs(m.log(ctx), payload))
	if err != nil {
		return nil, err
	}

	contentRepo := repos.ContentRepo()
	episode, err := m.findCanonical(ctx, contentRepo, userID, entity.ContentKindEpisode, identifiers)
	if err != nil {
		return nil, err
	}

	if episode != nil {
		episode.Metadata = metadata
		episode.Watched = watched
		if err := contentRepo.Update(ctx, episode); err != nil {
			return nil, errors.Wrap(err, "failed to update episode")
		}
	} else {
		var showID *uuid.UUID
		if show != nil {
			showID = &show.ID
		}
		episode = entity.NewContent(userID, entity.ContentKindEpisode, metadata, watched, showID)
		if err := contentRepo.Create(ctx, episode); err != nil {
			return nil, errors.Wrap(err, "failed to create episode")
		}
	}

	if err := m.attach(ctx, contentRepo, episode, identifiers); err != nil {
		return nil, err
	}

	m.log(ctx).Debug("Merged episode",
		slog.String("episode_id", episode.ID.String()),
		slog.Bool("watched", episode.Watched),
	)

	return episode, nil
}

// findCanonical returns the first content of kind linked to one of identifiers, in order, or nil.
func (m *contentMerger) findCanonical(ctx context.Context, contentRepo repository.ContentRepository, userID uuid.UUID, kind entity.ContentKind, identifiers []*entity.Identifier) (*entity.Content, error) {
	for _, identifier := range identifiers {
		content, err := contentRepo.FindByIdentifier(ctx, userID, kind, identifier.ID)
		if errors.Is(err, repository.ErrContentNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to look up %s", kind)
		}

		return content, nil
	}

	return nil, nil
}

func (m *contentMerger) attach(ctx context.Context, contentRepo repository.ContentRepository, content *entity.Content, identifiers []*entity.Identifier) error {
	ids := make([]uuid.UUID, 0, len(identifiers))
	for _, identifier := range identifiers {
		ids = append(ids, identifier.ID)
	}
	if err := contentRepo.AttachIdentifiers(ctx, content.ID, ids); err != nil {
		return errors.Wrapf(err, "failed to attach identifiers to %s", content.Kind)
	}

	return nil
}

func normalizeProgress(progress *float64) *float64 {
	if progress == nil || *progress > fullyWatchedProgress {
		return nil
	}
	value := *progress

	return &value
}
