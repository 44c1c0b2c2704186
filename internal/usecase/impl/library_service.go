package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "scrobbler/internal/delivery/context"
	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/errors"
	"scrobbler/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// libraryService implements the LibraryUsecase interface.
type libraryService struct {
	contentRepo    repository.ContentRepository
	identifierRepo repository.IdentifierRepository
	logger         *slog.Logger
}

// LibraryServiceParams holds dependencies for LibraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	ContentRepo    repository.ContentRepository
	IdentifierRepo repository.IdentifierRepository
	Logger         *slog.Logger
}

// NewLibraryService is the constructor for libraryService.
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	return &libraryService{
		contentRepo:    params.ContentRepo,
		identifierRepo: params.IdentifierRepo,
		logger:         params.Logger,
	}
}

func (srv *libraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListShows returns the user's shows with their identifiers.
func (srv *libraryService) ListShows(ctx context.Context, userID uuid.UUID) ([]usecase.ContentView, error) {
	shows, err := srv.contentRepo.ListByKind(ctx, userID, entity.ContentKindShow)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shows")
	}
	if err := srv.loadIdentifiers(ctx, shows); err != nil {
		return nil, err
	}

	return toViews(shows), nil
}

// ListEpisodes returns the episodes of a show the user owns.
func (srv *libraryService) ListEpisodes(ctx context.Context, userID, showID uuid.UUID) ([]usecase.ContentView, error) {
	episodes, err := srv.episodesOf(ctx, userID, showID)
	if err != nil {
		return nil, err
	}

	return toViews(episodes), nil
}

// ListWatchedShows pairs each show with its watched episodes.
func (srv *libraryService) ListWatchedShows(ctx context.Context, userID uuid.UUID) ([]usecase.WatchedShow, error) {
	shows, err := srv.contentRepo.ListByKind(ctx, userID, entity.ContentKindShow)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shows")
	}
	if err := srv.loadIdentifiers(ctx, shows); err != nil {
		return nil, err
	}

	result := make([]usecase.WatchedShow, 0, len(shows))
	for _, show := range shows {
		episodes, err := srv.episodesOf(ctx, userID, show.ID)
		if err != nil {
			return nil, err
		}

		watched := make([]usecase.ContentView, 0, len(episodes))
		for _, episode := range episodes {
			if episode.Watched {
				watched = append(watched, usecase.ContentView{Content: episode})
			}
		}
		result = append(result, usecase.WatchedShow{
			Plays:    show.Plays,
			Show:     usecase.ContentView{Content: show},
			Episodes: watched,
		})
	}

	srv.log(ctx).Debug("Listed watched shows", slog.Int("count", len(result)))

	return result, nil
}

// ListPlayback returns unwatched episodes that carry a stored progress.
func (srv *libraryService) ListPlayback(ctx context.Context, userID uuid.UUID) ([]usecase.PlaybackEpisode, error) {
	episodes, err := srv.contentRepo.ListByKind(ctx, userID, entity.ContentKindEpisode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list episodes")
	}
	if err := srv.loadIdentifiers(ctx, episodes); err != nil {
		return nil, err
	}

	shows := make(map[uuid.UUID]*entity.Content)
	result := make([]usecase.PlaybackEpisode, 0)
	for _, episode := range episodes {
		raw, ok := episode.Metadata.Get(progressKey)
		if episode.Watched || !ok {
			continue
		}
		var progress float64
		if err := json.Unmarshal(raw, &progress); err != nil {
			srv.log(ctx).Debug("Ignoring unreadable progress", slog.String("episode_id", episode.ID.String()))

			continue
		}

		entry := usecase.PlaybackEpisode{
			Progress: &progress,
			ID:       episode.ID.String(),
			Type:     string(entity.ContentKindEpisode),
			Episode:  usecase.ContentView{Content: episode},
		}
		if episode.ShowID != nil {
			show, err := srv.showFor(ctx, shows, userID, *episode.ShowID)
			if err != nil {
				return nil, err
			}
			entry.Show = &usecase.ContentView{Content: show}
		}
		result = append(result, entry)
	}

	return result, nil
}

func (srv *libraryService) showFor(ctx context.Context, cache map[uuid.UUID]*entity.Content, userID, showID uuid.UUID) (*entity.Content, error) {
	if show, ok := cache[showID]; ok {
		return show, nil
	}

	show, err := srv.contentRepo.FindByID(ctx, userID, showID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load show")
	}
	if err := srv.loadIdentifiers(ctx, []*entity.Content{show}); err != nil {
		return nil, err
	}
	cache[showID] = show

	return show, nil
}

func (srv *libraryService) episodesOf(ctx context.Context, userID, showID uuid.UUID) ([]*entity.Content, error) {
	show, err := srv.contentRepo.FindByID(ctx, userID, showID)
	if errors.Is(err, repository.ErrContentNotFound) || (err == nil && show.Kind != entity.ContentKindShow) {
		return nil, domainerrors.ErrContentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load show")
	}

	episodes, err := srv.contentRepo.ListEpisodes(ctx, userID, showID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list episodes")
	}
	if err := srv.loadIdentifiers(ctx, episodes); err != nil {
		return nil, err
	}

	return episodes, nil
}

func (srv *libraryService) loadIdentifiers(ctx context.Context, contents []*entity.Content) error {
	ids := make([]uuid.UUID, 0, len(contents))
	for _, content := range contents {
		ids = append(ids, content.ID)
	}

	byContent, err := srv.identifierRepo.ListByContentIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load identifiers")
	}
	for _, content := range contents {
		content.Identifiers = byContent[content.ID]
	}

	return nil
}

func toViews(contents []*entity.Content) []usecase.ContentView {
	views := make([]usecase.ContentView, 0, len(contents))
	for _, content := range contents {
		views = append(views, usecase.ContentView{Content: content})
	}

	return views
}
