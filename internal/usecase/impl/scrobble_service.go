package impl

import (
	"context"
	"log/slog"
	"time"

	"scrobbler/config"
	deliverycontext "scrobbler/internal/delivery/context"
	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/lifecycle"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/metrics"
	"scrobbler/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// scrobbleService implements the ScrobbleUsecase interface.
type scrobbleService struct {
	txManager repository.TransactionManager
	merger    *contentMerger
	publisher service.EventPublisher
	provider  string
	logger    *slog.Logger
}

// ScrobbleServiceParams holds dependencies for ScrobbleService, injected by Fx.
type ScrobbleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewScrobbleService is the constructor for scrobbleService.
func NewScrobbleService(params ScrobbleServiceParams) usecase.ScrobbleUsecase {
	provider := "noop"
	if params.Config != nil && params.Config.PubSub != nil && params.Config.PubSub.Provider != "" {
		provider = params.Config.PubSub.Provider
	}

	return &scrobbleService{
		txManager: params.TxManager,
		merger:    newContentMerger(newIdentityResolver(params.Logger), params.Logger),
		publisher: params.Publisher,
		provider:  provider,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *scrobbleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Scrobble upserts the show (when present) and then the episode inside one transaction.
// The owner's row is locked first so concurrent scrobbles of one user cannot both create the same record.
func (srv *scrobbleService) Scrobble(ctx context.Context, userID uuid.UUID, input *usecase.ScrobbleInput) (*usecase.ScrobbleOutput, error) {
	if input == nil || input.Episode == nil {
		return nil, domainerrors.ErrUnsupportedPayload
	}

	output := &usecase.ScrobbleOutput{}
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().LockByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrForbidden.WrapMessage("credential owner no longer exists")
			}

			return errors.Wrap(err, "failed to lock user")
		}

		if input.Show != nil {
			show, err := srv.merger.AddShow(ctx, repos, userID, *input.Show)
			if err != nil {
				return err
			}
			output.Show = show
		}

		episode, err := srv.merger.AddEpisode(ctx, repos, userID, *input.Episode, output.Show, input.Progress)
		if err != nil {
			return err
		}
		output.Episode = episode

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Scrobble transaction failed", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, err
	}

	metrics.IncScrobble(string(entity.ContentKindEpisode), output.Episode.Watched)
	srv.log(ctx).Info("Scrobble recorded",
		slog.String("user_id", userID.String()),
		slog.String("action", string(input.Action)),
		slog.String("episode_id", output.Episode.ID.String()),
		slog.Bool("watched", output.Episode.Watched),
	)

	srv.publish(ctx, userID, input, output)

	return output, nil
}

// publish is best effort; the scrobble is already committed.
func (srv *scrobbleService) publish(ctx context.Context, userID uuid.UUID, input *usecase.ScrobbleInput, output *usecase.ScrobbleOutput) {
	if srv.publisher == nil {
		return
	}

	event := &service.ScrobbleEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		EpisodeID: output.Episode.ID.String(),
		Watched:   output.Episode.Watched,
		Progress:  normalizeProgress(input.Progress),
		At:        time.Now().UTC().Format(time.RFC3339),
	}
	if output.Show != nil {
		event.ShowID = output.Show.ID.String()
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.publisher.PublishScrobbleEvent(publishCtx, event); err != nil {
		metrics.IncEventPublishFailure(srv.provider)
		srv.log(ctx).Warn("Failed to publish scrobble event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
