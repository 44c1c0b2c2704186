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

// identityResolver maps an external (source, value) pair to the shared Identifier row.
type identityResolver struct {
	logger *slog.Logger
}

func newIdentityResolver(logger *slog.Logger) *identityResolver {
	return &identityResolver{logger: logger}
}

// Resolve first looks for the pair among identifiers already attached to the user's content,
// then falls back to the global find-or-create. The returned identifier is not attached to anything new.
func (r *identityResolver) Resolve(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, ref entity.IdentifierRef) (*entity.Identifier, error) {
	identifierRepo := repos.IdentifierRepo()

	identifier, err := identifierRepo.FindLinkedForUser(ctx, userID, ref.Source, ref.Value)
	if err == nil {
		return identifier, nil
	}
	if !errors.Is(err, repository.ErrIdentifierNotFound) {
		return nil, errors.Wrapf(err, "failed to look up identifier %s:%d", ref.Source, ref.Value)
	}

	identifier, err = identifierRepo.FindOrCreate(ctx, ref.Source, ref.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create identifier %s:%d", ref.Source, ref.Value)
	}

	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("Resolved identifier outside user library",
		slog.String("source", ref.Source),
		slog.Int64("value", ref.Value),
		slog.String("identifier_id", identifier.ID.String()),
	)

	return identifier, nil
}

// ResolveAll resolves refs in order.
func (r *identityResolver) ResolveAll(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID, refs []entity.IdentifierRef) ([]*entity.Identifier, error) {
	identifiers := make([]*entity.Identifier, 0, len(refs))
	for _, ref := range refs {
		identifier, err := r.Resolve(ctx, repos, userID, ref)
		if err != nil {
			return nil, err
		}
		identifiers = append(identifiers, identifier)
	}

	return identifiers, nil
}
