package postgres

import (
	"context"
	"encoding/json"
	"time"

	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentRepository implements the domain.ContentRepository interface using GORM.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

// FindByIdentifier returns the oldest content of kind owned by userID linked to identifierID.
func (repo *contentRepository) FindByIdentifier(ctx context.Context, userID uuid.UUID, kind entity.ContentKind, identifierID uuid.UUID) (*entity.Content, error) {
	var contentM model.ContentModel
	err := repo.db.WithContext(ctx).
		Model(&model.ContentModel{}).
		Select("contents.*").
		Joins("JOIN content_identifiers ON content_identifiers.content_id = contents.id").
		Where("contents.user_id = ? AND contents.kind = ? AND content_identifiers.identifier_id = ?", userID, string(kind), identifierID).
		Order("contents.created_at, contents.id").
		Take(&contentM).Error
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content by identifier")
	}

	return toContentDomain(&contentM)
}

// FindByID retrieves content owned by userID.
func (repo *contentRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Content, error) {
	var contentM model.ContentModel
	if err := repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Take(&contentM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content")
	}

	return toContentDomain(&contentM)
}

// Create inserts content, assigning a UUIDv7 when the entity has none.
func (repo *contentRepository) Create(ctx context.Context, content *entity.Content) error {
	if content.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.WithStack(err)
		}
		content.ID = id
	}

	contentM, err := fromContentDomain(content)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner or parent show")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create content")
	}

	content.CreatedAt = contentM.CreatedAt
	content.UpdatedAt = contentM.UpdatedAt

	return nil
}

// Update writes metadata, watched and plays, and bumps updated_at.
func (repo *contentRepository) Update(ctx context.Context, content *entity.Content) error {
	metadata, err := json.Marshal(content.Metadata)
	if err != nil {
		return errors.Wrap(err, "failed to encode content metadata")
	}

	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ContentModel{}).
		Where("id = ? AND user_id = ?", content.ID, content.UserID).
		Updates(map[string]any{
			"metadata":   datatypes.JSON(metadata),
			"watched":    content.Watched,
			"plays":      content.Plays,
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}
	content.UpdatedAt = now

	return nil
}

// AttachIdentifiers inserts join rows, skipping pairs that already exist.
func (repo *contentRepository) AttachIdentifiers(ctx context.Context, contentID uuid.UUID, identifierIDs []uuid.UUID) error {
	if len(identifierIDs) == 0 {
		return nil
	}

	links := make([]model.ContentIdentifierModel, 0, len(identifierIDs))
	seen := make(map[uuid.UUID]struct{}, len(identifierIDs))
	for _, identifierID := range identifierIDs {
		if _, dup := seen[identifierID]; dup {
			continue
		}
		seen[identifierID] = struct{}{}
		links = append(links, model.ContentIdentifierModel{ContentID: contentID, IdentifierID: identifierID})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to attach identifiers")
	}

	return nil
}

// ListByKind returns content of one kind, oldest first.
func (repo *contentRepository) ListByKind(ctx context.Context, userID uuid.UUID, kind entity.ContentKind) ([]*entity.Content, error) {
	var contentMs []model.ContentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("created_at, id").
		Find(&contentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content")
	}

	return toContentDomainList(contentMs)
}

// ListEpisodes returns the episodes under showID, oldest first.
func (repo *contentRepository) ListEpisodes(ctx context.Context, userID, showID uuid.UUID) ([]*entity.Content, error) {
	var contentMs []model.ContentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND show_id = ?", userID, string(entity.ContentKindEpisode), showID).
		Order("created_at, id").
		Find(&contentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list episodes")
	}

	return toContentDomainList(contentMs)
}

func toContentDomainList(data []model.ContentModel) ([]*entity.Content, error) {
	contents := make([]*entity.Content, 0, len(data))
	for i := range data {
		content, err := toContentDomain(&data[i])
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}

	return contents, nil
}

func toContentDomain(data *model.ContentModel) (*entity.Content, error) {
	if data == nil {
		return nil, nil
	}

	var metadata entity.Metadata
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &metadata); err != nil {
			return nil, errors.Wrapf(err, "failed to decode metadata of content %s", data.ID)
		}
	}

	return &entity.Content{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      entity.ContentKind(data.Kind),
		Metadata:  metadata,
		ShowID:    data.ShowID,
		Watched:   data.Watched,
		Plays:     data.Plays,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromContentDomain(data *entity.Content) (*model.ContentModel, error) {
	metadata, err := json.Marshal(data.Metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode content metadata")
	}

	return &model.ContentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      string(data.Kind),
		Metadata:  datatypes.JSON(metadata),
		ShowID:    data.ShowID,
		Watched:   data.Watched,
		Plays:     data.Plays,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
