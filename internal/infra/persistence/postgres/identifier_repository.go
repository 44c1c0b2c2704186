package postgres

import (
	"context"

	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identifierRepository implements the domain.IdentifierRepository interface using GORM.
type identifierRepository struct {
	db *gorm.DB
}

// NewIdentifierRepository is the constructor for identifierRepository.
func NewIdentifierRepository(db *gorm.DB) repository.IdentifierRepository {
	return &identifierRepository{db: db}
}

// FindLinkedForUser joins identifiers to the user's content through content_identifiers.
func (repo *identifierRepository) FindLinkedForUser(ctx context.Context, userID uuid.UUID, source string, value int64) (*entity.Identifier, error) {
	var idM model.IdentifierModel
	err := repo.db.WithContext(ctx).
		Model(&model.IdentifierModel{}).
		Select("identifiers.*").
		Joins("JOIN content_identifiers ON content_identifiers.identifier_id = identifiers.id").
		Joins("JOIN contents ON contents.id = content_identifiers.content_id").
		Where("contents.user_id = ? AND identifiers.source = ? AND identifiers.value = ?", userID, source, value).
		Take(&idM).Error
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrIdentifierNotFound
		}

		return nil, errors.Wrap(err, "failed to find linked identifier")
	}

	return toIdentifierDomain(&idM), nil
}

// FindOrCreate upserts on the unique (source, value) pair and reads back the surviving row.
func (repo *identifierRepository) FindOrCreate(ctx context.Context, source string, value int64) (*entity.Identifier, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source"}, {Name: "value"}},
			DoNothing: true,
		}).
		Create(&model.IdentifierModel{ID: id, Source: source, Value: value}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create identifier")
	}

	var idM model.IdentifierModel
	if err := repo.db.WithContext(ctx).Where("source = ? AND value = ?", source, value).Take(&idM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read identifier")
	}

	return toIdentifierDomain(&idM), nil
}

type contentIdentifierRow struct {
	ContentID uuid.UUID
	ID        uuid.UUID
	Source    string
	Value     int64
}

// ListByContentIDs loads identifiers for several content records in one query.
func (repo *identifierRepository) ListByContentIDs(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID][]*entity.Identifier, error) {
	result := make(map[uuid.UUID][]*entity.Identifier, len(contentIDs))
	if len(contentIDs) == 0 {
		return result, nil
	}

	var rows []contentIdentifierRow
	err := repo.db.WithContext(ctx).
		Table("content_identifiers").
		Select("content_identifiers.content_id, identifiers.id, identifiers.source, identifiers.value").
		Joins("JOIN identifiers ON identifiers.id = content_identifiers.identifier_id").
		Where("content_identifiers.content_id IN ?", contentIDs).
		Order("identifiers.source, identifiers.value").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list identifiers")
	}

	for _, row := range rows {
		result[row.ContentID] = append(result[row.ContentID], &entity.Identifier{
			ID:     row.ID,
			Source: row.Source,
			Value:  row.Value,
		})
	}

	return result, nil
}

func toIdentifierDomain(data *model.IdentifierModel) *entity.Identifier {
	if data == nil {
		return nil
	}

	return &entity.Identifier{
		ID:     data.ID,
		Source: data.Source,
		Value:  data.Value,
	}
}
