package postgres

import (
	"context"
	"time"

	"scrobbler/internal/domain/entity"
	domainerrors "scrobbler/internal/domain/errors"
	"scrobbler/internal/domain/repository"
	"scrobbler/internal/errors"
	"scrobbler/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a new credential. A clash on any secret column returns ErrCredentialConflict.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	if credential.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.WithStack(err)
		}
		credential.ID = id
	}

	credM := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCredentialConflict.WrapMessage("credential secret already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.CreatedAt = credM.CreatedAt
	credential.UpdatedAt = credM.UpdatedAt

	return nil
}

// FindByAccessSecret retrieves a credential by its current access secret.
// It always reads the primary: a lagging replica would still accept a rotated-out secret.
func (repo *credentialRepository) FindByAccessSecret(ctx context.Context, accessSecret string) (*entity.Credential, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("access_secret = ?", accessSecret))
}

// LockByAccessSecret is FindByAccessSecret under SELECT ... FOR UPDATE.
func (repo *credentialRepository) LockByAccessSecret(ctx context.Context, accessSecret string) (*entity.Credential, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("access_secret = ?", accessSecret))
}

// FindPendingByLinkingCode retrieves an unlinked credential by linking code.
func (repo *credentialRepository) FindPendingByLinkingCode(ctx context.Context, linkingCode string) (*entity.Credential, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("linking_code = ? AND user_id IS NULL", linkingCode))
}

func (repo *credentialRepository) findOne(query *gorm.DB) (*entity.Credential, error) {
	var credM model.CredentialModel
	if err := query.Take(&credM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return toCredentialDomain(&credM), nil
}

// SecretExists checks both secret columns.
func (repo *credentialRepository) SecretExists(ctx context.Context, secret string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("access_secret = ? OR refresh_secret = ?", secret, secret).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check secret")
	}

	return count > 0, nil
}

// LinkingCodeExists reports whether the linking code is taken.
func (repo *credentialRepository) LinkingCodeExists(ctx context.Context, linkingCode string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("linking_code = ?", linkingCode).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check linking code")
	}

	return count > 0, nil
}

// AssignUser sets the owner of a still-pending credential.
func (repo *credentialRepository) AssignUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ? AND user_id IS NULL", id).
		Updates(map[string]any{"user_id": userID, "updated_at": time.Now()})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to link credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// Rotate is a compare-and-swap on the access secret.
func (repo *credentialRepository) Rotate(ctx context.Context, id uuid.UUID, expectedAccess, newAccess, newRefresh string, rotatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ? AND access_secret = ?", id, expectedAccess).
		Updates(map[string]any{
			"access_secret":  newAccess,
			"refresh_secret": newRefresh,
			"created_at":     rotatedAt,
			"updated_at":     rotatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCredentialConflict.WrapMessage("rotated secret already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// Delete removes the credential.
func (repo *credentialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CredentialModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		ID:            data.ID,
		AccessSecret:  data.AccessSecret,
		RefreshSecret: data.RefreshSecret,
		LinkingCode:   data.LinkingCode,
		UserID:        data.UserID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:            data.ID,
		AccessSecret:  data.AccessSecret,
		RefreshSecret: data.RefreshSecret,
		LinkingCode:   data.LinkingCode,
		UserID:        data.UserID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
