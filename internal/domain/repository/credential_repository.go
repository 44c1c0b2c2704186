package repository

import (
	"context"
	"time"

	"scrobbler/internal/domain/entity"
	"scrobbler/internal/errors"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when no live credential matches a secret or code.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository stores device-authorization credentials.
// Unique-constraint violations on any secret column are reported as domainerrors.ErrCredentialConflict.
type CredentialRepository interface {
	// Create inserts a new credential.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByAccessSecret looks up a credential by its current access secret (the device code before the first rotation).
	FindByAccessSecret(ctx context.Context, accessSecret string) (*entity.Credential, error)

	// LockByAccessSecret is FindByAccessSecret with a row lock held for the rest of the transaction.
	LockByAccessSecret(ctx context.Context, accessSecret string) (*entity.Credential, error)

	// FindPendingByLinkingCode finds an unlinked credential by its linking code.
	FindPendingByLinkingCode(ctx context.Context, linkingCode string) (*entity.Credential, error)

	// SecretExists reports whether secret is used as an access or refresh secret by any live credential.
	SecretExists(ctx context.Context, secret string) (bool, error)

	// LinkingCodeExists reports whether any live credential uses linkingCode.
	LinkingCodeExists(ctx context.Context, linkingCode string) (bool, error)

	// AssignUser links a pending credential to a user.
	AssignUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// Rotate replaces both secrets if the credential still carries expectedAccess.
	// It returns ErrCredentialNotFound when another rotation got there first.
	Rotate(ctx context.Context, id uuid.UUID, expectedAccess, newAccess, newRefresh string, rotatedAt time.Time) error

	// Delete removes a credential, revoking it.
	Delete(ctx context.Context, id uuid.UUID) error
}
