package entity

import (
	"time"

	"github.com/google/uuid"
)

// CredentialState describes where a credential is in the device-authorization flow.
type CredentialState string

const (
	// CredentialPending is a freshly issued device code nobody has claimed yet.
	CredentialPending CredentialState = "pending"
	// CredentialLinked is a device code that a user has claimed with its linking code.
	CredentialLinked CredentialState = "linked"
)

// Credential is a device-authorization grant.
// The access secret doubles as the device code until the credential is first polled after linking.
type Credential struct {
	ID            uuid.UUID
	AccessSecret  string
	RefreshSecret string
	LinkingCode   string
	UserID        *uuid.UUID // nil while pending
	CreatedAt     time.Time  // reset on every rotation
	UpdatedAt     time.Time
}

// State reports whether the credential has been claimed by a user.
func (c *Credential) State() CredentialState {
	if c.UserID == nil {
		return CredentialPending
	}

	return CredentialLinked
}

// IsLinked is shorthand for State() == CredentialLinked.
func (c *Credential) IsLinked() bool {
	return c.State() == CredentialLinked
}
