package usecase

import (
	"context"

	"github.com/google/uuid"
)

const (
	// TokenTypeBearer is the only token type issued.
	TokenTypeBearer = "bearer"
	// TokenScopePublic is the only scope issued.
	TokenScopePublic = "public"
)

// DeviceCodeOutput is returned when a device starts authorization.
type DeviceCodeOutput struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURL string `json:"verification_url"`
	ExpiresIn       int64  `json:"expires_in"`
	Interval        int64  `json:"interval"`
}

// TokenOutput is a freshly rotated credential pair.
type TokenOutput struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	CreatedAt    int64  `json:"created_at"`
}

// DeviceAuthUsecase defines the device-authorization credential lifecycle.
type DeviceAuthUsecase interface {
	// IssueDeviceCode creates a pending credential for an unattended client.
	IssueDeviceCode(ctx context.Context, clientID string) (*DeviceCodeOutput, error)

	// LinkUser claims a pending credential for username, creating the user on first use.
	LinkUser(ctx context.Context, userCode, username string) error

	// Poll exchanges a linked device code for a rotated credential pair.
	Poll(ctx context.Context, deviceCode string) (*TokenOutput, error)

	// Refresh rotates the credential identified by its current access secret.
	Refresh(ctx context.Context, accessSecret string) (*TokenOutput, error)

	// Authenticate resolves a bearer access secret to the owning user.
	Authenticate(ctx context.Context, accessSecret string) (uuid.UUID, error)

	// Revoke deletes the credential identified by its access secret.
	Revoke(ctx context.Context, accessSecret string) error
}
