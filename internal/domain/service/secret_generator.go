// Package service declares the domain-facing contracts implemented in infra.
package service

// SecretGenerator produces the random material for device credentials.
type SecretGenerator interface {
	// NewSecret returns an opaque high-entropy secret used for access and refresh tokens.
	NewSecret() (string, error)

	// NewLinkingCode returns a short code a person can type on a second device.
	NewLinkingCode() (string, error)
}
