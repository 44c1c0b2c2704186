// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"

	"scrobbler/config"
	"scrobbler/internal/domain/service"
	"scrobbler/internal/errors"
)

const (
	// secretBytes is the entropy of access and refresh secrets (256 bits).
	secretBytes = 32

	// linkingCodeAlphabet has 32 symbols, so masking a random byte with 31 picks one uniformly.
	// 0/O and 1/I are left out because people read these codes off a TV screen.
	linkingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	defaultLinkingCodeLength = 8
)

// randomSecretGenerator is a concrete implementation of the SecretGenerator interface backed by crypto/rand.
type randomSecretGenerator struct {
	linkingCodeLength int
}

// NewSecretGenerator is the constructor for randomSecretGenerator.
func NewSecretGenerator(cfg *config.Config) service.SecretGenerator {
	length := defaultLinkingCodeLength
	if cfg != nil && cfg.DeviceAuth != nil && cfg.DeviceAuth.UserCodeLength > 0 {
		length = cfg.DeviceAuth.UserCodeLength
	}

	return NewSecretGeneratorWithLength(length)
}

// NewSecretGeneratorWithLength builds a generator producing linking codes of the given length.
func NewSecretGeneratorWithLength(linkingCodeLength int) service.SecretGenerator {
	if linkingCodeLength <= 0 {
		linkingCodeLength = defaultLinkingCodeLength
	}

	return &randomSecretGenerator{linkingCodeLength: linkingCodeLength}
}

// NewSecret returns 32 random bytes, hex encoded.
func (g *randomSecretGenerator) NewSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random secret")
	}

	return hex.EncodeToString(buf), nil
}

// NewLinkingCode returns an upper-case code drawn from linkingCodeAlphabet.
func (g *randomSecretGenerator) NewLinkingCode() (string, error) {
	buf := make([]byte, g.linkingCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random linking code")
	}

	code := make([]byte, g.linkingCodeLength)
	for i, b := range buf {
		code[i] = linkingCodeAlphabet[b&31]
	}

	return string(code), nil
}
