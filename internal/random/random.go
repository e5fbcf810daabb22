package random

import (
	"crypto/rand"
	"fmt"
	"io"

	eserrors "github.com/envseal/envseal/internal/errors"
)

// Sizes of the random material used by the encryption pipeline.
const (
	// MinLength is the smallest random byte request allowed.
	MinLength = 8
	// MaxLength is a sanity bound on generated random material.
	MaxLength = 1024

	// IVSize is the initialization vector size for AES-GCM (96 bits).
	IVSize = 12
	// LegacyIVSize is the IV size for the legacy CBC mode (128 bits).
	LegacyIVSize = 16
	// SaltSize is the per-value key derivation salt size.
	SaltSize = 32
	// KeySize is the size of generated secret key material.
	KeySize = 32
)

// Bytes returns length cryptographically secure random bytes from the
// platform CSPRNG. Returns ErrInvalidLength if length is below MinLength
// or above MaxLength.
func Bytes(length int) ([]byte, error) {
	if length < MinLength || length > MaxLength {
		return nil, fmt.Errorf("%w: got %d", eserrors.ErrInvalidLength, length)
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("failed to read from system CSPRNG: %w", err)
	}

	return b, nil
}

// IV returns a fresh 12-byte initialization vector for AES-GCM.
// An IV must never be reused under the same key.
func IV() ([]byte, error) {
	return Bytes(IVSize)
}

// LegacyIV returns a fresh 16-byte initialization vector for the legacy
// CBC mode.
func LegacyIV() ([]byte, error) {
	return Bytes(LegacyIVSize)
}

// Salt returns a fresh 32-byte key derivation salt.
func Salt() ([]byte, error) {
	return Bytes(SaltSize)
}

// Key returns 32 bytes of fresh secret key material.
func Key() ([]byte, error) {
	return Bytes(KeySize)
}
