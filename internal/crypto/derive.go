package crypto

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	eserrors "github.com/envseal/envseal/internal/errors"
	"github.com/envseal/envseal/internal/random"
)

// Argon2id parameters. Memory-hard on purpose: the secret key is a
// password-class input, so derivation cost is the brute-force defense.
const (
	argonTime    = 4
	argonMemory  = 262144 // KiB (256 MiB)
	argonThreads = 3

	// DerivedKeySize is the size of each derived sub-key.
	DerivedKeySize = 32
)

// KeyPair holds the two independent sub-keys derived from one secret and
// salt: one for encryption and one for the external MAC. Splitting a single
// derivation avoids reusing one key for both roles without paying for a
// second Argon2 pass. A KeyPair is never persisted; it is scoped to a
// single encrypt or decrypt call.
type KeyPair struct {
	EncryptionKey []byte
	MACKey        []byte
}

// DeriveKeys derives a KeyPair from a secret and a 32-byte salt using
// Argon2id. The same (secret, salt) always yields the same KeyPair; two
// different salts yield unrelated KeyPairs.
//
// Returns ErrEmptySecretKey if secret is empty and ErrInvalidSalt if the
// salt is not exactly 32 bytes.
func DeriveKeys(secret string, salt []byte) (*KeyPair, error) {
	if secret == "" {
		return nil, eserrors.ErrEmptySecretKey
	}
	if len(salt) != random.SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes", eserrors.ErrInvalidSalt, len(salt))
	}

	derived := argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, 2*DerivedKeySize)
	if len(derived) != 2*DerivedKeySize {
		// argon2.IDKey always returns the requested length; this guards a
		// hypothetical provider failure per the error taxonomy.
		return nil, eserrors.ErrKeyDerivationFailed
	}

	return &KeyPair{
		EncryptionKey: derived[:DerivedKeySize],
		MACKey:        derived[DerivedKeySize:],
	}, nil
}

// DeriveKeysFromEncoded derives a KeyPair from a secret and a base64-encoded
// salt, as found in the wire format. Returns ErrInvalidSalt if the salt is
// not valid base64 or does not decode to exactly 32 bytes.
func DeriveKeysFromEncoded(secret, saltB64 string) (*KeyPair, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrInvalidSalt, err)
	}
	return DeriveKeys(secret, salt)
}
