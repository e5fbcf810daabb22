package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	eserrors "github.com/envseal/envseal/internal/errors"
)

// newGCM builds an AES-256-GCM AEAD for the given key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != DerivedKeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d",
			eserrors.ErrEncryptFailed, DerivedKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrEncryptFailed, err)
	}

	return cipher.NewGCM(block)
}

// Encrypt encrypts plaintext with AES-256-GCM under the given key and
// 12-byte IV. The returned ciphertext includes GCM's own 16-byte
// authentication tag; the external MAC (see ComputeMAC) is layered on top
// of it, not instead of it.
func Encrypt(plaintext, iv, key []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d",
			eserrors.ErrEncryptFailed, aead.NonceSize(), len(iv))
	}

	return aead.Seal(nil, iv, plaintext, nil), nil
}

// Decrypt decrypts an AES-256-GCM ciphertext produced by Encrypt. Returns
// ErrDecryptionFailed if the GCM tag does not verify or the key or IV has
// the wrong length. A failed tag means the wrong key or tampered data;
// no plaintext is ever returned in that case.
func Decrypt(iv, key, ciphertext []byte) ([]byte, error) {
	if len(key) != DerivedKeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d",
			eserrors.ErrDecryptionFailed, DerivedKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrDecryptionFailed, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrDecryptionFailed, err)
	}
	if len(iv) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d",
			eserrors.ErrDecryptionFailed, aead.NonceSize(), len(iv))
	}

	plaintext, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eserrors.ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
