package errors

import "errors"

// Random generation errors indicate invalid requests for random material.
var (
	// ErrInvalidLength indicates a random byte request outside the 8-1024 byte range.
	ErrInvalidLength = errors.New("requested length must be between 8 and 1024 bytes")
)

// Key derivation errors indicate failures turning a secret into key material.
var (
	// ErrKeyDerivationFailed indicates the password hash could not be computed.
	ErrKeyDerivationFailed = errors.New("key derivation failed")

	// ErrInvalidSalt indicates the salt is not valid base64 or has the wrong decoded length.
	ErrInvalidSalt = errors.New("salt must be valid base64 decoding to exactly 32 bytes")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrEncryptFailed indicates the cipher provider failed. Treated as fatal.
	ErrEncryptFailed = errors.New("failed to encrypt value")

	// ErrDecryptionFailed indicates AEAD decryption failed, usually a wrong key or corrupted data.
	ErrDecryptionFailed = errors.New("failed to decrypt value")

	// ErrAuthenticationFailed indicates the authentication tag did not match.
	// The value was encrypted under a different key or has been tampered with.
	ErrAuthenticationFailed = errors.New("authentication tag mismatch")
)

// Wire format errors indicate a malformed encrypted value encoding.
var (
	// ErrInvalidFormat indicates the text is not a well-formed encrypted value.
	ErrInvalidFormat = errors.New("value is not in the expected encrypted format")
)

// Env file errors indicate issues with the secrets file contents.
var (
	// ErrVariableNotFound indicates a requested variable name is absent from the file.
	ErrVariableNotFound = errors.New("variable not found in file")

	// ErrEmptyValue indicates a variable has an empty value and cannot be encrypted.
	ErrEmptyValue = errors.New("variable has an empty value")

	// ErrDuplicateKey indicates the same key appears more than once (strict mode only).
	ErrDuplicateKey = errors.New("duplicate key in file")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no env files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching env files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFileType indicates the file is not an env file.
	ErrInvalidFileType = errors.New("invalid file type")
)

// Key sourcing errors indicate the secret key could not be obtained.
var (
	// ErrInvalidKeyFile indicates the key file is missing, empty, or unreadable.
	ErrInvalidKeyFile = errors.New("invalid or unreadable key file")

	// ErrEmptySecretKey indicates no secret key was provided.
	ErrEmptySecretKey = errors.New("secret key must not be empty")
)
