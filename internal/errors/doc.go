// Package errors provides typed error values for the envseal application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Random errors: Invalid random-length requests (ErrInvalidLength)
//   - Derivation errors: KDF failures and bad salts (ErrKeyDerivationFailed, ErrInvalidSalt)
//   - Crypto errors: Encryption/decryption failures (ErrDecryptionFailed, ErrAuthenticationFailed)
//   - Format errors: Malformed encrypted values (ErrInvalidFormat)
//   - Env file errors: Missing or unusable variables (ErrVariableNotFound, ErrEmptyValue)
//   - File errors: File system issues (ErrNoFilesFound, ErrFileNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(salt) != SaltSize {
//	    return nil, errors.ErrInvalidSalt
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Encrypt(ctx, opts)
//	if errors.Is(err, eserrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("variable %s: %w", name, errors.ErrDecryptionFailed)
//
// Cryptographic errors are never downgraded to warnings: a swallowed decrypt
// failure means data loss, and a swallowed encrypt failure means a secret was
// silently left in plaintext.
package errors
