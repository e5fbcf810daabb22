package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	eserrors "github.com/envseal/envseal/internal/errors"
)

// ResolveSecretKey obtains the secret key for an operation, in order of
// preference:
//
//  1. keyFile, when given (trailing newline trimmed)
//  2. piped stdin, when stdin is not a terminal
//  3. an interactive hidden prompt
//
// The key is returned to the caller and passed explicitly into the
// workflow; it is never read from process environment variables.
func ResolveSecretKey(keyFile string) (string, error) {
	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("%w: %v", eserrors.ErrInvalidKeyFile, err)
		}
		key := strings.TrimRight(string(data), "\r\n")
		if key == "" {
			return "", fmt.Errorf("%w: %s is empty", eserrors.ErrInvalidKeyFile, keyFile)
		}
		return key, nil
	}

	if !IsTerminal() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		key := strings.TrimRight(string(data), "\r\n")
		if key != "" {
			return key, nil
		}
		// Piped stdin was empty or already consumed; the controlling
		// terminal can still prompt even though stdin cannot.
		passphrase, err := ReadPassphraseFromTTY("Secret key: ")
		if err != nil {
			return "", err
		}
		if len(passphrase) == 0 {
			return "", eserrors.ErrEmptySecretKey
		}
		return string(passphrase), nil
	}

	passphrase, err := ReadPassphrase("Secret key: ")
	if err != nil {
		return "", err
	}
	if len(passphrase) == 0 {
		return "", eserrors.ErrEmptySecretKey
	}
	return string(passphrase), nil
}
