package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/envseal/envseal/internal/audit"
	"github.com/envseal/envseal/internal/configs"
	"github.com/envseal/envseal/internal/crypto"
	"github.com/envseal/envseal/internal/envfile"
	eserrors "github.com/envseal/envseal/internal/errors"
	"github.com/envseal/envseal/internal/wire"
)

// DecryptValue decrypts one encoded value with the given secret key.
//
// The external MAC is verified first, in constant time, before the GCM
// open. Returns ErrInvalidFormat for a malformed encoding,
// ErrAuthenticationFailed when the MAC does not match (wrong key or
// tampering), and ErrDecryptionFailed when the GCM tag fails.
func DecryptValue(encoded, secret string) (string, error) {
	if secret == "" {
		return "", eserrors.ErrEmptySecretKey
	}

	record, err := wire.Decode(encoded)
	if err != nil {
		return "", err
	}

	keys, err := crypto.DeriveKeys(secret, record.Salt)
	if err != nil {
		return "", err
	}

	if !crypto.VerifyMAC(keys.MACKey, record.MACInput(), record.MAC) {
		return "", eserrors.ErrAuthenticationFailed
	}

	plaintext, err := crypto.Decrypt(record.IV, keys.EncryptionKey, record.CipherText)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// SecretKey is the secret the values were encrypted under.
	SecretKey string

	// FilePatterns specifies env files to process, as in EncryptOptions.
	FilePatterns []string

	// Variables restricts processing to these names. If empty, every
	// encrypted variable is decrypted.
	Variables []string

	// Write persists decrypted values back into the files. Off by default:
	// the normal mode only reveals values in the result.
	Write bool

	// Root is the project root. Defaults to the working directory.
	Root string
}

// DecryptedVariable is one revealed value.
type DecryptedVariable struct {
	Key   string
	Value string
}

// DecryptFileResult is the per-file outcome of a decrypt run.
type DecryptFileResult struct {
	Path      string
	Variables []DecryptedVariable
	NotFound  []string
	Skipped   int // plaintext variables left alone
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	Files []DecryptFileResult
	Wrote bool
}

// Decrypt reveals (or, with Write, persists) the plaintext of encrypted
// variables in env files. Any single variable's decryption failure aborts
// the whole run: a value that cannot be decrypted means the wrong key or a
// corrupted file, and partial output would hide that.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if opts.SecretKey == "" {
		return nil, eserrors.ErrEmptySecretKey
	}

	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	settings, err := configs.Load(root)
	if err != nil {
		return nil, err
	}

	files, err := resolveEnvFiles(opts.FilePatterns, settings, root)
	if err != nil {
		return nil, err
	}

	result := &DecryptResult{}

	for _, path := range files {
		content, err := envfile.ReadFile(path)
		if err != nil {
			return nil, err
		}

		lines := envfile.ParseLines(content)
		vars, _, err := extractVariables(lines, settings.StrictDuplicates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		selected, notFound := selectVariables(vars, opts.Variables)
		fileResult := DecryptFileResult{Path: path, NotFound: notFound}

		updated := lines
		changed := false
		for _, key := range selected {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			value, valueErr := vars.Value(key)
			if valueErr != nil {
				if errors.Is(valueErr, eserrors.ErrEmptyValue) {
					fileResult.Skipped++
					continue
				}
				return nil, valueErr
			}
			if !wire.IsEncrypted(value) {
				fileResult.Skipped++
				continue
			}

			plaintext, err := DecryptValue(value, opts.SecretKey)
			if err != nil {
				return nil, fmt.Errorf("%s: variable %s: %w", path, key, err)
			}

			fileResult.Variables = append(fileResult.Variables, DecryptedVariable{Key: key, Value: plaintext})
			if opts.Write {
				updated = envfile.UpdateLine(updated, key, plaintext)
				changed = true
			}
		}

		if changed {
			if err := envfile.WriteFileAtomic(path, envfile.Render(updated)); err != nil {
				return nil, err
			}
			result.Wrote = true
		}

		result.Files = append(result.Files, fileResult)
	}

	if settings.Audit && opts.Write {
		entry := audit.NewEntry("decrypt")
		entry.Variables = opts.Variables
		for _, f := range result.Files {
			entry.Files = append(entry.Files, f.Path)
		}
		audit.Log(root, entry)
	}

	return result, nil
}
