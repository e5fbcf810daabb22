package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/envseal/envseal/internal/audit"
	"github.com/envseal/envseal/internal/configs"
	"github.com/envseal/envseal/internal/crypto"
	"github.com/envseal/envseal/internal/envfile"
	eserrors "github.com/envseal/envseal/internal/errors"
	"github.com/envseal/envseal/internal/random"
	"github.com/envseal/envseal/internal/wire"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// SecretKey is the password-class secret the per-value keys are derived
	// from. Always passed explicitly; never read from the environment.
	SecretKey string

	// FilePatterns specifies env files to process. If empty, the project
	// config's files setting is used, then all .env* files under Root.
	FilePatterns []string

	// Variables restricts processing to these names (exact match). Names
	// not present in a file are counted as not-found with a warning.
	// If empty, all extracted variables are candidates.
	Variables []string

	// Rotate re-encrypts values that are already encrypted: each is
	// decrypted with OldSecretKey and encrypted again under SecretKey
	// with a fresh salt.
	Rotate bool

	// OldSecretKey decrypts existing values during rotation. Empty means
	// the values are already protected by SecretKey and rotation only
	// refreshes salts and IVs.
	OldSecretKey string

	// DryRun previews the outcome without writing any file.
	DryRun bool

	// Root is the project root. Defaults to the working directory.
	Root string
}

// FileReport is the per-file outcome of an encrypt run.
type FileReport struct {
	Path string

	NewlyEncrypted   int
	Rotated          int
	SkippedEncrypted int
	SkippedEmpty     int
	NotFound         int

	// Changed reports whether the file content was (or would be) rewritten.
	Changed bool

	// Warnings collects non-fatal findings: malformed lines, duplicate
	// keys, skipped empty values, names not found.
	Warnings []string
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	Files  []FileReport
	DryRun bool
}

// TotalChanged returns how many files were rewritten.
func (r *EncryptResult) TotalChanged() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// Encrypt encrypts variables inside env files using password-derived
// authenticated encryption.
//
// For each selected variable: an empty value is skipped with a warning; an
// already-encrypted value is skipped unless Rotate is set, in which case it
// is decrypted with the old key and re-encrypted under a fresh salt; a
// plaintext value is encrypted in place. Files are only written when at
// least one value changed, and the write is atomic.
//
// Any single variable's encrypt or decrypt failure aborts the whole run
// before anything is written, and the error names the offending variable.
// A rotation decrypt failure means the stored value was encrypted under a
// different key or corrupted; it is never skipped silently.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
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

	result := &EncryptResult{DryRun: opts.DryRun}

	for _, path := range files {
		content, err := envfile.ReadFile(path)
		if err != nil {
			return nil, err
		}

		lines := envfile.ParseLines(content)
		report, updated, err := encryptLines(ctx, lines, opts, settings.StrictDuplicates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		report.Path = path

		if report.Changed && !opts.DryRun {
			if err := envfile.WriteFileAtomic(path, envfile.Render(updated)); err != nil {
				return nil, err
			}
		}

		result.Files = append(result.Files, *report)
	}

	if settings.Audit && !opts.DryRun {
		logAudit(root, "encrypt", opts, result)
	}

	return result, nil
}

// encryptLines runs the orchestration state machine over one file's lines.
// It is pure with respect to the filesystem: lines in, lines out.
func encryptLines(ctx context.Context, lines []string, opts EncryptOptions, strict bool) (*FileReport, []string, error) {
	report := &FileReport{}

	vars, warnings, err := extractVariables(lines, strict)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range warnings {
		report.Warnings = append(report.Warnings, w.String())
	}

	selected, notFound := selectVariables(vars, opts.Variables)
	report.NotFound = len(notFound)
	for _, name := range notFound {
		report.Warnings = append(report.Warnings, fmt.Sprintf("variable %s not found, skipped", name))
	}

	updated := lines
	for _, key := range selected {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		value, valueErr := vars.Value(key)

		switch {
		case errors.Is(valueErr, eserrors.ErrEmptyValue):
			// Never encrypt empty secrets.
			report.SkippedEmpty++
			report.Warnings = append(report.Warnings, fmt.Sprintf("variable %s has an empty value, skipped", key))
			continue

		case valueErr != nil:
			return nil, nil, valueErr

		case wire.IsEncrypted(value) && !opts.Rotate:
			// Already protected; idempotent no-op.
			report.SkippedEncrypted++
			continue

		case wire.IsEncrypted(value) && opts.Rotate:
			oldKey := opts.OldSecretKey
			if oldKey == "" {
				oldKey = opts.SecretKey
			}
			plaintext, err := DecryptValue(value, oldKey)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot rotate variable %s (wrong key or corrupted value): %w", key, err)
			}
			encoded, err := encryptValue(plaintext, opts.SecretKey)
			if err != nil {
				return nil, nil, fmt.Errorf("variable %s: %w", key, err)
			}
			updated = envfile.UpdateLine(updated, key, encoded)
			report.Rotated++
			report.Changed = true

		default:
			encoded, err := encryptValue(value, opts.SecretKey)
			if err != nil {
				return nil, nil, fmt.Errorf("variable %s: %w", key, err)
			}
			updated = envfile.UpdateLine(updated, key, encoded)
			report.NewlyEncrypted++
			report.Changed = true
		}
	}

	return report, updated, nil
}

// encryptValue runs the full pipeline for one value: fresh salt, key
// derivation, fresh IV, AES-GCM, external MAC, wire encoding. Keys are
// derived per value and never reused across values.
func encryptValue(plaintext, secret string) (string, error) {
	salt, err := random.Salt()
	if err != nil {
		return "", err
	}

	keys, err := crypto.DeriveKeys(secret, salt)
	if err != nil {
		return "", err
	}

	iv, err := random.IV()
	if err != nil {
		return "", err
	}

	ciphertext, err := crypto.Encrypt([]byte(plaintext), iv, keys.EncryptionKey)
	if err != nil {
		return "", err
	}

	record := &wire.Record{
		Salt:       salt,
		IV:         iv,
		CipherText: ciphertext,
	}
	record.MAC = crypto.ComputeMAC(keys.MACKey, record.MACInput())

	return wire.Encode(record), nil
}

// selectVariables returns the candidate keys in file order. With an
// explicit name list, only those names are selected (preserving file
// order); names absent from the file are returned separately.
func selectVariables(vars *envfile.VariableMap, names []string) (selected, notFound []string) {
	if len(names) == 0 {
		return vars.Keys(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	for _, key := range vars.Keys() {
		if wanted[key] {
			selected = append(selected, key)
			delete(wanted, key)
		}
	}
	for _, name := range names {
		if wanted[name] {
			notFound = append(notFound, name)
		}
	}

	return selected, notFound
}

func extractVariables(lines []string, strict bool) (*envfile.VariableMap, []envfile.Warning, error) {
	if strict {
		return envfile.ExtractVariablesStrict(lines)
	}
	vars, warnings := envfile.ExtractVariables(lines)
	return vars, warnings, nil
}

// resolveEnvFiles finds env files from explicit patterns, then the project
// config, then all .env* files under root.
func resolveEnvFiles(patterns []string, settings *configs.Settings, root string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = settings.Files
	}

	if len(patterns) > 0 {
		return envfile.ResolveFiles(patterns, root)
	}

	found, err := envfile.FindEnvFiles(root)
	if err != nil {
		return nil, fmt.Errorf("finding env files: %w", err)
	}
	if len(found) == 0 {
		return nil, eserrors.ErrNoFilesFound
	}
	return found, nil
}

func resolveRoot(root string) (string, error) {
	if root != "" {
		return root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

func logAudit(root, op string, opts EncryptOptions, result *EncryptResult) {
	entry := audit.NewEntry(op)
	entry.Variables = opts.Variables
	for _, f := range result.Files {
		entry.Files = append(entry.Files, f.Path)
		entry.NewlyEncrypted += f.NewlyEncrypted
		entry.Rotated += f.Rotated
		entry.SkippedEncrypted += f.SkippedEncrypted
		entry.SkippedEmpty += f.SkippedEmpty
		entry.NotFound += f.NotFound
	}
	audit.Log(root, entry)
}
