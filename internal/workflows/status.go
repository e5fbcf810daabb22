package workflows

import (
	"context"
	"fmt"

	"github.com/envseal/envseal/internal/configs"
	"github.com/envseal/envseal/internal/envfile"
	"github.com/envseal/envseal/internal/wire"
)

// StatusOptions configures the status workflow.
type StatusOptions struct {
	// FilePatterns specifies env files to inspect, as in EncryptOptions.
	FilePatterns []string

	// Root is the project root. Defaults to the working directory.
	Root string
}

// FileStatus summarizes the protection state of one env file.
type FileStatus struct {
	Path      string
	Encrypted int
	Plaintext []string // names still in plaintext
	Empty     int
	Warnings  []string
}

// StatusResult contains the outcome of a status inspection.
type StatusResult struct {
	Files []FileStatus
}

// FullyEncrypted reports whether every non-empty variable in every
// inspected file is encrypted.
func (r *StatusResult) FullyEncrypted() bool {
	for _, f := range r.Files {
		if len(f.Plaintext) > 0 {
			return false
		}
	}
	return true
}

// Status inspects env files and reports which variables are encrypted,
// plaintext, or empty. It needs no secret key: the check is purely
// structural via the wire format probe.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
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

	result := &StatusResult{}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := envfile.ReadFile(path)
		if err != nil {
			return nil, err
		}

		lines := envfile.ParseLines(content)
		vars, warnings, err := extractVariables(lines, settings.StrictDuplicates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		status := FileStatus{Path: path}
		for _, w := range warnings {
			status.Warnings = append(status.Warnings, w.String())
		}

		for _, key := range vars.Keys() {
			value, _ := vars.Get(key)
			switch {
			case value == "":
				status.Empty++
			case wire.IsEncrypted(value):
				status.Encrypted++
			default:
				status.Plaintext = append(status.Plaintext, key)
			}
		}

		result.Files = append(result.Files, status)
	}

	return result, nil
}
