package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	eserrors "github.com/envseal/envseal/internal/errors"
)

// ResolveFiles takes user-provided paths/globs and returns matching env files.
// If patterns is empty, returns nil (caller should use default behavior).
func ResolveFiles(patterns []string, root string) ([]string, error) {
	if len(patterns) == 0 {
		// No patterns provided, caller should use default behavior.
		return nil, nil
	}

	var files []string
	seen := make(map[string]bool) // Deduplicate.

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, root)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, eserrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern string, root string) ([]string, error) {
	// Convert relative patterns to absolute paths based on the root.
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(root, pattern)
	}

	// Check if it's a directory.
	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return FindEnvFiles(absPattern)
	}

	// Check if it contains glob characters.
	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(absPattern)
	}

	// Treat as literal file path.
	if _, err := os.Stat(absPattern); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", eserrors.ErrFileNotFound, pattern)
	}

	if !isEnvFile(absPattern) {
		return nil, fmt.Errorf("%w: %s is not an env file", eserrors.ErrInvalidFileType, pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern string) ([]string, error) {
	// doublestar for ** support.
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", absPattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if isInSkippedDir(m) {
			continue
		}
		if isEnvFile(m) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

// FindEnvFiles walks dir and returns all env files, skipping the .envseal
// state directory and .git.
func FindEnvFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".envseal" || d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if isEnvFile(path) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func isEnvFile(path string) bool {
	base := filepath.Base(path)
	return base == ".env" || strings.HasPrefix(base, ".env.") || strings.HasSuffix(base, ".env")
}

func isInSkippedDir(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".envseal" || part == ".git" {
			return true
		}
	}
	return false
}
