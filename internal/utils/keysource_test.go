package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	eserrors "github.com/envseal/envseal/internal/errors"
)

func TestResolveSecretKey_FromFile(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("my-secret-key\n"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	key, err := ResolveSecretKey(keyFile)
	if err != nil {
		t.Fatalf("ResolveSecretKey returned error: %v", err)
	}
	if key != "my-secret-key" {
		t.Errorf("key = %q, want %q (trailing newline should be trimmed)", key, "my-secret-key")
	}
}

func TestResolveSecretKey_MissingFile(t *testing.T) {
	_, err := ResolveSecretKey(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, eserrors.ErrInvalidKeyFile) {
		t.Errorf("expected ErrInvalidKeyFile, got: %v", err)
	}
}

func TestResolveSecretKey_FromPipedStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	if _, err := w.WriteString("piped-secret\n"); err != nil {
		t.Fatalf("Failed to write to pipe: %v", err)
	}
	w.Close()

	originalStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = originalStdin }()

	key, err := ResolveSecretKey("")
	if err != nil {
		t.Fatalf("ResolveSecretKey returned error: %v", err)
	}
	if key != "piped-secret" {
		t.Errorf("key = %q, want %q", key, "piped-secret")
	}
}

func TestResolveSecretKey_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	if err := os.WriteFile(keyFile, []byte("\n"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	_, err := ResolveSecretKey(keyFile)
	if !errors.Is(err, eserrors.ErrInvalidKeyFile) {
		t.Errorf("expected ErrInvalidKeyFile for empty key file, got: %v", err)
	}
}
