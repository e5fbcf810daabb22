package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	eserrors "github.com/envseal/envseal/internal/errors"
)

// writeTestFile is a helper to write test files with 0644 permissions.
// #nosec G306 -- Test files are temporary and don't contain sensitive data.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestResolveFiles_EmptyPatterns(t *testing.T) {
	files, err := ResolveFiles(nil, t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if files != nil {
		t.Errorf("Expected nil, got: %v", files)
	}
}

func TestResolveFiles_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")
	writeTestFile(t, envFile, "TEST=value")

	files, err := ResolveFiles([]string{".env"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 || files[0] != envFile {
		t.Errorf("Expected [%s], got: %v", envFile, files)
	}
}

func TestResolveFiles_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{".env", ".env.local", ".env.production"} {
		writeTestFile(t, filepath.Join(tmpDir, name), "TEST=value")
	}
	writeTestFile(t, filepath.Join(tmpDir, "notes.txt"), "not an env file")

	files, err := ResolveFiles([]string{".env*"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 files, got: %v", files)
	}
}

func TestResolveFiles_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "services", "api")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	writeTestFile(t, filepath.Join(subDir, ".env"), "TEST=value")

	files, err := ResolveFiles([]string{"services"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file, got: %v", files)
	}
}

func TestResolveFiles_NotFound(t *testing.T) {
	_, err := ResolveFiles([]string{".env.missing"}, t.TempDir())
	if !errors.Is(err, eserrors.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got: %v", err)
	}
}

func TestResolveFiles_WrongType(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "config.yaml"), "key: value")

	_, err := ResolveFiles([]string{"config.yaml"}, tmpDir)
	if !errors.Is(err, eserrors.ErrInvalidFileType) {
		t.Errorf("Expected ErrInvalidFileType, got: %v", err)
	}
}

func TestFindEnvFiles_SkipsStateDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, ".env"), "A=1")

	stateDir := filepath.Join(tmpDir, ".envseal")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		t.Fatalf("Failed to create state dir: %v", err)
	}
	writeTestFile(t, filepath.Join(stateDir, ".env"), "B=2")

	files, err := FindEnvFiles(tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file (state dir skipped), got: %v", files)
	}
}
