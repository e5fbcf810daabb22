package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the optional per-project configuration file.
const FileName = ".envseal.toml"

// Settings is the per-project envseal configuration.
type Settings struct {
	// Files lists default env file patterns used when a command is run
	// without explicit file arguments. Empty means "all .env* files".
	Files []string `toml:"files"`

	// StrictDuplicates rejects env files containing the same key twice
	// instead of letting the later value win.
	StrictDuplicates bool `toml:"strict_duplicates"`

	// Audit enables the JSONL run log under .envseal/.
	Audit bool `toml:"audit"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Files:            nil,
		StrictDuplicates: false,
		Audit:            true,
	}
}

// Load reads the project settings from root. A missing config file is not
// an error; defaults are returned. An unrecognized setting name is an
// error, since a typo like "strict_duplicate" silently enabling nothing is
// worse than failing the run.
func Load(root string) (*Settings, error) {
	path := filepath.Join(root, FileName)

	settings := DefaultSettings()
	meta, err := toml.DecodeFile(path, settings)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown setting %q in %s", undecoded[0].String(), FileName)
	}

	return settings, nil
}

// Save writes the project settings to <root>/.envseal.toml.
func Save(root string, settings *Settings) error {
	f, err := os.Create(filepath.Join(root, FileName))
	if err != nil {
		return fmt.Errorf("failed to save project config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(settings); err != nil {
		f.Close()
		return fmt.Errorf("failed to save project config: %w", err)
	}
	return f.Close()
}
