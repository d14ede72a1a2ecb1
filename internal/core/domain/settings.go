package domain

import "time"

// StorageBackend identifies where recent searches are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists to a SQLite database in the data directory.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps state for the current process only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Settings holds user configuration for the handbook.
type Settings struct {
	// DocsDir is the directory the markdown corpus is loaded from.
	DocsDir string

	// Debounce is the pause between a keystroke and re-scoring in the TUI.
	// Zero scores on every keystroke.
	Debounce time.Duration

	// Storage selects the recent-search backend.
	Storage StorageBackend

	// DataDir is where the SQLite database lives. Empty means the default.
	DataDir string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DocsDir:  "docs",
		Debounce: 120 * time.Millisecond,
		Storage:  StorageSQLite,
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.DocsDir == "" {
		return ErrInvalidInput
	}
	if s.Debounce < 0 {
		return ErrInvalidInput
	}
	if !s.Storage.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
