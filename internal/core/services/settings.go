package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDocsDir    = "docs.dir"
	KeyDebounceMS = "search.debounce_ms"
	KeyStorage    = "storage.backend"
	KeyDataDir    = "storage.data_dir"
)

var settingKeys = []string{KeyDocsDir, KeyDebounceMS, KeyStorage, KeyDataDir}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current settings with defaults for anything unset.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	if v := s.configStore.GetString(KeyDocsDir); v != "" {
		settings.DocsDir = v
	}
	if _, ok := s.configStore.Get(KeyDebounceMS); ok {
		settings.Debounce = time.Duration(s.configStore.GetInt(KeyDebounceMS)) * time.Millisecond
	}
	if v := s.configStore.GetString(KeyStorage); v != "" {
		settings.Storage = domain.StorageBackend(v)
	}
	settings.DataDir = s.configStore.GetString(KeyDataDir)

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Set validates and stores one setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("no config store: %w", domain.ErrInvalidInput)
	}
	value = strings.TrimSpace(value)

	switch key {
	case KeyDocsDir:
		if value == "" {
			return fmt.Errorf("%s must not be empty: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case KeyDebounceMS:
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("%s must be a non-negative integer: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, int64(ms))

	case KeyStorage:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("%s must be %q or %q: %w",
				key, domain.StorageSQLite, domain.StorageMemory, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case KeyDataDir:
		if value == "" {
			return s.configStore.Delete(key)
		}
		return s.configStore.Set(key, value)

	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// Keys lists the supported setting keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}
