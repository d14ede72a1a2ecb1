package driving

import "github.com/custodia-labs/handbook/internal/core/domain"

// SettingsService reads and writes user settings.
type SettingsService interface {
	// Get returns the effective settings with defaults applied.
	Get() (domain.Settings, error)

	// Set updates a single setting by its config key.
	Set(key, value string) error

	// Keys lists the supported config keys.
	Keys() []string
}
