// Package main is the entry point for the handbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/handbook/internal/adapters/driven/config/file"
	"github.com/custodia-labs/handbook/internal/adapters/driven/corpus/markdown"
	"github.com/custodia-labs/handbook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/handbook/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/handbook/internal/adapters/driving/cli"
	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
	"github.com/custodia-labs/handbook/internal/core/services"
	"github.com/custodia-labs/handbook/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(newServices)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

// newServices wires the adapters and core services for one command run.
func newServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("%v; using defaults", err)
		settings = domain.DefaultSettings()
	}

	docsDir := settings.DocsDir
	if opts.DocsDir != "" {
		docsDir = opts.DocsDir
	}
	corpus := markdown.NewCorpus(docsDir)
	logger.Debug("docs directory: %s", corpus.Root())

	kv, closeFn := openKVStore(settings)

	return &cli.Services{
		Search:   services.NewSearchService(corpus),
		Recent:   services.NewRecentSearches(kv),
		Settings: settingsService,
		Close:    closeFn,
	}, nil
}

// openKVStore opens the configured recent-search backend.
// A SQLite failure falls back to memory so search keeps working.
func openKVStore(settings domain.Settings) (driven.KVStore, func() error) {
	if settings.Storage == domain.StorageMemory {
		return memory.NewKVStore(), nil
	}

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		logger.Warn("recent searches kept in memory: %v", err)
		return memory.NewKVStore(), nil
	}
	logger.Debug("recent searches stored in %s", store.Path())
	return store.KVStore(), store.Close
}
