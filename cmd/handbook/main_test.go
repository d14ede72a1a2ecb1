package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/handbook/internal/adapters/driving/cli"
	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/services"
)

func writeDoc(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// isolateHome points the default config and data directories at a temp dir.
func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestNewServices_DocsFlagOverridesSettings(t *testing.T) {
	isolateHome(t)
	docs := t.TempDir()
	writeDoc(t, docs, "commands/list-files.md", "---\ntitle: List Files\n---\nUse ls.")

	s, err := newServices(cli.Options{DocsDir: docs, ConfigDir: t.TempDir()})
	require.NoError(t, err)

	results, err := s.Search.Search(context.Background(), "list")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "List Files", results[0].Title)
	if s.Close != nil {
		assert.NoError(t, s.Close())
	}
}

func TestNewServices_MemoryStorage(t *testing.T) {
	isolateHome(t)
	configDir := t.TempDir()
	first, err := newServices(cli.Options{ConfigDir: configDir, DocsDir: t.TempDir()})
	require.NoError(t, err)
	if first.Close != nil {
		require.NoError(t, first.Close())
	}
	require.NoError(t, first.Settings.Set(services.KeyStorage, string(domain.StorageMemory)))

	s, err := newServices(cli.Options{ConfigDir: configDir, DocsDir: t.TempDir()})
	require.NoError(t, err)

	assert.Nil(t, s.Close)
	s.Recent.Record("git")
	assert.Equal(t, []string{"git"}, s.Recent.List())
}

func TestNewServices_SQLiteStorage(t *testing.T) {
	isolateHome(t)
	configDir := t.TempDir()
	dataDir := t.TempDir()
	boot, err := newServices(cli.Options{ConfigDir: configDir, DocsDir: t.TempDir()})
	require.NoError(t, err)
	if boot.Close != nil {
		require.NoError(t, boot.Close())
	}
	require.NoError(t, boot.Settings.Set(services.KeyDataDir, dataDir))

	s, err := newServices(cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	require.NotNil(t, s.Close)
	s.Recent.Record("list files")
	require.NoError(t, s.Close())

	reopened, err := newServices(cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	require.NotNil(t, reopened.Close)
	defer reopened.Close()

	assert.Equal(t, []string{"list files"}, reopened.Recent.List())
	assert.FileExists(t, filepath.Join(dataDir, "handbook.db"))
}

func TestNewServices_InvalidConfigFallsBack(t *testing.T) {
	isolateHome(t)
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"),
		[]byte("[storage]\nbackend = \"postgres\"\n"), 0o600))

	s, err := newServices(cli.Options{ConfigDir: configDir, DocsDir: t.TempDir()})
	require.NoError(t, err)
	if s.Close != nil {
		defer s.Close()
	}

	assert.NotNil(t, s.Search)
}
