// Package cli provides the cobra commands for the handbook binary.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/handbook/internal/core/ports/driving"
	"github.com/custodia-labs/handbook/internal/logger"
)

// Options carries the global flags to the service builder.
type Options struct {
	// DocsDir overrides the configured docs directory when set.
	DocsDir string

	// ConfigDir overrides the default config directory when set.
	ConfigDir string

	// Verbose enables debug logging.
	Verbose bool
}

// Services holds the driving ports the commands run against.
type Services struct {
	Search   driving.SearchService
	Recent   driving.RecentSearchService
	Settings driving.SettingsService

	// Close releases storage. May be nil.
	Close func() error
}

// Builder constructs services from the global flags.
type Builder func(opts Options) (*Services, error)

var (
	verbose   bool
	docsDir   string
	configDir string
	version   = "dev"

	builder Builder
	closeFn func() error

	searchService   driving.SearchService
	recentService   driving.RecentSearchService
	settingsService driving.SettingsService
)

// errNoSearch is returned by commands that need the corpus when none is wired.
var errNoSearch = errors.New("search service not configured")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "handbook",
	Short: "Search a markdown handbook from the terminal",
	Long: `handbook loads a directory of markdown pages and ranks them against
your query by title, category, path and content.

Example usage:
  handbook search list files   # Rank pages for "list files"
  handbook docs                # List every page in navigation order
  handbook tui                 # Browse and search interactively (ctrl+k)
  handbook recent              # Show recent searches
  handbook mcp                 # Serve the handbook to AI assistants`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initServices,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeServices()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

// SetBuilder sets the function that builds services before each command.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices wires services directly, bypassing the builder.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	searchService = s.Search
	recentService = s.Recent
	settingsService = s.Settings
	closeFn = s.Close
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs", "", "docs directory (default from settings)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.handbook)")
}

// initServices sets up logging and builds services from the global flags.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if builder == nil || cmd == versionCmd {
		return nil
	}

	s, err := builder(Options{DocsDir: docsDir, ConfigDir: configDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(s)
	logger.Debug("services ready (docs=%q, config-dir=%q)", docsDir, configDir)
	return nil
}

// closeServices releases storage opened by the builder.
func closeServices() error {
	if closeFn == nil {
		return nil
	}
	err := closeFn()
	closeFn = nil
	return err
}
