package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/services"
)

var errNoSettings = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the docs directory, search debounce and storage.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting by its config key.

Available keys:
  docs.dir            - Directory holding the markdown pages
  search.debounce_ms  - Pause after typing before the TUI re-ranks (0 = none)
  storage.backend     - Where recent searches live: sqlite or memory
  storage.data_dir    - Directory for the SQLite database (empty = default)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Docs]")
	cmd.Printf("  Directory: %s\n", settings.DocsDir)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Debounce: %s\n", settings.Debounce)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage)
	dataDir := settings.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("  Data directory: %s\n", dataDir)
	cmd.Println()

	if err != nil {
		cmd.Printf("Configuration is invalid: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s to %q\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	current, err := settingsService.Get()
	if err != nil {
		current = domain.DefaultSettings()
	}

	cmd.Println("Handbook Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Docs directory
	cmd.Println("Step 1: Docs Directory")
	cmd.Println("----------------------")
	cmd.Printf("Enter directory [%s]: ", current.DocsDir)
	if input := readLine(reader); input != "" {
		if err := settingsService.Set(services.KeyDocsDir, input); err != nil {
			return fmt.Errorf("failed to set docs directory: %w", err)
		}
	}
	cmd.Println()

	// Step 2: Debounce
	cmd.Println("Step 2: Search Debounce")
	cmd.Println("-----------------------")
	cmd.Printf("Enter milliseconds [%d]: ", current.Debounce/time.Millisecond)
	if input := readLine(reader); input != "" {
		if err := settingsService.Set(services.KeyDebounceMS, input); err != nil {
			return fmt.Errorf("failed to set debounce: %w", err)
		}
	}
	cmd.Println()

	// Step 3: Storage backend
	cmd.Println("Step 3: Recent-Search Storage")
	cmd.Println("-----------------------------")
	backends := []domain.StorageBackend{domain.StorageSQLite, domain.StorageMemory}
	defaultIdx := 1
	for i, b := range backends {
		cmd.Printf("  %d. %s\n", i+1, b)
		if b == current.Storage {
			defaultIdx = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	idx := parseChoice(readLine(reader), len(backends), defaultIdx)
	if err := settingsService.Set(services.KeyStorage, backends[idx-1].String()); err != nil {
		return fmt.Errorf("failed to set storage backend: %w", err)
	}
	cmd.Printf("Set storage backend to: %s\n\n", backends[idx-1])

	cmd.Println("Settings saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

