package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/handbook/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for the handbook.

The TUI opens on the contents. Press ctrl+k from any view to open the
search box; results update as you type.

Controls:
  ctrl+k        - Open / close search
  ↑/ctrl+p      - Previous result
  ↓/ctrl+n      - Next result
  Enter         - Open page
  Esc           - Close search / Back
  ctrl+d        - Remove recent search (empty query)
  ctrl+x        - Clear recent searches (empty query)
  ?             - Toggle help
  q             - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newTUIApp builds the TUI from the configured services.
func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	ports := tui.NewPorts(searchService, recentService, settingsService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}

	// Set up context from command
	return app.WithContext(commandContext(cmd)), nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
