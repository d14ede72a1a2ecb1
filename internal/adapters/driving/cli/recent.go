package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

var errNoRecent = errors.New("recent search service not configured")

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage recent searches",
	Long: `Shows the recent-search history, most recent first.

The history keeps the last six distinct searches confirmed in the TUI.`,
	Args: cobra.NoArgs,
	RunE: runRecentList,
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches",
	Args:  cobra.NoArgs,
	RunE:  runRecentList,
}

var recentAddCmd = &cobra.Command{
	Use:   "add [query...]",
	Short: "Record a search",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecentAdd,
}

var recentRemoveCmd = &cobra.Command{
	Use:   "remove [query...]",
	Short: "Remove a recent search",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecentRemove,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recent-search history",
	Args:  cobra.NoArgs,
	RunE:  runRecentClear,
}

func init() {
	recentCmd.AddCommand(recentListCmd)
	recentCmd.AddCommand(recentAddCmd)
	recentCmd.AddCommand(recentRemoveCmd)
	recentCmd.AddCommand(recentClearCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecentList(cmd *cobra.Command, _ []string) error {
	if recentService == nil {
		return errNoRecent
	}

	items := recentService.Load()
	if len(items) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	for i, item := range items {
		cmd.Printf("  %d. %s\n", i+1, item)
	}
	return nil
}

func runRecentAdd(cmd *cobra.Command, args []string) error {
	if recentService == nil {
		return errNoRecent
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	recentService.Load()
	recentService.Record(query)

	items := recentService.List()
	if len(items) == 0 || items[0] != query {
		cmd.Printf("Not recorded: searches need at least %d characters.\n", domain.MinRecentQueryLen)
		return nil
	}
	cmd.Printf("Recorded %q.\n", query)
	return nil
}

func runRecentRemove(cmd *cobra.Command, args []string) error {
	if recentService == nil {
		return errNoRecent
	}

	query := strings.Join(args, " ")
	recentService.Load()
	recentService.Remove(query)
	cmd.Printf("Removed %q.\n", query)
	return nil
}

func runRecentClear(cmd *cobra.Command, _ []string) error {
	if recentService == nil {
		return errNoRecent
	}

	recentService.Clear()
	cmd.Println("Recent searches cleared.")
	return nil
}
