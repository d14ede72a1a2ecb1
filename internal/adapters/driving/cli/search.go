package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/services"
)

// suggestionLimit is how many titles are offered when a search has no results.
const suggestionLimit = 3

var (
	searchLimit int
	searchJSON  bool
)

// searchStyles are the TUI default styles, reused for terminal output.
var searchStyles = styles.DefaultStyles()

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the handbook",
	Long: `Ranks every handbook page against the query.

Titles weigh most, then categories and paths, then body text. Misspelt
title words still match when they are close enough. At most 15 results
are shown, best first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.MaxResults, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResultJSON is the JSON shape of one result.
type searchResultJSON struct {
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
	MatchedIn   []string `json:"matched_in"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if searchService == nil {
		return errNoSearch
	}

	ctx := commandContext(cmd)

	results, err := searchService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	if len(results) == 0 {
		return outputNoResults(ctx, cmd, query)
	}

	outputSearchTable(cmd, results, query, isTerminal(cmd.OutOrStderr()))
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ScoredResult) error {
	out := make([]searchResultJSON, len(results))
	for i := range results {
		tags := make([]string, len(results[i].MatchedIn))
		for j, tag := range results[i].MatchedIn {
			tags[j] = tag.String()
		}
		out[i] = searchResultJSON{
			Path:        results[i].Key(),
			Title:       results[i].Title,
			Category:    results[i].Category,
			Description: results[i].Description,
			Score:       results[i].Score,
			MatchedIn:   tags,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func outputNoResults(ctx context.Context, cmd *cobra.Command, query string) error {
	cmd.Printf("No results for %q.\n", strings.TrimSpace(query))

	titles, err := searchService.Suggest(ctx, query, suggestionLimit)
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}
	if len(titles) > 0 {
		cmd.Printf("Did you mean: %s?\n", strings.Join(titles, ", "))
	}
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.ScoredResult, query string, styled bool) {
	if len(results) == 1 {
		cmd.Printf("1 result for %q\n\n", strings.TrimSpace(query))
	} else {
		cmd.Printf("%d results for %q\n\n", len(results), strings.TrimSpace(query))
	}

	for i := range results {
		// Format: [N] Title (Score)
		title := results[i].Title
		if title == "" {
			title = results[i].Key()
		}
		if styled {
			title = renderHighlighted(title, query)
		}
		cmd.Printf("  [%d] %s (%d)\n", i+1, title, results[i].Score)

		location := strings.Join(results[i].Path, " › ")
		if results[i].Category != "" {
			category := results[i].Category
			if styled {
				category = searchStyles.Category.Render(category)
			}
			location = category + " · " + location
		}
		if styled {
			location = searchStyles.Muted.Render(location)
		}
		cmd.Printf("      %s\n", location)

		if results[i].Description != "" {
			cmd.Printf("      %s\n", results[i].Description)
		}
		cmd.Println()
	}
}

// renderHighlighted renders text with the query terms emphasised.
func renderHighlighted(text, query string) string {
	var b strings.Builder
	for _, seg := range services.Highlight(text, query) {
		if seg.Matched {
			b.WriteString(searchStyles.Highlight.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
