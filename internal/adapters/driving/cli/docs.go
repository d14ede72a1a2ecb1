package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List handbook pages",
	Long:  `Lists every page in navigation order, grouped by category.`,
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a page",
	Long: `Prints the markdown body of the page at path.

The path is the file path under the docs directory without ".md",
for example "commands/list-files".`,
	Args: cobra.ExactArgs(1),
	RunE: runDocsShow,
}

func init() {
	docsCmd.AddCommand(docsShowCmd)
	rootCmd.AddCommand(docsCmd)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errNoSearch
	}

	docs, err := searchService.Documents(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	category := ""
	for i := range docs {
		if i == 0 || docs[i].Category != category {
			category = docs[i].Category
			if i > 0 {
				cmd.Println()
			}
			if category == "" {
				cmd.Println("[Uncategorised]")
			} else {
				cmd.Printf("[%s]\n", category)
			}
		}

		title := docs[i].Title
		if title == "" {
			title = "(Untitled)"
		}
		cmd.Printf("  %-40s %s\n", docs[i].Key(), title)
	}
	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errNoSearch
	}

	path := domain.ParsePath(args[0])
	if len(path) == 0 {
		return fmt.Errorf("empty path: %w", domain.ErrInvalidInput)
	}

	doc, err := searchService.Document(commandContext(cmd), path)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no page at %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Println(doc.Body)
	return nil
}
