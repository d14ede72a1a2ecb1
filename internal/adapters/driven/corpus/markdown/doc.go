// Package markdown loads the handbook corpus from a directory of markdown files.
//
// Every *.md file below the root becomes one domain.Document. Optional YAML
// front matter between "---" lines supplies title, description and category.
// The document path is the file's relative path without the extension.
//
// An optional order.yaml at the root lists document paths in navigation
// order:
//
//	order:
//	  - introduction/overview
//	  - commands/navigation
//
// Listed documents come first in that order, the rest follow in walk order.
package markdown
