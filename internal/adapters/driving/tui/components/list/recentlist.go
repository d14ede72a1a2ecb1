package list

import (
	"strings"

	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/styles"
)

// RecentList renders the recent-search pane shown while the query is empty.
type RecentList struct {
	items    []string
	selected int
	styles   *styles.Styles
}

// NewRecentList creates an empty recent-search pane.
func NewRecentList(s *styles.Styles) *RecentList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &RecentList{styles: s}
}

// SetItems replaces the entries, keeping the cursor in range.
func (l *RecentList) SetItems(items []string) {
	l.items = items
	l.clamp()
}

// Items returns the current entries.
func (l *RecentList) Items() []string {
	return l.items
}

// Selected returns the cursor position.
func (l *RecentList) Selected() int {
	return l.selected
}

// SelectedItem returns the entry under the cursor, or "" if empty.
func (l *RecentList) SelectedItem() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.selected]
}

// MoveUp moves the cursor up.
func (l *RecentList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the cursor down.
func (l *RecentList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// Reset moves the cursor back to the first entry.
func (l *RecentList) Reset() {
	l.selected = 0
}

// IsEmpty returns whether there are no entries.
func (l *RecentList) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *RecentList) clamp() {
	if l.selected >= len(l.items) {
		l.selected = len(l.items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// View renders the pane.
func (l *RecentList) View() string {
	if len(l.items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(l.items)+1)
	lines = append(lines, l.styles.Subtitle.Render("Recent searches"))
	for i, item := range l.items {
		if i == l.selected {
			lines = append(lines, l.styles.Selected.Render("> "+item))
			continue
		}
		lines = append(lines, l.styles.Normal.Render("  "+item))
	}
	return strings.Join(lines, "\n")
}
