// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/services"
)

// fuzzyMarker flags results where a title word only matched approximately.
const fuzzyMarker = "~"

// ResultList displays ranked search results with highlighted titles.
// Selection is owned by the search controller; the list only renders it.
type ResultList struct {
	results  []domain.ScoredResult
	query    string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)+2)
	lines = append(lines, r.styles.Subtitle.Render(CountLabel(len(r.results))), "")

	// Each result takes two lines
	visibleCount := (r.height - 2) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// CountLabel formats the result count line.
func CountLabel(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

// renderResult formats a single result: highlighted title, category and
// score on the first line, the page path and description below.
func (r *ResultList) renderResult(index int, result *domain.ScoredResult) string {
	selected := index == r.selected

	indicator := "  "
	base := r.styles.Normal
	if selected {
		indicator = "> "
		base = r.styles.Selected
	}

	title := result.Title
	if title == "" {
		title = "(Untitled)"
	}

	maxTitleLen := r.width - 24
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	segments := Truncate(services.Highlight(title, r.query), maxTitleLen)

	titleLine := base.Render(indicator) + r.RenderSegments(segments, base)
	if result.Category != "" {
		titleLine += "  " + r.styles.Category.Render(result.Category)
	}
	if result.Matched(domain.MatchFuzzy) {
		titleLine += " " + r.styles.Muted.Render(fuzzyMarker)
	}
	titleLine += "  " + r.styles.Muted.Render(fmt.Sprintf("%d", result.Score))

	detail := strings.Join(result.Path, " › ")
	if result.Description != "" {
		detail += " · " + result.Description
	}
	maxDetailLen := r.width - 6
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}
	detailLine := r.styles.Muted.Render("    " + truncateString(detail, maxDetailLen))

	return titleLine + "\n" + detailLine
}

// RenderSegments styles matched segments with the highlight style and the
// rest with base.
func (r *ResultList) RenderSegments(segments []domain.Segment, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Matched {
			b.WriteString(r.styles.Highlight.Inherit(base).Render(seg.Text))
			continue
		}
		b.WriteString(base.Render(seg.Text))
	}
	return b.String()
}

// Truncate cuts segments so their combined text is at most max runes,
// ending with "..." when anything was dropped.
func Truncate(segments []domain.Segment, max int) []domain.Segment {
	total := 0
	for _, seg := range segments {
		total += len([]rune(seg.Text))
	}
	if total <= max || max <= 3 {
		return segments
	}

	budget := max - 3
	out := make([]domain.Segment, 0, len(segments)+1)
	for _, seg := range segments {
		runes := []rune(seg.Text)
		if len(runes) >= budget {
			if budget > 0 {
				out = append(out, domain.Segment{Text: string(runes[:budget]), Matched: seg.Matched})
			}
			break
		}
		out = append(out, seg)
		budget -= len(runes)
	}
	return append(out, domain.Segment{Text: "..."})
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// SetResults replaces the results and the query used for highlighting.
func (r *ResultList) SetResults(results []domain.ScoredResult, query string) {
	r.results = results
	r.query = query
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.ScoredResult {
	return r.results
}

// Query returns the query the results were highlighted with.
func (r *ResultList) Query() string {
	return r.query
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
