// Package doccontent provides the document pager for the TUI.
// Confirmed search results and contents entries open here.
package doccontent

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/handbook/internal/core/domain"
)

// reservedLines is the space taken by the header and footer.
const reservedLines = 8

// View is the document pager.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model

	document *domain.Document
	back     messages.ViewType
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates a new document pager.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		viewport: viewport.New(80, 24-reservedLines),
		back:     messages.ViewDocuments,
		width:    80,
		height:   24,
	}
}

// SetDocument shows doc from the top. back is the view esc returns to.
func (v *View) SetDocument(doc *domain.Document, back messages.ViewType) {
	v.document = doc
	v.back = back
	v.err = nil
	v.render()
	v.viewport.GotoTop()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the pager.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses. Scrolling keys go to the viewport.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "home", "g":
		v.viewport.GotoTop()
		return v, nil
	case "end", "G":
		v.viewport.GotoBottom()
		return v, nil
	case "esc":
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// render lays the document body out for the current width.
func (v *View) render() {
	if v.document == nil || strings.TrimSpace(v.document.Body) == "" {
		v.viewport.SetContent("")
		return
	}

	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	body := strings.ReplaceAll(v.document.Body, "\t", "    ")
	v.viewport.SetContent(v.styles.Normal.Width(contentWidth).Render(body))
}

// View renders the pager.
func (v *View) View() string {
	var b strings.Builder

	title := "Document"
	if v.document != nil {
		title = v.document.Title
		if title == "" {
			title = v.document.Key()
		}
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	if v.document != nil {
		meta := strings.Join(v.document.Path, " › ")
		if v.document.Category != "" {
			meta = v.styles.Category.Render(v.document.Category) + "  " + v.styles.Muted.Render(meta)
		} else {
			meta = v.styles.Muted.Render(meta)
		}
		b.WriteString(meta)
		b.WriteString("\n")
		if v.document.Description != "" {
			b.WriteString(v.styles.Subtitle.Render(v.document.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	case v.document == nil || v.viewport.TotalLineCount() == 0:
		b.WriteString(v.styles.Muted.Render("(No content)"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.viewport.View())
	b.WriteString("\n")

	if v.viewport.TotalLineCount() > v.viewport.Height {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			int(v.viewport.ScrollPercent()*100),
			v.viewport.YOffset+1,
			min(v.viewport.YOffset+v.viewport.Height, v.viewport.TotalLineCount()),
			v.viewport.TotalLineCount())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [ctrl+k] search  [esc] back")
}

// SetDimensions sets the view dimensions and re-wraps the document.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.viewport.Width = width
	v.viewport.Height = max(height-reservedLines, 1)
	v.render()
}

// Document returns the current document.
func (v *View) Document() *domain.Document {
	return v.document
}

// Back returns the view esc returns to.
func (v *View) Back() messages.ViewType {
	return v.back
}

// YOffset returns the scroll position in lines.
func (v *View) YOffset() int {
	return v.viewport.YOffset
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
