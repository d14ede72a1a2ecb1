// Package search provides the search surface for the TUI.
//
// The view renders the state held by a services.Controller. Typing stages
// the query and re-ranks after a debounce pause; navigation keys are
// translated to key actions and sent through the shared dispatcher. While
// the query is empty the recent-search pane takes the navigation keys.
package search

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
	"github.com/custodia-labs/handbook/internal/core/services"
)

// maxSuggestions bounds the "did you mean" line.
const maxSuggestions = 3

// View represents the search surface with input, results and recent pane.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	recent    *list.RecentList
	statusbar *status.Bar

	ctrl          *services.Controller
	dispatcher    *services.Dispatcher
	searchService driving.SearchService
	ctx           context.Context
	debounce      time.Duration

	suggestions []string
	settled     services.Generation
	width       int
	height      int
	ready       bool
	err         error
}

// NewView creates a new search view over ctrl.
// searchService is only used for suggestions and may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	ctrl *services.Controller,
	searchService driving.SearchService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		recent:        list.NewRecentList(s),
		statusbar:     status.NewBar(s, km),
		ctrl:          ctrl,
		searchService: searchService,
		ctx:           context.Background(),
		debounce:      domain.DefaultSettings().Debounce,
		width:         80,
		height:        24,
	}
	v.sync()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithDebounce sets the pause between a keystroke and re-ranking.
// Zero or less ranks on every keystroke.
func (v *View) WithDebounce(d time.Duration) *View {
	v.debounce = d
	return v
}

// Attach registers the recent-search pane with d and routes this view's
// key actions through it. Register before the controller so the pane sees
// actions first. The returned func releases the registration.
func (v *View) Attach(d *services.Dispatcher) (release func()) {
	v.dispatcher = d
	return d.Listen(v.handleRecentKey)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.QueryDebounced:
		if v.ctrl.Settle(msg.Generation) {
			v.settled = msg.Generation
			v.sync()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input while the surface is open.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.RemoveRecent):
		if v.recentActive() {
			v.ctrl.RemoveRecent(v.recent.SelectedItem())
			v.sync()
		}
		return v, nil
	case keymap.Matches(keyStr, v.keymap.ClearRecent):
		if v.recentActive() {
			v.ctrl.ClearRecent()
			v.sync()
		}
		return v, nil
	}

	if action := v.keymap.Action(keyStr); action != domain.KeyNone {
		v.dispatch(action)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if !v.input.Changed() {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.stage(v.input.Value()))
}

// dispatch sends action to the listeners and re-syncs the display.
func (v *View) dispatch(action domain.KeyAction) {
	if v.dispatcher != nil {
		v.dispatcher.Dispatch(action)
	} else {
		v.ctrl.HandleKey(action)
	}
	if !v.ctrl.IsOpen() {
		v.input.Reset()
		v.recent.Reset()
	}
	v.settled = v.ctrl.Generation()
	v.sync()
}

// stage records the typed query and schedules its ranking.
func (v *View) stage(query string) tea.Cmd {
	gen := v.ctrl.Stage(query)
	if v.debounce <= 0 {
		v.ctrl.Settle(gen)
		v.settled = gen
		v.sync()
		return nil
	}
	v.sync()
	return tea.Tick(v.debounce, func(time.Time) tea.Msg {
		return messages.QueryDebounced{Generation: gen}
	})
}

// handleRecentKey owns navigation while the recent pane is showing.
func (v *View) handleRecentKey(action domain.KeyAction) bool {
	if !v.recentActive() {
		return false
	}

	//nolint:exhaustive // toggle and dismiss fall through to the controller
	switch action {
	case domain.KeyNext:
		v.recent.MoveDown()
		return true
	case domain.KeyPrevious:
		v.recent.MoveUp()
		return true
	case domain.KeyConfirm:
		if v.ctrl.UseRecent(v.recent.Selected()) {
			v.input.SetValue(v.ctrl.Query())
		}
		return true
	default:
		return false
	}
}

// recentActive reports whether the recent pane is showing.
func (v *View) recentActive() bool {
	return v.ctrl.IsOpen() && strings.TrimSpace(v.ctrl.Query()) == "" && len(v.ctrl.Recent()) > 0
}

// sync copies controller state into the display components.
func (v *View) sync() {
	v.list.SetResults(v.ctrl.Results(), v.ctrl.Query())
	v.list.SetSelected(v.ctrl.SelectedIndex())
	v.recent.SetItems(v.ctrl.Recent())
	v.err = v.ctrl.Err()
	v.suggestions = nil

	switch {
	case v.err != nil:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(v.err.Error())
	case v.recentActive():
		v.statusbar.SetState(status.StateRecent)
		v.statusbar.SetMessage("")
	default:
		v.statusbar.SetState(status.StateSearching)
		v.statusbar.SetMessage("")
	}
	v.statusbar.SetCount(len(v.ctrl.Results()))

	if v.noResults() && v.searchService != nil {
		suggestions, err := v.searchService.Suggest(v.ctx, v.ctrl.Query(), maxSuggestions)
		if err == nil {
			v.suggestions = suggestions
		}
	}
}

// noResults reports whether a settled, non-blank query matched nothing.
func (v *View) noResults() bool {
	return v.err == nil &&
		v.settled == v.ctrl.Generation() &&
		len(v.ctrl.Results()) == 0 &&
		strings.TrimSpace(v.ctrl.Query()) != ""
}

// View renders the search view.
func (v *View) View() string {
	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("Handbook search"), "")
	sections = append(sections, v.input.View(), "")

	switch {
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.recentActive():
		sections = append(sections, v.recent.View())
	case strings.TrimSpace(v.ctrl.Query()) == "":
		sections = append(sections, v.styles.Muted.Render("Type to search titles, categories and content"))
	case v.list.IsEmpty() && v.settled != v.ctrl.Generation():
		sections = append(sections, v.styles.Muted.Render("Searching..."))
	case v.list.IsEmpty():
		sections = append(sections, v.renderNoResults())
	default:
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return v.styles.Overlay.Width(v.contentWidth()).Render(body)
}

// renderNoResults renders the empty-result message and suggestions.
func (v *View) renderNoResults() string {
	lines := []string{
		v.styles.Muted.Render("No results for \"" + v.ctrl.Query() + "\""),
	}
	if len(v.suggestions) > 0 {
		lines = append(lines, v.styles.Normal.Render("Did you mean: "+strings.Join(v.suggestions, ", ")+"?"))
	}
	return strings.Join(lines, "\n")
}

func (v *View) contentWidth() int {
	// Border and padding take four columns
	if v.width > 4 {
		return v.width - 4
	}
	return v.width
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	inner := v.contentWidth() - 2
	v.input.SetWidth(inner)
	v.list.SetDimensions(inner, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(inner)
}

// Focus gives the input focus. Call it when the surface opens.
func (v *View) Focus() tea.Cmd {
	v.sync()
	return v.input.Focus()
}

// Reset clears the input and display state to match a closed controller.
func (v *View) Reset() {
	v.input.Reset()
	v.recent.Reset()
	v.settled = v.ctrl.Generation()
	v.sync()
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view has been sized.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the text in the input.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the displayed results.
func (v *View) Results() []domain.ScoredResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// RecentSelected returns the cursor position in the recent pane.
func (v *View) RecentSelected() int {
	return v.recent.Selected()
}

// Suggestions returns the titles offered for an empty result.
func (v *View) Suggestions() []string {
	return v.suggestions
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
