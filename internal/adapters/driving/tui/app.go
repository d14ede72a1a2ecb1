package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/views/doccontent"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/views/documents"
	"github.com/custodia-labs/handbook/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
	"github.com/custodia-labs/handbook/internal/core/services"
	"github.com/custodia-labs/handbook/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared by all views.
	keymap *keymap.KeyMap

	// ctrl owns the search state. It is open while the search surface shows.
	ctrl *services.Controller

	// dispatcher routes key actions to the recent pane, then the controller.
	dispatcher *services.Dispatcher

	// releases unregisters the dispatcher listeners on teardown.
	releases []func()

	// searchView is the search surface.
	searchView *search.View

	// documentsView is the contents list.
	documentsView *documents.View

	// docContentView is the document pager.
	docContentView *doccontent.View

	// currentView tracks which view shows while search is closed.
	currentView messages.ViewType

	// pendingNav is the path of the last navigation intent, not yet opened.
	pendingNav []string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		dispatcher:  services.NewDispatcher(),
		currentView: messages.ViewDocuments,
	}

	a.ctrl = services.NewController(ports.Search, ports.Recent, driven.NavigatorFunc(a.navigate))
	a.searchView = search.NewView(s, km, a.ctrl, ports.Search).WithDebounce(debounce(ports.Settings))
	a.documentsView = documents.NewView(s, ports.Search)
	a.docContentView = doccontent.NewView(s)

	// The recent pane registers first so it sees navigation keys before
	// the controller while the query is empty.
	a.releases = append(a.releases,
		a.searchView.Attach(a.dispatcher),
		a.ctrl.Attach(a.dispatcher),
	)

	return a, nil
}

// debounce reads the typing pause from settings, falling back to the default.
func debounce(settings driving.SettingsService) time.Duration {
	if settings == nil {
		return domain.DefaultSettings().Debounce
	}
	st, err := settings.Get()
	if err != nil {
		logger.Warn("TUI: reading settings failed, using default debounce: %v", err)
		return domain.DefaultSettings().Debounce
	}
	return st.Debounce
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.ctrl.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.documentsView.WithContext(ctx)
	return a
}

// navigate receives navigation intents from the controller.
func (a *App) navigate(path []string) {
	a.pendingNav = path
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("handbook"),
		a.documentsView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.QueryDebounced:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.DocumentsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.DocumentOpened:
		return a.handleDocumentOpened(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forward(msg)

	case messages.Quit:
		a.Close()
		return a, tea.Quit
	}

	return a.forward(msg)
}

// handleKeyMsg routes a key press. The search surface takes every key
// while open; otherwise ctrl+k opens it from any view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Global quit with ctrl+c
	if keyStr == "ctrl+c" {
		a.Close()
		return a, tea.Quit
	}

	if a.ctrl.IsOpen() {
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		return a, tea.Batch(cmd, a.followNavigation())
	}

	if keymap.Matches(keyStr, a.keymap.Toggle) {
		a.dispatcher.Dispatch(domain.KeyToggle)
		if a.ctrl.IsOpen() {
			return a, a.searchView.Focus()
		}
		return a, nil
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		a.Close()
		return a, tea.Quit
	case keymap.Matches(keyStr, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			a.currentView = messages.ViewDocuments
		} else {
			a.currentView = messages.ViewHelp
		}
		return a, nil
	}

	if a.currentView == messages.ViewHelp {
		// Esc from help goes to the contents
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewDocuments
		}
		return a, nil
	}

	return a.forward(msg)
}

// forward passes msg to the visible view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if a.ctrl.IsOpen() {
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd
	}

	switch a.currentView {
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewDocContent:
		a.docContentView, cmd = a.docContentView.Update(msg)
	case messages.ViewSearch, messages.ViewHelp:
		// Search is drawn over the current view; help is static
	}
	return a, cmd
}

// followNavigation turns a pending navigation intent into a document load.
func (a *App) followNavigation() tea.Cmd {
	if a.pendingNav == nil {
		return nil
	}
	path := a.pendingNav
	a.pendingNav = nil
	return a.openDocument(path)
}

// openDocument returns a command that resolves path to a document.
func (a *App) openDocument(path []string) tea.Cmd {
	searchService := a.ports.Search
	ctx := a.ctx
	return func() tea.Msg {
		doc, err := searchService.Document(ctx, path)
		return messages.DocumentOpened{Path: path, Document: doc, Err: err}
	}
}

// handleDocumentOpened shows a resolved document in the pager.
func (a *App) handleDocumentOpened(msg messages.DocumentOpened) (tea.Model, tea.Cmd) {
	if msg.Err != nil || msg.Document == nil {
		err := msg.Err
		if err == nil {
			err = domain.ErrNotFound
		}
		a.err = fmt.Errorf("opening %s: %w", strings.Join(msg.Path, "/"), err)
		logger.Warn("TUI: %v", a.err)
		return a.forward(messages.ErrorOccurred{Err: a.err})
	}

	back := a.currentView
	switch back {
	case messages.ViewDocContent:
		back = a.docContentView.Back()
	case messages.ViewHelp, messages.ViewSearch:
		back = messages.ViewDocuments
	case messages.ViewDocuments:
	}

	a.err = nil
	a.docContentView.SetDocument(msg.Document, back)
	a.currentView = messages.ViewDocContent
	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.ctrl.IsOpen() {
		return a.searchView.View()
	}

	switch a.currentView {
	case messages.ViewDocContent:
		return a.docContentView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewDocuments, messages.ViewSearch:
		return a.documentsView.View()
	default:
		return a.documentsView.View()
	}
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("Type in the search box to rank pages by title, category, path and content."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to contents"))
	return b.String()
}

// Run starts the TUI application and tears it down on exit.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Close releases the key listeners. It is safe to call more than once.
func (a *App) Close() {
	for _, release := range a.releases {
		release()
	}
	a.releases = nil
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.ctrl.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.ScoredResult {
	return a.ctrl.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.ctrl.SelectedIndex()
}

// SearchOpen reports whether the search surface is showing.
func (a *App) SearchOpen() bool {
	return a.ctrl.IsOpen()
}

// CurrentView returns the view shown while search is closed.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// CurrentDocument returns the document in the pager, if any.
func (a *App) CurrentDocument() *domain.Document {
	return a.docContentView.Document()
}

// Listeners returns the number of registered key listeners.
func (a *App) Listeners() int {
	return a.dispatcher.Listeners()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.documentsView.SetDimensions(width, height)
	a.docContentView.SetDimensions(width, height)
}
