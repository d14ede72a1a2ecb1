package services

import (
	"context"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
	"github.com/custodia-labs/handbook/internal/core/ports/driving"
	"github.com/custodia-labs/handbook/internal/logger"
)

// Generation identifies one query edit. Results computed for an older
// generation are discarded.
type Generation uint64

// Controller owns the interactive search state: the query, ranked results,
// the selection, whether the search surface is open, and the recent-search
// history. It is not safe for concurrent use; drive it from one event loop.
type Controller struct {
	ctx       context.Context
	search    driving.SearchService
	recent    driving.RecentSearchService
	navigator driven.Navigator

	query    string
	results  []domain.ScoredResult
	selected int
	open     bool
	gen      Generation
	settled  Generation
	err      error
}

// NewController creates a closed controller.
// recent and navigator may be nil.
func NewController(
	search driving.SearchService,
	recent driving.RecentSearchService,
	navigator driven.Navigator,
) *Controller {
	return &Controller{
		ctx:       context.Background(),
		search:    search,
		recent:    recent,
		navigator: navigator,
		results:   []domain.ScoredResult{},
	}
}

// WithContext sets the context used for search calls.
func (c *Controller) WithContext(ctx context.Context) *Controller {
	c.ctx = ctx
	return c
}

// Attach registers the controller's key handling with d.
// The returned func releases the registration.
func (c *Controller) Attach(d *Dispatcher) (release func()) {
	return d.Listen(c.HandleKey)
}

// SetQuery updates the query and re-ranks immediately.
func (c *Controller) SetQuery(query string) {
	c.Settle(c.Stage(query))
}

// Stage records query as the current text without ranking it and returns
// its generation. Pass the generation to Settle once typing pauses.
func (c *Controller) Stage(query string) Generation {
	c.query = query
	c.gen++
	return c.gen
}

// Settle ranks the staged query if gen is still the latest generation.
// It reports whether results were recomputed.
func (c *Controller) Settle(gen Generation) bool {
	if gen != c.gen {
		logger.Debug("Controller: dropping stale generation %d (current %d)", gen, c.gen)
		return false
	}

	results, err := c.rank(c.query)
	c.err = err
	c.setResults(results)
	c.settled = gen
	return true
}

// Apply installs results computed elsewhere for gen.
// Results for a superseded generation are discarded.
func (c *Controller) Apply(gen Generation, results []domain.ScoredResult) bool {
	if gen != c.gen {
		logger.Debug("Controller: discarding results for generation %d (current %d)", gen, c.gen)
		return false
	}
	c.err = nil
	c.setResults(results)
	c.settled = gen
	return true
}

// catchUp ranks a staged query that has not settled yet, so selection
// never acts on results from a superseded query.
func (c *Controller) catchUp() {
	if c.settled != c.gen {
		c.Settle(c.gen)
	}
}

// Generation returns the latest query generation.
func (c *Controller) Generation() Generation {
	return c.gen
}

func (c *Controller) rank(query string) ([]domain.ScoredResult, error) {
	if c.search == nil {
		return nil, nil
	}
	results, err := c.search.Search(c.ctx, query)
	if err != nil {
		logger.Warn("Controller: search failed: %v", err)
		return nil, err
	}
	return results, nil
}

func (c *Controller) setResults(results []domain.ScoredResult) {
	if results == nil {
		results = []domain.ScoredResult{}
	}
	c.results = results
	c.selected = 0
}

// Toggle opens a closed surface or closes an open one.
func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// Open shows the search surface and refreshes the recent-search list.
func (c *Controller) Open() {
	c.open = true
	if c.recent != nil {
		c.recent.Load()
	}
}

// Close hides the search surface, clears the query and resets the selection.
func (c *Controller) Close() {
	c.open = false
	c.query = ""
	c.gen++
	c.settled = c.gen
	c.err = nil
	c.setResults(nil)
}

// HandleKey applies a key action and reports whether it was consumed.
// Only KeyToggle has an effect while the surface is closed.
func (c *Controller) HandleKey(action domain.KeyAction) bool {
	if action == domain.KeyToggle {
		c.Toggle()
		return true
	}
	if !c.open {
		return false
	}

	if action == domain.KeyNext || action == domain.KeyPrevious || action == domain.KeyConfirm {
		c.catchUp()
	}

	switch action {
	case domain.KeyNext:
		if c.selected < len(c.results)-1 {
			c.selected++
		}
		return true
	case domain.KeyPrevious:
		if c.selected > 0 {
			c.selected--
		}
		return true
	case domain.KeyConfirm:
		return c.confirm()
	case domain.KeyDismiss:
		c.Close()
		return true
	default:
		return false
	}
}

// Select confirms the result at index, as a pointer click would.
// Out-of-range indexes are ignored, as is any selection while closed.
func (c *Controller) Select(index int) bool {
	if !c.open {
		return false
	}
	c.catchUp()
	if index < 0 || index >= len(c.results) {
		return false
	}
	c.selected = index
	return c.confirm()
}

// confirm records the query, emits the navigation intent for the selected
// result and closes the surface. It does nothing without results.
func (c *Controller) confirm() bool {
	if len(c.results) == 0 {
		return false
	}

	path := append([]string(nil), c.results[c.selected].Path...)
	if c.recent != nil {
		c.recent.Record(c.query)
	}
	if c.navigator != nil {
		c.navigator.Navigate(path)
	}
	logger.Debug("Controller: navigate to %v", path)
	c.Close()
	return true
}

// UseRecent makes the recent search at index the current query.
func (c *Controller) UseRecent(index int) bool {
	recent := c.Recent()
	if index < 0 || index >= len(recent) {
		return false
	}
	c.SetQuery(recent[index])
	return true
}

// RemoveRecent deletes one entry from the recent-search history.
func (c *Controller) RemoveRecent(query string) {
	if c.recent != nil {
		c.recent.Remove(query)
	}
}

// ClearRecent empties the recent-search history.
func (c *Controller) ClearRecent() {
	if c.recent != nil {
		c.recent.Clear()
	}
}

// Query returns the current query text.
func (c *Controller) Query() string {
	return c.query
}

// Results returns the current ranked results.
func (c *Controller) Results() []domain.ScoredResult {
	return c.results
}

// SelectedIndex returns the index of the selected result.
func (c *Controller) SelectedIndex() int {
	return c.selected
}

// SelectedResult returns the selected result, or nil if there are none.
func (c *Controller) SelectedResult() *domain.ScoredResult {
	if len(c.results) == 0 {
		return nil
	}
	return &c.results[c.selected]
}

// IsOpen reports whether the search surface is open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// Recent returns the recent-search history, most recent first.
func (c *Controller) Recent() []string {
	if c.recent == nil {
		return nil
	}
	return c.recent.List()
}

// Err returns the error from the last ranking pass, if any.
func (c *Controller) Err() error {
	return c.err
}
