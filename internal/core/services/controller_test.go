package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/handbook/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/handbook/internal/core/domain"
)

// recordingNavigator captures navigation intents.
type recordingNavigator struct {
	paths [][]string
}

func (n *recordingNavigator) Navigate(path []string) {
	n.paths = append(n.paths, path)
}

// mockSearchService is a driving.SearchService for failure tests.
type mockSearchService struct {
	err error
}

func (m *mockSearchService) Search(context.Context, string) ([]domain.ScoredResult, error) {
	return nil, m.err
}

func (m *mockSearchService) Documents(context.Context) ([]domain.Document, error) {
	return nil, m.err
}

func (m *mockSearchService) Document(context.Context, []string) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockSearchService) Suggest(context.Context, string, int) ([]string, error) {
	return nil, m.err
}

func testCorpus() []domain.Document {
	return []domain.Document{
		listFilesDoc(),
		copyFilesDoc(),
		{
			Title:    "File Permissions",
			Category: "advanced",
			Path:     []string{"advanced", "file-permissions-deep-dive"},
			Body:     "chmod changes file permissions",
		},
	}
}

type controllerFixture struct {
	ctrl   *Controller
	nav    *recordingNavigator
	recent *RecentSearches
	store  *memory.KVStore
}

func newControllerFixture() controllerFixture {
	store := memory.NewKVStore()
	recent := NewRecentSearches(store)
	nav := &recordingNavigator{}
	search := NewSearchService(memory.NewCorpus(testCorpus()...))
	return controllerFixture{
		ctrl:   NewController(search, recent, nav),
		nav:    nav,
		recent: recent,
		store:  store,
	}
}

func TestController_StartsClosed(t *testing.T) {
	f := newControllerFixture()

	assert.False(t, f.ctrl.IsOpen())
	assert.Empty(t, f.ctrl.Query())
	assert.Empty(t, f.ctrl.Results())
	assert.Nil(t, f.ctrl.SelectedResult())
}

func TestController_ClosedIgnoresKeys(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.SetQuery("files")

	for _, a := range []domain.KeyAction{domain.KeyNext, domain.KeyPrevious, domain.KeyConfirm, domain.KeyDismiss} {
		assert.False(t, f.ctrl.HandleKey(a), a.String())
	}
	assert.Equal(t, 0, f.ctrl.SelectedIndex())
	assert.Empty(t, f.nav.paths)
}

func TestController_Toggle(t *testing.T) {
	f := newControllerFixture()

	assert.True(t, f.ctrl.HandleKey(domain.KeyToggle))
	assert.True(t, f.ctrl.IsOpen())

	f.ctrl.SetQuery("files")
	require.NotEmpty(t, f.ctrl.Results())

	assert.True(t, f.ctrl.HandleKey(domain.KeyToggle))
	assert.False(t, f.ctrl.IsOpen())
	assert.Empty(t, f.ctrl.Query())
	assert.Empty(t, f.ctrl.Results())
	assert.Equal(t, 0, f.ctrl.SelectedIndex())
}

func TestController_SetQueryRanks(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()

	f.ctrl.SetQuery("files")

	results := f.ctrl.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "List Files", results[0].Title)
	assert.Equal(t, 80, results[0].Score)
	assert.Equal(t, "Copy Files", results[1].Title)
	assert.Equal(t, 63, results[1].Score)
}

func TestController_NavigationClamps(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("files")

	assert.True(t, f.ctrl.HandleKey(domain.KeyPrevious))
	assert.Equal(t, 0, f.ctrl.SelectedIndex())

	f.ctrl.HandleKey(domain.KeyNext)
	assert.Equal(t, 1, f.ctrl.SelectedIndex())
	f.ctrl.HandleKey(domain.KeyNext)
	assert.Equal(t, 1, f.ctrl.SelectedIndex())

	f.ctrl.HandleKey(domain.KeyPrevious)
	assert.Equal(t, 0, f.ctrl.SelectedIndex())
}

func TestController_NavigationWithoutResults(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("xyz123notfound")

	f.ctrl.HandleKey(domain.KeyNext)
	assert.Equal(t, 0, f.ctrl.SelectedIndex())
	f.ctrl.HandleKey(domain.KeyPrevious)
	assert.Equal(t, 0, f.ctrl.SelectedIndex())
}

func TestController_QueryChangeResetsSelection(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("files")
	f.ctrl.HandleKey(domain.KeyNext)

	f.ctrl.SetQuery("file")

	assert.Equal(t, 0, f.ctrl.SelectedIndex())
}

func TestController_Confirm(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("files")
	f.ctrl.HandleKey(domain.KeyNext)

	assert.True(t, f.ctrl.HandleKey(domain.KeyConfirm))

	assert.Equal(t, [][]string{{"commands", "copy"}}, f.nav.paths)
	assert.Equal(t, []string{"files"}, f.recent.List())
	assert.False(t, f.ctrl.IsOpen())
	assert.Empty(t, f.ctrl.Query())
	assert.Equal(t, 0, f.ctrl.SelectedIndex())
}

func TestController_ConfirmPathIsACopy(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("list")
	f.ctrl.HandleKey(domain.KeyConfirm)

	require.Len(t, f.nav.paths, 1)
	f.nav.paths[0][0] = "mutated"

	f.ctrl.Open()
	f.ctrl.SetQuery("list")
	assert.Equal(t, []string{"commands", "list-files"}, f.ctrl.Results()[0].Path)
}

func TestController_ConfirmWithoutResults(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("xyz123notfound")

	assert.False(t, f.ctrl.HandleKey(domain.KeyConfirm))

	assert.Empty(t, f.nav.paths)
	assert.Empty(t, f.recent.List())
	assert.True(t, f.ctrl.IsOpen())
}

func TestController_Dismiss(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("files")

	assert.True(t, f.ctrl.HandleKey(domain.KeyDismiss))

	assert.False(t, f.ctrl.IsOpen())
	assert.Empty(t, f.ctrl.Query())
	assert.Empty(t, f.nav.paths)
	assert.Empty(t, f.recent.List())
}

func TestController_Select(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("files")

	assert.False(t, f.ctrl.Select(2))
	assert.False(t, f.ctrl.Select(-1))
	assert.True(t, f.ctrl.IsOpen())

	assert.True(t, f.ctrl.Select(1))
	assert.Equal(t, [][]string{{"commands", "copy"}}, f.nav.paths)
	assert.Equal(t, []string{"files"}, f.recent.List())
	assert.False(t, f.ctrl.IsOpen())
}

func TestController_StaleGenerations(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()

	g1 := f.ctrl.Stage("list")
	g2 := f.ctrl.Stage("files")

	assert.False(t, f.ctrl.Settle(g1))
	assert.Empty(t, f.ctrl.Results())

	assert.True(t, f.ctrl.Settle(g2))
	assert.Len(t, f.ctrl.Results(), 2)
	assert.Equal(t, g2, f.ctrl.Generation())
}

func TestController_ApplyDiscardsStale(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()

	g1 := f.ctrl.Stage("list")
	stale := Rank(testCorpus(), "list")
	g2 := f.ctrl.Stage("files")

	assert.False(t, f.ctrl.Apply(g1, stale))
	assert.Empty(t, f.ctrl.Results())

	assert.True(t, f.ctrl.Apply(g2, Rank(testCorpus(), "files")))
	assert.Len(t, f.ctrl.Results(), 2)
}

func TestController_CloseInvalidatesPending(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()

	g := f.ctrl.Stage("list")
	f.ctrl.Close()

	assert.False(t, f.ctrl.Settle(g))
	assert.Empty(t, f.ctrl.Results())
}

func TestController_ConfirmSettlesStagedQuery(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("list")

	f.ctrl.Stage("permissions")
	require.True(t, f.ctrl.HandleKey(domain.KeyConfirm))

	assert.Equal(t, [][]string{{"advanced", "file-permissions-deep-dive"}}, f.nav.paths)
	assert.Equal(t, []string{"permissions"}, f.recent.List())
}

func TestController_NextSettlesStagedQuery(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("files")
	f.ctrl.HandleKey(domain.KeyNext)
	require.Equal(t, 1, f.ctrl.SelectedIndex())

	f.ctrl.Stage("permissions")
	f.ctrl.HandleKey(domain.KeyNext)

	require.NotEmpty(t, f.ctrl.Results())
	assert.Equal(t, "File Permissions", f.ctrl.Results()[0].Title)
	assert.Equal(t, 0, f.ctrl.SelectedIndex())
}

func TestController_SelectSettlesStagedQuery(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.Open()
	f.ctrl.SetQuery("list")

	f.ctrl.Stage("permissions")
	require.True(t, f.ctrl.Select(0))

	assert.Equal(t, [][]string{{"advanced", "file-permissions-deep-dive"}}, f.nav.paths)
}

func TestController_SelectWhileClosed(t *testing.T) {
	f := newControllerFixture()
	f.ctrl.SetQuery("files")
	require.NotEmpty(t, f.ctrl.Results())

	assert.False(t, f.ctrl.Select(0))
	assert.Empty(t, f.nav.paths)
	assert.Empty(t, f.recent.List())
}

func TestController_Recent(t *testing.T) {
	f := newControllerFixture()
	f.recent.Record("chmod")
	f.recent.Record("files")
	f.ctrl.Open()

	assert.Equal(t, []string{"files", "chmod"}, f.ctrl.Recent())

	assert.False(t, f.ctrl.UseRecent(5))
	assert.True(t, f.ctrl.UseRecent(0))
	assert.Equal(t, "files", f.ctrl.Query())
	assert.Len(t, f.ctrl.Results(), 2)

	f.ctrl.RemoveRecent("files")
	assert.Equal(t, []string{"chmod"}, f.ctrl.Recent())

	f.ctrl.ClearRecent()
	assert.Empty(t, f.ctrl.Recent())
}

func TestController_OpenReloadsRecent(t *testing.T) {
	f := newControllerFixture()
	require.NoError(t, f.store.Set(domain.RecentSearchesKey, `["tar"]`))

	f.ctrl.Open()

	assert.Equal(t, []string{"tar"}, f.ctrl.Recent())
}

func TestController_Attach(t *testing.T) {
	f := newControllerFixture()
	d := NewDispatcher()

	release := f.ctrl.Attach(d)
	assert.True(t, d.Dispatch(domain.KeyToggle))
	assert.True(t, f.ctrl.IsOpen())

	release()
	assert.Equal(t, 0, d.Listeners())
	assert.False(t, d.Dispatch(domain.KeyToggle))
	assert.True(t, f.ctrl.IsOpen())
}

func TestController_SearchError(t *testing.T) {
	errBoom := errors.New("boom")
	ctrl := NewController(&mockSearchService{err: errBoom}, nil, nil)
	ctrl.Open()

	ctrl.SetQuery("files")

	assert.Empty(t, ctrl.Results())
	assert.ErrorIs(t, ctrl.Err(), errBoom)

	ctrl.Close()
	assert.NoError(t, ctrl.Err())
}

func TestController_NilCollaborators(t *testing.T) {
	ctrl := NewController(nil, nil, nil)
	ctrl.Open()

	ctrl.SetQuery("files")

	assert.Empty(t, ctrl.Results())
	assert.Nil(t, ctrl.Recent())
	assert.False(t, ctrl.HandleKey(domain.KeyConfirm))
}
