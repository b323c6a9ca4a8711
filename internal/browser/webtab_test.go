package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/resolve"
	"github.com/runnerr0/crusta/internal/storage"
)

func TestSubmit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    resolve.Kind
		loaded  []string
		scripts []string
		focus   bool
	}{
		{
			name:   "address",
			input:  "example.com",
			kind:   resolve.Navigate,
			loaded: []string{"http://example.com"},
		},
		{
			name:   "search",
			input:  "golang tutorial",
			kind:   resolve.Search,
			loaded: []string{"https://www.google.com/search?q=golang tutorial"},
			focus:  true,
		},
		{
			name:    "script",
			input:   "javascript:alert(1)",
			kind:    resolve.Script,
			scripts: []string{"alert(1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := &fakeView{}
			tab := NewWebTab(newTestApp(t, nil), view)

			action := tab.Submit(tt.input)
			assert.Equal(t, tt.kind, action.Kind)
			assert.Equal(t, tt.loaded, view.loaded)
			assert.Equal(t, tt.scripts, view.scripts)
			assert.Equal(t, tt.focus, view.focusSet)
		})
	}
}

func TestSubmitUsesSelectedEngine(t *testing.T) {
	app := newTestApp(t, nil)
	require.NoError(t, app.Search.SetDefault("DuckDuckGo"))

	view := &fakeView{}
	NewWebTab(app, view).Submit("weather")
	require.Len(t, view.loaded, 1)
	assert.Equal(t, "https://duckduckgo.com/?q=weather", view.loaded[0])
}

func TestHomeLoadsHomepage(t *testing.T) {
	app := newTestApp(t, nil)
	view := &fakeView{}
	NewWebTab(app, view).Home()
	assert.Equal(t, []string{app.Config.Browsing.Homepage}, view.loaded)
}

func TestReloadOrStop(t *testing.T) {
	view := &fakeView{}
	tab := NewWebTab(newTestApp(t, nil), view)

	tab.ReloadOrStop()
	tab.HandleLoadStarted()
	tab.ReloadOrStop()
	tab.Back()
	tab.Forward()

	assert.Equal(t, []string{"reload", "stop", "back", "forward"}, view.calls)
}

func TestLoadFinishedRecordsHistory(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)
	view := &fakeView{url: "https://example.com", title: "Example", history: fakeHistory{back: true}}
	tab := NewWebTab(app, view)

	var states []TabState
	tab.StateChanged.Connect(func(s TabState) { states = append(states, s) })

	tab.HandleLoadStarted()
	require.NoError(t, tab.HandleLoadFinished(ctx, true))

	require.Len(t, states, 2)
	assert.True(t, states[0].Loading)
	assert.False(t, states[1].Loading)
	assert.True(t, states[1].CanGoBack)
	assert.False(t, states[1].CanGoForward)

	items, err := app.Store.History(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com", items[0].Address)
	assert.Equal(t, "Example", items[0].Title)
}

func TestLoadFinishedSkipsHistory(t *testing.T) {
	tests := []struct {
		name string
		url  string
		ok   bool
		opts []TabOption
	}{
		{name: "failed load", url: "https://example.com", ok: false},
		{name: "private tab", url: "https://example.com", ok: true, opts: []TabOption{Private()}},
		{name: "internal page", url: "browser:startpage", ok: true},
		{name: "blank", url: "", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			app := newTestApp(t, nil)
			tab := NewWebTab(app, &fakeView{url: tt.url}, tt.opts...)

			require.NoError(t, tab.HandleLoadFinished(ctx, tt.ok))

			items, err := app.Store.History(ctx)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestPrivateTab(t *testing.T) {
	tab := NewWebTab(newTestApp(t, nil), &fakeView{}, Private())
	assert.True(t, tab.IsPrivate())
}

func TestURLChangedReflectsBookmark(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://saved.example"}))

	tab := NewWebTab(app, &fakeView{})

	tab.HandleURLChanged(ctx, "https://saved.example")
	assert.Equal(t, "https://saved.example", tab.State().Address)
	assert.True(t, tab.State().Bookmarked)

	tab.HandleURLChanged(ctx, "https://other.example")
	assert.False(t, tab.State().Bookmarked)
}

func TestURLChangedWithClosedStoreClearsIndicator(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)
	tab := NewWebTab(app, &fakeView{})
	tab.state.Bookmarked = true

	require.NoError(t, app.Store.Close())
	tab.HandleURLChanged(ctx, "https://example.com")
	assert.False(t, tab.State().Bookmarked)
}

func TestBookmarkAndUnbookmark(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)
	view := &fakeView{url: "https://go.dev", title: "Go"}
	tab := NewWebTab(app, view)

	require.NoError(t, tab.Bookmark(ctx, "Dev"))
	assert.True(t, tab.State().Bookmarked)

	item, ok, err := app.Store.IsBookmarked(ctx, "https://go.dev")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Go", item.Title)
	assert.Equal(t, "Dev", item.Folder)

	require.NoError(t, tab.Unbookmark(ctx))
	assert.False(t, tab.State().Bookmarked)

	_, ok, err = app.Store.IsBookmarked(ctx, "https://go.dev")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTitleAndIconForwarded(t *testing.T) {
	tab := NewWebTab(newTestApp(t, nil), &fakeView{})

	var title string
	var icon engine.Icon
	tab.TitleChanged.Connect(func(s string) { title = s })
	tab.IconChanged.Connect(func(i engine.Icon) { icon = i })

	tab.HandleTitleChanged("Hello")
	tab.HandleIconChanged(engine.Icon{URL: "https://example.com/favicon.ico"})

	assert.Equal(t, "Hello", title)
	assert.Equal(t, "https://example.com/favicon.ico", icon.URL)
}

func TestPanickingToolbarIsIgnored(t *testing.T) {
	tab := NewWebTab(newTestApp(t, nil), &fakeView{})
	tab.StateChanged.Connect(func(TabState) { panic("widget gone") })

	assert.NotPanics(t, func() { tab.HandleLoadStarted() })
	assert.True(t, tab.State().Loading)
}
