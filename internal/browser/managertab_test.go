package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/crusta/internal/config"
	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/storage"
)

func TestManagerTabOpen(t *testing.T) {
	tests := []struct {
		page  Page
		title string
		icon  string
	}{
		{SettingsPage, "Settings", "theme:configure"},
		{HistoryPage, "History", "theme:appointment-new"},
		{BookmarksPage, "Bookmarks", "theme:bookmark-new"},
		{SearchPage, "Search", "theme:edit-find"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			m := NewManagerTab(newTestApp(t, nil))

			var title string
			var icon engine.Icon
			m.TitleChanged.Connect(func(s string) { title = s })
			m.IconChanged.Connect(func(i engine.Icon) { icon = i })

			m.Open(tt.page)
			assert.Equal(t, tt.page, m.Current())
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.icon, icon.URL)
			assert.Equal(t, tt.title, tt.page.String())
		})
	}
}

func TestManagerTabOpenUnknownPage(t *testing.T) {
	m := NewManagerTab(newTestApp(t, nil))
	m.Open(HistoryPage)

	called := false
	m.TitleChanged.Connect(func(string) { called = true })
	m.Open(Page(42))

	assert.False(t, called)
	assert.Equal(t, HistoryPage, m.Current())
	assert.Equal(t, "Unknown", Page(42).String())
}

func TestManagerTabHistory(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)
	m := NewManagerTab(app)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, addr := range []string{"https://a.example", "https://b.example", "https://golang.org"} {
		require.NoError(t, app.Store.AddHistory(ctx, storage.HistoryItem{
			Address:   addr,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := m.History(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "https://golang.org", all[0].Address)

	filtered, err := m.History(ctx, "example")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	require.NoError(t, m.RemoveHistory(ctx, "https://a.example", "https://b.example"))
	all, err = m.History(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, m.ClearHistory(ctx))
	all, err = m.History(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestManagerTabBookmarks(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, nil)
	m := NewManagerTab(app)

	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://go.dev", Title: "Go", Folder: "Dev"}))
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://news.example", Title: "News", Folder: "Read"}))

	folders, err := m.Folders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev", "Read"}, folders)

	dev, err := m.Bookmarks(ctx, "Dev")
	require.NoError(t, err)
	require.Len(t, dev, 1)
	assert.Equal(t, "Go", dev[0].Title)

	require.NoError(t, m.EditBookmark(ctx, storage.BookmarkItem{Address: "https://go.dev", Title: "The Go site", Folder: "Read"}))
	read, err := m.Bookmarks(ctx, "Read")
	require.NoError(t, err)
	assert.Len(t, read, 2)

	require.NoError(t, m.RemoveBookmark(ctx, "https://news.example"))
	all, err := m.Bookmarks(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "The Go site", all[0].Title)
}

func TestManagerTabSearchEngines(t *testing.T) {
	app := newTestApp(t, nil)
	m := NewManagerTab(app)

	engines, def := m.SearchEngines()
	assert.Len(t, engines, 3)
	assert.Equal(t, "Google", def.Name)

	require.NoError(t, m.SetDefaultEngine("Wikipedia"))
	_, def = m.SearchEngines()
	assert.Equal(t, "Wikipedia", def.Name)

	saved, err := config.Load(app.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "Wikipedia", saved.Search.Default)

	assert.Error(t, m.SetDefaultEngine("Nope"))
	assert.Equal(t, "Wikipedia", app.Config.Search.Default)
}
