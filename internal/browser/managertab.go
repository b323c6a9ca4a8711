package browser

import (
	"context"

	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/search"
	"github.com/runnerr0/crusta/internal/signal"
	"github.com/runnerr0/crusta/internal/storage"
)

// Page is one view of the manager tab.
type Page int

const (
	SettingsPage Page = iota
	HistoryPage
	BookmarksPage
	SearchPage
)

var pageInfo = map[Page]struct {
	title string
	icon  string
}{
	SettingsPage:  {"Settings", "theme:configure"},
	HistoryPage:   {"History", "theme:appointment-new"},
	BookmarksPage: {"Bookmarks", "theme:bookmark-new"},
	SearchPage:    {"Search", "theme:edit-find"},
}

func (p Page) String() string {
	if info, ok := pageInfo[p]; ok {
		return info.title
	}
	return "Unknown"
}

// ManagerTab hosts the settings, history, bookmark and search-engine pages.
type ManagerTab struct {
	app     *App
	current Page

	Settings *SettingsPane

	TitleChanged signal.Signal[string]
	IconChanged  signal.Signal[engine.Icon]
}

// NewManagerTab creates a manager tab showing the settings page.
func NewManagerTab(app *App) *ManagerTab {
	return &ManagerTab{
		app:      app,
		current:  SettingsPage,
		Settings: NewSettingsPane(app),
	}
}

// Open switches to page and announces the new tab title and icon.
func (m *ManagerTab) Open(page Page) {
	info, ok := pageInfo[page]
	if !ok {
		return
	}
	m.current = page
	m.TitleChanged.Emit(info.title)
	m.IconChanged.Emit(engine.Icon{URL: info.icon})
}

// Current returns the page on display.
func (m *ManagerTab) Current() Page {
	return m.current
}

// History lists visits newest first, filtered by query when it is not empty.
func (m *ManagerTab) History(ctx context.Context, query string) ([]storage.HistoryItem, error) {
	if query == "" {
		return m.app.Store.History(ctx)
	}
	return m.app.Store.SearchHistory(ctx, query, 0)
}

// RemoveHistory deletes each address from history.
func (m *ManagerTab) RemoveHistory(ctx context.Context, addresses ...string) error {
	for _, a := range addresses {
		if err := m.app.Store.RemoveHistory(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// ClearHistory deletes every visit.
func (m *ManagerTab) ClearHistory(ctx context.Context) error {
	return m.app.Store.ClearHistory(ctx)
}

// Folders lists bookmark folders.
func (m *ManagerTab) Folders(ctx context.Context) ([]string, error) {
	return m.app.Store.BookmarkFolders(ctx)
}

// Bookmarks lists the bookmarks of folder, or all of them for "".
func (m *ManagerTab) Bookmarks(ctx context.Context, folder string) ([]storage.BookmarkItem, error) {
	return m.app.Store.Bookmarks(ctx, folder)
}

// EditBookmark saves a changed title or folder.
func (m *ManagerTab) EditBookmark(ctx context.Context, item storage.BookmarkItem) error {
	return m.app.Store.UpdateBookmark(ctx, item)
}

// RemoveBookmark deletes the bookmark at address.
func (m *ManagerTab) RemoveBookmark(ctx context.Context, address string) error {
	return m.app.Store.RemoveBookmark(ctx, address)
}

// SearchEngines lists the configured engines and the default one.
func (m *ManagerTab) SearchEngines() ([]search.Engine, search.Engine) {
	return m.app.Search.Engines(), m.app.Search.DefaultEngine()
}

// SetDefaultEngine selects and persists the address-bar search engine.
func (m *ManagerTab) SetDefaultEngine(name string) error {
	if err := m.app.Search.SetDefault(name); err != nil {
		return err
	}
	m.app.Config.Search.Default = name
	return m.app.saveConfig()
}
