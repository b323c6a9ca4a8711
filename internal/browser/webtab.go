package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/logger"
	"github.com/runnerr0/crusta/internal/resolve"
	"github.com/runnerr0/crusta/internal/signal"
	"github.com/runnerr0/crusta/internal/storage"
)

// internalScheme marks browser-provided pages that are never recorded.
const internalScheme = "browser:"

// TabState is what the toolbar of a web tab shows.
type TabState struct {
	Address      string
	CanGoBack    bool
	CanGoForward bool
	Loading      bool
	Bookmarked   bool
}

// WebTab routes navigation events of one view into toolbar state, history
// and bookmarks.
type WebTab struct {
	app     *App
	view    engine.WebView
	private bool
	log     logger.Logger

	state TabState

	TitleChanged signal.Signal[string]
	IconChanged  signal.Signal[engine.Icon]
	StateChanged signal.Signal[TabState]
}

// TabOption configures a WebTab.
type TabOption func(*WebTab)

// Private keeps the tab out of history.
func Private() TabOption {
	return func(t *WebTab) { t.private = true }
}

// NewWebTab creates a controller over view.
func NewWebTab(app *App, view engine.WebView, opts ...TabOption) *WebTab {
	t := &WebTab{app: app, view: view}
	for _, opt := range opts {
		opt(t)
	}
	t.log = app.Log.With(logger.Bool("private", t.private))
	return t
}

// State returns the current toolbar state.
func (t *WebTab) State() TabState {
	return t.state
}

// IsPrivate reports whether the tab records history.
func (t *WebTab) IsPrivate() bool {
	return t.private
}

// Submit handles text entered in the address bar and returns what was done.
func (t *WebTab) Submit(text string) resolve.Action {
	action := resolve.Resolve(text, t.app.Search.DefaultEngine())

	switch action.Kind {
	case resolve.Script:
		t.view.RunJavaScript(action.Script)
	case resolve.Navigate:
		t.view.Load(action.URL)
	case resolve.Search:
		t.view.Load(action.URL)
		t.view.SetFocus()
	}

	t.log.Debug("address submitted",
		logger.String("kind", action.Kind.String()),
		logger.String("url", action.URL),
	)
	return action
}

// Home loads the configured homepage.
func (t *WebTab) Home() {
	t.view.Load(t.app.Config.Browsing.Homepage)
}

func (t *WebTab) Back()    { t.view.Back() }
func (t *WebTab) Forward() { t.view.Forward() }

// ReloadOrStop stops a load in progress, otherwise reloads.
func (t *WebTab) ReloadOrStop() {
	if t.state.Loading {
		t.view.Stop()
		return
	}
	t.view.Reload()
}

// Bookmark saves the current page under folder.
func (t *WebTab) Bookmark(ctx context.Context, folder string) error {
	item := storage.BookmarkItem{
		Address: t.view.URL(),
		Title:   t.view.Title(),
		Folder:  folder,
	}
	if err := t.app.Store.AddBookmark(ctx, item); err != nil {
		return fmt.Errorf("bookmark %s: %w", item.Address, err)
	}
	t.state.Bookmarked = true
	t.publishState()
	return nil
}

// Unbookmark removes the bookmark of the current page, if any.
func (t *WebTab) Unbookmark(ctx context.Context) error {
	address := t.view.URL()
	if err := t.app.Store.RemoveBookmark(ctx, address); err != nil {
		return fmt.Errorf("unbookmark %s: %w", address, err)
	}
	t.state.Bookmarked = false
	t.publishState()
	return nil
}

// HandleURLChanged updates the address bar and the bookmark indicator.
// A failed lookup leaves the indicator cleared.
func (t *WebTab) HandleURLChanged(ctx context.Context, address string) {
	t.state.Address = address

	_, ok, err := t.app.Store.IsBookmarked(ctx, address)
	if err != nil {
		t.log.Warn("bookmark lookup failed", logger.String("url", address), logger.Error(err))
	}
	t.state.Bookmarked = ok

	t.publishState()
}

// HandleLoadStarted switches the reload button to stop.
func (t *WebTab) HandleLoadStarted() {
	t.state.Loading = true
	t.publishState()
}

// HandleLoadFinished refreshes navigation buttons and, for a successful
// load in a normal tab, records the visit.
func (t *WebTab) HandleLoadFinished(ctx context.Context, ok bool) error {
	history := t.view.History()
	t.state.Loading = false
	t.state.CanGoBack = history.CanGoBack()
	t.state.CanGoForward = history.CanGoForward()
	t.publishState()

	if !ok || t.private {
		return nil
	}

	address := t.view.URL()
	if address == "" || strings.HasPrefix(address, internalScheme) {
		return nil
	}

	item := storage.HistoryItem{Address: address, Title: t.view.Title()}
	if err := t.app.Store.AddHistory(ctx, item); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// HandleTitleChanged re-emits the page title as the tab title.
func (t *WebTab) HandleTitleChanged(title string) {
	t.TitleChanged.Emit(title)
}

// HandleIconChanged re-emits the page icon as the tab icon.
func (t *WebTab) HandleIconChanged(icon engine.Icon) {
	t.IconChanged.Emit(icon)
}

// publishState delivers the toolbar state. Toolbar updates are cosmetic;
// a handler that panics because its widget is gone is logged and ignored.
func (t *WebTab) publishState() {
	defer func() {
		if r := recover(); r != nil {
			t.log.Debug("toolbar update dropped", logger.Any("reason", r))
		}
	}()
	t.StateChanged.Emit(t.state)
}
