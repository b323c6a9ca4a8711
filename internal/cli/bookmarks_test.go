package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/crusta/internal/storage"
)

func strPtr(s string) *string { return &s }

func TestBookmarksAddAndList(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	add := &BookmarksAddCommand{Title: "Go", Folder: "Dev", globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, add.executeWithApp(ctx, app, "https://go.dev"))
	})
	assert.Contains(t, output, "Bookmarked https://go.dev")

	add = &BookmarksAddCommand{Title: "News", globals: &GlobalFlags{}}
	captureOutput(t, func() {
		require.NoError(t, add.executeWithApp(ctx, app, "https://news.example"))
	})

	list := &BookmarksListCommand{globals: &GlobalFlags{JSON: true}}
	output = captureOutput(t, func() {
		require.NoError(t, list.executeWithApp(ctx, app))
	})

	var all struct {
		Count     int            `json:"count"`
		Bookmarks []jsonBookmark `json:"bookmarks"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &all))
	assert.Equal(t, 2, all.Count)

	list = &BookmarksListCommand{Folder: "Dev", globals: &GlobalFlags{}}
	output = captureOutput(t, func() {
		require.NoError(t, list.executeWithApp(ctx, app))
	})
	assert.Contains(t, output, "https://go.dev")
	assert.NotContains(t, output, "https://news.example")
}

func TestBookmarksAdd_InvalidURL(t *testing.T) {
	app := newTestApp(t)
	cmd := &BookmarksAddCommand{globals: &GlobalFlags{}}

	err := cmd.executeWithApp(context.Background(), app, "ftp//broken")
	require.Error(t, err)
}

func TestBookmarksList_Empty(t *testing.T) {
	app := newTestApp(t)
	cmd := &BookmarksListCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithApp(context.Background(), app))
	})
	assert.Contains(t, output, "No bookmarks")
}

func TestBookmarksUpdate(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://go.dev", Title: "Go", Folder: "Dev"}))

	cmd := &BookmarksUpdateCommand{Folder: strPtr(""), globals: &GlobalFlags{}}
	captureOutput(t, func() {
		require.NoError(t, cmd.executeWithApp(ctx, app, "https://go.dev"))
	})

	item, ok, err := app.Store.IsBookmarked(ctx, "https://go.dev")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Go", item.Title, "unset title is kept")
	assert.Equal(t, "", item.Folder)
}

func TestBookmarksUpdate_Missing(t *testing.T) {
	app := newTestApp(t)
	cmd := &BookmarksUpdateCommand{Title: strPtr("x"), globals: &GlobalFlags{}}

	err := cmd.executeWithApp(context.Background(), app, "https://missing.example")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not bookmarked")
}

func TestBookmarksRemove(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://a.example"}))
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://b.example"}))

	cmd := &BookmarksRemoveCommand{globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithApp(ctx, app, []string{"https://a.example", "https://b.example"}))
	})
	assert.Contains(t, output, "Removed 2 bookmarks")

	items, err := app.Store.Bookmarks(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBookmarksFolders(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://a.example", Folder: "Read"}))
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://b.example", Folder: "Dev"}))
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://c.example", Folder: "Dev"}))

	cmd := &BookmarksFoldersCommand{globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithApp(ctx, app))
	})
	assert.Equal(t, "Dev\nRead\n", output)
}

func TestBookmarksCheck(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Store.AddBookmark(ctx, storage.BookmarkItem{Address: "https://go.dev", Title: "Go", Folder: "Dev"}))

	cmd := &BookmarksCheckCommand{globals: &GlobalFlags{JSON: true}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithApp(ctx, app, "https://go.dev"))
	})

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, true, result["bookmarked"])
	assert.Equal(t, "Dev", result["folder"])

	cmd = &BookmarksCheckCommand{globals: &GlobalFlags{}}
	output = captureOutput(t, func() {
		require.NoError(t, cmd.executeWithApp(ctx, app, "https://other.example"))
	})
	assert.Contains(t, output, "is not bookmarked")
}
