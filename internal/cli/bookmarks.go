package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/crusta/internal/browser"
	"github.com/runnerr0/crusta/internal/storage"
)

type jsonBookmark struct {
	Address string `json:"address"`
	Title   string `json:"title"`
	Folder  string `json:"folder"`
}

func toJSONBookmark(b storage.BookmarkItem) jsonBookmark {
	return jsonBookmark{Address: b.Address, Title: b.Title, Folder: b.Folder}
}

// Execute implements the go-flags Commander interface for BookmarksListCommand.
func (c *BookmarksListCommand) Execute(args []string) error {
	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app)
}

func (c *BookmarksListCommand) executeWithApp(ctx context.Context, app *browser.App) error {
	items, err := browser.NewManagerTab(app).Bookmarks(ctx, c.Folder)
	if err != nil {
		return fmt.Errorf("list bookmarks: %w", err)
	}

	if c.globals.JSON {
		out := make([]jsonBookmark, len(items))
		for i, b := range items {
			out[i] = toJSONBookmark(b)
		}
		return printJSON(map[string]interface{}{"count": len(out), "bookmarks": out})
	}

	if len(items) == 0 {
		fmt.Println("No bookmarks")
		return nil
	}
	for _, b := range items {
		folder := b.Folder
		if folder == "" {
			folder = "-"
		}
		fmt.Printf("%-16s %s\n", folder, b.Address)
		if b.Title != "" {
			fmt.Printf("%-16s %s\n", "", b.Title)
		}
	}
	return nil
}

// Execute implements the go-flags Commander interface for BookmarksAddCommand.
func (c *BookmarksAddCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("bookmarks add takes exactly one URL")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app, args[0])
}

func (c *BookmarksAddCommand) executeWithApp(ctx context.Context, app *browser.App, address string) error {
	if err := validateURL(address); err != nil {
		return err
	}

	item := storage.BookmarkItem{Address: address, Title: c.Title, Folder: c.Folder}
	if err := app.Store.AddBookmark(ctx, item); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}

	if c.globals.JSON {
		return printJSON(toJSONBookmark(item))
	}
	fmt.Printf("Bookmarked %s\n", item.Address)
	return nil
}

// Execute implements the go-flags Commander interface for BookmarksUpdateCommand.
func (c *BookmarksUpdateCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("bookmarks update takes exactly one URL")
	}
	if c.Title == nil && c.Folder == nil {
		return fmt.Errorf("nothing to update: pass --title and/or --folder")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app, args[0])
}

func (c *BookmarksUpdateCommand) executeWithApp(ctx context.Context, app *browser.App, address string) error {
	item, ok, err := app.Store.IsBookmarked(ctx, address)
	if err != nil {
		return fmt.Errorf("look up bookmark: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s is not bookmarked", address)
	}

	if c.Title != nil {
		item.Title = *c.Title
	}
	if c.Folder != nil {
		item.Folder = *c.Folder
	}
	if err := browser.NewManagerTab(app).EditBookmark(ctx, item); err != nil {
		return fmt.Errorf("update bookmark: %w", err)
	}

	if c.globals.JSON {
		return printJSON(toJSONBookmark(item))
	}
	fmt.Printf("Updated %s\n", item.Address)
	return nil
}

// Execute implements the go-flags Commander interface for BookmarksRemoveCommand.
func (c *BookmarksRemoveCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("bookmarks remove needs at least one URL")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app, args)
}

func (c *BookmarksRemoveCommand) executeWithApp(ctx context.Context, app *browser.App, addresses []string) error {
	mgr := browser.NewManagerTab(app)
	for _, a := range addresses {
		if err := mgr.RemoveBookmark(ctx, a); err != nil {
			return fmt.Errorf("remove bookmark %s: %w", a, err)
		}
	}

	if c.globals.JSON {
		return printJSON(map[string]interface{}{"removed": addresses})
	}
	fmt.Printf("Removed %d %s\n", len(addresses), plural(len(addresses), "bookmark"))
	return nil
}

// Execute implements the go-flags Commander interface for BookmarksFoldersCommand.
func (c *BookmarksFoldersCommand) Execute(args []string) error {
	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app)
}

func (c *BookmarksFoldersCommand) executeWithApp(ctx context.Context, app *browser.App) error {
	folders, err := browser.NewManagerTab(app).Folders(ctx)
	if err != nil {
		return fmt.Errorf("list folders: %w", err)
	}

	if c.globals.JSON {
		return printJSON(map[string]interface{}{"folders": folders})
	}
	for _, f := range folders {
		if f == "" {
			f = "(unfiled)"
		}
		fmt.Println(f)
	}
	return nil
}

// Execute implements the go-flags Commander interface for BookmarksCheckCommand.
func (c *BookmarksCheckCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("bookmarks check takes exactly one URL")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app, args[0])
}

func (c *BookmarksCheckCommand) executeWithApp(ctx context.Context, app *browser.App, address string) error {
	item, ok, err := app.Store.IsBookmarked(ctx, address)
	if err != nil {
		return fmt.Errorf("look up bookmark: %w", err)
	}

	if c.globals.JSON {
		return printJSON(map[string]interface{}{
			"address":    address,
			"bookmarked": ok,
			"title":      item.Title,
			"folder":     item.Folder,
		})
	}
	if !ok {
		fmt.Printf("%s is not bookmarked\n", address)
		return nil
	}
	if item.Folder != "" {
		fmt.Printf("%s is bookmarked in %s\n", address, item.Folder)
	} else {
		fmt.Printf("%s is bookmarked\n", address)
	}
	return nil
}
