package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/runnerr0/crusta/internal/browser"
	"github.com/runnerr0/crusta/internal/storage"
)

type jsonVisit struct {
	Address   string `json:"address"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

type jsonHistoryOutput struct {
	Count   int         `json:"count"`
	Query   string      `json:"query,omitempty"`
	Results []jsonVisit `json:"results"`
}

// Execute implements the go-flags Commander interface for HistoryListCommand.
func (c *HistoryListCommand) Execute(args []string) error {
	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app)
}

func (c *HistoryListCommand) executeWithApp(ctx context.Context, app *browser.App) error {
	items, err := app.Store.SearchHistory(ctx, c.Query, c.Limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if c.globals.JSON {
		out := jsonHistoryOutput{
			Count:   len(items),
			Query:   c.Query,
			Results: make([]jsonVisit, len(items)),
		}
		for i, item := range items {
			out.Results[i] = jsonVisit{
				Address:   item.Address,
				Title:     item.Title,
				Timestamp: item.Timestamp.UTC().Format(time.RFC3339),
			}
		}
		return printJSON(out)
	}

	if len(items) == 0 {
		if c.Query != "" {
			fmt.Printf("No visits found for %q\n", c.Query)
		} else {
			fmt.Println("History is empty")
		}
		return nil
	}

	for i, item := range items {
		title := item.Title
		if title == "" {
			title = item.Address
		}
		fmt.Printf("%d. %s\n", i+1, title)
		fmt.Printf("   %s\n", item.Address)
		fmt.Printf("   %s\n", item.Timestamp.Local().Format("2006-01-02 15:04"))
		if i < len(items)-1 {
			fmt.Println()
		}
	}
	return nil
}

// Execute implements the go-flags Commander interface for HistoryAddCommand.
func (c *HistoryAddCommand) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("history add takes exactly one URL")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app, args[0])
}

func (c *HistoryAddCommand) executeWithApp(ctx context.Context, app *browser.App, address string) error {
	if err := validateURL(address); err != nil {
		return err
	}

	item := storage.HistoryItem{Address: address, Title: c.Title, Timestamp: time.Now()}
	if err := app.Store.AddHistory(ctx, item); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	if c.globals.JSON {
		return printJSON(jsonVisit{
			Address:   item.Address,
			Title:     item.Title,
			Timestamp: item.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	fmt.Printf("Recorded visit to %s (%s)\n", item.Address, item.Timestamp.Format(time.RFC3339))
	return nil
}

// Execute implements the go-flags Commander interface for HistoryRemoveCommand.
func (c *HistoryRemoveCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("history remove needs at least one URL")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app, args)
}

func (c *HistoryRemoveCommand) executeWithApp(ctx context.Context, app *browser.App, addresses []string) error {
	if err := browser.NewManagerTab(app).RemoveHistory(ctx, addresses...); err != nil {
		return fmt.Errorf("remove history: %w", err)
	}

	if c.globals.JSON {
		return printJSON(map[string]interface{}{"removed": addresses})
	}
	fmt.Printf("Removed %d %s from history\n", len(addresses), plural(len(addresses), "URL"))
	return nil
}

// Execute implements the go-flags Commander interface for HistoryClearCommand.
func (c *HistoryClearCommand) Execute(args []string) error {
	if !c.Force {
		fmt.Println("\u26a0 WARNING: This will permanently delete ALL browsing history.")
		fmt.Println("Bookmarks and settings are kept.")
		fmt.Println()
		fmt.Println("This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "CLEAR" to confirm: `)

		if err := confirm(c.in, "CLEAR"); err != nil {
			return err
		}
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app)
}

func (c *HistoryClearCommand) executeWithApp(ctx context.Context, app *browser.App) error {
	if err := browser.NewManagerTab(app).ClearHistory(ctx); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	if c.globals.JSON {
		return printJSON(map[string]interface{}{
			"cleared": true,
			"message": "all history deleted",
		})
	}
	fmt.Println("Cleared all history.")
	return nil
}

// Execute implements the go-flags Commander interface for HistoryPruneCommand.
func (c *HistoryPruneCommand) Execute(args []string) error {
	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(context.Background(), app, time.Now())
}

func (c *HistoryPruneCommand) executeWithApp(ctx context.Context, app *browser.App, now time.Time) error {
	retention, err := parseDuration(c.OlderThan)
	if err != nil {
		return fmt.Errorf("invalid --older-than value %q: %w", c.OlderThan, err)
	}
	cutoff := now.Add(-retention)

	n, err := app.Store.PruneHistory(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}
	app.Log.Debugf("pruned %d visits before %s", n, cutoff.Format(time.RFC3339))

	if c.globals.JSON {
		return printJSON(map[string]interface{}{
			"pruned": n,
			"cutoff": cutoff.UTC().Format(time.RFC3339),
		})
	}
	fmt.Printf("Pruned %s %s older than %s\n", formatNumber(n), plural(int(n), "visit"), formatDurationHuman(retention))
	return nil
}
