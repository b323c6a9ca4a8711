package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/runnerr0/crusta/internal/browser"
	"github.com/runnerr0/crusta/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version           string `json:"version"`
	ConfigPath        string `json:"config_path,omitempty"`
	DatabasePath      string `json:"database_path"`
	DatabaseSizeBytes int64  `json:"database_size_bytes"`
	HistoryEntries    int64  `json:"history_entries"`
	DistinctAddresses int64  `json:"distinct_addresses"`
	Bookmarks         int64  `json:"bookmarks"`
	Folders           int64  `json:"folders"`
	OldestVisit       string `json:"oldest_visit,omitempty"`
	NewestVisit       string `json:"newest_visit,omitempty"`
	SearchEngine      string `json:"search_engine"`
	CookiePolicy      string `json:"cookie_policy"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	dbPath, err := dbPathFor(c.globals, app.Config)
	if err != nil {
		return err
	}
	return c.executeWithApp(context.Background(), app, dbPath)
}

// executeWithApp runs status against a provided app (for testing).
func (c *StatusCommand) executeWithApp(ctx context.Context, app *browser.App, dbPath string) error {
	stats, err := app.Store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return c.printStatusJSON(app, stats, dbPath)
	}
	return c.printStatusHuman(app, stats, dbPath)
}

func (c *StatusCommand) printStatusHuman(app *browser.App, stats *storage.Stats, dbPath string) error {
	fmt.Println("Crusta Status")
	fmt.Println("=============")
	fmt.Printf("Version:       %s\n", c.version)
	if app.ConfigPath != "" {
		fmt.Printf("Config:        %s\n", app.ConfigPath)
	}
	fmt.Printf("Database:      %s (%s)\n", dbPath, formatBytes(stats.DatabaseSizeBytes))
	fmt.Printf("Visits:        %s (%s pages)\n", formatNumber(stats.HistoryEntries), formatNumber(stats.DistinctAddresses))

	if stats.HistoryEntries > 0 {
		fmt.Printf("Oldest:        %s\n", stats.OldestVisit.Local().Format("2006-01-02"))
		fmt.Printf("Newest:        %s\n", stats.NewestVisit.Local().Format("2006-01-02"))
	}

	fmt.Printf("Bookmarks:     %s in %s %s\n", formatNumber(stats.Bookmarks), formatNumber(stats.Folders), plural(int(stats.Folders), "folder"))

	fmt.Println()
	fmt.Printf("Search:        %s\n", app.Search.DefaultEngine().Name)
	fmt.Printf("Cookies:       %s\n", app.Config.Privacy.CookiePolicy())
	if app.Config.Privacy.DoNotTrack {
		fmt.Println("Do Not Track:  on")
	} else {
		fmt.Println("Do Not Track:  off")
	}

	return nil
}

func (c *StatusCommand) printStatusJSON(app *browser.App, stats *storage.Stats, dbPath string) error {
	out := statusJSON{
		Version:           c.version,
		ConfigPath:        app.ConfigPath,
		DatabasePath:      dbPath,
		DatabaseSizeBytes: stats.DatabaseSizeBytes,
		HistoryEntries:    stats.HistoryEntries,
		DistinctAddresses: stats.DistinctAddresses,
		Bookmarks:         stats.Bookmarks,
		Folders:           stats.Folders,
		SearchEngine:      app.Search.DefaultEngine().Name,
		CookiePolicy:      string(app.Config.Privacy.CookiePolicy()),
	}

	if stats.HistoryEntries > 0 {
		out.OldestVisit = stats.OldestVisit.UTC().Format(time.RFC3339)
		out.NewestVisit = stats.NewestVisit.UTC().Format(time.RFC3339)
	}

	return printJSON(out)
}
