package cli

import "io"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	DBPath  string `long:"db-path" description:"Override the profile database path"`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// HistoryCommand groups the history subcommands.
type HistoryCommand struct{}

// HistoryListCommand: list visits, newest first.
type HistoryListCommand struct {
	Query string `long:"query" short:"q" description:"Only visits whose address or title contains this text"`
	Limit int    `long:"limit" description:"Maximum results (0 for all)" default:"20"`

	globals *GlobalFlags
}

// HistoryAddCommand: record a visit by hand.
type HistoryAddCommand struct {
	Title string `long:"title" description:"Page title"`

	globals *GlobalFlags
}

// HistoryRemoveCommand: delete every visit of the given addresses.
type HistoryRemoveCommand struct {
	globals *GlobalFlags
}

// HistoryClearCommand: delete all visits with safety confirmation.
type HistoryClearCommand struct {
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	in      io.Reader // injectable for testing; nil means stdin
}

// HistoryPruneCommand: delete visits older than a retention period.
type HistoryPruneCommand struct {
	OlderThan string `long:"older-than" description:"Retention period (e.g., 30d, 2w, 12h)" default:"90d"`

	globals *GlobalFlags
}

// BookmarksCommand groups the bookmark subcommands.
type BookmarksCommand struct{}

// BookmarksListCommand: list bookmarks, optionally of one folder.
type BookmarksListCommand struct {
	Folder string `long:"folder" description:"Only bookmarks in this folder"`

	globals *GlobalFlags
}

// BookmarksAddCommand: save or replace a bookmark.
type BookmarksAddCommand struct {
	Title  string `long:"title" description:"Bookmark title"`
	Folder string `long:"folder" description:"Folder to file the bookmark under"`

	globals *GlobalFlags
}

// BookmarksUpdateCommand: change the title or folder of a bookmark.
type BookmarksUpdateCommand struct {
	Title  *string `long:"title" description:"New title"`
	Folder *string `long:"folder" description:"New folder"`

	globals *GlobalFlags
}

// BookmarksRemoveCommand: delete bookmarks by address.
type BookmarksRemoveCommand struct {
	globals *GlobalFlags
}

// BookmarksFoldersCommand: list bookmark folders.
type BookmarksFoldersCommand struct {
	globals *GlobalFlags
}

// BookmarksCheckCommand: report whether an address is bookmarked.
type BookmarksCheckCommand struct {
	globals *GlobalFlags
}

// ResolveCommand: show what the address bar would do with some text.
type ResolveCommand struct {
	Engine string `long:"engine" description:"Search engine to use instead of the default"`

	globals *GlobalFlags
}

// SettingsCommand groups the settings subcommands.
type SettingsCommand struct{}

// SettingsShowCommand: print the effective configuration.
type SettingsShowCommand struct {
	globals *GlobalFlags
}

// SettingsSetCommand: change one setting and save it.
type SettingsSetCommand struct {
	globals *GlobalFlags
}

// SettingsEngineCommand: list search engines or select the default.
type SettingsEngineCommand struct {
	globals *GlobalFlags
}

// SettingsWebCommand: list web-engine toggles with their values.
type SettingsWebCommand struct {
	globals *GlobalFlags
}

// StatusCommand: show database statistics and configuration summary.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
