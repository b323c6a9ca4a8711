package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	HistoryList    *HistoryListCommand
	HistoryAdd     *HistoryAddCommand
	HistoryRemove  *HistoryRemoveCommand
	HistoryClear   *HistoryClearCommand
	HistoryPrune   *HistoryPruneCommand
	BookmarksList  *BookmarksListCommand
	BookmarksAdd   *BookmarksAddCommand
	BookmarksEdit  *BookmarksUpdateCommand
	BookmarksRm    *BookmarksRemoveCommand
	BookmarksDirs  *BookmarksFoldersCommand
	BookmarksCheck *BookmarksCheckCommand
	Resolve        *ResolveCommand
	SettingsShow   *SettingsShowCommand
	SettingsSet    *SettingsSetCommand
	SettingsEngine *SettingsEngineCommand
	SettingsWeb    *SettingsWebCommand
	Status         *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "crusta"
	parser.LongDescription = "Manage the history, bookmarks and settings of a Crusta browser profile."

	g := &globals
	cmds := &commands{
		HistoryList:    &HistoryListCommand{globals: g},
		HistoryAdd:     &HistoryAddCommand{globals: g},
		HistoryRemove:  &HistoryRemoveCommand{globals: g},
		HistoryClear:   &HistoryClearCommand{globals: g},
		HistoryPrune:   &HistoryPruneCommand{globals: g},
		BookmarksList:  &BookmarksListCommand{globals: g},
		BookmarksAdd:   &BookmarksAddCommand{globals: g},
		BookmarksEdit:  &BookmarksUpdateCommand{globals: g},
		BookmarksRm:    &BookmarksRemoveCommand{globals: g},
		BookmarksDirs:  &BookmarksFoldersCommand{globals: g},
		BookmarksCheck: &BookmarksCheckCommand{globals: g},
		Resolve:        &ResolveCommand{globals: g},
		SettingsShow:   &SettingsShowCommand{globals: g},
		SettingsSet:    &SettingsSetCommand{globals: g},
		SettingsEngine: &SettingsEngineCommand{globals: g},
		SettingsWeb:    &SettingsWebCommand{globals: g},
		Status:         &StatusCommand{globals: g, version: version},
	}

	history, _ := parser.AddCommand("history", "Browse and edit history", "List, record, remove, clear and prune visited pages.", &HistoryCommand{})
	history.AddCommand("list", "List visits", "List visits newest first, optionally filtered by text.", cmds.HistoryList)
	history.AddCommand("add", "Record a visit", "Record a visit to URL.", cmds.HistoryAdd)
	history.AddCommand("remove", "Remove visits", "Remove every visit of each given URL.", cmds.HistoryRemove)
	history.AddCommand("clear", "Delete ALL history", "Delete ALL history. Destructive operation with safety prompt.", cmds.HistoryClear)
	history.AddCommand("prune", "Apply retention", "Delete visits older than the retention period.", cmds.HistoryPrune)

	bookmarks, _ := parser.AddCommand("bookmarks", "Browse and edit bookmarks", "List, add, update and remove bookmarks.", &BookmarksCommand{})
	bookmarks.AddCommand("list", "List bookmarks", "List bookmarks, optionally of a single folder.", cmds.BookmarksList)
	bookmarks.AddCommand("add", "Add a bookmark", "Bookmark URL, replacing any existing bookmark for it.", cmds.BookmarksAdd)
	bookmarks.AddCommand("update", "Edit a bookmark", "Change the title or folder of the bookmark for URL.", cmds.BookmarksEdit)
	bookmarks.AddCommand("remove", "Remove bookmarks", "Remove the bookmark of each given URL.", cmds.BookmarksRm)
	bookmarks.AddCommand("folders", "List folders", "List the folders bookmarks are filed under.", cmds.BookmarksDirs)
	bookmarks.AddCommand("check", "Check a bookmark", "Report whether URL is bookmarked.", cmds.BookmarksCheck)

	parser.AddCommand("resolve", "Resolve address-bar input", "Show whether TEXT would be navigated to, searched for, or run as a script.", cmds.Resolve)

	settings, _ := parser.AddCommand("settings", "Show and change settings", "Show and change browser settings.", &SettingsCommand{})
	settings.AddCommand("show", "Print settings", "Print the effective configuration as YAML.", cmds.SettingsShow)
	settings.AddCommand("set", "Change a setting", "Set KEY to VALUE and save the configuration.", cmds.SettingsSet)
	settings.AddCommand("engine", "Search engines", "List search engines, or make NAME the default.", cmds.SettingsEngine)
	settings.AddCommand("web", "Web settings", "List web-engine settings with their current values.", cmds.SettingsWeb)

	parser.AddCommand("status", "Show profile statistics", "Show database statistics and configuration summary.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the Crusta CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("crusta %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
