package config

import (
	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/search"
)

// StartPage is the built-in page loaded when no homepage is set.
const StartPage = "browser:startpage"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Browsing: BrowsingConfig{
			Homepage: StartPage,
		},
		Downloads: DownloadsConfig{
			Path: "~/Downloads",
			Ask:  true,
		},
		Privacy: PrivacyConfig{
			UserAgent:              "",
			DoNotTrack:             true,
			AllowThirdPartyCookies: false,
			BlockAllCookies:        false,
		},
		Web: engine.DefaultAttributes(),
		Search: SearchConfig{
			Default: search.Builtin.Name,
			Engines: search.DefaultEngines(),
		},
		Storage: StorageConfig{
			Path:       "~/.config/crusta",
			SQLiteFile: "crusta.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: false,
		},
	}
}
