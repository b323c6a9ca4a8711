// Package browser holds the controllers that sit between the rendering
// engine and the chrome: web tabs, the manager tab and the settings pane.
// Everything runs on the UI event loop; the App is passed to each
// controller instead of being reached through a global.
package browser

import (
	"fmt"

	"github.com/runnerr0/crusta/internal/config"
	"github.com/runnerr0/crusta/internal/download"
	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/logger"
	"github.com/runnerr0/crusta/internal/search"
	"github.com/runnerr0/crusta/internal/storage"
)

// App is the application context shared by all controllers.
type App struct {
	Config     *config.Config
	ConfigPath string
	Store      storage.Store
	Search     *search.Model
	Downloads  *download.Tracker
	Profile    engine.Profile
	Log        logger.Logger
}

// NewApp wires the shared services. profile may be nil when no engine is
// attached, e.g. from the command line. configPath may be empty, in which
// case settings changes are kept in memory only.
func NewApp(cfg *config.Config, configPath string, store storage.Store, profile engine.Profile, log logger.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.NewNop()
	}

	model, err := search.NewModel(cfg.Search.Engines, cfg.Search.Default)
	if err != nil {
		return nil, fmt.Errorf("search engines: %w", err)
	}

	app := &App{
		Config:     cfg,
		ConfigPath: configPath,
		Store:      store,
		Search:     model,
		Downloads:  download.NewTracker(log.With(logger.String("component", "downloads"))),
		Profile:    profile,
		Log:        log,
	}

	if profile != nil {
		if err := ApplyProfile(cfg, profile); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// ApplyProfile pushes persisted settings into the engine profile.
func ApplyProfile(cfg *config.Config, profile engine.Profile) error {
	if cfg.Downloads.Path != "" {
		path, err := config.ExpandPath(cfg.Downloads.Path)
		if err != nil {
			return fmt.Errorf("download path: %w", err)
		}
		profile.SetDownloadPath(path)
	}
	if cfg.Privacy.UserAgent != "" {
		profile.SetHTTPUserAgent(cfg.Privacy.UserAgent)
	}
	for _, info := range engine.Attributes() {
		on, ok := cfg.Web[info.Attribute]
		if !ok {
			on = info.Default
		}
		profile.SetAttribute(info.Attribute, on)
	}
	return nil
}

// saveConfig persists the current settings when the app has a config path.
func (a *App) saveConfig() error {
	if a.ConfigPath == "" {
		return nil
	}
	if err := config.Save(a.ConfigPath, a.Config); err != nil {
		a.Log.Error("saving settings failed", logger.Error(err))
		return err
	}
	return nil
}
