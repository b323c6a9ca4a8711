package browser

import (
	"fmt"

	"github.com/runnerr0/crusta/internal/config"
	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/logger"
)

// SettingsPane applies and persists each settings change as it is made.
// Profile-backed settings are also pushed to the engine when one is attached.
type SettingsPane struct {
	app *App
}

// NewSettingsPane returns the pane for app.
func NewSettingsPane(app *App) *SettingsPane {
	return &SettingsPane{app: app}
}

func (s *SettingsPane) cfg() *config.Config {
	return s.app.Config
}

func (s *SettingsPane) changed(key string, value interface{}) error {
	s.app.Log.Debug("setting changed", logger.String("key", key), logger.Any("value", value))
	return s.app.saveConfig()
}

func (s *SettingsPane) SetHomepage(url string) error {
	s.cfg().Browsing.Homepage = url
	return s.changed("browsing.homepage", url)
}

func (s *SettingsPane) SetDownloadPath(path string) error {
	s.cfg().Downloads.Path = path
	if s.app.Profile != nil {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return err
		}
		s.app.Profile.SetDownloadPath(expanded)
	}
	return s.changed("downloads.path", path)
}

func (s *SettingsPane) SetAskBeforeDownload(ask bool) error {
	s.cfg().Downloads.Ask = ask
	return s.changed("downloads.ask", ask)
}

func (s *SettingsPane) SetUserAgent(ua string) error {
	s.cfg().Privacy.UserAgent = ua
	if s.app.Profile != nil {
		s.app.Profile.SetHTTPUserAgent(ua)
	}
	return s.changed("privacy.user_agent", ua)
}

func (s *SettingsPane) SetDoNotTrack(on bool) error {
	s.cfg().Privacy.DoNotTrack = on
	return s.changed("privacy.do_not_track", on)
}

// SetAllowThirdPartyCookies takes effect after a restart.
func (s *SettingsPane) SetAllowThirdPartyCookies(on bool) error {
	s.cfg().Privacy.AllowThirdPartyCookies = on
	return s.changed("privacy.allow_third_party_cookies", on)
}

// SetBlockAllCookies takes effect after a restart.
func (s *SettingsPane) SetBlockAllCookies(on bool) error {
	s.cfg().Privacy.BlockAllCookies = on
	return s.changed("privacy.block_all_cookies", on)
}

// SetAttribute flips a web-engine toggle.
func (s *SettingsPane) SetAttribute(attr engine.Attribute, on bool) error {
	if _, ok := engine.LookupAttribute(string(attr)); !ok {
		return fmt.Errorf("unknown web setting %q", attr)
	}
	if s.cfg().Web == nil {
		s.cfg().Web = engine.DefaultAttributes()
	}
	s.cfg().Web[attr] = on
	if s.app.Profile != nil {
		s.app.Profile.SetAttribute(attr, on)
	}
	return s.changed("web."+string(attr), on)
}

// Attribute reports a toggle's current value, preferring the live engine.
func (s *SettingsPane) Attribute(attr engine.Attribute) bool {
	if s.app.Profile != nil {
		return s.app.Profile.TestAttribute(attr)
	}
	if on, ok := s.cfg().Web[attr]; ok {
		return on
	}
	info, _ := engine.LookupAttribute(string(attr))
	return info.Default
}

// CookiePolicy reports the policy the next start will use.
func (s *SettingsPane) CookiePolicy() config.CookiePolicy {
	return s.cfg().Privacy.CookiePolicy()
}
