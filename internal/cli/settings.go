package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runnerr0/crusta/internal/browser"
	"github.com/runnerr0/crusta/internal/engine"
)

// webKeyPrefix selects a web-engine toggle in "settings set".
const webKeyPrefix = "web."

var stringSettings = map[string]func(*browser.SettingsPane, string) error{
	"browsing.homepage":  (*browser.SettingsPane).SetHomepage,
	"downloads.path":     (*browser.SettingsPane).SetDownloadPath,
	"privacy.user_agent": (*browser.SettingsPane).SetUserAgent,
}

var boolSettings = map[string]func(*browser.SettingsPane, bool) error{
	"downloads.ask":                     (*browser.SettingsPane).SetAskBeforeDownload,
	"privacy.do_not_track":              (*browser.SettingsPane).SetDoNotTrack,
	"privacy.allow_third_party_cookies": (*browser.SettingsPane).SetAllowThirdPartyCookies,
	"privacy.block_all_cookies":         (*browser.SettingsPane).SetBlockAllCookies,
}

// settingKeys lists every key "settings set" accepts, web toggles last.
func settingKeys() []string {
	keys := make([]string, 0, len(stringSettings)+len(boolSettings))
	for k := range stringSettings {
		keys = append(keys, k)
	}
	for k := range boolSettings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return append(keys, webKeyPrefix+"<name>")
}

// applySetting routes key to the matching settings pane setter.
func applySetting(pane *browser.SettingsPane, key, value string) error {
	if set, ok := stringSettings[key]; ok {
		return set(pane, value)
	}

	if set, ok := boolSettings[key]; ok {
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return set(pane, on)
	}

	if strings.HasPrefix(key, webKeyPrefix) {
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return pane.SetAttribute(engine.Attribute(strings.TrimPrefix(key, webKeyPrefix)), on)
	}

	return fmt.Errorf("unknown setting %q (one of: %s)", key, strings.Join(settingKeys(), ", "))
}

// Execute implements the go-flags Commander interface for SettingsShowCommand.
func (c *SettingsShowCommand) Execute(args []string) error {
	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(app)
}

func (c *SettingsShowCommand) executeWithApp(app *browser.App) error {
	if c.globals.JSON {
		return printJSON(app.Config)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(app.Config); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}

// Execute implements the go-flags Commander interface for SettingsSetCommand.
func (c *SettingsSetCommand) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("settings set takes KEY and VALUE")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(app, args[0], args[1])
}

func (c *SettingsSetCommand) executeWithApp(app *browser.App, key, value string) error {
	if err := applySetting(browser.NewSettingsPane(app), key, value); err != nil {
		return err
	}

	if c.globals.JSON {
		return printJSON(map[string]interface{}{"key": key, "value": value, "saved": app.ConfigPath != ""})
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

// Execute implements the go-flags Commander interface for SettingsEngineCommand.
func (c *SettingsEngineCommand) Execute(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("settings engine takes at most one NAME")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	return c.executeWithApp(app, name)
}

func (c *SettingsEngineCommand) executeWithApp(app *browser.App, name string) error {
	mgr := browser.NewManagerTab(app)
	if name != "" {
		if err := mgr.SetDefaultEngine(name); err != nil {
			return err
		}
	}

	engines, current := mgr.SearchEngines()

	if c.globals.JSON {
		type jsonEngine struct {
			Name     string `json:"name"`
			QueryURL string `json:"query_url"`
			Default  bool   `json:"default"`
		}
		out := make([]jsonEngine, len(engines))
		for i, e := range engines {
			out[i] = jsonEngine{Name: e.Name, QueryURL: e.QueryURL, Default: e.Name == current.Name}
		}
		return printJSON(map[string]interface{}{"engines": out})
	}

	for _, e := range engines {
		marker := " "
		if e.Name == current.Name {
			marker = "*"
		}
		fmt.Printf("%s %-12s %s\n", marker, e.Name, e.QueryURL)
	}
	return nil
}

// Execute implements the go-flags Commander interface for SettingsWebCommand.
func (c *SettingsWebCommand) Execute(args []string) error {
	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(app)
}

func (c *SettingsWebCommand) executeWithApp(app *browser.App) error {
	pane := browser.NewSettingsPane(app)
	attrs := engine.Attributes()

	if c.globals.JSON {
		out := make(map[string]bool, len(attrs))
		for _, info := range attrs {
			out[string(info.Attribute)] = pane.Attribute(info.Attribute)
		}
		return printJSON(out)
	}

	for _, info := range attrs {
		state := "off"
		if pane.Attribute(info.Attribute) {
			state = "on"
		}
		def := ""
		if pane.Attribute(info.Attribute) != info.Default {
			def = " (changed)"
		}
		fmt.Printf("%-40s %-3s %s%s\n", info.Attribute, state, info.Description, def)
	}
	return nil
}
