package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/search"
)

// Default config file path.
const DefaultConfigPath = "~/.config/crusta/config.yaml"

// Config holds the browser profile settings.
type Config struct {
	Browsing  BrowsingConfig            `yaml:"browsing"`
	Downloads DownloadsConfig           `yaml:"downloads"`
	Privacy   PrivacyConfig             `yaml:"privacy"`
	Web       map[engine.Attribute]bool `yaml:"web"`
	Search    SearchConfig              `yaml:"search"`
	Storage   StorageConfig             `yaml:"storage"`
	Logging   LoggingConfig             `yaml:"logging"`
}

type BrowsingConfig struct {
	Homepage string `yaml:"homepage"`
}

type DownloadsConfig struct {
	Path string `yaml:"path"`
	Ask  bool   `yaml:"ask"`
}

type PrivacyConfig struct {
	UserAgent              string `yaml:"user_agent"`
	DoNotTrack             bool   `yaml:"do_not_track"`
	AllowThirdPartyCookies bool   `yaml:"allow_third_party_cookies"`
	BlockAllCookies        bool   `yaml:"block_all_cookies"`
}

type SearchConfig struct {
	Default string          `yaml:"default"`
	Engines []search.Engine `yaml:"engines"`
}

type StorageConfig struct {
	Path       string `yaml:"path"`
	SQLiteFile string `yaml:"sqlite_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// CookiePolicy is the cookie acceptance mode derived from privacy settings.
type CookiePolicy string

const (
	CookiesAllowAll        CookiePolicy = "allow_all"
	CookiesBlockThirdParty CookiePolicy = "block_third_party"
	CookiesBlockAll        CookiePolicy = "block_all"
)

// CookiePolicy reports the effective policy. Blocking all cookies wins
// over allowing third-party ones.
func (p PrivacyConfig) CookiePolicy() CookiePolicy {
	switch {
	case p.BlockAllCookies:
		return CookiesBlockAll
	case p.AllowThirdPartyCookies:
		return CookiesAllowAll
	default:
		return CookiesBlockThirdParty
	}
}

// Validate checks values the file format alone cannot.
func (c *Config) Validate() error {
	for attr := range c.Web {
		if _, ok := engine.LookupAttribute(string(attr)); !ok {
			return fmt.Errorf("web: unknown setting %q", attr)
		}
	}
	for _, e := range c.Search.Engines {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("search: %w", err)
		}
	}
	return nil
}

// DBPath returns the expanded path of the profile database.
func (c *Config) DBPath() (string, error) {
	dir, err := ExpandPath(c.Storage.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.SQLiteFile), nil
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, string, error) {
	path, err := ExpandPath(DefaultConfigPath)
	if err != nil {
		return nil, "", err
	}
	cfg, err := LoadOrCreateAt(path)
	return cfg, path, err
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(path)
}

// Save writes cfg to path, replacing the file atomically.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}
