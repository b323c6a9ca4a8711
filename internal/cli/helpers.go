package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/runnerr0/crusta/internal/browser"
	"github.com/runnerr0/crusta/internal/config"
	"github.com/runnerr0/crusta/internal/logger"
	"github.com/runnerr0/crusta/internal/storage"
)

// loadConfig reads the config named by --config, or the default one.
// A missing file is created with defaults.
func loadConfig(g *GlobalFlags) (*config.Config, string, error) {
	if g.Config == "" {
		return config.LoadOrCreate()
	}
	path, err := config.ExpandPath(g.Config)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadOrCreateAt(path)
	return cfg, path, err
}

// dbPathFor returns --db-path when set, else the path from cfg.
func dbPathFor(g *GlobalFlags, cfg *config.Config) (string, error) {
	if g.DBPath != "" {
		return config.ExpandPath(g.DBPath)
	}
	return cfg.DBPath()
}

// openApp loads configuration, opens the profile database and wires the
// application. The returned func releases everything.
func openApp(g *GlobalFlags) (*browser.App, func(), error) {
	cfg, cfgPath, err := loadConfig(g)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if g.Verbose {
		level = "debug"
	}
	log, err := logger.New(level, cfg.Logging.Pretty)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := dbPathFor(g, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve db path: %w", err)
	}
	log.Debug("opening profile", logger.String("config", cfgPath), logger.String("db", dbPath))

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	app, err := browser.NewApp(cfg, cfgPath, store, nil, log)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	done := func() {
		if err := store.Close(); err != nil {
			log.Warn("closing database", logger.Error(err))
		}
		_ = log.Sync()
	}
	return app, done, nil
}

// parseDuration parses a human-friendly duration string like "30d", "7d", "24h", "2w".
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid duration: empty string")
	}

	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]

	n, err := strconv.Atoi(numStr)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	var unit time.Duration
	switch suffix {
	case 'd':
		unit = 24 * time.Hour
	case 'h':
		unit = time.Hour
	case 'w':
		unit = 7 * 24 * time.Hour
	case 'm':
		unit = time.Minute
	default:
		return 0, fmt.Errorf("invalid duration: %q (use d, h, w, or m suffix)", s)
	}

	if int64(n) > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("invalid duration: %q is too long", s)
	}
	return time.Duration(n) * unit, nil
}

// formatDurationHuman formats a duration into a human-readable string like "30 days".
func formatDurationHuman(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	hours := int(d.Hours())
	if hours > 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return d.String()
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatNumber formats an int64 with comma separators.
func formatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// plural returns word, with an "s" appended unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// validateURL rejects input that is not an absolute URL with a host.
func validateURL(raw string) error {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s", raw)
	}
	return nil
}

// confirm reads one line from in and reports whether it equals word.
func confirm(in io.Reader, word string) error {
	if in == nil {
		in = os.Stdin
	}
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return fmt.Errorf("aborted: no input received")
	}
	if strings.TrimSpace(scanner.Text()) != word {
		return fmt.Errorf("aborted: confirmation text did not match")
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
