package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	goflags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/crusta/internal/browser"
	"github.com/runnerr0/crusta/internal/config"
	"github.com/runnerr0/crusta/internal/storage"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// newTestApp returns an app over an in-memory database whose settings are
// saved to a temp file.
func newTestApp(t *testing.T) *browser.App {
	t.Helper()
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	app, err := browser.NewApp(config.DefaultConfig(), cfgPath, store, nil, nil)
	require.NoError(t, err)
	return app
}

// tempGlobals points --config and --db-path into a fresh temp dir.
func tempGlobals(t *testing.T) *GlobalFlags {
	t.Helper()
	dir := t.TempDir()
	return &GlobalFlags{
		Config: filepath.Join(dir, "config.yaml"),
		DBPath: filepath.Join(dir, "crusta.db"),
	}
}

// tempArgs returns the global flags matching tempGlobals for RunWithArgs.
func tempArgs(t *testing.T) []string {
	g := tempGlobals(t)
	return []string{"--config", g.Config, "--db-path", g.DBPath}
}

// parseOnly builds a parser whose commands are matched but not executed.
func parseOnly(args ...string) (*GlobalFlags, *commands, error) {
	parser, globals, cmds := buildParser("test")
	parser.Options &^= goflags.PrintErrors
	parser.CommandHandler = func(goflags.Commander, []string) error { return nil }
	_, err := parser.ParseArgs(args)
	return globals, cmds, err
}
