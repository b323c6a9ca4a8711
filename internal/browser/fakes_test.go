package browser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/crusta/internal/config"
	"github.com/runnerr0/crusta/internal/engine"
	"github.com/runnerr0/crusta/internal/storage"
)

type fakeHistory struct {
	back, forward bool
}

func (h fakeHistory) CanGoBack() bool    { return h.back }
func (h fakeHistory) CanGoForward() bool { return h.forward }

// fakeView records every call made by a controller.
type fakeView struct {
	url     string
	title   string
	history fakeHistory

	loaded   []string
	scripts  []string
	calls    []string
	focusSet bool
}

func (v *fakeView) Load(url string) {
	v.loaded = append(v.loaded, url)
	v.url = url
}
func (v *fakeView) Back()                             { v.calls = append(v.calls, "back") }
func (v *fakeView) Forward()                          { v.calls = append(v.calls, "forward") }
func (v *fakeView) Reload()                           { v.calls = append(v.calls, "reload") }
func (v *fakeView) Stop()                             { v.calls = append(v.calls, "stop") }
func (v *fakeView) URL() string                       { return v.url }
func (v *fakeView) Title() string                     { return v.title }
func (v *fakeView) Icon() engine.Icon                 { return engine.Icon{} }
func (v *fakeView) RunJavaScript(code string)         { v.scripts = append(v.scripts, code) }
func (v *fakeView) History() engine.NavigationHistory { return v.history }
func (v *fakeView) SetFocus()                         { v.focusSet = true }

type fakeProfile struct {
	downloadPath string
	userAgent    string
	attrs        map[engine.Attribute]bool
}

func newFakeProfile() *fakeProfile {
	return &fakeProfile{attrs: make(map[engine.Attribute]bool)}
}

func (p *fakeProfile) DownloadPath() string                     { return p.downloadPath }
func (p *fakeProfile) SetDownloadPath(path string)              { p.downloadPath = path }
func (p *fakeProfile) HTTPUserAgent() string                    { return p.userAgent }
func (p *fakeProfile) SetHTTPUserAgent(ua string)               { p.userAgent = ua }
func (p *fakeProfile) TestAttribute(attr engine.Attribute) bool { return p.attrs[attr] }
func (p *fakeProfile) SetAttribute(attr engine.Attribute, on bool) {
	p.attrs[attr] = on
}

func openTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestApp builds an App over an in-memory store with the config saved
// to a temp file.
func newTestApp(t *testing.T, profile engine.Profile) *App {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	app, err := NewApp(config.DefaultConfig(), cfgPath, openTestStore(t), profile, nil)
	require.NoError(t, err)
	return app
}
