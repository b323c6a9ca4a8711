// Package engine declares what the browser needs from the embedded
// rendering engine. Implementations live with the toolkit binding; the
// controllers only see these interfaces.
package engine

// NavigationHistory is the back/forward stack of a view.
type NavigationHistory interface {
	CanGoBack() bool
	CanGoForward() bool
}

// Icon identifies a page icon. The engine decides what URL points at.
type Icon struct {
	URL string
}

// WebView is a single rendering surface.
type WebView interface {
	Load(url string)
	Back()
	Forward()
	Reload()
	Stop()
	URL() string
	Title() string
	Icon() Icon
	RunJavaScript(code string)
	History() NavigationHistory
	SetFocus()
}

// Profile is the engine-wide settings object shared by all views.
type Profile interface {
	DownloadPath() string
	SetDownloadPath(path string)
	HTTPUserAgent() string
	SetHTTPUserAgent(ua string)
	TestAttribute(attr Attribute) bool
	SetAttribute(attr Attribute, on bool)
}
