package engine

// Attribute names a boolean web-engine feature toggle. The value doubles
// as the settings key.
type Attribute string

const (
	AutoLoadImages                   Attribute = "auto_load_images"
	JavascriptEnabled                Attribute = "javascript_enabled"
	JavascriptCanOpenWindows         Attribute = "javascript_can_open_windows"
	JavascriptCanAccessClipboard     Attribute = "javascript_can_access_clipboard"
	LinksIncludedInFocusChain        Attribute = "links_included_in_focus_chain"
	LocalStorageEnabled              Attribute = "local_storage_enabled"
	LocalContentCanAccessRemoteURLs  Attribute = "local_content_can_access_remote_urls"
	XSSAuditingEnabled               Attribute = "xss_auditing_enabled"
	SpatialNavigationEnabled         Attribute = "spatial_navigation_enabled"
	LocalContentCanAccessFileURLs    Attribute = "local_content_can_access_file_urls"
	HyperlinkAuditingEnabled         Attribute = "hyperlink_auditing_enabled"
	ScrollAnimatorEnabled            Attribute = "scroll_animator_enabled"
	ErrorPageEnabled                 Attribute = "error_page_enabled"
	PluginsEnabled                   Attribute = "plugins_enabled"
	FullScreenSupportEnabled         Attribute = "fullscreen_support_enabled"
	ScreenCaptureEnabled             Attribute = "screen_capture_enabled"
	WebGLEnabled                     Attribute = "webgl_enabled"
	Accelerated2dCanvasEnabled       Attribute = "accelerated_2d_canvas_enabled"
	AutoLoadIconsForPage             Attribute = "auto_load_icons_for_page"
	TouchIconsEnabled                Attribute = "touch_icons_enabled"
	FocusOnNavigationEnabled         Attribute = "focus_on_navigation_enabled"
	PrintElementBackgrounds          Attribute = "print_element_backgrounds"
	AllowRunningInsecureContent      Attribute = "allow_running_insecure_content"
	AllowGeolocationOnInsecureOrigin Attribute = "allow_geolocation_on_insecure_origin"
	AllowWindowActivationFromJS      Attribute = "allow_window_activation_from_javascript"
	ShowScrollBars                   Attribute = "show_scroll_bars"
	PlaybackRequiresUserGesture      Attribute = "playback_requires_user_gesture"
	JavascriptCanPaste               Attribute = "javascript_can_paste"
	WebRTCPublicInterfacesOnly       Attribute = "webrtc_public_interfaces_only"
	DNSPrefetchEnabled               Attribute = "dns_prefetch_enabled"
	PDFViewerEnabled                 Attribute = "pdf_viewer_enabled"
)

// AttributeInfo describes a toggle for the settings page.
type AttributeInfo struct {
	Attribute   Attribute
	Description string
	Default     bool
}

var attributes = []AttributeInfo{
	{AutoLoadImages, "Auto load images", true},
	{JavascriptEnabled, "JavaScript enabled", true},
	{JavascriptCanOpenWindows, "JavaScript can open windows", false},
	{JavascriptCanAccessClipboard, "JavaScript can access clipboard", false},
	{LinksIncludedInFocusChain, "Links included in focus chain", true},
	{LocalStorageEnabled, "Local storage enabled", true},
	{LocalContentCanAccessRemoteURLs, "Local content can access remote urls", false},
	{XSSAuditingEnabled, "XSS auditing enabled", false},
	{SpatialNavigationEnabled, "Spatial navigation enabled", false},
	{LocalContentCanAccessFileURLs, "Local content can access file urls", true},
	{HyperlinkAuditingEnabled, "Hyperlink auditing enabled", false},
	{ScrollAnimatorEnabled, "Scroll animator enabled", false},
	{ErrorPageEnabled, "Error page enabled", true},
	{PluginsEnabled, "Plugins enabled", false},
	{FullScreenSupportEnabled, "Fullscreen support enabled", false},
	{ScreenCaptureEnabled, "Screen capture enabled", false},
	{WebGLEnabled, "WebGL enabled", true},
	{Accelerated2dCanvasEnabled, "Accelerated 2d canvas enabled", true},
	{AutoLoadIconsForPage, "Auto load icons for page", true},
	{TouchIconsEnabled, "Touch icons enabled", false},
	{FocusOnNavigationEnabled, "Focus on navigation enabled", false},
	{PrintElementBackgrounds, "Print element backgrounds", true},
	{AllowRunningInsecureContent, "Allow running insecure content", false},
	{AllowGeolocationOnInsecureOrigin, "Allow geolocation on insecure origins", false},
	{AllowWindowActivationFromJS, "Allow window activation from JavaScript", false},
	{ShowScrollBars, "Show scroll bars", true},
	{PlaybackRequiresUserGesture, "Playback requires user gesture", true},
	{JavascriptCanPaste, "JavaScript can paste", false},
	{WebRTCPublicInterfacesOnly, "WebRTC public interfaces only", false},
	{DNSPrefetchEnabled, "DNS prefetch enabled", false},
	{PDFViewerEnabled, "PDF viewer enabled", true},
}

// Attributes lists every toggle in settings-page order.
func Attributes() []AttributeInfo {
	return append([]AttributeInfo(nil), attributes...)
}

// LookupAttribute finds the toggle whose key is name.
func LookupAttribute(name string) (AttributeInfo, bool) {
	for _, a := range attributes {
		if string(a.Attribute) == name {
			return a, true
		}
	}
	return AttributeInfo{}, false
}

// DefaultAttributes returns the engine's out-of-the-box toggle values.
func DefaultAttributes() map[Attribute]bool {
	m := make(map[Attribute]bool, len(attributes))
	for _, a := range attributes {
		m[a.Attribute] = a.Default
	}
	return m
}
