package resolve

import (
	"net/url"
	"strings"
)

// FromUserInput parses free-form address-bar text leniently. The scheme is
// optional; text without one is read as an http URL, or ftp when the host
// starts with "ftp.". Input shaped like host:port is not mistaken for a
// scheme. It reports false when no sensible URL can be built.
func FromUserInput(input string) (*url.URL, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, false
	}

	direct, directErr := url.Parse(trimmed)
	prepended, prependedErr := url.Parse("http://" + trimmed)

	// "localhost:8080" parses with scheme "localhost"; the prepended form
	// having a valid port means it was really host:port.
	if directErr == nil && direct.Scheme != "" && (prependedErr != nil || prepended.Port() == "") {
		return direct, true
	}

	if prependedErr == nil && (prepended.Host != "" || prepended.Path != "") {
		if head, _, _ := strings.Cut(trimmed, "."); strings.EqualFold(head, "ftp") {
			prepended.Scheme = "ftp"
		}
		return prepended, true
	}

	return nil, false
}

// scriptBody returns the percent-decoded text after the scheme separator.
func scriptBody(input string) string {
	_, body, _ := strings.Cut(strings.TrimSpace(input), ":")
	decoded, err := url.PathUnescape(body)
	if err != nil {
		return body
	}
	return decoded
}
