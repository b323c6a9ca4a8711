// Package resolve decides what the address bar does with submitted text:
// navigate to it, run it as a script in the current page, or search for it.
package resolve

import (
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/runnerr0/crusta/internal/search"
)

// Kind classifies a submission.
type Kind int

const (
	Navigate Kind = iota
	Script
	Search
)

func (k Kind) String() string {
	switch k {
	case Navigate:
		return "navigate"
	case Script:
		return "script"
	case Search:
		return "search"
	default:
		return "unknown"
	}
}

// ScriptScheme marks input to be executed in the page instead of loaded.
const ScriptScheme = "javascript"

// LoopbackHost always counts as a navigable host.
const LoopbackHost = "localhost"

// Action is the outcome of resolving address-bar text. URL is set for
// Navigate and Search, Script for Script.
type Action struct {
	Kind   Kind
	URL    string
	Script string
}

// Resolve classifies text. Input that parses with the script scheme yields
// its decoded body. Input whose host is localhost or has more than one
// dot-separated label is navigated to. Everything else becomes a query on
// engine with text substituted verbatim.
func Resolve(text string, engine search.Engine) Action {
	if u, ok := FromUserInput(text); ok {
		if strings.EqualFold(u.Scheme, ScriptScheme) {
			return Action{Kind: Script, Script: scriptBody(text)}
		}

		host := strings.ToLower(u.Hostname())
		if host == LoopbackHost || len(strings.Split(host, ".")) > 1 {
			return Action{Kind: Navigate, URL: asciiHost(u).String()}
		}
	}

	return Action{Kind: Search, URL: engine.QueryFor(text)}
}

// asciiHost rewrites an internationalized host to its ACE form so the URL
// is not percent-encoded. ASCII hosts and hosts that fail conversion are
// left alone.
func asciiHost(u *url.URL) *url.URL {
	host := u.Hostname()
	if strings.IndexFunc(host, func(r rune) bool { return r >= utf8.RuneSelf }) < 0 {
		return u
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil || ascii == host {
		return u
	}
	if port := u.Port(); port != "" {
		u.Host = net.JoinHostPort(ascii, port)
	} else {
		u.Host = ascii
	}
	return u
}
