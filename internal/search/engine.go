// Package search holds the configured search engines and the query
// templates the address bar falls back to.
package search

import (
	"fmt"
	"strings"
)

// Placeholder is replaced by the user's query text in a QueryURL.
const Placeholder = "{searchTerms}"

// Engine is a named query template.
type Engine struct {
	Name     string `yaml:"name"`
	QueryURL string `yaml:"query_url"`
}

// QueryFor substitutes text, unescaped, for every placeholder in the template.
func (e Engine) QueryFor(text string) string {
	return strings.ReplaceAll(e.QueryURL, Placeholder, text)
}

// Validate reports a template that cannot carry a query.
func (e Engine) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("search engine name is required")
	}
	if !strings.Contains(e.QueryURL, Placeholder) {
		return fmt.Errorf("search engine %q: query_url must contain %s", e.Name, Placeholder)
	}
	return nil
}

// Builtin is used when no engine is configured.
var Builtin = Engine{
	Name:     "Google",
	QueryURL: "https://www.google.com/search?q=" + Placeholder,
}

// DefaultEngines is the engine list written to a fresh config.
func DefaultEngines() []Engine {
	return []Engine{
		Builtin,
		{Name: "DuckDuckGo", QueryURL: "https://duckduckgo.com/?q=" + Placeholder},
		{Name: "Wikipedia", QueryURL: "https://en.wikipedia.org/w/index.php?search=" + Placeholder},
	}
}
