package cli

import (
	"fmt"
	"strings"

	"github.com/runnerr0/crusta/internal/browser"
	"github.com/runnerr0/crusta/internal/resolve"
)

type jsonAction struct {
	Input  string `json:"input"`
	Kind   string `json:"kind"`
	URL    string `json:"url,omitempty"`
	Script string `json:"script,omitempty"`
}

// Execute implements the go-flags Commander interface for ResolveCommand.
func (c *ResolveCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("resolve needs the text to resolve")
	}

	app, done, err := openApp(c.globals)
	if err != nil {
		return err
	}
	defer done()

	return c.executeWithApp(app, strings.Join(args, " "))
}

func (c *ResolveCommand) executeWithApp(app *browser.App, text string) error {
	engine := app.Search.DefaultEngine()
	if c.Engine != "" {
		found := false
		for _, e := range app.Search.Engines() {
			if strings.EqualFold(e.Name, c.Engine) {
				engine, found = e, true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown search engine %q", c.Engine)
		}
	}

	action := resolve.Resolve(text, engine)

	if c.globals.JSON {
		return printJSON(jsonAction{
			Input:  text,
			Kind:   action.Kind.String(),
			URL:    action.URL,
			Script: action.Script,
		})
	}

	switch action.Kind {
	case resolve.Script:
		fmt.Printf("%-8s %s\n", action.Kind, action.Script)
	default:
		fmt.Printf("%-8s %s\n", action.Kind, action.URL)
	}
	return nil
}
