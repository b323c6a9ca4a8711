package search

import "fmt"

// Model is the ordered set of engines with one marked as default.
type Model struct {
	engines []Engine
	active  int
}

// NewModel validates engines and selects defaultName. An empty engine list
// yields a model holding only Builtin. An unknown defaultName selects the
// first engine.
func NewModel(engines []Engine, defaultName string) (*Model, error) {
	if len(engines) == 0 {
		engines = []Engine{Builtin}
	}

	seen := make(map[string]bool, len(engines))
	for _, e := range engines {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate search engine %q", e.Name)
		}
		seen[e.Name] = true
	}

	m := &Model{engines: append([]Engine(nil), engines...)}
	for i, e := range m.engines {
		if e.Name == defaultName {
			m.active = i
			break
		}
	}
	return m, nil
}

// DefaultEngine returns the engine used for address-bar searches.
func (m *Model) DefaultEngine() Engine {
	return m.engines[m.active]
}

// SetDefault selects the engine named name.
func (m *Model) SetDefault(name string) error {
	for i, e := range m.engines {
		if e.Name == name {
			m.active = i
			return nil
		}
	}
	return fmt.Errorf("unknown search engine %q", name)
}

// Engines returns a copy of the configured engines.
func (m *Model) Engines() []Engine {
	return append([]Engine(nil), m.engines...)
}
