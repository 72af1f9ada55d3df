package sources

import (
	"fmt"
	"sort"

	"github.com/oss-compliance/license-guardian/pkg/config"
)

// Dependency is one detected dependency, the unit the compliance policies
// apply to.
type Dependency struct {
	// Type is the source type that found the dependency, e.g. "go".
	Type string

	// Name identifies the dependency within its ecosystem.
	Name string

	// Version is the version requirement declared by the manifest.
	Version string

	// License is the SPDX identifier when known. Usually empty until a
	// cached record or an override supplies it.
	License string
}

// Source enumerates the dependencies of one ecosystem for one app.
type Source interface {
	// Type returns the source type name used in configuration keys.
	Type() string

	// Enabled reports whether the app's source directory contains the
	// ecosystem's manifest.
	Enabled() bool

	// Dependencies enumerates the dependencies declared by the manifest.
	Dependencies() ([]Dependency, error)
}

// Factory builds a Source bound to one app configuration.
type Factory func(app *config.AppConfig) Source

var registry = map[string]Factory{}

// Register makes a source type available under name. Implementations call
// it from init.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Names returns the registered source type names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named source for an app.
func New(name string, app *config.AppConfig) (Source, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown dependency source type: %s", name)
	}
	return factory(app), nil
}

// ForApp builds every registered source the app's configuration enables,
// in name order.
func ForApp(app *config.AppConfig) []Source {
	var enabled []Source
	for _, name := range Names() {
		if !app.SourceEnabled(name) {
			continue
		}
		source, err := New(name, app)
		if err != nil {
			continue
		}
		enabled = append(enabled, source)
	}
	return enabled
}
