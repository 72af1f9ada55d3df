package cmd

import (
	"go.uber.org/zap"

	"github.com/oss-compliance/license-guardian/pkg/config"
	"github.com/oss-compliance/license-guardian/pkg/sources"
)

// loadConfiguration resolves the configuration from --config, defaulting to
// a search of the working directory.
func loadConfiguration() (*config.Configuration, error) {
	path := cfgFile
	if path == "" {
		path = "."
	}
	return config.Load(path)
}

// appSources returns the enabled sources for an app whose manifests are
// actually present in its source directory.
func appSources(app *config.AppConfig) []sources.Source {
	var active []sources.Source
	for _, source := range sources.ForApp(app) {
		if !source.Enabled() {
			zap.S().Debugw("source manifest not present",
				"app", app.Name,
				"source", source.Type())
			continue
		}
		active = append(active, source)
	}
	return active
}
