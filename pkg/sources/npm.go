package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/oss-compliance/license-guardian/pkg/config"
)

func init() {
	Register("npm", func(app *config.AppConfig) Source {
		return &NPM{app: app}
	})
}

// NPM reports the packages a package.json declares as production
// dependencies, in name order.
type NPM struct {
	app *config.AppConfig
}

type packageJSON struct {
	Dependencies map[string]string `json:"dependencies"`
}

func (s *NPM) Type() string { return "npm" }

// Enabled reports whether the app's source directory has a package.json.
func (s *NPM) Enabled() bool {
	_, err := os.Stat(s.manifestPath())
	return err == nil
}

func (s *NPM) Dependencies() ([]Dependency, error) {
	path := s.manifestPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var manifest packageJSON
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	names := make([]string, 0, len(manifest.Dependencies))
	for name := range manifest.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, Dependency{
			Type:    s.Type(),
			Name:    name,
			Version: manifest.Dependencies[name],
		})
	}
	return deps, nil
}

func (s *NPM) manifestPath() string {
	return filepath.Join(s.app.SourceDir(), "package.json")
}
