package sources

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/oss-compliance/license-guardian/pkg/config"
)

func init() {
	Register("go", func(app *config.AppConfig) Source {
		return &GoModules{app: app}
	})
}

// GoModules reports the modules a Go module requires, read straight from
// its go.mod. Indirect requirements are included: they ship with the build
// just like direct ones.
type GoModules struct {
	app *config.AppConfig
}

func (s *GoModules) Type() string { return "go" }

// Enabled reports whether the app's source directory is a Go module.
func (s *GoModules) Enabled() bool {
	_, err := os.Stat(s.modPath())
	return err == nil
}

func (s *GoModules) Dependencies() ([]Dependency, error) {
	path := s.modPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	mod, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	deps := make([]Dependency, 0, len(mod.Require))
	for _, req := range mod.Require {
		deps = append(deps, Dependency{
			Type:    s.Type(),
			Name:    req.Mod.Path,
			Version: req.Mod.Version,
		})
	}
	return deps, nil
}

func (s *GoModules) modPath() string {
	return filepath.Join(s.app.SourceDir(), "go.mod")
}
