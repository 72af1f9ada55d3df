package config

import (
	"os"

	"github.com/oss-compliance/license-guardian/pkg/git"
)

// Environment supplies the ambient state configuration resolution depends
// on: the process working directory and repository discovery, both
// injectable.
type Environment struct {
	// WorkingDir anchors relative config paths and acts as the fallback
	// workspace root.
	WorkingDir string

	// RepositoryRoot reports the enclosing version control root for a
	// directory, or "" when there is none. It ranks between an explicit
	// root option and WorkingDir when resolving an app's root.
	RepositoryRoot func(dir string) string
}

// DefaultEnvironment returns an Environment backed by the process working
// directory and git discovery.
func DefaultEnvironment() Environment {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Environment{
		WorkingDir:     wd,
		RepositoryRoot: git.RepositoryRoot,
	}
}

// rootFor resolves an app's workspace root: an explicit root option wins,
// then the discovered repository root, then the working directory.
func (e Environment) rootFor(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if e.RepositoryRoot != nil {
		if root := e.RepositoryRoot(e.WorkingDir); root != "" {
			return root
		}
	}
	return e.WorkingDir
}
