package git

import (
	"os"
	"path/filepath"
)

// RepositoryRoot returns the root of the git repository containing dir, or
// "" when dir is not inside a repository. A repository is identified by a
// .git entry: a directory in a normal checkout, a pointer file in worktrees
// and submodules.
func RepositoryRoot(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return ""
}
