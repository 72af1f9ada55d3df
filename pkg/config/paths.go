package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// absPath resolves path against base. Absolute paths stand on their own and
// a leading ~ expands to the user's home directory.
func absPath(path, base string) string {
	path = expandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// joinRoot joins a configured path onto an absolute root. Absolute
// configured paths win over the root.
func joinRoot(root, path string) string {
	if path == "" {
		return root
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// isDir reports whether path names an existing directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// globDirs expands pattern against the filesystem and returns the matching
// directories, sorted. Bad patterns match nothing.
func globDirs(pattern string) []string {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, match := range matches {
		if isDir(match) {
			dirs = append(dirs, match)
		}
	}
	sort.Strings(dirs)
	return dirs
}

// matchPattern reports whether a dependency name matches a policy glob
// pattern. Matching is path-separator-aware and case-insensitive, so
// "github.com/foo/*" matches "github.com/Foo/bar" but not
// "github.com/foo/bar/baz".
func matchPattern(pattern, name string) bool {
	ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(name))
	return err == nil && ok
}
