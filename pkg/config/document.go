package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// defaultConfigFiles are the recognized configuration filenames in
// preference order. The first one present in a directory wins.
var defaultConfigFiles = []string{
	".license-guardian.yml",
	".license-guardian.yaml",
	".license-guardian.json",
}

// FindConfig locates the configuration file in a directory. It fails with
// ErrNotFound when the directory holds none of the default filenames.
func FindConfig(dir string) (string, error) {
	for _, name := range defaultConfigFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// ParseFile reads and decodes a configuration document, expanding root
// markers against the document's own directory. A path that does not exist
// yields an empty tree so the tool runs without any configuration file.
func ParseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			zap.S().Debugw("no configuration file, using defaults", "path", path)
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	var tree map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &tree)
	case ".json":
		err = json.Unmarshal(data, &tree)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if tree == nil {
		tree = map[string]any{}
	}

	return expandRoots(tree, path), nil
}

// expandRoots rewrites root markers in a parsed tree into absolute paths.
// A literal true means the directory containing the document; a relative
// path resolves against that directory. App blocks carry their own root
// markers and get the same treatment. The input tree is left untouched.
func expandRoots(tree map[string]any, documentPath string) map[string]any {
	out := cloneTree(tree)
	base := filepath.Dir(documentPath)

	switch root := out["root"].(type) {
	case bool:
		if root {
			out["root"] = base
		}
	case string:
		if root != "" {
			out["root"] = absPath(root, base)
		}
	}

	if apps, ok := out["apps"].([]any); ok {
		expanded := make([]any, len(apps))
		for i, app := range apps {
			if block, ok := app.(map[string]any); ok {
				expanded[i] = expandRoots(block, documentPath)
			} else {
				expanded[i] = app
			}
		}
		out["apps"] = expanded
	}

	return out
}
