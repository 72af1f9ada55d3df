package config

import (
	"path/filepath"

	"go.uber.org/zap"
)

// expandSourcePaths fans one raw app block out into one block per directory
// matched by its source_path glob. Blocks pass through unchanged when the
// source_path is empty or names an existing directory, and when the glob
// matches nothing; validation happens at construction time, not here.
//
// Expanded blocks get the matched directory as their source_path. A block
// that explicitly set name or cache_path also gets those suffixed with the
// matched directory's basename so sibling apps cannot collide; a shared
// cache keeps its cache_path as configured.
func expandSourcePaths(block map[string]any, env Environment) []map[string]any {
	sourcePath := stringValue(block["source_path"])
	if sourcePath == "" {
		return []map[string]any{block}
	}

	root := env.rootFor(stringValue(block["root"]))
	pattern := absPath(sourcePath, root)
	if isDir(pattern) {
		return []map[string]any{block}
	}

	matches := globDirs(pattern)
	if len(matches) == 0 {
		return []map[string]any{block}
	}
	zap.S().Debugw("expanded source path glob",
		"pattern", pattern,
		"matches", len(matches))

	expanded := make([]map[string]any, 0, len(matches))
	for _, match := range matches {
		clone := cloneTree(block)
		clone["source_path"] = match

		dirName := filepath.Base(match)
		if name := stringValue(clone["name"]); name != "" {
			clone["name"] = name + "-" + dirName
		}
		if cachePath := stringValue(clone["cache_path"]); cachePath != "" && !boolValue(clone["shared_cache"]) {
			clone["cache_path"] = filepath.Join(cachePath, dirName)
		}

		expanded = append(expanded, clone)
	}
	return expanded
}
