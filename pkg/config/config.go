package config

import (
	"fmt"

	"go.uber.org/zap"
)

// Configuration is the resolved set of application configurations for one
// invocation of the tool.
type Configuration struct {
	// Apps holds one entry per resolved application, in document order
	// with glob-expanded apps in match order.
	Apps []*AppConfig
}

// Load resolves the configuration at path using the process environment.
// path may name a configuration file, a directory holding one of the
// default filenames, or a nonexistent file for zero-configuration runs.
func Load(path string) (*Configuration, error) {
	return LoadWithEnvironment(path, DefaultEnvironment())
}

// LoadWithEnvironment is Load with an explicit resolution environment.
func LoadWithEnvironment(path string, env Environment) (*Configuration, error) {
	resolved := absPath(path, env.WorkingDir)

	if isDir(resolved) {
		found, err := FindConfig(resolved)
		if err != nil {
			return nil, err
		}
		resolved = found
	}

	tree, err := ParseFile(resolved)
	if err != nil {
		return nil, err
	}

	return New(tree, env)
}

// New builds a Configuration from a parsed tree whose root markers are
// already expanded. Each apps block becomes one or more AppConfigs and the
// remaining top-level options are inherited by every app. Without an apps
// block the tree itself describes a single app rooted at the working
// directory.
func New(tree map[string]any, env Environment) (*Configuration, error) {
	if tree == nil {
		tree = map[string]any{}
	}

	inherited := cloneTree(tree)
	rawApps, _ := inherited["apps"].([]any)
	delete(inherited, "apps")

	blocks := make([]map[string]any, 0, len(rawApps))
	for _, raw := range rawApps {
		block, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid app configuration: expected a mapping, got %T", raw)
		}
		blocks = append(blocks, block)
	}

	if len(blocks) == 0 {
		block := map[string]any{
			"source_path": env.WorkingDir,
			"cache_path":  defaultCachePath,
		}
		for k, v := range inherited {
			block[k] = v
		}
		blocks = append(blocks, block)
	}

	apps := make([]*AppConfig, 0, len(blocks))
	for _, block := range blocks {
		for _, expanded := range expandSourcePaths(block, env) {
			app, err := NewAppConfig(expanded, inherited, env)
			if err != nil {
				return nil, err
			}
			apps = append(apps, app)
		}
	}
	zap.S().Debugw("configuration resolved", "apps", len(apps))

	return &Configuration{Apps: apps}, nil
}
