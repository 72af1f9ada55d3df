package config

import (
	"path/filepath"
)

// defaultCachePath is the cache location used when neither an app nor its
// inherited options configure one, relative to the app's root.
const defaultCachePath = ".licenses"

// knownAppKeys are the option names resolution consumes. Anything else
// passes through an app untouched via Extra.
var knownAppKeys = map[string]bool{
	"name":                         true,
	"root":                         true,
	"source_path":                  true,
	"cache_path":                   true,
	"sources":                      true,
	"reviewed":                     true,
	"ignored":                      true,
	"allowed":                      true,
	"shared_cache":                 true,
	"undetected_license_overrides": true,
}

// AppConfig is the fully resolved configuration for one application: a
// source directory to scan plus the cache location and compliance policy
// for its dependencies. It is built once from an app's raw options merged
// over the inherited top-level options and afterwards changes only through
// the append-only mutation operations.
type AppConfig struct {
	// Name identifies the app in output and per-app cache paths. Defaults
	// to the basename of SourcePath.
	Name string

	// Root is the absolute workspace root relative paths resolve against.
	Root string

	// SourcePath is the configured source directory, possibly still
	// relative to Root. SourceDir returns the resolved form.
	SourcePath string

	// CachePath is the configured record cache directory, possibly still
	// relative to Root. CacheDir returns the resolved form.
	CachePath string

	// Sources holds explicit per-source-type enablement. SourceEnabled
	// applies the defaulting rule for types not listed.
	Sources map[string]bool

	// Reviewed and Ignored map dependency types to name glob patterns.
	Reviewed map[string][]string
	Ignored  map[string][]string

	// Allowed lists license identifiers accepted without review.
	Allowed []string

	// SharedCache marks the cache directory as intentionally shared
	// between apps expanded from one block.
	SharedCache bool

	// LicenseOverrides carries undetected_license_overrides through
	// resolution untouched for downstream consumers.
	LicenseOverrides map[string]any

	// Extra carries unrecognized options through resolution untouched.
	Extra map[string]any
}

// NewAppConfig resolves one app. Per-app options take strict precedence
// over inherited options, structural fields default to empty collections,
// and the root, name and cache path derive in that order.
func NewAppConfig(options, inherited map[string]any, env Environment) (*AppConfig, error) {
	merged := make(map[string]any, len(options)+len(inherited))
	for k, v := range inherited {
		merged[k] = v
	}
	for k, v := range options {
		merged[k] = v
	}

	sourcePath := stringValue(merged["source_path"])
	if sourcePath == "" {
		return nil, &MissingFieldError{App: stringValue(merged["name"]), Field: "source_path"}
	}

	allowed := stringSlice(merged["allowed"])
	if allowed == nil {
		allowed = []string{}
	}

	app := &AppConfig{
		Name:             stringValue(merged["name"]),
		Root:             env.rootFor(stringValue(merged["root"])),
		SourcePath:       sourcePath,
		Sources:          boolMap(merged["sources"]),
		Reviewed:         patternMap(merged["reviewed"]),
		Ignored:          patternMap(merged["ignored"]),
		Allowed:          allowed,
		SharedCache:      boolValue(merged["shared_cache"]),
		LicenseOverrides: anyMap(merged["undetected_license_overrides"]),
		Extra:            map[string]any{},
	}
	if app.Name == "" {
		app.Name = filepath.Base(sourcePath)
	}
	app.CachePath = detectCachePath(options, inherited, app.Name)

	for k, v := range merged {
		if !knownAppKeys[k] {
			app.Extra[k] = v
		}
	}

	return app, nil
}

// detectCachePath picks the cache location for an app. An explicit per-app
// cache_path wins. An inherited cache_path marked shared_cache is used
// verbatim so sibling apps write into one directory. Any other inherited or
// defaulted cache path gets the app's name joined on, keeping sibling
// caches disjoint.
func detectCachePath(options, inherited map[string]any, name string) string {
	if explicit := stringValue(options["cache_path"]); explicit != "" {
		return explicit
	}

	inheritedPath := stringValue(inherited["cache_path"])
	if inheritedPath != "" && boolValue(inherited["shared_cache"]) {
		return inheritedPath
	}

	base := inheritedPath
	if base == "" {
		base = defaultCachePath
	}
	return filepath.Join(base, name)
}

// SourceDir returns the absolute source directory.
func (a *AppConfig) SourceDir() string { return joinRoot(a.Root, a.SourcePath) }

// CacheDir returns the absolute dependency record cache directory.
func (a *AppConfig) CacheDir() string { return joinRoot(a.Root, a.CachePath) }

// SourceEnabled reports whether a dependency source type should run for
// this app. With no explicit entries every type is on; the moment any type
// is explicitly enabled, unlisted types default to off.
func (a *AppConfig) SourceEnabled(sourceType string) bool {
	if enabled, ok := a.Sources[sourceType]; ok {
		return enabled
	}
	for _, enabled := range a.Sources {
		if enabled {
			return false
		}
	}
	return true
}

// IsReviewed reports whether a dependency was marked reviewed. Patterns
// match dependency names case-insensitively with path-style globs.
func (a *AppConfig) IsReviewed(depType, name string) bool {
	return matchAny(a.Reviewed[depType], name)
}

// IsIgnored reports whether a dependency is excluded from checks entirely.
func (a *AppConfig) IsIgnored(depType, name string) bool {
	return matchAny(a.Ignored[depType], name)
}

// IsAllowed reports whether a license identifier is explicitly permitted.
func (a *AppConfig) IsAllowed(license string) bool {
	for _, allowed := range a.Allowed {
		if allowed == license {
			return true
		}
	}
	return false
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matchPattern(pattern, name) {
			return true
		}
	}
	return false
}

// Review marks a dependency reviewed. Entries append as-is; duplicates are
// permitted.
func (a *AppConfig) Review(depType, name string) {
	a.Reviewed[depType] = append(a.Reviewed[depType], name)
}

// Ignore excludes a dependency from checks.
func (a *AppConfig) Ignore(depType, name string) {
	a.Ignored[depType] = append(a.Ignored[depType], name)
}

// Allow permits a license identifier.
func (a *AppConfig) Allow(license string) {
	a.Allowed = append(a.Allowed, license)
}

// Options returns the resolved configuration as a raw options map.
// Resolving it again with the same inherited options derives an identical
// root, name and cache path.
func (a *AppConfig) Options() map[string]any {
	out := cloneTree(a.Extra)
	out["name"] = a.Name
	out["root"] = a.Root
	out["source_path"] = a.SourcePath
	out["cache_path"] = a.CachePath
	out["sources"] = boolMap(a.Sources)
	out["reviewed"] = patternMap(a.Reviewed)
	out["ignored"] = patternMap(a.Ignored)
	out["allowed"] = append([]string{}, a.Allowed...)
	if a.SharedCache {
		out["shared_cache"] = true
	}
	if len(a.LicenseOverrides) > 0 {
		out["undetected_license_overrides"] = a.LicenseOverrides
	}
	return out
}
