package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAppConfigOptionPrecedence(t *testing.T) {
	inherited := map[string]any{
		"allowed":    []any{"mit"},
		"cache_path": "licenses",
		"sources":    map[string]any{"go": true},
	}
	options := map[string]any{
		"name":        "api",
		"source_path": "cmd/api",
		"allowed":     []any{"apache-2.0"},
	}

	app, err := NewAppConfig(options, inherited, testEnv("/work"))
	require.NoError(t, err)

	require.Equal(t, "api", app.Name)
	// Merging is shallow: the app's allowed list replaces the inherited one.
	require.Equal(t, []string{"apache-2.0"}, app.Allowed)
	require.True(t, app.SourceEnabled("go"))
	require.Equal(t, filepath.Join("licenses", "api"), app.CachePath)
}

func TestNewAppConfigMissingSourcePath(t *testing.T) {
	_, err := NewAppConfig(map[string]any{"name": "api"}, nil, testEnv("/work"))

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "api", missing.App)
	require.Equal(t, "source_path", missing.Field)
	require.Contains(t, err.Error(), "api")
}

func TestNewAppConfigDefaults(t *testing.T) {
	app, err := NewAppConfig(map[string]any{"source_path": "services/payments"}, nil, testEnv("/work"))
	require.NoError(t, err)

	require.Equal(t, "payments", app.Name)
	require.Equal(t, "/work", app.Root)
	require.Equal(t, filepath.Join(".licenses", "payments"), app.CachePath)
	require.Empty(t, app.Sources)
	require.Empty(t, app.Reviewed)
	require.Empty(t, app.Ignored)
	require.NotNil(t, app.Allowed)
	require.Empty(t, app.Allowed)
	require.False(t, app.SharedCache)
}

func TestRootPrecedence(t *testing.T) {
	envWithRepo := Environment{
		WorkingDir:     "/work/nested",
		RepositoryRoot: func(string) string { return "/work" },
	}

	app, err := NewAppConfig(map[string]any{"source_path": "x", "root": "/explicit"}, nil, envWithRepo)
	require.NoError(t, err)
	require.Equal(t, "/explicit", app.Root)

	app, err = NewAppConfig(map[string]any{"source_path": "x"}, nil, envWithRepo)
	require.NoError(t, err)
	require.Equal(t, "/work", app.Root)

	app, err = NewAppConfig(map[string]any{"source_path": "x"}, nil, testEnv("/work/nested"))
	require.NoError(t, err)
	require.Equal(t, "/work/nested", app.Root)
}

func TestDetectCachePathExplicitWins(t *testing.T) {
	options := map[string]any{"source_path": "a", "cache_path": "custom/cache"}
	inherited := map[string]any{"cache_path": "shared", "shared_cache": true}

	app, err := NewAppConfig(options, inherited, testEnv("/work"))
	require.NoError(t, err)
	require.Equal(t, "custom/cache", app.CachePath)
}

func TestDetectCachePathSharedInherited(t *testing.T) {
	options := map[string]any{"source_path": "a"}
	inherited := map[string]any{"cache_path": "shared", "shared_cache": true}

	app, err := NewAppConfig(options, inherited, testEnv("/work"))
	require.NoError(t, err)
	require.Equal(t, "shared", app.CachePath)
}

func TestDetectCachePathInheritedPerApp(t *testing.T) {
	options := map[string]any{"source_path": "a"}
	inherited := map[string]any{"cache_path": "licenses"}

	app, err := NewAppConfig(options, inherited, testEnv("/work"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join("licenses", "a"), app.CachePath)
}

func TestSourceEnabledDefaultsOn(t *testing.T) {
	app := &AppConfig{Sources: map[string]bool{}}

	require.True(t, app.SourceEnabled("go"))
	require.True(t, app.SourceEnabled("npm"))
}

func TestSourceEnabledExplicitTrueDisablesRest(t *testing.T) {
	app := &AppConfig{Sources: map[string]bool{"go": true}}

	require.True(t, app.SourceEnabled("go"))
	require.False(t, app.SourceEnabled("npm"))
}

func TestSourceEnabledOnlyFalseKeepsRestOn(t *testing.T) {
	app := &AppConfig{Sources: map[string]bool{"npm": false}}

	require.False(t, app.SourceEnabled("npm"))
	require.True(t, app.SourceEnabled("go"))
}

func TestIsReviewedGlobMatching(t *testing.T) {
	app := &AppConfig{Reviewed: map[string][]string{
		"go": {"github.com/vendor/*", "lodash*"},
	}}

	require.True(t, app.IsReviewed("go", "github.com/vendor/tool"))
	require.True(t, app.IsReviewed("go", "github.com/Vendor/Tool"))
	require.False(t, app.IsReviewed("go", "github.com/vendor/tool/sub"))
	require.True(t, app.IsReviewed("go", "Lodash-core"))
	require.False(t, app.IsReviewed("npm", "lodash"))
}

func TestIsIgnoredDoublestar(t *testing.T) {
	app := &AppConfig{Ignored: map[string][]string{
		"go": {"github.com/internal/**"},
	}}

	require.True(t, app.IsIgnored("go", "github.com/internal/tool/sub"))
	require.False(t, app.IsIgnored("go", "github.com/public/tool"))
}

func TestIsAllowedExactMatch(t *testing.T) {
	app := &AppConfig{Allowed: []string{"mit", "apache-2.0"}}

	require.True(t, app.IsAllowed("mit"))
	require.False(t, app.IsAllowed("MIT"))
	require.False(t, app.IsAllowed("gpl-3.0"))
}

func TestReviewIgnoreAllowAppend(t *testing.T) {
	app, err := NewAppConfig(map[string]any{"source_path": "a"}, nil, testEnv("/work"))
	require.NoError(t, err)

	require.False(t, app.IsReviewed("go", "pkg"))
	app.Review("go", "pkg")
	require.True(t, app.IsReviewed("go", "pkg"))

	app.Ignore("go", "github.com/x/*")
	require.True(t, app.IsIgnored("go", "github.com/x/y"))

	app.Allow("mit")
	require.True(t, app.IsAllowed("mit"))

	// Entries append without dedup.
	app.Allow("mit")
	require.Equal(t, []string{"mit", "mit"}, app.Allowed)
}

func TestSourceDirAndCacheDir(t *testing.T) {
	app := &AppConfig{Root: "/work", SourcePath: "svc", CachePath: ".licenses/svc"}

	require.Equal(t, filepath.Join("/work", "svc"), app.SourceDir())
	require.Equal(t, filepath.Join("/work", ".licenses", "svc"), app.CacheDir())
}

func TestSourceDirAbsolutePathWins(t *testing.T) {
	app := &AppConfig{Root: "/work", SourcePath: "/elsewhere/svc", CachePath: "/var/cache"}

	require.Equal(t, "/elsewhere/svc", app.SourceDir())
	require.Equal(t, "/var/cache", app.CacheDir())
}

func TestAppConfigResolutionIdempotent(t *testing.T) {
	inherited := map[string]any{"allowed": []any{"mit"}, "cache_path": "licenses"}
	options := map[string]any{
		"source_path": "svc",
		"reviewed":    map[string]any{"go": []any{"pkg*"}},
	}

	app, err := NewAppConfig(options, inherited, testEnv("/work"))
	require.NoError(t, err)

	again, err := NewAppConfig(app.Options(), inherited, testEnv("/work"))
	require.NoError(t, err)

	require.Equal(t, app.Root, again.Root)
	require.Equal(t, app.Name, again.Name)
	require.Equal(t, app.CachePath, again.CachePath)
	require.Equal(t, app.SourceDir(), again.SourceDir())
	require.Equal(t, app.Allowed, again.Allowed)
	require.Equal(t, app.Reviewed, again.Reviewed)
}

func TestExtraOptionsPassThrough(t *testing.T) {
	options := map[string]any{
		"source_path": "svc",
		"version":     2,
		"undetected_license_overrides": map[string]any{
			"go": map[string]any{"github.com/x/y": "mit"},
		},
	}

	app, err := NewAppConfig(options, nil, testEnv("/work"))
	require.NoError(t, err)

	require.Equal(t, 2, app.Extra["version"])
	require.Contains(t, app.LicenseOverrides, "go")
	require.Equal(t, 2, app.Options()["version"])
}
