package compliance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oss-compliance/license-guardian/pkg/config"
	"github.com/oss-compliance/license-guardian/pkg/sources"
)

func policyApp(t *testing.T) *config.AppConfig {
	t.Helper()

	options := map[string]any{
		"name":        "api",
		"source_path": "svc/api",
		"allowed":     []any{"mit", "apache-2.0"},
		"reviewed":    map[string]any{"go": []any{"github.com/reviewed/*"}},
		"ignored":     map[string]any{"go": []any{"github.com/internal/**"}},
		"undetected_license_overrides": map[string]any{
			"go": map[string]any{"github.com/odd/pkg": "mit"},
		},
	}
	env := config.Environment{
		WorkingDir:     "/work",
		RepositoryRoot: func(string) string { return "" },
	}

	app, err := config.NewAppConfig(options, nil, env)
	require.NoError(t, err)
	return app
}

func TestCheckDependencyAllowed(t *testing.T) {
	app := policyApp(t)
	dep := sources.Dependency{Type: "go", Name: "github.com/x/y", Version: "v1.0.0", License: "mit"}

	result := CheckDependency(app, dep)
	require.Equal(t, StatusAllowed, result.Status)
	require.Equal(t, "api", result.App)
}

func TestCheckDependencyIgnoredBeforeAnythingElse(t *testing.T) {
	app := policyApp(t)
	// Ignored wins even though the license would fail the policy.
	dep := sources.Dependency{Type: "go", Name: "github.com/internal/tool/sub", License: "gpl-3.0"}

	result := CheckDependency(app, dep)
	require.Equal(t, StatusIgnored, result.Status)
}

func TestCheckDependencyReviewed(t *testing.T) {
	app := policyApp(t)
	dep := sources.Dependency{Type: "go", Name: "github.com/reviewed/pkg", License: "gpl-3.0"}

	result := CheckDependency(app, dep)
	require.Equal(t, StatusReviewed, result.Status)
}

func TestCheckDependencyOverrideSuppliesLicense(t *testing.T) {
	app := policyApp(t)
	dep := sources.Dependency{Type: "go", Name: "github.com/odd/pkg"}

	require.Equal(t, "mit", EffectiveLicense(app, dep))
	require.Equal(t, StatusAllowed, CheckDependency(app, dep).Status)
}

func TestCheckDependencyDisallowedLicense(t *testing.T) {
	app := policyApp(t)
	dep := sources.Dependency{Type: "go", Name: "github.com/x/y", License: "gpl-3.0"}

	result := CheckDependency(app, dep)
	require.Equal(t, StatusViolation, result.Status)
	require.Contains(t, result.Reason, "gpl-3.0")
}

func TestCheckDependencyUnknownLicense(t *testing.T) {
	app := policyApp(t)
	dep := sources.Dependency{Type: "go", Name: "github.com/x/y"}

	result := CheckDependency(app, dep)
	require.Equal(t, StatusViolation, result.Status)
	require.Contains(t, result.Reason, "cache")
}

func TestReportStringAndViolations(t *testing.T) {
	app := policyApp(t)

	report := &Report{}
	report.Add(CheckDependency(app, sources.Dependency{Type: "go", Name: "github.com/x/ok", License: "mit"}))
	report.Add(CheckDependency(app, sources.Dependency{Type: "go", Name: "github.com/x/bad", License: "gpl-3.0"}))
	report.Add(CheckDependency(app, sources.Dependency{Type: "go", Name: "github.com/internal/skip"}))

	require.Len(t, report.Violations(), 1)
	require.Equal(t, "github.com/x/bad", report.Violations()[0].Dependency.Name)

	out := report.String()
	t.Logf("Compliance Report:\n%s", out)

	require.Contains(t, out, "App: `api`")
	require.Contains(t, out, "github.com/x/bad")
	require.Contains(t, out, "**Dependencies checked**: 3")
	require.Contains(t, out, "**Violations**: 1")
}

func TestReportStringEmpty(t *testing.T) {
	report := &Report{}
	require.Contains(t, report.String(), "No dependencies found")
}
