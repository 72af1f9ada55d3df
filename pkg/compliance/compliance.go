package compliance

import (
	"fmt"
	"strings"

	"github.com/oss-compliance/license-guardian/pkg/config"
	"github.com/oss-compliance/license-guardian/pkg/sources"
)

// Status classifies the outcome of checking one dependency.
type Status string

const (
	StatusAllowed   Status = "allowed"
	StatusReviewed  Status = "reviewed"
	StatusIgnored   Status = "ignored"
	StatusViolation Status = "violation"
)

// Result is the outcome of checking one dependency against an app's policy.
type Result struct {
	App        string
	Dependency sources.Dependency
	Status     Status
	Reason     string
}

// CheckDependency evaluates one dependency against an app's compliance
// policy. The dependency's License should already carry whatever the cached
// record resolved; an undetected license override takes precedence over it.
func CheckDependency(app *config.AppConfig, dep sources.Dependency) Result {
	result := Result{App: app.Name, Dependency: dep}

	if app.IsIgnored(dep.Type, dep.Name) {
		result.Status = StatusIgnored
		return result
	}

	license := EffectiveLicense(app, dep)
	if license != "" && app.IsAllowed(license) {
		result.Status = StatusAllowed
		return result
	}

	if app.IsReviewed(dep.Type, dep.Name) {
		result.Status = StatusReviewed
		return result
	}

	result.Status = StatusViolation
	if license == "" {
		result.Reason = "license could not be determined; run the cache command or add an undetected_license_overrides entry"
	} else {
		result.Reason = fmt.Sprintf("license %s is not allowed", license)
	}
	return result
}

// EffectiveLicense resolves the license for a dependency. The license the
// dependency carries wins; an undetected_license_overrides entry only fills
// in dependencies whose license was never detected.
func EffectiveLicense(app *config.AppConfig, dep sources.Dependency) string {
	if dep.License != "" {
		return dep.License
	}
	return overrideFor(app, dep.Type, dep.Name)
}

func overrideFor(app *config.AppConfig, depType, name string) string {
	byType, ok := app.LicenseOverrides[depType].(map[string]any)
	if !ok {
		return ""
	}
	license, _ := byType[name].(string)
	return license
}

// Report aggregates check results across apps.
type Report struct {
	Results []Result
}

// Add appends one result to the report.
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
}

// Violations returns the results that failed the policy.
func (r *Report) Violations() []Result {
	var out []Result
	for _, result := range r.Results {
		if result.Status == StatusViolation {
			out = append(out, result)
		}
	}
	return out
}

// String returns a string representation of the compliance report.
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString("## 📋 License Compliance Report\n\n")

	if len(r.Results) == 0 {
		b.WriteString("No dependencies found.\n")
		return b.String()
	}

	counts := map[Status]int{}
	var appOrder []string
	byApp := map[string][]Result{}
	for _, result := range r.Results {
		counts[result.Status]++
		if _, ok := byApp[result.App]; !ok {
			appOrder = append(appOrder, result.App)
		}
		byApp[result.App] = append(byApp[result.App], result)
	}

	for _, app := range appOrder {
		b.WriteString(fmt.Sprintf("### App: `%s`\n\n", app))

		var violations []Result
		for _, result := range byApp[app] {
			if result.Status == StatusViolation {
				violations = append(violations, result)
			}
		}

		if len(violations) == 0 {
			b.WriteString("All dependencies comply with the policy.\n\n")
			continue
		}

		for _, violation := range violations {
			b.WriteString(fmt.Sprintf("- 🚨 **`%s`** (%s): %s\n",
				violation.Dependency.Name, violation.Dependency.Type, violation.Reason))
		}
		b.WriteString("\n")
	}

	b.WriteString("### Summary:\n\n")
	b.WriteString(fmt.Sprintf("- **Dependencies checked**: %d\n", len(r.Results)))
	b.WriteString(fmt.Sprintf("- **Allowed**: %d\n", counts[StatusAllowed]))
	b.WriteString(fmt.Sprintf("- **Reviewed**: %d\n", counts[StatusReviewed]))
	b.WriteString(fmt.Sprintf("- **Ignored**: %d\n", counts[StatusIgnored]))
	b.WriteString(fmt.Sprintf("- **Violations**: %d\n", counts[StatusViolation]))

	return b.String()
}
