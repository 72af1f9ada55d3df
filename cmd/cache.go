package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oss-compliance/license-guardian/pkg/cache"
	"github.com/oss-compliance/license-guardian/pkg/compliance"
	"github.com/oss-compliance/license-guardian/pkg/github"
	"github.com/oss-compliance/license-guardian/pkg/sources"
)

var (
	forceFlag  bool
	githubFlag bool
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Write dependency license records to each application's cache",
	Long: `Enumerate every application's dependencies and store one license
record per dependency under the application's cache directory. Records whose
version already matches are left alone unless --force is given.`,
	RunE: runCache,
}

func init() {
	rootCmd.AddCommand(cacheCmd)

	cacheCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Rewrite records that already exist")
	cacheCmd.Flags().BoolVar(&githubFlag, "github", false, "Look up unknown licenses through the GitHub API (requires GITHUB_TOKEN)")
}

func runCache(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	var gh *github.Client
	if githubFlag {
		gh, err = github.NewClient()
		if err != nil {
			return fmt.Errorf("failed to create github client: %w", err)
		}
	}

	for _, app := range cfg.Apps {
		for _, source := range appSources(app) {
			deps, err := source.Dependencies()
			if err != nil {
				return fmt.Errorf("failed to enumerate %s dependencies for %s: %w", source.Type(), app.Name, err)
			}

			cached := 0
			for _, dep := range deps {
				if app.IsIgnored(dep.Type, dep.Name) {
					continue
				}

				path := cache.PathFor(app.CacheDir(), dep.Type, dep.Name)
				if existing, err := cache.Read(path); err == nil && existing.Version == dep.Version && !forceFlag {
					continue
				}

				record := cache.Record{
					Name:    dep.Name,
					Version: dep.Version,
					License: compliance.EffectiveLicense(app, dep),
				}
				if record.License == "" && gh != nil {
					record.License = lookupLicense(gh, dep)
				}

				if err := cache.Write(path, record); err != nil {
					return fmt.Errorf("failed to cache record for %s: %w", dep.Name, err)
				}
				cached++
			}

			zap.S().Infow("dependency records cached",
				"app", app.Name,
				"source", source.Type(),
				"records", cached)
		}
	}

	return nil
}

// lookupLicense asks the GitHub API for a dependency's license. Lookup
// failures only cost the record its license field, never the run.
func lookupLicense(gh *github.Client, dep sources.Dependency) string {
	owner, repo, ok := github.ParseRepo(dep.Name)
	if !ok {
		return ""
	}

	license, err := gh.RepositoryLicense(owner, repo)
	if err != nil {
		zap.S().Warnw("license lookup failed",
			"dependency", dep.Name,
			"error", err)
		return ""
	}
	return license
}
