package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oss-compliance/license-guardian/pkg/cache"
	"github.com/oss-compliance/license-guardian/pkg/compliance"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check cached dependency licenses against the compliance policy",
	Long: `Check every application's dependencies against its policy. A
dependency passes when its license is allowed or it is marked reviewed;
ignored dependencies are skipped. Anything else is a violation and fails
the command.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	report := &compliance.Report{}
	for _, app := range cfg.Apps {
		for _, source := range appSources(app) {
			deps, err := source.Dependencies()
			if err != nil {
				return fmt.Errorf("failed to enumerate %s dependencies for %s: %w", source.Type(), app.Name, err)
			}

			for _, dep := range deps {
				record, err := cache.Read(cache.PathFor(app.CacheDir(), dep.Type, dep.Name))
				if err == nil && record.License != "" {
					dep.License = record.License
				}
				report.Add(compliance.CheckDependency(app, dep))
			}
		}
	}

	fmt.Println(report)

	if violations := report.Violations(); len(violations) > 0 {
		zap.S().Warnw("compliance check failed", "violations", len(violations))
		return fmt.Errorf("%d dependencies need review", len(violations))
	}
	return nil
}
