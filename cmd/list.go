package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the dependencies detected for each application",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	for _, app := range cfg.Apps {
		fmt.Printf("%s:\n", app.Name)

		for _, source := range appSources(app) {
			deps, err := source.Dependencies()
			if err != nil {
				return fmt.Errorf("failed to enumerate %s dependencies for %s: %w", source.Type(), app.Name, err)
			}
			zap.S().Infow("dependencies detected",
				"app", app.Name,
				"source", source.Type(),
				"count", len(deps))

			for _, dep := range deps {
				fmt.Printf("  %s %s %s\n", dep.Type, dep.Name, dep.Version)
			}
		}
	}

	return nil
}
