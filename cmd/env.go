package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the fully resolved configuration",
	Long: `Print every resolved application configuration as YAML, after glob
expansion and option inheritance have been applied. Useful to verify what
the other commands will operate on.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	apps := make([]map[string]any, 0, len(cfg.Apps))
	for _, app := range cfg.Apps {
		apps = append(apps, app.Options())
	}

	out, err := yaml.Marshal(map[string]any{"apps": apps})
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	fmt.Print(string(out))
	return nil
}
