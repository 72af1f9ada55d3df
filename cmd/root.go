package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "license-guardian",
	Short: "A tool to check dependency licenses against a compliance policy",
	Long: `License Guardian resolves a per-repository compliance configuration
and enumerates each application's dependencies through pluggable source
detectors. Detected licenses are cached as per-dependency records and
checked against the configured policy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set up logger
		var level zapcore.Level
		if err := level.Set(logLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}

		var cfg zap.Config
		if logFormat == "json" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			// More human-readable time format for text logs
			cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		}

		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		zap.ReplaceGlobals(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file or directory (default searches the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
