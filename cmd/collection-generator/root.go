package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"collection-generator/internal/config"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "collection-generator",
	Short:         "Verify and generate constructors for resource collection structs",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to collectiongen.toml")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose pipeline logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the project configuration honoring the --config flag.
func loadConfig(args []string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	// Positional package patterns override the configured ones.
	if len(args) > 0 {
		cfg.Patterns = args
	}

	return cfg, nil
}

// newLogger builds the CLI logger. Quiet by default; --verbose enables
// human-readable debug output on stderr.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.DisableStacktrace = true

	log, err := logCfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return log
}
