package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"consolidator/pkg/config"
	"consolidator/pkg/consolidate"
	"consolidator/pkg/logging"
	"consolidator/pkg/version"
)

// runConsolidate resolves settings (flags over config file over defaults)
// and performs one run. A missing source directory is printed to stdout and
// is not treated as a command failure.
func runConsolidate(cmd *cobra.Command, flags *rootFlags, logger *zap.Logger) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	if cfg.Log.Debug || cfg.Log.Level != "" {
		logger, err = logging.Setup(logging.Options{
			Debug:      cfg.Log.Debug,
			Level:      cfg.Log.Level,
			Console:    cfg.Log.Debug || logging.IsTerminal(os.Stderr),
			AppName:    "consolidator",
			AppVersion: version.Get().Version,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	logger.Debug("Resolved configuration",
		zap.String("src", cfg.Options.SourceDir),
		zap.String("output", cfg.Options.OutputFile),
		zap.String("config", flags.configPath))

	_, err = consolidate.Consolidate(cfg.Options, logger)

	var missing *consolidate.MissingSourceDirectoryError
	if errors.As(err, &missing) {
		fmt.Fprintln(cmd.OutOrStdout(), missing.Error())
		return nil
	}
	if err != nil {
		return fmt.Errorf("consolidation failed: %w", err)
	}
	return nil
}

func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("src") {
		cfg.Options.SourceDir = flags.src
	}
	if cmd.Flags().Changed("output") {
		cfg.Options.OutputFile = flags.output
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = flags.debug
	}
	return cfg, nil
}
