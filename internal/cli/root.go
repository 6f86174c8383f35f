// Package cli implements the textstyle command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/textstyle/internal/config"
	"github.com/opencode-ai/textstyle/internal/logging"
	"github.com/opencode-ai/textstyle/internal/theme"
)

var (
	cfgFile        string
	themeName      string
	logLevel       string
	jsonOutput     bool
	jsonlOutput    bool
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "textstyle",
	Short: "Resolve and render typography props",
	Long: `textstyle turns typography props (size, weight, alignment, decoration,
transform, line height) into a concrete style using a theme, and renders text
through a terminal or HTML box.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./textstyle.yaml or ~/.config/textstyle/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "theme name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never start interactive programs")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if themeName != "" {
		cfg.Theme.Name = themeName
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	}); err != nil {
		return err
	}

	appConfig = &cfg
	if cfg.File != "" {
		logger := logging.Component("cli")
		logger.Debug().Str("file", cfg.File).Msg("loaded config")
	}
	return nil
}

// GetConfig returns the loaded configuration, or nil before a command runs.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// activeTheme resolves the configured theme and attaches it to ctx.
func activeTheme(ctx context.Context) (context.Context, theme.Theme, error) {
	cfg := GetConfig()
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	projectDir, _ := os.Getwd()
	th, err := theme.Resolve(cfg.Theme.Name, cfg.Theme.Dir, projectDir)
	if err != nil {
		return ctx, theme.Theme{}, fmt.Errorf("select theme: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	return theme.WithTheme(ctx, th), th, nil
}
