// Package config loads textstyle settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TEXTSTYLE_THEME_NAME.
const EnvPrefix = "TEXTSTYLE"

const (
	projectConfigFile = "textstyle.yaml"
	userConfigDir     = "textstyle"
	userConfigFile    = "config.yaml"
)

// Render output formats.
const (
	FormatTerminal = "terminal"
	FormatHTML     = "html"
)

// Config is the full textstyle configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Logging LoggingConfig `mapstructure:"logging"`
	Render  RenderConfig  `mapstructure:"render"`
	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// ThemeConfig selects the theme and an extra directory to load themes from.
type ThemeConfig struct {
	Name string `mapstructure:"name"`
	Dir  string `mapstructure:"dir"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format string `mapstructure:"format"`
	Width  int    `mapstructure:"width"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Name: "default",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Render: RenderConfig{
			Format: FormatTerminal,
		},
	}
}

// Load reads configuration. An explicit path must exist; otherwise the
// project file and then the user file are tried, and missing files are fine.
// Environment variables override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := path
	if file == "" {
		file = findConfigFile()
	}

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = file

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	switch strings.ToLower(c.Render.Format) {
	case "", FormatTerminal, FormatHTML:
	default:
		errs = append(errs, fmt.Errorf("render.format: unknown format %q", c.Render.Format))
	}

	if c.Render.Width < 0 {
		errs = append(errs, fmt.Errorf("render.width: must not be negative"))
	}

	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("theme.name", cfg.Theme.Name)
	v.SetDefault("theme.dir", cfg.Theme.Dir)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("render.format", cfg.Render.Format)
	v.SetDefault("render.width", cfg.Render.Width)
}

func findConfigFile() string {
	candidates := []string{projectConfigFile}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".config", userConfigDir, userConfigFile))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
