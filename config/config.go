package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// EPIC endpoints
	APIURL     string `mapstructure:"api-url"`
	ArchiveURL string `mapstructure:"archive-url"`

	// Latest selects which element of the metadata array is the most
	// recent capture: "last" for the full-day endpoint, "first" for the
	// variant that returns only the latest entry.
	Latest string `mapstructure:"latest"`

	// OutputDir is where the wallpaper file is written. Empty means
	// <home>/Pictures/SatelliteWallpaper.
	OutputDir string `mapstructure:"output-dir"`

	// Timeout bounds every HTTP call (connect + read).
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from defaults, environment, and an optional
// config file.
func Load() (*Config, error) {
	viper.SetDefault("api-url", "https://epic.gsfc.nasa.gov/api/natural")
	viper.SetDefault("archive-url", "https://epic.gsfc.nasa.gov/archive/natural")
	viper.SetDefault("latest", "last")
	viper.SetDefault("output-dir", "")
	viper.SetDefault("timeout", 30*time.Second)

	// Environment variables (TERRA_API_URL, etc.)
	viper.SetEnvPrefix(strings.ToUpper(AppName))
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Config file (optional)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/" + LogSubDir)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration for errors.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api-url cannot be empty")
	}
	if c.ArchiveURL == "" {
		return fmt.Errorf("archive-url cannot be empty")
	}
	if c.Latest != "first" && c.Latest != "last" {
		return fmt.Errorf("latest must be \"first\" or \"last\", got %q", c.Latest)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// ResolveOutputDir returns the configured output directory, defaulting to
// <home>/Pictures/SatelliteWallpaper when unset.
func (c *Config) ResolveOutputDir() (string, error) {
	if c.OutputDir != "" {
		return c.OutputDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, "Pictures", "SatelliteWallpaper"), nil
}
