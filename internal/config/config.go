// Package config loads the toml2 CLI's own preferences: output
// format, color mode, and cache size. This is CLI ergonomics, not
// part of the TOML grammar the rest of the module implements.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the toml2 CLI's preferences.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// OutputConfig controls how CLI subcommands render their results.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
	Color  bool   `mapstructure:"color"`
}

// CacheConfig controls the in-process parse cache.
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Size    int  `mapstructure:"size"`
}

// Load reads .toml2.yml/.toml2.yaml from the current directory (if
// present), overlays TOML2_* environment variables, and fills in
// defaults for anything left unset.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 128)

	v.SetConfigName(".toml2")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TOML2")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
