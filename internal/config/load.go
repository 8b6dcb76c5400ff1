package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file and environment
// variables. Environment variables (FLASHFORGE_ prefix, e.g.
// FLASHFORGE_SERVER_PORT) take precedence over values from the config
// file, which takes precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("storage.path", "flashforge.db")
	v.SetDefault("review.daily_goal", 20)
	v.SetDefault("review.timezone", "Local")

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing config file is fine; defaults and env vars apply.
	}

	// Environment overrides: FLASHFORGE_SERVER_PORT etc.
	v.SetEnvPrefix("FLASHFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Fail startup on a bad timezone rather than at the first review.
	if _, err := cfg.Review.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location resolves the configured timezone name.
func (c ReviewConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid review timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
