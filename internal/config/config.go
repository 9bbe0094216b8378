package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the sector enricher application.
type Config struct {
	// Completion service access. The API key is a secret: it is never
	// logged and never written to any output.
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`
	Model         string `mapstructure:"model"`

	// Retry behavior for transient completion-service failures
	RetryCount       int           `mapstructure:"retry_count"`
	RetryWaitTime    time.Duration `mapstructure:"retry_wait_time"`
	RetryMaxWaitTime time.Duration `mapstructure:"retry_max_wait_time"`

	// Per-call timeout and the global request budget
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Workers           int           `mapstructure:"workers"`

	// Optional sector cache file; empty disables caching
	CachePath string `mapstructure:"cache_path"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from command-line flags, environment
// variables, and an optional config file, in that order of precedence.
//
// Expected environment variables:
//   - OPENAI_API_KEY (required)
//   - OPENAI_BASE_URL (optional, defaults to production)
//   - ENRICHER_MODEL (optional)
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("retry_count", 3)
	v.SetDefault("retry_wait_time", time.Second)
	v.SetDefault("retry_max_wait_time", 20*time.Second)
	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("requests_per_second", 2.0)
	v.SetDefault("workers", 4)
	v.SetDefault("cache_path", "")
	v.SetDefault("log_level", "info")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.sectorenricher")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("openai_api_key", "OPENAI_API_KEY")
	v.BindEnv("openai_base_url", "OPENAI_BASE_URL")
	v.BindEnv("model", "ENRICHER_MODEL")

	// Command-line flags take precedence over everything else
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	// Unmarshal config into struct
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	var missing []string
	if config.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return config, nil
}
