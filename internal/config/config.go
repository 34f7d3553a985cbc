package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ScheduleFile string `mapstructure:"schedule_file"`
	TavilyAPIKey string `mapstructure:"tavily_api_key"`
	HTTPTimeout  string `mapstructure:"http_timeout"`
}

// DefaultScheduleFile returns the default roster location (./data/schedule.csv).
func DefaultScheduleFile() string {
	return filepath.Join("data", "schedule.csv")
}

// Timeout parses the configured HTTP timeout.
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid http_timeout %q: %w", c.HTTPTimeout, err)
	}
	return d, nil
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("schedule_file", DefaultScheduleFile())
	v.SetDefault("tavily_api_key", "")
	v.SetDefault("http_timeout", "15s")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "crewctl"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: CREWCTL_SCHEDULE_FILE, CREWCTL_TAVILY_API_KEY, etc.
	v.SetEnvPrefix("CREWCTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
