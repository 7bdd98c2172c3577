package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type LogConfig struct {
	// Format is the log format, either 'text' or 'json'.
	Format string
	// Level is the log level: 'none', 'debug', 'info', 'warn' or 'error'.
	Level string
}

// Config holds the settings shared by every command.
type Config struct {
	Log LogConfig

	// BatchSize is the number of values printed per line by walk. 0 prints the frame walk instead.
	BatchSize int `mapstructure:"batch-size"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
	}
}

// ReadConfig merges config.yaml, environment variables and bound flags over the defaults.
func ReadConfig() (*Config, error) {
	config := DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func (c *Config) Verify() error {
	if c.BatchSize < 0 {
		return fmt.Errorf("config '%s' must be non-negative, got %d", batchSizeConf, c.BatchSize)
	}
	return nil
}
