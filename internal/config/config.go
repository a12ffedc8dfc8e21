// Package config defines the service configuration and loads it from a
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all runtime configuration for the calculator
// service.
type Configuration struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Suggestion SuggestionConfig `yaml:"suggestion"`
	Redis      RedisConfig      `yaml:"redis"`
	History    HistoryConfig    `yaml:"history"`
}

// ServerConfig holds the HTTP listener parameters.
type ServerConfig struct {
	Address     string `yaml:"address"`
	MaxBodySize string `yaml:"maxBodySize"`

	maxBodyBytes int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// SuggestionConfig holds the settings for the external AI suggestion
// service. When disabled or unreachable, calculators fall back to static
// tips.
type SuggestionConfig struct {
	Enabled        bool   `yaml:"enabled"`
	URL            string `yaml:"url"`
	APIKey         string `yaml:"apiKey"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout returns the request timeout as a duration.
func (s SuggestionConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// RedisConfig holds the optional Redis history store settings. When
// disabled the service keeps history in memory.
type RedisConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Address    string `yaml:"address"`
	Password   string `yaml:"password,omitempty"`
	DB         int    `yaml:"db"`
	TTLMinutes int    `yaml:"ttlMinutes"`
}

// TTL returns the record expiry as a duration.
func (r RedisConfig) TTL() time.Duration {
	if r.TTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(r.TTLMinutes) * time.Minute
}

// HistoryConfig bounds the recent-calculation store.
type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

// LoadConfiguration loads the YAML-formatted configuration at the given
// path, layering environment variables on top. A missing file yields the
// defaults without error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.maxBodySize", fmt.Sprintf("%d", constants.DefaultMaxBodyBytes))
	v.SetDefault("suggestion.timeoutSeconds", 10)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.ttlMinutes", 60)
	v.SetDefault("history.limit", constants.DefaultHistoryLimit)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			var pathErr *fs.PathError
			if !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func (c *Configuration) normalize() error {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.History.Limit <= 0 {
		c.History.Limit = constants.DefaultHistoryLimit
	}

	bytes, err := ParseSize(c.Server.MaxBodySize)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodyBytes
	}
	c.Server.maxBodyBytes = bytes
	return nil
}

// MaxBodyBytes returns the configured request body limit in bytes.
func (c *Configuration) MaxBodyBytes() int64 {
	if c.Server.maxBodyBytes <= 0 {
		return constants.DefaultMaxBodyBytes
	}
	return c.Server.maxBodyBytes
}
