package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nzai/drip/constants"

	"github.com/BurntSushi/toml"
)

// Config global config
type Config struct {
	Parallel      int    `toml:"parallel"`
	RetryCount    int    `toml:"retry_count"`
	RetryInterval string `toml:"retry_interval"`
	LogFile       string `toml:"log_file"`
}

// Valid validate config and fill defaults
func (s *Config) Valid() error {
	if s.Parallel <= 0 {
		s.Parallel = constants.DefaultParallel
	}

	if s.RetryCount <= 0 {
		s.RetryCount = constants.RetryCount
	}

	if strings.TrimSpace(s.RetryInterval) == "" {
		s.RetryInterval = constants.RetryInterval.String()
	}

	_, err := time.ParseDuration(s.RetryInterval)
	if err != nil {
		return fmt.Errorf("invalid retry_interval: %s", s.RetryInterval)
	}

	return nil
}

// Interval parse retry interval
func (s Config) Interval() time.Duration {
	interval, err := time.ParseDuration(s.RetryInterval)
	if err != nil {
		return constants.RetryInterval
	}

	return interval
}

var (
	currentConfig *Config
)

// Default create config with default values
func Default() *Config {
	currentConfig = new(Config)
	currentConfig.Valid()
	return currentConfig
}

// Get get current config
func Get() *Config {
	return currentConfig
}

// Parse parse config from file
func Parse(filePath string) (*Config, error) {
	currentConfig = new(Config)
	_, err := toml.DecodeFile(filePath, currentConfig)
	if err != nil {
		return nil, err
	}

	return currentConfig, currentConfig.Valid()
}
