package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FilePath string // configuration file to explain

	LogFormat string
	LogLevel  string
}

// NewConfig validates the raw configuration and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("FilePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
