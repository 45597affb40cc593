package app

import (
	"fmt"

	"github.com/vk/tdbload/internal/model"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Run model.RunConfig

	SettingsPaths []string // hcl files or directories, optional

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy the caller cannot alias.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.Run.Validate(); err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, &model.ConfigurationError{Message: fmt.Sprintf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Run = cfg.Run.Clone()
	cfg.SettingsPaths = append([]string(nil), cfg.SettingsPaths...)
	return &cfg, nil
}
