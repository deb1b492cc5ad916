package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath   string // .cv file, or a directory in check mode
	WorkspacePath string // optional workspace.hcl

	LogFormat string
	LogLevel  string
	CheckMode bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
