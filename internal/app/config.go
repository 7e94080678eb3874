package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// XMLPaths are the registry documents, in command-line order. Entries
	// naming a directory expand to its .xml files.
	XMLPaths []string
	// OutDir receives the generated header and source.
	OutDir string
	// ConfigPath optionally names an HCL generator config file.
	ConfigPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.XMLPaths) == 0 {
		return nil, errors.New("at least one registry document is required")
	}
	if cfg.OutDir == "" {
		return nil, errors.New("an output directory is required")
	}
	return &cfg, nil
}
