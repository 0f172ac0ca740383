package types

import (
	"errors"
	"strings"
)

// DefaultDBFileName is the database file used when no path is configured.
const DefaultDBFileName = "ActividadFisica.db"

// Config holds the settings loaded from config.yaml, the environment, and
// command-line flags.
type Config struct {
	DBPath      string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`
	LogLevel    string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFile     string `json:"log_file,omitempty" yaml:"log_file,omitempty" mapstructure:"log_file"`
	LogJSON     bool   `json:"log_json" yaml:"log_json" mapstructure:"log_json"`
	ClearScreen bool   `json:"clear_screen" yaml:"clear_screen" mapstructure:"clear_screen"`
}

// Config validation errors.
var (
	ErrDBPathEmpty     = errors.New("db path must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels Validate accepts. Empty means the default.
var knownLogLevels = map[string]bool{
	"":      true,
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return ErrDBPathEmpty
	}
	if !knownLogLevels[strings.ToLower(c.LogLevel)] {
		return ErrLogLevelUnknown
	}
	return nil
}
