package log

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Default configuration constants
const (
	DefaultLogMaxSize    = 10 // MB
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28 // days
)

// LogConfig defines configuration for logging
type LogConfig struct {
	// Level is the minimum level written when no verbosity flag is given
	Level string `hcl:"level,optional"`

	// File is an optional path that receives a copy of all log entries
	File string `hcl:"file,optional"`

	// MaxSize is the maximum size of the log file in megabytes before rotation
	MaxSize int `hcl:"max_size,optional"`

	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int `hcl:"max_backups,optional"`

	// MaxAge is the maximum number of days to retain old log files
	MaxAge int `hcl:"max_age,optional"`

	// Compress determines if rotated log files should be compressed
	Compress bool `hcl:"compress,optional"`
}

// DefaultConfig returns a new LogConfig with default values
func DefaultConfig() *LogConfig {
	return &LogConfig{
		MaxSize:    DefaultLogMaxSize,
		MaxBackups: DefaultLogMaxBackups,
		MaxAge:     DefaultLogMaxAge,
	}
}

// Normalize sets default values for vital settings that haven't been set
func (cfg *LogConfig) Normalize() error {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultLogMaxSize
	}
	if cfg.MaxBackups < 0 {
		cfg.MaxBackups = DefaultLogMaxBackups
	}
	if cfg.MaxAge < 0 {
		cfg.MaxAge = DefaultLogMaxAge
	}
	return cfg.Validate()
}

// Validate checks the log configuration for errors
func (cfg *LogConfig) Validate() error {
	if cfg.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Level); err != nil {
			return fmt.Errorf("invalid log level %q", cfg.Level)
		}
	}
	return nil
}
