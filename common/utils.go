package common

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	logconfig "github.com/nmeilick/fileproc/config/log"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05.000"

// ExitWithError prints an error message and exits
func ExitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// IsTTY checks if the given file is a TTY
func IsTTY(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// LogLevel determines the log level. The debug and verbose flags take
// precedence over the configured level; without either the logger stays quiet.
func LogLevel(c *cli.Context, cfg *logconfig.LogConfig) zerolog.Level {
	switch {
	case c.Bool("debug"):
		return zerolog.DebugLevel
	case c.Bool("verbose"):
		return zerolog.InfoLevel
	}

	if cfg != nil && cfg.Level != "" {
		if level, err := zerolog.ParseLevel(cfg.Level); err == nil {
			return level
		}
	}
	return zerolog.FatalLevel
}

// NewLogger creates a new zerolog logger with appropriate settings.
// It configures colorful output when stderr is a TTY, adds a rotated log
// file when one is configured and tags every entry with a run ID.
// The returned function closes the log file, if any.
func NewLogger(c *cli.Context, cfg *logconfig.LogConfig) (zerolog.Logger, func() error) {
	// Set time format with millisecond precision
	zerolog.TimeFieldFormat = timeFormat

	// Set global time function to use UTC
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	// Create console writer with colors if stderr is a TTY
	var consoleWriter io.Writer
	if IsTTY(os.Stderr) {
		consoleWriter = zerolog.ConsoleWriter{
			Out:        colorable.NewColorableStderr(),
			TimeFormat: timeFormat,
			NoColor:    false,
		}
	} else {
		consoleWriter = os.Stderr
	}

	closer := func() error { return nil }
	out := consoleWriter

	if cfg != nil && cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out = zerolog.MultiLevelWriter(consoleWriter, file)
		closer = file.Close
	}

	logger := zerolog.New(out).
		Level(LogLevel(c, cfg)).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()

	return logger, closer
}
