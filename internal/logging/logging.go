// Package logging builds the application's zap logger. The TUI owns the
// terminal, so logs go to a file unless told otherwise.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// Stderr as a destination logs to standard error.
	Stderr = "-"

	// Off disables logging.
	Off = "off"
)

// DefaultPath is $XDG_STATE_HOME/showdown/showdown.log, falling back to
// ~/.local/state.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "showdown", "showdown.log"), nil
}

// New returns a logger writing JSON lines to dest at the given level. An
// empty dest means DefaultPath. Callers should Sync the logger on exit.
func New(dest, level string) (*zap.Logger, error) {
	if dest == Off {
		return zap.NewNop(), nil
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	if dest == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		dest = p
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Sampling = nil
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if dest == Stderr {
		config.OutputPaths = []string{"stderr"}
	} else {
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		config.OutputPaths = []string{dest}
	}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("showdown"), nil
}
