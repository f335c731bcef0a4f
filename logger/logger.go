// Package logger builds the slog.Logger used across gridpath: text or JSON
// records written to stdout, stderr or a size-rotated file.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Output targets.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// ErrUnknownOutput is returned for an Output outside stdout, stderr, file.
var ErrUnknownOutput = errors.New("logger: unknown output")

// Config describes the logger. File* and Max* apply to Output "file" only.
type Config struct {
	Level      string `koanf:"level" validate:"oneof=debug info warn error"`
	Format     string `koanf:"format" validate:"oneof=text json"`
	Output     string `koanf:"output" validate:"oneof=stdout stderr file"`
	FilePath   string `koanf:"file_path" validate:"required_if=Output file"`
	MaxSize    int    `koanf:"max_size" validate:"gte=0"` // MB
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAge     int    `koanf:"max_age" validate:"gte=0"` // days
	Compress   bool   `koanf:"compress"`
}

// ParseLevel maps a level name to slog.Level; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger from cfg. The returned closer releases the log file
// and is a no-op for the standard streams.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case OutputStdout:
		w = os.Stdout
	case OutputStderr, "":
		w = os.Stderr
	case OutputFile:
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOutput, cfg.Output)
	}

	return NewWithWriter(cfg, w), closer, nil
}

// NewWithWriter builds a logger writing to w, ignoring cfg.Output.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
