package common

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields represents structured logging fields.
type Fields map[string]any

// LogConfig controls how the global logger is built.
type LogConfig struct {
	Level  slog.Level
	Format string // "console" or "json"
	File   string // optional; when set, logs also go to a rotating file
}

// SetupLogger configures the global slog logger. Console output goes to
// stderr; when File is set the same records are written to a
// size-rotated log file as well.
func SetupLogger(cfg LogConfig) error {
	out := io.Writer(os.Stderr)
	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    20, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, rotated)
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "console", "":
		handler = slog.NewTextHandler(out, opts)
	default:
		return NewUserError("invalid log format "+cfg.Format, ErrInvalidConfig)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// LogError logs an error with additional context.
func LogError(err error, msg string, fields Fields) {
	attrs := make([]any, 0, 2*(len(fields)+1))
	attrs = append(attrs, "error", err)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	slog.Error(msg, attrs...)
}
