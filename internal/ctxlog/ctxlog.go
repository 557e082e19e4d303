// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/conlog/internal/console"
)

// DefaultLoggerName is the name the default logger is created under and
// rendered with via the {name} line format token.
const DefaultLoggerName = "conemu"

// LevelCritical is one step above slog.LevelError, matching the CRITICAL
// severity of classic leveled logging frameworks.
const LevelCritical = slog.LevelError + 4

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown log level")

type loggerKey struct{}

// LevelVar holds the process log level. It is shared by the default
// loggers and by every handler built through Install.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is a colorized console logger named "conemu". It is used
// when no logger is found in the context.
var DefaultLogger = slog.New(NewColorHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithName(DefaultLoggerName),
	WithAutoColor(),
	WithDestinationWriter(os.Stdout),
))

// JSONLogger writes structured JSON instead of colorized lines, for
// non-terminal sinks.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	// Best-effort console mode toggle before anything is logged. Failure
	// means uncolored output, nothing more.
	console.Enable()

	LevelVar.Set(logLevelFromEnv())
}

// New creates a new context with the given logger.
// If logger is nil, it uses the default logger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// Critical logs a critical message with the given context.
func Critical(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Log(ctx, LevelCritical, msg, args...)
}

// ParseLevel converts a level name into a slog.Level. It accepts the
// classic five names (WARNING and WARN are synonyms), case insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return 0, ErrUnknownLevel
	}
}

// The log level environment variable name is derived from the executable
// name: an executable called "conlog" reads CONLOG_LOG_LEVEL. Unset or
// unrecognized values default to WARN.
func logLevelFromEnv() slog.Level {
	exec, _ := os.Executable()
	exec = filepath.Base(exec)
	ext := filepath.Ext(exec)

	if ext == ".exe" {
		exec = exec[:len(exec)-len(ext)]
	}

	envName := strings.ToUpper(exec) + "_LOG_LEVEL"

	level, err := ParseLevel(os.Getenv(envName))
	if err != nil {
		return slog.LevelWarn
	}

	return level
}
