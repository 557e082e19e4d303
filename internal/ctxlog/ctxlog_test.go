// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		logger *slog.Logger
	}{
		{
			name:   "with custom logger",
			logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
		},
		{
			name:   "with nil logger should use default",
			logger: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New(context.Background(), tt.logger)
			logger := Logger(ctx)

			require.NotNil(t, logger)

			if tt.logger == nil {
				assert.Same(t, DefaultLogger, logger)
			} else {
				assert.Same(t, tt.logger, logger)
			}
		})
	}
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))
}

func TestContextHelpers(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewColorHandler(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	},
		WithDestinationWriter(buf),
		WithLineFormat("{level} {message}"),
	))
	ctx := New(context.Background(), logger)

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	Critical(ctx, "critical message")

	out := buf.String()
	assert.Contains(t, out, "DEBUG debug message")
	assert.Contains(t, out, "INFO info message")
	assert.Contains(t, out, "WARNING warn message")
	assert.Contains(t, out, "ERROR error message")
	assert.Contains(t, out, "CRITICAL critical message")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "Warn", want: slog.LevelWarn},
		{in: "WARNING", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "critical", want: LevelCritical},
		{in: " INFO ", want: slog.LevelInfo},
		{in: "TRACE", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelCriticalOrdering(t *testing.T) {
	assert.Greater(t, LevelCritical, slog.LevelError)
}
