// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package swatch

import (
	"log/slog"
	"testing"

	"github.com/matt-FFFFFF/conlog/internal/color"
	"github.com/matt-FFFFFF/conlog/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARNING"},
		{slog.LevelError, "ERROR"},
		{ctxlog.LevelCritical, "CRITICAL"},
		{slog.LevelInfo + 2, "INFO+2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.level))
		})
	}
}

func TestAnsiIndex(t *testing.T) {
	tests := []struct {
		name string
		code color.Code
		want string
	}{
		{name: "standard black", code: color.FgBlack, want: "0"},
		{name: "standard yellow", code: color.FgYellow, want: "3"},
		{name: "standard white", code: color.FgWhite, want: "7"},
		{name: "hi black", code: color.FgHiBlack, want: "8"},
		{name: "hi magenta", code: color.FgHiMagenta, want: "13"},
		{name: "out of range falls back", code: color.Bold, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansiIndex(tt.code))
		})
	}
}
