// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"log/slog"
	"testing"

	"github.com/matt-FFFFFF/conlog/internal/color"
	"github.com/matt-FFFFFF/conlog/internal/ctxlog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, fs afero.Fs, content string) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fs, "theme.yaml", []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTheme(t, fs, `
colors:
  warning: hi-yellow
  error: hi-red
`)

	th, err := Load(fs, "theme.yaml")
	require.NoError(t, err)

	colors := th.LevelColors()
	assert.Equal(t, color.FgHiYellow, colors[slog.LevelWarn])
	assert.Equal(t, color.FgHiRed, colors[slog.LevelError])

	// Untouched severities keep their built-in colors.
	assert.Equal(t, color.FgCyan, colors[slog.LevelInfo])
	assert.Equal(t, color.FgWhite, colors[slog.LevelDebug])
	assert.Equal(t, color.FgHiMagenta, colors[ctxlog.LevelCritical])
}

func TestLoadLevelSynonyms(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTheme(t, fs, `
colors:
  warn: blue
  critical: green
`)

	th, err := Load(fs, "theme.yaml")
	require.NoError(t, err)

	colors := th.LevelColors()
	assert.Equal(t, color.FgBlue, colors[slog.LevelWarn])
	assert.Equal(t, color.FgGreen, colors[ctxlog.LevelCritical])
}

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "nope.yaml")
	assert.ErrorIs(t, err, ErrReadTheme)
}

func TestLoadInvalidYaml(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTheme(t, fs, "colors: [not, a, map]")

	_, err := Load(fs, "theme.yaml")
	assert.ErrorIs(t, err, ErrParseTheme)
}

func TestLoadReportsAllValidationErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTheme(t, fs, `
colors:
  verbose: cyan
  error: crimson
`)

	_, err := Load(fs, "theme.yaml")
	require.Error(t, err)

	assert.ErrorIs(t, err, ctxlog.ErrUnknownLevel)
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.Contains(t, err.Error(), `"verbose"`)
	assert.Contains(t, err.Error(), `"crimson"`)
}
