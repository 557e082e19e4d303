// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package demo

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/conlog/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installLogger mutates the process default logger and level; restore
// both so tests stay independent.
func restoreDefaults(t *testing.T) {
	t.Helper()

	prevLogger := slog.Default()
	prevLevel := ctxlog.LevelVar.Level()

	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		ctxlog.LevelVar.Set(prevLevel)
	})
}

func TestInstallLoggerColorHandler(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, installLogger("debug", "", "", false))

	_, ok := slog.Default().Handler().(*ctxlog.ColorHandler)
	assert.True(t, ok, "must install the color handler on the default logger")
	assert.Equal(t, slog.LevelDebug, ctxlog.LevelVar.Level())
}

func TestInstallLoggerJSON(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, installLogger("info", "", "", true))
	assert.Same(t, ctxlog.JSONLogger, slog.Default())
}

func TestInstallLoggerUnknownLevel(t *testing.T) {
	restoreDefaults(t)

	err := installLogger("loud", "", "", false)
	assert.ErrorIs(t, err, ctxlog.ErrUnknownLevel)
}

func TestInstallLoggerMissingTheme(t *testing.T) {
	restoreDefaults(t)

	err := installLogger("info", "does-not-exist.yaml", "", false)
	assert.Error(t, err)
}

func TestInstallLoggerWithTheme(t *testing.T) {
	restoreDefaults(t)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("colors:\n  error: hi-red\n"), 0o644))

	assert.NoError(t, installLogger("info", themePath, "{level}: {message}", false))
}
