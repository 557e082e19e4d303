// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package swatch renders the severity-to-color table.
package swatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/conlog/internal/color"
	"github.com/matt-FFFFFF/conlog/internal/ctxlog"
	"github.com/matt-FFFFFF/conlog/internal/theme"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const themeFlag = "theme"

// SwatchCmd prints one styled row per severity showing its mapped color.
var SwatchCmd = &cli.Command{
	Name:        "swatch",
	Description: "Show the severity-to-color mapping, rendered in each color.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      themeFlag,
			Usage:     "Path to a YAML theme file overriding severity colors",
			TakesFile: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	colors := ctxlog.DefaultLevelColors

	if themePath := cmd.String(themeFlag); themePath != "" {
		th, err := theme.Load(afero.NewOsFs(), themePath)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		colors = th.LevelColors()
	}

	levels := make([]slog.Level, 0, len(colors))
	for level := range colors {
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	label := lipgloss.NewStyle().Bold(true).Width(10) //nolint:mnd

	for _, level := range levels {
		code := colors[level]
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			label.Foreground(lipgloss.Color(ansiIndex(code))).Render(Label(level)),
			fmt.Sprintf("ESC[%dm", code),
		)

		fmt.Fprintln(cmd.Root().Writer, row)
	}

	return nil
}

// Label spells a severity the way the log lines do.
func Label(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case ctxlog.LevelCritical:
		return "CRITICAL"
	default:
		return level.String()
	}
}

// ansiIndex converts an SGR foreground code to the 0-15 palette index
// lipgloss expects.
func ansiIndex(code color.Code) string {
	switch {
	case code >= color.FgBlack && code <= color.FgWhite:
		return strconv.Itoa(int(code - color.FgBlack))
	case code >= color.FgHiBlack && code <= color.FgHiWhite:
		return strconv.Itoa(int(code-color.FgHiBlack) + 8)
	default:
		return "7"
	}
}
