// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo emits one log line per severity through the installed
// color handler, so the active palette can be inspected at a glance.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/matt-FFFFFF/conlog/internal/console"
	"github.com/matt-FFFFFF/conlog/internal/ctxlog"
	"github.com/matt-FFFFFF/conlog/internal/theme"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	levelFlag      = "level"
	themeFlag      = "theme"
	lineFormatFlag = "line-format"
	jsonFlag       = "json"
	delayFlag      = "delay"
)

// DemoCmd logs a message at each of the five severities.
var DemoCmd = &cli.Command{
	Name:        "demo",
	Description: "Log one message per severity to show the active colors.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        levelFlag,
			Aliases:     []string{"l"},
			Usage:       "Minimum severity to emit (debug, info, warning, error, critical)",
			Value:       "debug",
			DefaultText: "debug",
		},
		&cli.StringFlag{
			Name:      themeFlag,
			Usage:     "Path to a YAML theme file overriding severity colors",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  lineFormatFlag,
			Usage: "Line template, e.g. \"{level}: {message}\"",
		},
		&cli.BoolFlag{
			Name:        jsonFlag,
			Usage:       "Emit JSON instead of colorized lines",
			Value:       false,
			DefaultText: "false",
		},
		&cli.DurationFlag{
			Name:        delayFlag,
			Usage:       "Pause between lines, with taskbar progress reported to the console",
			Value:       0,
			DefaultText: "0s",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	err := installLogger(
		cmd.String(levelFlag),
		cmd.String(themeFlag),
		cmd.String(lineFormatFlag),
		cmd.Bool(jsonFlag),
	)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	console.SetTitle("conlog demo")

	defer console.Progress(false, 0)

	delay := cmd.Duration(delayFlag)

	steps := []func(){
		func() { slog.Debug("Color log debug") },
		func() { slog.Info("Color log info") },
		func() { slog.Warn("Color log warning") },
		func() { slog.Error("Color log error") },
		func() { slog.Log(ctx, ctxlog.LevelCritical, "Color log critical") },
	}

	for i, step := range steps {
		if ctx.Err() != nil {
			return nil
		}

		console.Progress(true, (i+1)*100/len(steps))
		step()

		if delay > 0 && i < len(steps)-1 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(delay):
			}
		}
	}

	return nil
}

// installLogger configures the process default logger from the flag
// values: JSON output wins, otherwise a color handler is installed with
// the theme and line format applied.
func installLogger(levelName, themePath, lineFormat string, jsonOut bool) error {
	level, err := ctxlog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, levelName)
	}

	ctxlog.LevelVar.Set(level)

	if jsonOut {
		slog.SetDefault(ctxlog.JSONLogger)
		return nil
	}

	opts := []ctxlog.Option{}

	if themePath != "" {
		th, err := theme.Load(afero.NewOsFs(), themePath)
		if err != nil {
			return err
		}

		opts = append(opts, ctxlog.WithLevelColors(th.LevelColors()))
	}

	if lineFormat != "" {
		opts = append(opts, ctxlog.WithLineFormat(lineFormat))
	}

	ctxlog.Install(opts...)

	return nil
}
