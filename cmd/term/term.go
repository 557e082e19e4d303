// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package term exposes the ConEmu OSC console operations as subcommands.
package term

import (
	"context"

	"github.com/matt-FFFFFF/conlog/internal/console"
	"github.com/urfave/cli/v3"
)

const (
	textArg     = "text"
	percentFlag = "percent"
	clearFlag   = "clear"
)

// TermCmd groups the console host operations.
var TermCmd = &cli.Command{
	Name:        "term",
	Description: "Send ConEmu console host operations (title, tab, alert, progress).",
	Commands: []*cli.Command{
		{
			Name:        "title",
			Description: "Set the console window title.",
			Arguments:   textArguments("TITLE"),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				console.SetTitle(cmd.StringArg(textArg))
				return nil
			},
		},
		{
			Name:        "tab",
			Description: "Set the ConEmu tab label.",
			Arguments:   textArguments("LABEL"),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				console.SetTab(cmd.StringArg(textArg))
				return nil
			},
		},
		{
			Name:        "alert",
			Description: "Show a popup message over the console window.",
			Arguments:   textArguments("MESSAGE"),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				console.Alert(cmd.StringArg(textArg))
				return nil
			},
		},
		{
			Name:        "progress",
			Description: "Update the taskbar progress indicator.",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:        percentFlag,
					Aliases:     []string{"p"},
					Usage:       "Progress percentage, 0-100",
					Value:       0,
					DefaultText: "0",
				},
				&cli.BoolFlag{
					Name:        clearFlag,
					Usage:       "Clear the progress indicator",
					Value:       false,
					DefaultText: "false",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				console.Progress(!cmd.Bool(clearFlag), int(cmd.Int(percentFlag)))
				return nil
			},
		},
	},
}

func textArguments(usage string) []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      textArg,
			UsageText: usage,
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	}
}
