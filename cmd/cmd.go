// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/conlog"
	"github.com/matt-FFFFFF/conlog/cmd/demo"
	"github.com/matt-FFFFFF/conlog/cmd/swatch"
	"github.com/matt-FFFFFF/conlog/cmd/term"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		demo.DemoCmd,
		swatch.SwatchCmd,
		term.TermCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "conlog",
	Description: `Conlog makes plain log output appear in color on consoles that need
ANSI interpretation switched on explicitly (the Windows console host, ConEmu).
It enables virtual terminal processing at startup, installs a colorizing
handler on the default logger, and exposes the ConEmu OSC operations for
window title, tab label, alerts and taskbar progress.`,
	Usage:     "conlog demo --level debug",
	Version:   conlog.Version,
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
