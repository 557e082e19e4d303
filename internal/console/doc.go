// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package console toggles ANSI escape sequence interpretation for the
// process console and exposes the ConEmu OSC operations (window title,
// tab label, alert popup, taskbar progress).
//
// On Windows the toggle sets ENABLE_VIRTUAL_TERMINAL_PROCESSING on the
// stdout and stderr console modes; everywhere else it is a no-op because
// the terminal interprets ANSI natively. All operations are best effort
// and never return an error: coloring is cosmetic and must not break the
// host program when there is no console to talk to.
package console
