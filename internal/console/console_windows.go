// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// Modes captured by the first successful enable so Disable can restore
// them. Zero means "not captured".
var (
	savedStdoutMode uint32
	savedStderrMode uint32
)

func enableVirtualTerminal() Status {
	okOut := setVirtualTerminal(os.Stdout.Fd(), &savedStdoutMode)
	okErr := setVirtualTerminal(os.Stderr.Fd(), &savedStderrMode)

	if !okOut && !okErr {
		return StatusFailed
	}

	return StatusEnabled
}

func disableVirtualTerminal() Status {
	okOut := restoreMode(os.Stdout.Fd(), savedStdoutMode)
	okErr := restoreMode(os.Stderr.Fd(), savedStderrMode)

	if !okOut && !okErr {
		return StatusFailed
	}

	return StatusEnabled
}

// setVirtualTerminal ORs ENABLE_VIRTUAL_TERMINAL_PROCESSING into the
// console mode for fd, leaving all other bits untouched. The prior mode is
// stored in saved on first success.
func setVirtualTerminal(fd uintptr, saved *uint32) bool {
	handle := windows.Handle(fd)

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	if *saved == 0 {
		*saved = mode
	}

	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return false
	}

	return true
}

func restoreMode(fd uintptr, saved uint32) bool {
	if saved == 0 {
		// Enable never succeeded for this fd; clear the flag from the
		// current mode instead.
		handle := windows.Handle(fd)

		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			return false
		}

		return windows.SetConsoleMode(handle, mode&^windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
	}

	return windows.SetConsoleMode(windows.Handle(fd), saved) == nil
}
