// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package console

// ANSI sequences are interpreted natively everywhere but Windows, so the
// mode toggle has nothing to do.

func enableVirtualTerminal() Status {
	return StatusNotApplicable
}

func disableVirtualTerminal() Status {
	return StatusNotApplicable
}
