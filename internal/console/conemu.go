// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// ConEmu OSC 9 operations. The payload format is
// ESC ] 9 ; <op> ; <text> BEL and is interpreted by the ConEmu console
// host (and by Windows Terminal for the progress op).
const (
	oscSetTitle = 1
	oscAlert    = 2
	oscSetTab   = 3
	oscProgress = 4

	esc  = "\x1b"
	bell = "\x07"
)

// Out is the stream the OSC operations write to. Swappable for tests.
var Out io.Writer = os.Stdout

func writeOsc(op int, payload string) {
	// Best effort: a broken pipe or closed console must not surface.
	_, _ = fmt.Fprintf(Out, "%s]9;%d;%s%s", esc, op, payload, bell)
}

// SetTitle sets the console window title.
func SetTitle(title string) {
	writeOsc(oscSetTitle, title)
}

// SetTab sets the ConEmu tab label for the current console.
func SetTab(label string) {
	writeOsc(oscSetTab, label)
}

// Alert shows a popup message over the console window.
func Alert(msg string) {
	writeOsc(oscAlert, msg)
}

// Progress updates the taskbar progress indicator. percent is clamped to
// [0, 100]; active false clears the indicator.
func Progress(active bool, percent int) {
	if percent < 0 {
		percent = 0
	}

	if percent > 100 {
		percent = 100
	}

	state := "0"
	if active {
		state = "1"
	}

	writeOsc(oscProgress, state+";"+strconv.Itoa(percent))
}
