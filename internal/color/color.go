// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

// Code represents an ANSI control code for text formatting.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
	BlinkSlow
	BlinkRapid
	ReverseVideo
	Concealed
	CrossedOut
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite

	// used for 256-color foreground selection.
	foreground
	// FgDefault resets the foreground to the terminal default without
	// touching any other attribute.
	FgDefault
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background text colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite

	// used for 256-color background selection.
	background
	// BgDefault resets the background to the terminal default.
	BgDefault
)

// Background Hi-Intensity text colors.
const (
	BgHiBlack Code = iota + 100
	BgHiRed
	BgHiGreen
	BgHiYellow
	BgHiBlue
	BgHiMagenta
	BgHiCyan
	BgHiWhite
)

// extended256 is the SGR sub-parameter selecting the 256-color palette.
const extended256 Code = 5

// ControlString generates a string with ANSI control codes for text formatting.
func ControlString(c ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range c {
		if i > 0 && i < len(c) {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)

	return sb.String()
}

// Fg256 returns the control string selecting palette color n as the
// foreground, per the xterm 256-color extension.
func Fg256(n uint8) string {
	return ControlString(foreground, extended256, Code(n))
}

// Bg256 returns the control string selecting palette color n as the
// background.
func Bg256(n uint8) string {
	return ControlString(background, extended256, Code(n))
}

var enabled bool

func init() {
	enabled = isColorCapable()
}

// Colorize returns a string with ANSI color codes applied.
// It appends the reset code at the end of the string to reset the color.
func Colorize(str string, colorCodes ...Code) string {
	// If color output is not enabled, return the string as is
	if !enabled {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range colorCodes {
		if i > 0 && i < len(colorCodes) {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// ColorizeNoReset returns a string with ANSI color codes applied.
// It does not append the reset code at the end of the string.
func ColorizeNoReset(str string, colorCodes ...Code) string {
	// If color output is not enabled, return the string as is
	if !enabled {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range colorCodes {
		if i > 0 && i < len(colorCodes) {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)

	return sb.String()
}

// ansiSeq matches CSI sequences (ESC [ ... final byte) and OSC sequences
// (ESC ] ... terminated by BEL or ESC \), which is what ConEmu emits and
// consumes.
var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// Strip removes all ANSI escape sequences from str, leaving only the
// printable content. Stripping the output of Colorize yields the input
// string unchanged.
func Strip(str string) string {
	return ansiSeq.ReplaceAllString(str, "")
}

// Enabled is a function that indicates whether color output is enabled.
// It is initialized in package init().
//
// It is set to true if either the NO_COLOR environment variable is not set,
// and the FORCE_COLOR environment variable is set, or if the output is a terminal.
// Terminal detection is done using the golang.org/x/term package.
//
// It is set to false if the NO_COLOR environment variable is set, or if the
// output is not a terminal.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides the detected color capability for the process.
// Used by callers that expose an explicit color on/off switch.
func SetEnabled(on bool) {
	enabled = on
}

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
