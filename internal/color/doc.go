// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI escape code primitives and a process-wide
// switch that decides whether colorized output is produced at all.
// The switch checks the environment variables NO_COLOR and FORCE_COLOR and
// falls back to terminal detection on stdout via golang.org/x/term; when
// color is off, Colorize and friends return their input unchanged so
// callers never need their own guard.
// The package also provides Strip, the inverse of Colorize, which removes
// every CSI and OSC escape sequence from a string.
package color
