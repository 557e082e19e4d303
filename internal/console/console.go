// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package console

// Status is the internal outcome of a console mode toggle. The public
// functions never return it: colorization is cosmetic and a failed toggle
// must not disturb the host program. It is recorded so tests can observe
// what happened.
type Status int

const (
	// StatusEnabled means the virtual terminal processing flag was set.
	StatusEnabled Status = iota
	// StatusNotApplicable means the platform interprets ANSI sequences
	// natively and no toggle is needed.
	StatusNotApplicable
	// StatusFailed means the console mode could not be queried or set,
	// e.g. output is not attached to a console.
	StatusFailed
)

// String implements fmt.Stringer for Status.
func (s Status) String() string {
	switch s {
	case StatusEnabled:
		return "enabled"
	case StatusNotApplicable:
		return "not applicable"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var lastStatus = StatusNotApplicable

// Enable turns on ANSI escape sequence interpretation for the process
// console where the platform requires an explicit opt-in. It never fails:
// any error querying or setting the console mode is swallowed and the
// program continues with uncolored output.
func Enable() {
	lastStatus = enableVirtualTerminal()
}

// Disable restores the console mode captured by the first successful
// Enable. It is a no-op on platforms where Enable is a no-op and swallows
// errors the same way.
func Disable() {
	lastStatus = disableVirtualTerminal()
}

// LastStatus reports the outcome of the most recent Enable or Disable
// call. Exposed for tests; callers must not branch on it.
func LastStatus() Status {
	return lastStatus
}
