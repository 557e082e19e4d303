// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that renders colorized
// console lines, one foreground color per severity.
//
// The package enables the console's ANSI interpretation at load time
// (a no-op outside Windows) and exposes a default logger named "conemu".
// The log level is set from an environment variable derived from the
// executable name: for an executable named "conlog" it is
// CONLOG_LOG_LEVEL, accepting DEBUG, INFO, WARN, WARNING, ERROR or
// CRITICAL, defaulting to WARN.
package ctxlog
