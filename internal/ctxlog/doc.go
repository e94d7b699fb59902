// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-based logger built on the slog package.
// All log output goes to stderr because stdout carries the copied data.
// The log level is set from an environment variable derived from the
// executable name, e.g. "PIPEBAR_LOG_LEVEL" for an executable named
// "pipebar". Valid values are "DEBUG", "INFO", "WARN" and "ERROR"; anything
// else defaults to "WARN".
//
// Because the progress bar and the logger share stderr, the package also
// provides WithBarGuard, a slog.Handler decorator that erases the bar
// before each record is emitted so log lines never land on top of a
// partially drawn bar.
package ctxlog
