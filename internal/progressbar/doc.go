// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progressbar renders a single-line, in-place-updating progress bar
// for a known total amount of work. It is written for the diagnostic stream
// (normally stderr) so that it never interferes with data on stdout.
//
// The bar is driven by a host that processes one or more sources of known
// total size. Call Update with the running byte count of the current source,
// FileDone when a source finishes, and Done when everything is complete.
// Close is intended for defer and guarantees the terminal is left on a fresh
// line even when the caller returns early.
//
// The bar redraws only when the integer percentage changes, keeping output
// volume and flicker low. It performs no terminal detection; the caller
// decides whether to enable it. It is not safe for concurrent use: one
// goroutine must own the bar and the stream it writes to.
package progressbar
