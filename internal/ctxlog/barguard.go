// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"fmt"
	"log/slog"
)

// Remover erases an in-place progress display from the terminal.
// *progressbar.Bar implements it.
type Remover interface {
	Remove() error
}

// BarGuardHandler is a slog.Handler decorator that erases the progress bar
// before delegating each record to the inner handler. Without it, a log
// line emitted while the bar is visible would print over the bar and leave
// its remainder trailing on the same line.
type BarGuardHandler struct {
	handler slog.Handler
	remover Remover
}

// WithBarGuard wraps handler so that remover.Remove is called before every
// record is emitted.
func WithBarGuard(handler slog.Handler, remover Remover) *BarGuardHandler {
	return &BarGuardHandler{
		handler: handler,
		remover: remover,
	}
}

// Enabled checks if the inner handler is enabled for the given level.
func (g *BarGuardHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return g.handler.Enabled(ctx, level)
}

// Handle erases the bar and then delegates to the inner handler.
func (g *BarGuardHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := g.remover.Remove(); err != nil {
		return fmt.Errorf("error when removing progress bar before logging: %w", err)
	}

	if err := g.handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	return nil
}

// WithAttrs creates a new handler with the given attributes.
func (g *BarGuardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &BarGuardHandler{handler: g.handler.WithAttrs(attrs), remover: g.remover}
}

// WithGroup creates a new handler with the given group name.
func (g *BarGuardHandler) WithGroup(name string) slog.Handler {
	return &BarGuardHandler{handler: g.handler.WithGroup(name), remover: g.remover}
}
