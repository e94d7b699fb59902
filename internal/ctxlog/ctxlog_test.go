// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("with custom logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))

		ctx := New(context.Background(), logger)

		Info(ctx, "hello")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("with nil logger should use default", func(t *testing.T) {
		ctx := New(context.Background(), nil)

		assert.Same(t, DefaultLogger, Logger(ctx))
	})
}

func TestLoggerWithoutContextValue(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))
}

func TestLevelHelpers(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	ctx := New(context.Background(), logger)

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

// recordingRemover counts Remove calls.
type recordingRemover struct {
	calls int
	err   error
}

func (r *recordingRemover) Remove() error {
	r.calls++
	return r.err
}

func TestWithBarGuard(t *testing.T) {
	t.Run("removes the bar before each record", func(t *testing.T) {
		buf := &bytes.Buffer{}
		remover := &recordingRemover{}

		logger := slog.New(WithBarGuard(slog.NewTextHandler(buf, nil), remover))
		ctx := New(context.Background(), logger)

		Info(ctx, "first")
		Info(ctx, "second")

		assert.Equal(t, 2, remover.calls)
		assert.Contains(t, buf.String(), "first")
		assert.Contains(t, buf.String(), "second")
	})

	t.Run("preserves attrs and groups", func(t *testing.T) {
		buf := &bytes.Buffer{}
		remover := &recordingRemover{}

		handler := WithBarGuard(slog.NewTextHandler(buf, nil), remover)
		logger := slog.New(handler).With("source", "test").WithGroup("copy")

		logger.Info("msg", "file", "a.txt")

		require.Equal(t, 1, remover.calls)
		assert.Contains(t, buf.String(), "source=test")
		assert.Contains(t, buf.String(), "copy.file=a.txt")
	})

	t.Run("does not filter levels itself", func(t *testing.T) {
		buf := &bytes.Buffer{}
		remover := &recordingRemover{}

		handler := WithBarGuard(slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}), remover)
		logger := slog.New(handler)

		logger.Info("filtered out")

		assert.Zero(t, remover.calls, "a record the inner handler rejects must not remove the bar")
		assert.Empty(t, buf.String())
	})
}
