// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/pipebar/internal/ctxlog"
)

// Watch monitors the signal channel and cancels the context on the first
// signal received. It returns when the channel is closed or a signal
// arrived.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	sig, ok := <-sigCh
	if !ok {
		return
	}

	ctxlog.Info(ctx, "signalbroker", "detail", "received signal, stopping copy", "signal", sig.String())
	cancel()
}
