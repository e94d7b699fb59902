// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the pipebar command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/pipebar"
	"github.com/matt-FFFFFF/pipebar/cmd/pipebar/copy"
	"github.com/matt-FFFFFF/pipebar/internal/ctxlog"
	"github.com/matt-FFFFFF/pipebar/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		copy.CopyCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "pipebar",
	Description: `Pipebar copies data from files or stdin to stdout while rendering a
single-line progress bar on stderr. The bar never touches stdout, so output
can be piped or redirected freely. It is enabled only when stderr is a
terminal unless forced on or off with flags.`,
	Usage:     "pipebar copy bigfile.bin > /mnt/backup/bigfile.bin",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", pipebar.Version, pipebar.Commit)

	err := rootCmd.Run(ctx, os.Args)

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("copy terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
