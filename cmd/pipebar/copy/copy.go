// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package copy contains the copy command, which streams one or more files
// (or stdin) to stdout while rendering a progress bar on stderr.
package copy

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/matt-FFFFFF/pipebar/internal/countreader"
	"github.com/matt-FFFFFF/pipebar/internal/ctxlog"
	"github.com/matt-FFFFFF/pipebar/internal/progressbar"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	progressFlag = "progress"
	quietFlag    = "quiet"
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// stderrIsTerminal reports whether stderr is attached to a terminal. It is a
// variable so tests can force either outcome.
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// stdinSource is the reader used when no file arguments are given. It is a
// variable so tests can substitute stdin.
var stdinSource io.Reader = os.Stdin

// CopyCmd is the command that copies files to stdout with byte progress on stderr.
var CopyCmd = &cli.Command{
	Name:        "copy",
	Description: "Copy the named files (or stdin when no files are given) to stdout, rendering progress on stderr.",
	ArgsUsage:   "[FILE ...]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        progressFlag,
			Aliases:     []string{"P"},
			Usage:       "Show the progress bar even when stderr is not a terminal",
			DefaultText: "false",
			Value:       false,
		},
		&cli.BoolFlag{
			Name:        quietFlag,
			Aliases:     []string{"q"},
			Usage:       "Never show the progress bar",
			DefaultText: "false",
			Value:       false,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	fs := FsFactory()

	// The total size of all inputs is 100%. Stdin has no known size, so a
	// bare pipe run leaves the total at zero and the bar stays disabled.
	sizes := make([]uint64, len(files))

	var maxSize uint64

	for i, name := range files {
		fi, err := fs.Stat(name)
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to stat %s: %s", name, err.Error()), 1)
		}

		sizes[i] = uint64(fi.Size())
		maxSize += sizes[i]
	}

	enable := !cmd.Bool(quietFlag) && (cmd.Bool(progressFlag) || stderrIsTerminal())

	bar := progressbar.New(cmd.ErrWriter, maxSize, enable)
	defer bar.Close() //nolint:errcheck

	// Route any log output through the bar guard so diagnostics erase the
	// bar before printing instead of landing on top of it.
	logger := ctxlog.Logger(ctx)
	ctx = ctxlog.New(ctx, withBarGuard(logger, bar))

	if len(files) == 0 {
		return copyStream(ctx, cmd.Writer, stdinSource, "stdin", bar, 0)
	}

	for i, name := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("copy aborted: %w", err)
		}

		f, err := fs.Open(name)
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to open %s: %s", name, err.Error()), 1)
		}

		err = copyStream(ctx, cmd.Writer, f, name, bar, sizes[i])

		f.Close() //nolint:errcheck,gosec

		if err != nil {
			return err
		}
	}

	if err := bar.Done(); err != nil {
		return fmt.Errorf("failed to finalize progress bar: %w", err)
	}

	return nil
}

// withBarGuard rebuilds logger with its handler wrapped in the bar guard.
func withBarGuard(logger *slog.Logger, bar *progressbar.Bar) *slog.Logger {
	return slog.New(ctxlog.WithBarGuard(logger.Handler(), bar))
}

// copyStream copies one source to the output, feeding the running byte count
// into the bar. fileSize is the size folded into the bar's completed total
// when the source finishes; pass zero for unsized sources such as stdin.
func copyStream(ctx context.Context, w io.Writer, r io.Reader, name string, bar *progressbar.Bar, fileSize uint64) error {
	cr := countreader.New(&ctxReader{ctx: ctx, r: r}, bar.Update)

	n, err := io.Copy(w, cr)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to copy %s: %s", name, err.Error()), 1)
	}

	if err := cr.ReportErr(); err != nil {
		return fmt.Errorf("failed to render progress for %s: %w", name, err)
	}

	ctxlog.Debug(ctx, "copy", "detail", "source finished", "name", name, "bytes", n)

	if fileSize == 0 {
		return nil
	}

	if err := bar.FileDone(fileSize); err != nil {
		return fmt.Errorf("failed to render progress for %s: %w", name, err)
	}

	return nil
}

// ctxReader fails reads once the context is cancelled, so a signal stops an
// in-flight copy instead of waiting for the current source to finish.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return cr.r.Read(p) //nolint:wrapcheck
}
