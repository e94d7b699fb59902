// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progressbar

import (
	"fmt"
	"io"
	"strings"
)

const (
	// barWidth is the number of glyph cells in the bar body.
	barWidth = 70

	// percentSentinel is outside the displayable 0-100 range, so the first
	// render after construction or Remove never matches the previous value.
	percentSentinel = 101

	// eraseWidth covers the bar body plus the surrounding brackets and the
	// percentage suffix.
	eraseWidth = barWidth + 8
)

var (
	fillCells  = strings.Repeat("=", barWidth)
	blankCells = strings.Repeat(" ", eraseWidth)
)

// Bar is a single-line progress bar. The zero value is not usable; create
// one with New. Bar is not safe for concurrent use.
type Bar struct {
	w            io.Writer
	maxSize      uint64
	doneSize     uint64
	currentSize  uint64
	prevPercent  uint64
	enabled      bool
	needsCleanup bool
}

// New creates a progress bar writing to w. maxSize is the amount of work
// equivalent to 100%. Set enable to false to disable all output, for
// instance when w is not a terminal; a maxSize of zero also disables the
// bar. No output is produced until the first Update or FileDone call.
func New(w io.Writer, maxSize uint64, enable bool) *Bar {
	return &Bar{
		w:            w,
		maxSize:      maxSize,
		prevPercent:  percentSentinel,
		enabled:      enable && maxSize > 0,
		needsCleanup: true,
	}
}

// Update sets the number of work units completed within the current source
// and redraws the bar if the percentage changed since the last render.
// currentSize is an absolute value, not a delta.
func (b *Bar) Update(currentSize uint64) error {
	if !b.enabled {
		return nil
	}

	b.currentSize = currentSize

	return b.render()
}

// FileDone folds the size of a just-finished source into the completed
// total and resets the current-source counter, so the next Update starts
// counting the next source from zero.
func (b *Bar) FileDone(fileSize uint64) error {
	if !b.enabled {
		return nil
	}

	b.doneSize += fileSize
	b.currentSize = 0

	return b.render()
}

// Done renders the bar at 100% and terminates the line, so that subsequent
// output starts on a fresh line. Call it once when all work is finished; if
// it is never called, Close will.
func (b *Bar) Done() error {
	b.needsCleanup = false

	if !b.enabled {
		return nil
	}

	b.doneSize = b.maxSize
	b.currentSize = 0

	if err := b.render(); err != nil {
		return err
	}

	if _, err := io.WriteString(b.w, "\n"); err != nil {
		return fmt.Errorf("error when terminating progress line: %w", err)
	}

	return nil
}

// Remove erases the bar from the terminal so the caller can emit other
// diagnostic output at the same position. The next Update or FileDone
// redraws the bar even if the percentage is unchanged.
func (b *Bar) Remove() error {
	if !b.enabled {
		return nil
	}

	if _, err := io.WriteString(b.w, blankCells+"\r"); err != nil {
		return fmt.Errorf("error when erasing progress bar: %w", err)
	}

	b.prevPercent = percentSentinel

	return nil
}

// Close finalizes the bar if Done was not called explicitly. Any write
// failure is discarded, so Close is safe to defer unconditionally. It
// always returns nil; the error return satisfies io.Closer.
func (b *Bar) Close() error {
	if b.needsCleanup {
		_ = b.Done()
	}

	return nil
}

// render draws one frame. It skips the write entirely when the integer
// percentage has not changed since the last frame.
func (b *Bar) render() error {
	percent := 100 * (b.doneSize + b.currentSize) / b.maxSize
	if percent == b.prevPercent {
		return nil
	}

	b.prevPercent = percent

	num := uint64(float64(percent) * (barWidth / 100.0))

	sb := strings.Builder{}
	sb.Grow(eraseWidth + 1)
	sb.WriteByte('[')

	if num >= barWidth {
		sb.WriteString(fillCells)
	} else {
		sb.WriteString(fillCells[:num])
		sb.WriteByte('>')
		sb.WriteString(blankCells[:barWidth-1-num])
	}

	fmt.Fprintf(&sb, "] %3d%% \r", percent)

	if _, err := io.WriteString(b.w, sb.String()); err != nil {
		return fmt.Errorf("error when writing progress bar: %w", err)
	}

	return nil
}
