// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package countreader

import (
	"io"
)

// ReportFunc receives the running total of bytes read so far.
type ReportFunc func(total uint64) error

// Reader wraps an io.Reader and reports the cumulative byte count after
// every successful read. Reads are passed through unmodified; a failing
// report does not disturb the data path. It is not safe for concurrent use.
type Reader struct {
	reader    io.Reader
	read      uint64
	report    ReportFunc
	reportErr error
}

// New creates a Reader that wraps r. report may be nil, in which case the
// Reader only counts.
func New(r io.Reader, report ReportFunc) *Reader {
	return &Reader{
		reader: r,
		report: report,
	}
}

// Read implements io.Reader. The report callback is invoked with the new
// running total whenever bytes were read. After the first report failure no
// further reports are attempted; the error is available from ReportErr.
func (cr *Reader) Read(p []byte) (n int, err error) {
	n, err = cr.reader.Read(p)
	if n > 0 {
		cr.read += uint64(n)

		if cr.report != nil && cr.reportErr == nil {
			cr.reportErr = cr.report(cr.read)
		}
	}

	return n, err //nolint:wrapcheck
}

// BytesRead returns the total number of bytes read so far.
func (cr *Reader) BytesRead() uint64 {
	return cr.read
}

// ReportErr returns the first error returned by the report callback, or nil.
func (cr *Reader) ReportErr() error {
	return cr.reportErr
}
