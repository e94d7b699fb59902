// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package countreader

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadReportsRunningTotal(t *testing.T) {
	var totals []uint64

	cr := New(strings.NewReader("hello world"), func(total uint64) error {
		totals = append(totals, total)
		return nil
	})

	buf := make([]byte, 4)

	n, err := cr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = cr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	rest, err := io.ReadAll(cr)
	require.NoError(t, err)
	assert.Equal(t, "rld", string(rest))

	assert.Equal(t, []uint64{4, 8, 11}, totals)
	assert.Equal(t, uint64(11), cr.BytesRead())
	assert.NoError(t, cr.ReportErr())
}

func TestNilReportOnlyCounts(t *testing.T) {
	cr := New(strings.NewReader("data"), nil)

	got, err := io.ReadAll(cr)
	require.NoError(t, err)

	assert.Equal(t, "data", string(got))
	assert.Equal(t, uint64(4), cr.BytesRead())
}

func TestReportErrorIsLatchedAndDoesNotDisturbReads(t *testing.T) {
	errReport := errors.New("report failed")
	calls := 0

	cr := New(strings.NewReader("0123456789"), func(_ uint64) error {
		calls++
		return errReport
	})

	got, err := io.ReadAll(cr)
	require.NoError(t, err, "a failing report must not fail the read")

	assert.Equal(t, "0123456789", string(got))
	assert.Equal(t, 1, calls, "reports must stop after the first failure")
	assert.ErrorIs(t, cr.ReportErr(), errReport)
}

func TestReadErrorIsReturnedUnmodified(t *testing.T) {
	cr := New(strings.NewReader(""), func(_ uint64) error { return nil })

	n, err := cr.Read(make([]byte, 1))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}
