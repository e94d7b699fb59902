// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package countreader provides an io.Reader wrapper that tracks the running
// total of bytes read and reports it to a callback after every successful
// read. This is how the copy command feeds byte counts into the progress
// bar without the bar knowing anything about the data path.
package countreader
