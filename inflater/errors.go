// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inflater

import "errors"

var (
	// ErrCompressionSizeDecodeFail is returned when the decompressed-size
	// varint at the start of a compressed frame body cannot be decoded.
	ErrCompressionSizeDecodeFail = errors.New("inflater: compression size decode failed")

	// ErrSmallCompression is returned when a frame declares a
	// decompressed size below the configured threshold: the sender
	// should not have compressed it at all.
	ErrSmallCompression = errors.New("inflater: compressed frame below threshold")
)

// ZlibError wraps a failure from the underlying DEFLATE engine. It always
// indicates a fatal, per-connection error.
type ZlibError struct {
	Err error
}

func (e *ZlibError) Error() string { return "inflater: zlib error: " + e.Err.Error() }

func (e *ZlibError) Unwrap() error { return e.Err }
