// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package buffer implements a chunked, logical byte stream (Multibytes) over
// discontiguous buffers, plus a detachable cursor that can advance, inspect,
// and split the stream into independently owned segments without copying
// bytes.
//
// Two concrete realizations of the Direct capability set are expected to
// exist in this module: an unpooled, heap-backed Bytes (this package) and a
// refcounted, pool-backed allocator.Part (package allocator). Both expose
// raw address + length for FFI (RawPointer/Len) alongside the higher-level
// Bytes() slice view, so pipeline stages that need to hand a window directly
// to a C-shaped ABI (zlib's next_in/avail_in, AES's in/out pointers) can do
// so without a copy.
package buffer

import "unsafe"

// Direct is the capability set every buffer backing a Multibytes page must
// implement: read-only length/bytes access, in-place truncation, and the
// ability to split the first n bytes off as an independently owned value
// (mutating the receiver to cover the remainder).
//
// Concrete realizations: Bytes (this package, unpooled) and allocator.Part
// (refcounted, pool-backed). The pipeline is parametric over this interface
// rather than over a concrete type.
type Direct interface {
	// Len returns the number of bytes currently held.
	Len() int

	// Bytes returns the held region as a slice. The slice aliases the
	// underlying storage; callers must not retain it past the buffer's
	// lifetime.
	Bytes() []byte

	// RawPointer returns the address of the first byte, for FFI callers
	// that need a raw pointer rather than a slice header. Len() == 0
	// buffers may return nil.
	RawPointer() unsafe.Pointer

	// SplitTo removes the first n bytes and returns them as a new,
	// independently owned Direct. The receiver is mutated to cover the
	// remaining [n:) region. Panics if n > Len().
	SplitTo(n int) Direct

	// Truncate shortens the held region to the first n bytes. Panics if
	// n > Len().
	Truncate(n int)
}
