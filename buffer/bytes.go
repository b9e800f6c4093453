// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buffer

import "unsafe"

// Bytes is an unpooled, heap-backed realization of Direct. It wraps a plain
// []byte and never returns storage to an allocator; use it for data that
// does not originate from allocator.Allocator (literals, test fixtures,
// bytes received from another library's API).
type Bytes struct {
	b []byte
}

// NewBytes wraps b as a Direct. b is taken by reference, not copied.
func NewBytes(b []byte) *Bytes {
	return &Bytes{b: b}
}

func (b *Bytes) Len() int { return len(b.b) }

func (b *Bytes) Bytes() []byte { return b.b }

func (b *Bytes) RawPointer() unsafe.Pointer {
	if len(b.b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.b[0])
}

func (b *Bytes) SplitTo(n int) Direct {
	if n > len(b.b) {
		panic("buffer: Bytes.SplitTo: n exceeds length")
	}
	head := b.b[:n:n]
	b.b = b.b[n:]
	return &Bytes{b: head}
}

func (b *Bytes) Truncate(n int) {
	if n > len(b.b) {
		panic("buffer: Bytes.Truncate: n exceeds length")
	}
	b.b = b.b[:n]
}
