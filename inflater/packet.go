// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inflater

import "github.com/zc-net/packetcore/buffer"

// Data is a packet's payload: either a cursor into the packet's own header
// Multibytes (the uncompressed case, zero-copy) or an independent
// Multibytes holding freshly inflated bytes (the compressed case).
type Data interface {
	isData()
}

// CursorData is an uncompressed packet's payload: a position within the
// packet's own header Multibytes, not a separate allocation.
type CursorData struct {
	Source *buffer.Multibytes
	At     buffer.Cursor
}

func (CursorData) isData() {}

// MultibytesData is a compressed packet's payload after inflation: bytes
// drawn fresh from the allocator, independent of the header.
type MultibytesData struct {
	M *buffer.Multibytes
}

func (MultibytesData) isData() {}

// Packet is one decoded application packet: a header region plus its data,
// which either aliases the header (uncompressed) or owns separately
// allocated bytes (inflated from a compressed frame).
type Packet struct {
	Header *buffer.Multibytes
	Data   Data
}
