// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "github.com/zc-net/packetcore/buffer"

// Frame is one complete, length-delimited unit decoded off the wire: a
// Multibytes holding the length prefix plus payload, and a cursor marking
// where the payload begins (immediately after the length varint).
type Frame struct {
	Packet    *buffer.Multibytes
	DataStart buffer.Cursor
}
