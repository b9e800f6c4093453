// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varint

import "errors"

var (
	// ErrIncomplete means the view ran out of bytes before a continuation
	// bit was cleared. It is not a protocol error: more data may arrive.
	ErrIncomplete = errors.New("varint: incomplete")

	// ErrOverflow means more continuation bytes were seen than the target
	// width allows (5 for a 32-bit value, 10 for 64-bit). This is a
	// protocol violation.
	ErrOverflow = errors.New("varint: too many bytes for target width")
)
