// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import (
	"errors"
	"fmt"
)

// ErrWaitingForHeader is returned by Frame when the accumulated buffers do
// not yet hold enough bytes to decode a length header. It is informational:
// the caller should push more data and retry.
var ErrWaitingForHeader = errors.New("framer: waiting for header")

// ErrDecodeError is returned by Frame when the length header is malformed
// (varint overflow) or violates configured limits (negative, or larger than
// MaxFrameSize). It is fatal: the caller must drop the connection.
var ErrDecodeError = errors.New("framer: decode error")

// WaitingForDataError is returned by Frame when a length header has been
// decoded but the payload it describes has not fully arrived yet. N is the
// number of additional bytes needed before the frame can complete. It is
// informational, like ErrWaitingForHeader.
type WaitingForDataError struct {
	N int
}

func (e *WaitingForDataError) Error() string {
	return fmt.Sprintf("framer: waiting for %d more bytes", e.N)
}
