// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packetizer

import (
	"context"

	"github.com/zc-net/packetcore/allocator"
	"github.com/zc-net/packetcore/buffer"
)

// ReadResult is one outcome of a SocketReader.Read call: either a Part
// holding the bytes actually read (truncated to length), or EOF signaling
// a clean close.
type ReadResult struct {
	Part *allocator.Part
	EOF  bool
}

// SocketReader is the contract for the asynchronous socket read half this
// module treats as an external collaborator: given an allocator to draw
// buffers from, produce one ReadResult per call. Errors surface as I/O
// errors from Read itself; a clean close is ReadResult.EOF, not an error.
type SocketReader interface {
	Read(ctx context.Context, alloc *allocator.Allocator) (ReadResult, error)
}

// SocketWriter is the contract for the asynchronous socket write half:
// accept a Multibytes and write it until drained.
type SocketWriter interface {
	Write(ctx context.Context, data *buffer.Multibytes) error
}
