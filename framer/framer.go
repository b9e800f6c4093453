// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package framer decodes a stream of varint-length-prefixed frames out of
// buffers pushed to it incrementally, without ever recopying payload bytes:
// a complete frame is split out of the accumulated Multibytes by reference.
//
// Wire shape: a varint length L, followed by L bytes of frame body. Framer
// does not interpret the body; that's the inflater's job.
package framer

import (
	"errors"

	"github.com/zc-net/packetcore/buffer"
	"github.com/zc-net/packetcore/varint"
)

type state int

const (
	stateWaitingForHeader state = iota
	stateWaitingForTail
)

// Framer is a streaming frame decoder. It is not safe for concurrent use;
// callers push buffers and call Frame from a single goroutine per
// connection, matching the pipeline's single-threaded-per-connection model.
type Framer struct {
	opts options
	buf  *buffer.Multibytes
	st   state

	dataStart buffer.Cursor
	dataEnd   buffer.Cursor
}

// New returns a Framer with no accumulated data, ready to accept pushed
// buffers.
func New(opts ...Option) *Framer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Framer{opts: o, buf: buffer.New()}
}

// PushBuffer appends d to the framer's accumulated stream.
func (f *Framer) PushBuffer(d buffer.Direct) {
	f.buf.Append(d)
}

// Frame attempts to decode one complete frame out of the accumulated
// buffers. On success the decoded bytes are removed from the framer's
// internal stream and returned as the Frame's Packet, and the framer is
// left ready to decode the next frame.
//
// ErrWaitingForHeader and *WaitingForDataError are informational: the
// caller should push more data and call Frame again. ErrDecodeError is
// fatal and the connection must be dropped.
func (f *Framer) Frame() (*Frame, error) {
	if f.st == stateWaitingForTail {
		return f.stepTail()
	}
	return f.stepHeader()
}

func (f *Framer) stepHeader() (*Frame, error) {
	v := f.buf.View()
	length, err := varint.ReadInt32(v)
	if err != nil {
		if errors.Is(err, varint.ErrIncomplete) {
			return nil, ErrWaitingForHeader
		}
		return nil, ErrDecodeError
	}
	if length < 0 || length > f.opts.maxFrameSize {
		return nil, ErrDecodeError
	}

	dataStart := v.Cursor()
	dataEnd, ok := dataStart.AdvanceBy(f.buf, int(length))
	if ok {
		packet := f.buf.SplitTo(dataEnd)
		return &Frame{Packet: packet, DataStart: dataStart}, nil
	}

	f.st = stateWaitingForTail
	f.dataStart = dataStart
	f.dataEnd = dataEnd
	return nil, &WaitingForDataError{N: dataEnd.RunOffEnd(f.buf)}
}

func (f *Framer) stepTail() (*Frame, error) {
	dataEnd, ok := f.dataEnd.AdvanceBy(f.buf, 0)
	if ok {
		packet := f.buf.SplitTo(dataEnd)
		f.st = stateWaitingForHeader
		return &Frame{Packet: packet, DataStart: f.dataStart}, nil
	}
	f.dataEnd = dataEnd
	return nil, &WaitingForDataError{N: dataEnd.RunOffEnd(f.buf)}
}
