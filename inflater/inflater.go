// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package inflater implements the threshold-gated decompression layer: by
// default a transparent pass-through, until StartCompression enables
// reading a decompressed-size varint out of each frame body and driving
// the remainder through the multi-buffer zlib driver (driver.go) when it
// indicates the payload was actually compressed.
package inflater

import (
	"context"

	"github.com/zc-net/packetcore/allocator"
	"github.com/zc-net/packetcore/buffer"
	"github.com/zc-net/packetcore/framer"
	"github.com/zc-net/packetcore/varint"
	"github.com/zc-net/packetcore/zlibstream"
)

// Inflater turns decoded Frames into Packets. A zero-value Inflater (via
// New) starts disabled: every frame passes through untouched.
type Inflater struct {
	enabled   bool
	threshold int32
	alloc     *allocator.Allocator

	// zr is the connection's zlib engine, constructed lazily on the first
	// compressed frame and Reset for each one after.
	zr *zlibstream.Inflater
}

// New returns a disabled Inflater drawing output buffers from alloc once
// StartCompression enables it.
func New(alloc *allocator.Allocator) *Inflater {
	return &Inflater{alloc: alloc}
}

// StartCompression enables the compression layer: frame bodies are now
// expected to begin with a decompressed-size varint, per ProcessFrame's
// three-way branch.
func (inf *Inflater) StartCompression(threshold int32) {
	inf.enabled = true
	inf.threshold = threshold
}

// ProcessFrame turns a decoded Frame into a Packet. While disabled this is
// a zero-copy pass-through. Once enabled, it reads the leading
// decompressed-size varint and either passes the remainder through
// (size == 0), rejects it (0 < size < threshold), or inflates it into
// freshly allocated buffers (size >= threshold).
func (inf *Inflater) ProcessFrame(ctx context.Context, fr *framer.Frame) (*Packet, error) {
	if !inf.enabled {
		return &Packet{
			Header: fr.Packet,
			Data:   CursorData{Source: fr.Packet, At: fr.DataStart},
		}, nil
	}

	v := fr.Packet.ViewFrom(fr.DataStart)
	decompressedSize, err := varint.ReadInt32(v)
	if err != nil {
		return nil, ErrCompressionSizeDecodeFail
	}
	cursorAfterVarint := v.Cursor()

	switch {
	case decompressedSize == 0:
		return &Packet{
			Header: fr.Packet,
			Data:   CursorData{Source: fr.Packet, At: cursorAfterVarint},
		}, nil
	case decompressedSize < inf.threshold:
		return nil, ErrSmallCompression
	default:
		header := fr.Packet.SplitTo(cursorAfterVarint)
		inflated, err := inf.inflate(ctx, fr.Packet)
		if err != nil {
			return nil, err
		}
		return &Packet{Header: header, Data: MultibytesData{M: inflated}}, nil
	}
}

// inflate decompresses in through the connection's zlib engine, re-arming
// it against the new frame's bytes rather than constructing a fresh one
// per frame.
func (inf *Inflater) inflate(ctx context.Context, in *buffer.Multibytes) (*buffer.Multibytes, error) {
	out := buffer.New()
	if in.Len() == 0 {
		return out, nil
	}

	src := &multibytesReader{v: in.View()}
	if inf.zr == nil {
		zr, err := zlibstream.NewInflater(src)
		if err != nil {
			return nil, &ZlibError{Err: err}
		}
		inf.zr = zr
	} else if err := inf.zr.Reset(src); err != nil {
		return nil, &ZlibError{Err: err}
	}
	return drain(ctx, inf.alloc, inf.zr, out)
}
