// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package packetizer composes the crypto, framing, and decompression
// layers into the end-to-end pipeline: decrypt a buffer in place, push it
// into the framer, and run every complete frame the framer yields through
// the inflater to produce decoded Packets.
package packetizer

import (
	"context"

	"github.com/zc-net/packetcore/aescfb8"
	"github.com/zc-net/packetcore/allocator"
	"github.com/zc-net/packetcore/buffer"
	"github.com/zc-net/packetcore/framer"
	"github.com/zc-net/packetcore/inflater"
)

// Packet is one fully decoded application packet: a header region plus its
// data, the latter either aliasing the header (uncompressed) or owning
// freshly inflated bytes (compressed). It is inflater.Packet under the
// hood; the inflater is the stage that actually produces one, so its
// constructors live there; packetizer re-exports the name since this is
// where callers of the pipeline as a whole reach for it.
type Packet = inflater.Packet

// Packetizer decrypts, frames, and (optionally) decompresses a connection's
// incoming byte stream. It owns one Cryptor, one Framer, and one Inflater,
// composed in that order.
type Packetizer struct {
	cryptor  *aescfb8.Cryptor
	framer   *framer.Framer
	inflater *inflater.Inflater
}

// New returns a Packetizer with crypto and compression both disabled
// (transparent pass-through), drawing inflated output buffers from alloc.
func New(alloc *allocator.Allocator, opts ...framer.Option) *Packetizer {
	return &Packetizer{
		cryptor:  aescfb8.New(),
		framer:   framer.New(opts...),
		inflater: inflater.New(alloc),
	}
}

// StartCrypto installs the connection's AES-CFB8 key. See
// aescfb8.Cryptor.StartCrypto.
func (p *Packetizer) StartCrypto(key []byte) error {
	return p.cryptor.StartCrypto(key)
}

// StartCompression enables the decompression layer. See
// inflater.Inflater.StartCompression.
func (p *Packetizer) StartCompression(threshold int32) {
	p.inflater.StartCompression(threshold)
}

// Process decrypts buf in place and appends it to the framer's accumulated
// stream, returning an iterator over every packet now extractable from it.
func (p *Packetizer) Process(buf buffer.Direct) *PacketIterator {
	p.cryptor.Process(aescfb8.Decrypt, buf.Bytes())
	p.framer.PushBuffer(buf)
	return &PacketIterator{p: p}
}

// PacketIterator pulls complete Packets out of a Packetizer's accumulated
// stream, one per call to Next, until the stream runs dry.
type PacketIterator struct {
	p *Packetizer
}

// Next decodes and returns the next Packet extractable from the
// Packetizer's accumulated stream. A returned *Error wrapping
// framer.ErrWaitingForHeader or a *framer.WaitingForDataError is
// informational: the caller has drained every complete frame currently
// available and should push more data. Any other error is fatal and the
// connection must be dropped.
func (it *PacketIterator) Next(ctx context.Context) (*Packet, error) {
	fr, err := it.p.framer.Frame()
	if err != nil {
		return nil, &Error{Err: err}
	}
	pkt, err := it.p.inflater.ProcessFrame(ctx, fr)
	if err != nil {
		return nil, &Error{Err: err}
	}
	return pkt, nil
}
