// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inflater_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/zc-net/packetcore/allocator"
	"github.com/zc-net/packetcore/buffer"
	"github.com/zc-net/packetcore/framer"
	"github.com/zc-net/packetcore/inflater"
)

func TestDeflateInflateRoundTrip(t *testing.T) {
	alloc := allocator.New(allocator.WithBufSize(8), allocator.WithPageEntries(8))

	plain := make([]byte, 252)
	for i := range plain {
		plain[i] = byte(i % 16)
	}
	in := buffer.New()
	in.Append(buffer.NewBytes(plain))

	ctx := context.Background()
	compressed, err := inflater.Deflate(ctx, alloc, 5, in)
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}
	if got := compressed.View().Remaining(); got != 28 {
		t.Fatalf("compressed Remaining() = %d, want 28", got)
	}

	out, err := inflater.Inflate(ctx, alloc, compressed)
	if err != nil {
		t.Fatalf("Inflate: %v", err)
	}
	if out.Len() != len(plain) {
		t.Fatalf("Inflate length = %d, want %d", out.Len(), len(plain))
	}

	v := out.View()
	got := make([]byte, 0, len(plain))
	for {
		b, ok := v.GetU8()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("round-tripped bytes differ from original")
	}
}

func TestProcessFrameDisabledPassesThrough(t *testing.T) {
	alloc := allocator.New()
	inf := inflater.New(alloc)

	m := buffer.New()
	m.Append(buffer.NewBytes([]byte{'h', 'i'}))
	v := m.View()
	v.Advance(0)
	fr := &framer.Frame{Packet: m, DataStart: v.Cursor()}

	pkt, err := inf.ProcessFrame(context.Background(), fr)
	if err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	cd, ok := pkt.Data.(inflater.CursorData)
	if !ok {
		t.Fatalf("Data = %T, want CursorData", pkt.Data)
	}
	if cd.Source != m {
		t.Fatal("CursorData does not alias the frame's own header")
	}
}

func TestProcessFrameZeroSizeMeansUncompressed(t *testing.T) {
	alloc := allocator.New()
	inf := inflater.New(alloc)
	inf.StartCompression(64)

	m := buffer.New()
	m.Append(buffer.NewBytes([]byte{0x00, 'p', 'l', 'a', 'i', 'n'}))

	fr := &framer.Frame{Packet: m, DataStart: m.Cursor()}
	pkt, err := inf.ProcessFrame(context.Background(), fr)
	if err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	if _, ok := pkt.Data.(inflater.CursorData); !ok {
		t.Fatalf("Data = %T, want CursorData", pkt.Data)
	}
}

func TestProcessFrameBelowThresholdRejected(t *testing.T) {
	alloc := allocator.New()
	inf := inflater.New(alloc)
	inf.StartCompression(64)

	m := buffer.New()
	m.Append(buffer.NewBytes([]byte{0x05})) // decompressed_size = 5, below threshold

	fr := &framer.Frame{Packet: m, DataStart: m.Cursor()}
	_, err := inf.ProcessFrame(context.Background(), fr)
	if err != inflater.ErrSmallCompression {
		t.Fatalf("err = %v, want ErrSmallCompression", err)
	}
}

func TestProcessFrameCompressedSplitsHeaderFromData(t *testing.T) {
	alloc := allocator.New(allocator.WithBufSize(8))
	inf := inflater.New(alloc)
	inf.StartCompression(4)

	plain := []byte("hello, compressed world, this is long enough to compress")
	compressed, err := inflater.Deflate(context.Background(), alloc, 5, func() *buffer.Multibytes {
		m := buffer.New()
		m.Append(buffer.NewBytes(plain))
		return m
	}())
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}

	header := buffer.New()
	header.Append(buffer.NewBytes([]byte{byte(len(plain))})) // single-byte varint works: len < 128
	// The frame body starts with the decompressed-size varint.
	dataStart := header.Cursor()

	cv := compressed.View()
	for {
		chunk, ok := cv.NextChunk()
		if !ok {
			break
		}
		header.Append(buffer.NewBytes(append([]byte(nil), chunk...)))
		cv.Advance(len(chunk))
	}

	fr := &framer.Frame{Packet: header, DataStart: dataStart}
	pkt, err := inf.ProcessFrame(context.Background(), fr)
	if err != nil {
		t.Fatalf("ProcessFrame: %v", err)
	}
	md, ok := pkt.Data.(inflater.MultibytesData)
	if !ok {
		t.Fatalf("Data = %T, want MultibytesData", pkt.Data)
	}
	if md.M.Len() != len(plain) {
		t.Fatalf("inflated length = %d, want %d", md.M.Len(), len(plain))
	}
}

func TestProcessFrameReusesEngineAcrossFrames(t *testing.T) {
	alloc := allocator.New(allocator.WithBufSize(8))
	inf := inflater.New(alloc)
	inf.StartCompression(4)
	ctx := context.Background()

	bodies := [][]byte{
		[]byte("first compressed frame body, long enough to pass the threshold"),
		[]byte("second compressed frame body, also comfortably past it"),
	}
	for _, plain := range bodies {
		compressed, err := inflater.Deflate(ctx, alloc, 5, func() *buffer.Multibytes {
			m := buffer.New()
			m.Append(buffer.NewBytes(plain))
			return m
		}())
		if err != nil {
			t.Fatalf("Deflate: %v", err)
		}

		packet := buffer.New()
		packet.Append(buffer.NewBytes([]byte{byte(len(plain))}))
		// The frame body starts with the decompressed-size varint.
		dataStart := packet.Cursor()

		cv := compressed.View()
		for {
			chunk, ok := cv.NextChunk()
			if !ok {
				break
			}
			packet.Append(buffer.NewBytes(append([]byte(nil), chunk...)))
			cv.Advance(len(chunk))
		}

		pkt, err := inf.ProcessFrame(ctx, &framer.Frame{Packet: packet, DataStart: dataStart})
		if err != nil {
			t.Fatalf("ProcessFrame: %v", err)
		}
		md, ok := pkt.Data.(inflater.MultibytesData)
		if !ok {
			t.Fatalf("Data = %T, want MultibytesData", pkt.Data)
		}

		v := md.M.View()
		var got []byte
		for {
			b, ok := v.GetU8()
			if !ok {
				break
			}
			got = append(got, b)
		}
		if !bytes.Equal(got, plain) {
			t.Fatalf("inflated payload = %q, want %q", got, plain)
		}
	}
}
