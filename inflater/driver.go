// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inflater

import (
	"context"
	"io"

	"github.com/zc-net/packetcore/allocator"
	"github.com/zc-net/packetcore/buffer"
	"github.com/zc-net/packetcore/zlibstream"
)

// multibytesReader adapts a buffer.View to io.Reader, serving at most one
// page's worth of bytes per Read call: each Read copies the unread part of
// the page currently under the cursor into p, as far as p has room.
type multibytesReader struct {
	v *buffer.View
}

func (r *multibytesReader) Read(p []byte) (int, error) {
	chunk, ok := r.v.NextChunk()
	if !ok {
		return 0, io.EOF
	}
	n := copy(p, chunk)
	r.v.Advance(n)
	return n, nil
}

// chunkedWriter adapts a stream of Write calls into a sequence of
// allocator-issued buffers appended to out, filling each to capacity
// before requesting the next: push the filled buffer, allocate a new one,
// keep going.
type chunkedWriter struct {
	alloc *allocator.Allocator
	ctx   context.Context
	out   *buffer.Multibytes

	cur *allocator.Part
	off int
}

func (w *chunkedWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if w.cur == nil {
			part, err := w.alloc.Allocate(w.ctx)
			if err != nil {
				return total, err
			}
			w.cur = part
			w.off = 0
		}
		n := copy(w.cur.Bytes()[w.off:], p)
		w.off += n
		p = p[n:]
		total += n
		if w.off == w.cur.Len() {
			w.out.Append(w.cur)
			w.cur = nil
		}
	}
	return total, nil
}

// Finish flushes a partially filled trailing buffer, truncated to exactly
// what was written into it.
func (w *chunkedWriter) Finish() {
	if w.cur != nil {
		w.cur.Truncate(w.off)
		w.out.Append(w.cur)
		w.cur = nil
	}
}

// Inflate drives in through zlib decompression, drawing output buffers
// from alloc as needed, and returns the decompressed bytes as a new
// Multibytes. Each output buffer is filled directly from the
// decompressor; nothing is recopied once bytes land in their final
// buffer. One-shot: the engine is constructed and torn down per call.
// Inflater holds a resettable engine for the per-connection path.
func Inflate(ctx context.Context, alloc *allocator.Allocator, in *buffer.Multibytes) (*buffer.Multibytes, error) {
	out := buffer.New()
	if in.Len() == 0 {
		return out, nil
	}

	zr, err := zlibstream.NewInflater(&multibytesReader{v: in.View()})
	if err != nil {
		return nil, &ZlibError{Err: err}
	}
	defer zr.Close()
	return drain(ctx, alloc, zr, out)
}

// drain pulls decompressed bytes out of zr into allocator-issued buffers
// appended to out, truncating the trailing partial buffer to exactly what
// was written into it (or releasing it, if it received nothing).
func drain(ctx context.Context, alloc *allocator.Allocator, zr io.Reader, out *buffer.Multibytes) (*buffer.Multibytes, error) {
	var cur *allocator.Part
	var off int

	flush := func() {
		if cur == nil {
			return
		}
		if off == 0 {
			cur.Release()
			cur = nil
			return
		}
		cur.Truncate(off)
		out.Append(cur)
		cur = nil
	}

	for {
		if cur == nil {
			part, err := alloc.Allocate(ctx)
			if err != nil {
				return nil, err
			}
			cur = part
			off = 0
		}
		n, err := zr.Read(cur.Bytes()[off:])
		off += n
		if off == cur.Len() {
			flush()
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ZlibError{Err: err}
		}
	}
	flush()
	return out, nil
}

// Deflate drives in through zlib compression at the given level, drawing
// output buffers from alloc, and returns the compressed bytes as a new
// Multibytes. It exists to make the inverse of Inflate independently
// testable (round-trip through the same multi-buffer discipline) even
// though production use only ever inflates.
func Deflate(ctx context.Context, alloc *allocator.Allocator, level int, in *buffer.Multibytes) (*buffer.Multibytes, error) {
	out := buffer.New()
	dst := &chunkedWriter{alloc: alloc, ctx: ctx, out: out}

	zw, err := zlibstream.NewDeflater(dst, level)
	if err != nil {
		return nil, err
	}

	v := in.View()
	for {
		chunk, ok := v.NextChunk()
		if !ok {
			break
		}
		if _, err := zw.Write(chunk); err != nil {
			return nil, &ZlibError{Err: err}
		}
		v.Advance(len(chunk))
	}
	if err := zw.Close(); err != nil {
		return nil, &ZlibError{Err: err}
	}
	dst.Finish()
	return out, nil
}
