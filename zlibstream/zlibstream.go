// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package zlibstream pins this module's compression primitive to
// github.com/klauspost/compress/zlib rather than a cgo binding to libz,
// keeping the build pure Go. The wire carries zlib-framed DEFLATE
// (RFC 1950): a 2-byte header and a trailing Adler-32 checksum around the
// compressed stream, the same framing a default-initialized z_stream
// (windowBits 15) produces and expects.
//
// Inflater and Deflater wrap the library's reader and writer with the
// lifecycle the pipeline drives: construct once per connection, Reset
// against each new frame's source or sink, process to completion.
package zlibstream

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// Inflater is a decompressing reader over a zlib-framed stream. It is
// constructed against one source and re-armed against later sources with
// Reset, so a single Inflater can serve every compressed frame a
// connection produces.
type Inflater struct {
	zr io.ReadCloser
}

// NewInflater returns an Inflater pulling zlib-framed bytes from r. The
// stream header is read immediately; a malformed header surfaces here
// rather than on the first Read.
func NewInflater(r io.Reader) (*Inflater, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &Inflater{zr: zr}, nil
}

// Read decompresses up to len(p) bytes into p. io.EOF is returned once
// the stream ends and its Adler-32 trailer has been verified.
func (i *Inflater) Read(p []byte) (int, error) { return i.zr.Read(p) }

// Reset discards the inflater's state and re-arms it against r, reading
// the new stream's header. Far cheaper than constructing a new Inflater.
func (i *Inflater) Reset(r io.Reader) error {
	return i.zr.(zlib.Resetter).Reset(r, nil)
}

// Close releases the inflater. It does not close the underlying source.
func (i *Inflater) Close() error { return i.zr.Close() }

// Deflater is a compressing writer producing a zlib-framed stream. Like
// Inflater, it is constructed once and re-armed with Reset.
type Deflater struct {
	zw *zlib.Writer
}

// NewDeflater returns a Deflater at the given level pushing zlib-framed
// bytes to w. level follows the library's constants
// (zlib.DefaultCompression, zlib.BestSpeed, ...).
func NewDeflater(w io.Writer, level int) (*Deflater, error) {
	zw, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		return nil, err
	}
	return &Deflater{zw: zw}, nil
}

// Write compresses p into the deflater's current sink.
func (d *Deflater) Write(p []byte) (int, error) { return d.zw.Write(p) }

// Reset discards the deflater's state and re-arms it against w, keeping
// the configured compression level.
func (d *Deflater) Reset(w io.Writer) { d.zw.Reset(w) }

// Close flushes the remaining compressed bytes and the Adler-32 trailer.
// The deflater may be Reset and reused afterwards.
func (d *Deflater) Close() error { return d.zw.Close() }
