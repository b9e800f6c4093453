// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zlibstream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/zc-net/packetcore/zlibstream"
)

func TestRoundTripCarriesZlibFraming(t *testing.T) {
	var buf bytes.Buffer
	d, err := zlibstream.NewDeflater(&buf, 5)
	if err != nil {
		t.Fatalf("NewDeflater: %v", err)
	}
	if _, err := d.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// RFC 1950: CMF byte for deflate with a 32 KiB window.
	if buf.Bytes()[0] != 0x78 {
		t.Fatalf("stream starts with 0x%02x, want zlib header byte 0x78", buf.Bytes()[0])
	}

	inf, err := zlibstream.NewInflater(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("NewInflater: %v", err)
	}
	got, err := io.ReadAll(inf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("inflated = %q, want %q", got, "hello")
	}
}

func TestResetReusesBothEngines(t *testing.T) {
	var first bytes.Buffer
	d, err := zlibstream.NewDeflater(&first, 5)
	if err != nil {
		t.Fatalf("NewDeflater: %v", err)
	}
	d.Write([]byte("first"))
	d.Close()

	var second bytes.Buffer
	d.Reset(&second)
	d.Write([]byte("second"))
	d.Close()

	inf, err := zlibstream.NewInflater(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("NewInflater: %v", err)
	}
	got, err := io.ReadAll(inf)
	if err != nil || string(got) != "first" {
		t.Fatalf("first stream = %q, %v, want %q, nil", got, err, "first")
	}

	if err := inf.Reset(bytes.NewReader(second.Bytes())); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, err = io.ReadAll(inf)
	if err != nil || string(got) != "second" {
		t.Fatalf("second stream = %q, %v, want %q, nil", got, err, "second")
	}
}

func TestNewInflaterRejectsGarbageHeader(t *testing.T) {
	if _, err := zlibstream.NewInflater(bytes.NewReader([]byte{0x00, 0x01, 0x02})); err == nil {
		t.Fatal("NewInflater accepted a non-zlib header")
	}
}
