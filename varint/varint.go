// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package varint reads Protocol-Buffers-style, little-endian, 7-bit-group
// varints directly off a buffer.View: high bit set means "more bytes
// follow," negative values are carried as the full-width two's complement
// pattern of the accumulator rather than via zigzag encoding.
package varint

import "github.com/zc-net/packetcore/buffer"

// ReadInt32 decodes a varint-encoded int32, consuming at most 5 bytes from
// v. Returns ErrIncomplete if v runs out of bytes first, or ErrOverflow if
// a 6th continuation byte would be required.
func ReadInt32(v *buffer.View) (int32, error) {
	acc, err := read(v, 32)
	if err != nil {
		return 0, err
	}
	return int32(uint32(acc)), nil
}

// ReadInt64 decodes a varint-encoded int64, consuming at most 10 bytes
// from v. Returns ErrIncomplete if v runs out of bytes first, or
// ErrOverflow if an 11th continuation byte would be required.
func ReadInt64(v *buffer.View) (int64, error) {
	acc, err := read(v, 64)
	if err != nil {
		return 0, err
	}
	return int64(acc), nil
}

func read(v *buffer.View, width uint) (uint64, error) {
	var acc uint64
	var shift uint
	for {
		b, ok := v.GetU8()
		if !ok {
			return 0, ErrIncomplete
		}
		acc |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return acc, nil
		}
		shift += 7
		if shift >= width {
			return 0, ErrOverflow
		}
	}
}
