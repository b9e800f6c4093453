// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package allocator

// Option configures an Allocator at construction time, following the
// functional-options idiom used throughout this module.
type Option func(*options)

type options struct {
	bufSize     uint
	pageEntries int
	allocLimit  int64
}

func defaultOptions() options {
	return options{
		bufSize:     12, // 4 KiB slabs
		pageEntries: 64,
		allocLimit:  4,
	}
}

// WithBufSize sets the log2 size, in bytes, of each slab. Four bytes of
// every slab are reserved for the refcount trailer, so the usable region is
// 2^log2Bytes - 4 bytes. Default 12 (4 KiB slabs, 4092 usable bytes).
func WithBufSize(log2Bytes uint) Option {
	return func(o *options) { o.bufSize = log2Bytes }
}

// WithPageEntries sets how many slabs are cut from each anonymous mmap
// call. Default 64.
func WithPageEntries(n int) Option {
	return func(o *options) { o.pageEntries = n }
}

// WithConcurrentAllocationLimit bounds how many goroutines may be mid-mmap,
// servicing a page fault, at once. Default 4.
func WithConcurrentAllocationLimit(n int64) Option {
	return func(o *options) { o.allocLimit = n }
}
