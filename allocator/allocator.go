// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package allocator implements a reference-counted slab pool backed by
// anonymous mmap: a thread-local-cached free list of fixed-size buffers
// (Part), refilled a page at a time and bounded in how many page faults may
// be in flight concurrently.
package allocator

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/unix"
)

// Allocator hands out refcounted, page-pooled Parts. It is safe for
// concurrent use by multiple goroutines; Parts it issues, however, are
// pinned to the goroutine that received them (see DESIGN.md).
type Allocator struct {
	opts options

	cache sync.Pool // per-P fast path; holds *slab
	free  freeStack // shared backstop across every shard

	gate *semaphore.Weighted // bounds concurrent page faults
}

// New constructs an Allocator. Construction never maps memory; the first
// page fault happens lazily on the first Allocate call that finds both the
// cache and the free stack empty.
func New(opts ...Option) *Allocator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Allocator{
		opts: o,
		gate: semaphore.NewWeighted(o.allocLimit),
	}
	return a
}

// Allocate returns a fresh Part covering one full slab. It first tries the
// calling P's cache, then the allocator-wide free stack, then services a
// page fault: mmaps page_entries slabs at once, keeps one, and pushes the
// rest onto the free stack.
//
// ctx is consulted only while backed off waiting for the concurrent page
// fault gate; it has no effect once a page fault has started (mmap itself
// is not cancelable). A failed mmap is an unrecoverable resource failure
// and panics, matching the source's abort-on-mmap-failure semantics.
func (a *Allocator) Allocate(ctx context.Context) (*Part, error) {
	if s, ok := a.cache.Get().(*slab); ok && s != nil {
		return a.issue(s), nil
	}
	if s := a.free.pop(); s != nil {
		return a.issue(s), nil
	}
	s, err := a.fault(ctx)
	if err != nil {
		return nil, err
	}
	return a.issue(s), nil
}

func (a *Allocator) issue(s *slab) *Part {
	*s.refcnt = 1
	return &Part{s: s, alc: a, b: s.usable}
}

// reclaim returns a fully-drained slab (refcount already at zero) to the
// calling P's cache. Capacity is whatever sync.Pool chooses to retain
// across a GC cycle; the free stack is the backstop for everything the
// cache drops.
func (a *Allocator) reclaim(s *slab) {
	a.cache.Put(s)
}

func (a *Allocator) fault(ctx context.Context) (*slab, error) {
	if err := a.gate.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}
	defer a.gate.Release(1)

	slabSize := 1 << a.opts.bufSize
	region, err := unix.Mmap(-1, 0, a.opts.pageEntries*slabSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic("allocator: mmap failed: " + err.Error())
	}

	slabs := make([]*slab, a.opts.pageEntries)
	for i := range slabs {
		slabs[i] = newSlab(region[i*slabSize : (i+1)*slabSize])
	}
	for _, s := range slabs[1:] {
		a.free.push(s)
	}
	runtime.KeepAlive(region)
	return slabs[0], nil
}
