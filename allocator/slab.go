// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package allocator

import (
	"sync/atomic"
	"unsafe"
)

// slab is one fixed-size region cut from an mmap'd page. It is a
// Go-heap-resident descriptor, created once when its backing page is
// mapped and never freed; only the region it describes (usable) cycles
// between Parts.
//
// The refcount lives in the trailing 4 bytes of the slab's own region
// within the mmap'd page; the usable region is everything before it.
// Parts issued from one allocator are pinned to their originating
// goroutine (see DESIGN.md), so the refcount is read and written without
// atomics.
type slab struct {
	usable []byte
	refcnt *uint32
	next   atomic.Pointer[slab] // free-stack link; see freeStack
}

func newSlab(region []byte) *slab {
	usableLen := len(region) - 4
	s := &slab{
		usable: region[:usableLen:usableLen],
		refcnt: (*uint32)(unsafe.Pointer(&region[usableLen])),
	}
	return s
}

// freeStack is a lock-free Treiber stack of free slabs, owned by one
// Allocator and shared by every goroutine using it. ABA is not a concern here: a
// slab is pushed only after its last Part provably dropped its refcount to
// zero, and a popped slab is reinitialized before any Part observes it, so
// two concurrent pops can never hand out the same slab twice.
type freeStack struct {
	head atomic.Pointer[slab]
}

func (f *freeStack) push(s *slab) {
	for {
		old := f.head.Load()
		s.next.Store(old)
		if f.head.CompareAndSwap(old, s) {
			return
		}
	}
}

func (f *freeStack) pop() *slab {
	for {
		old := f.head.Load()
		if old == nil {
			return nil
		}
		next := old.next.Load()
		if f.head.CompareAndSwap(old, next) {
			old.next.Store(nil)
			return old
		}
	}
}
