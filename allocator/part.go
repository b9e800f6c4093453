// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package allocator

import (
	"unsafe"

	"github.com/zc-net/packetcore/buffer"
)

// Part is a refcounted, shared-ownership window into a slab. It implements
// buffer.Direct, so it can back a Multibytes page alongside (or instead of)
// a heap-only buffer.Bytes.
//
// A Part is created by Allocator.Allocate, shared via SplitTo (which
// increments the slab's refcount), and must be released exactly once per
// clone via Release. When the last clone releases, the slab returns to the
// pool.
type Part struct {
	s   *slab
	alc *Allocator
	b   []byte // window into s.usable
}

// Len returns the number of bytes currently visible through this Part.
func (p *Part) Len() int { return len(p.b) }

// Bytes returns the Part's window as a slice.
func (p *Part) Bytes() []byte { return p.b }

// RawPointer returns the address of the first byte of the Part's window.
func (p *Part) RawPointer() unsafe.Pointer {
	if len(p.b) == 0 {
		return nil
	}
	return unsafe.Pointer(&p.b[0])
}

// SplitTo splits off the first n bytes as a new Part sharing the same
// slab, mutating the receiver to cover the remainder. The slab's refcount
// is incremented; both Parts must eventually be released independently.
func (p *Part) SplitTo(n int) buffer.Direct {
	if n > len(p.b) {
		panic("allocator: Part.SplitTo: n exceeds length")
	}
	*p.s.refcnt++
	head := &Part{s: p.s, alc: p.alc, b: p.b[:n:n]}
	p.b = p.b[n:]
	return head
}

// Truncate shortens the Part's visible window to the first n bytes. It
// does not affect the refcount: the slab is still shared by whatever other
// clones exist, and nothing is released until Release is called.
func (p *Part) Truncate(n int) {
	if n > len(p.b) {
		panic("allocator: Part.Truncate: n exceeds length")
	}
	p.b = p.b[:n]
}

// Release decrements the Part's slab refcount. When the refcount reaches
// zero the slab is pushed back into the allocator's cache (or the shared
// free stack) for reuse.
func (p *Part) Release() {
	if p.s == nil {
		return
	}
	*p.s.refcnt--
	if *p.s.refcnt == 0 {
		p.alc.reclaim(p.s)
	}
	p.s = nil
}
