// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buffer

// View is a read cursor bound to a particular Multibytes. It is the normal
// way to walk a stream: construct one with Multibytes.View, then Advance,
// GetU8, or NextChunk as the consumer (varint parser, framer, inflater)
// needs.
type View struct {
	m *Multibytes
	c Cursor
}

// View returns a read cursor positioned at the start of m.
func (m *Multibytes) View() *View {
	return &View{m: m, c: m.Cursor()}
}

// ViewFrom returns a read cursor positioned at c, which must already be
// trued up against m.
func (m *Multibytes) ViewFrom(c Cursor) *View {
	return &View{m: m, c: c}
}

// Cursor returns the view's current position.
func (v *View) Cursor() Cursor { return v.c }

// Remaining returns the number of unread bytes.
func (v *View) Remaining() int { return v.c.Remaining(v.m) }

// HasAtLeast reports whether at least n unread bytes remain.
func (v *View) HasAtLeast(n int) bool { return v.c.HasAtLeast(v.m, n) }

// Advance moves the read position forward by n bytes. Reports false,
// leaving the view unmoved, if n overruns the stream.
func (v *View) Advance(n int) bool {
	saved := v.c
	if !v.c.advance(v.m, n) {
		v.c = saved
		return false
	}
	return true
}

// GetU8 reads and consumes a single byte. The second return is false if the
// stream is exhausted.
func (v *View) GetU8() (byte, bool) {
	for v.c.page < len(v.m.pages) {
		p := v.m.pages[v.c.page]
		if v.c.off < p.Len() {
			b := p.Bytes()[v.c.off]
			v.c.off++
			v.c.trueUp(v.m)
			return b, true
		}
		v.c.off -= p.Len()
		v.c.page++
	}
	return 0, false
}

// NextChunk returns the unread remainder of the current page without
// consuming it, or nil, false if the view is at the end of the stream. This
// is the zero-copy escape hatch for consumers (zlib's next_in, a framer
// scanning for a length prefix) that want to work directly against
// page-sized runs instead of one byte at a time.
func (v *View) NextChunk() ([]byte, bool) {
	c := v.c
	c.trueUp(v.m)
	if c.page >= len(v.m.pages) {
		return nil, false
	}
	return v.m.pages[c.page].Bytes()[c.off:], true
}

// VectoredBytes fills iov with the unread remainder of the stream as one
// slice per page, skipping empty pages, and reports how many entries it
// filled. Nothing is consumed or copied: each entry aliases its page, so
// the set can be handed straight to a vectored write (net.Buffers, writev)
// or any FFI taking an array of (ptr, len) pairs.
func (v *View) VectoredBytes(iov [][]byte) int {
	n := 0
	c := v.c
	for c.page < len(v.m.pages) && n < len(iov) {
		p := v.m.pages[c.page]
		if c.off < p.Len() {
			iov[n] = p.Bytes()[c.off:]
			n++
		}
		c.page++
		c.off = 0
	}
	return n
}
