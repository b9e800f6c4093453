// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buffer

// Multibytes is a logical byte stream made up of zero or more discontiguous
// Direct pages, in order. Pages may be empty; cursors skip over them
// transparently. Multibytes itself holds no read position; Cursor and View
// carry that state so many independent readers can share one stream.
type Multibytes struct {
	pages []Direct
}

// New returns an empty Multibytes.
func New() *Multibytes {
	return &Multibytes{}
}

// Append adds d as the new last page. Appending an empty page is legal and
// has no observable effect beyond being skipped by cursors.
func (m *Multibytes) Append(d Direct) {
	m.pages = append(m.pages, d)
}

// PageCount returns the number of pages backing the stream, including empty
// ones.
func (m *Multibytes) PageCount() int { return len(m.pages) }

// Len returns the total number of bytes across all pages.
func (m *Multibytes) Len() int {
	total := 0
	for _, p := range m.pages {
		total += p.Len()
	}
	return total
}

// Cursor returns a cursor positioned at the start of the stream.
func (m *Multibytes) Cursor() Cursor {
	return Cursor{}
}

// SplitTo removes every byte strictly before c from the stream and returns
// it as a new, independently owned Multibytes. c must have been trued up
// against m (see Cursor.advance / View methods); callers normally obtain c
// from a View over m rather than constructing one by hand.
//
// Pages entirely before c move by reference (no copy); if c falls in the
// middle of a page, that page is split in place via Direct.SplitTo.
func (m *Multibytes) SplitTo(c Cursor) *Multibytes {
	out := &Multibytes{pages: make([]Direct, 0, c.page+1)}
	for i := 0; i < c.page && len(m.pages) > 0; i++ {
		out.pages = append(out.pages, m.pages[0])
		m.pages = m.pages[1:]
	}
	if c.off > 0 && len(m.pages) > 0 {
		head := m.pages[0].SplitTo(c.off)
		out.pages = append(out.pages, head)
	}
	return out
}
