// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buffer

// Cursor is a position within a Multibytes stream: a page index plus a byte
// offset within that page. A Cursor is always kept "trued up": its offset
// never points past the end of its current page unless it sits exactly at
// the stream's end (page == PageCount(), off == 0).
//
// Cursor is a value type; copying it copies the read position, which is how
// independent readers (View) fork off the same stream.
type Cursor struct {
	page int
	off  int
}

// Page returns the index of the page the cursor currently sits in.
func (c Cursor) Page() int { return c.page }

// Offset returns the byte offset within the current page.
func (c Cursor) Offset() int { return c.off }

// AtEnd reports whether the cursor sits exactly at the end of m.
func (c Cursor) AtEnd(m *Multibytes) bool {
	return c.page == len(m.pages) && c.off == 0
}

// advance moves the cursor forward by n bytes and trues it up against m.
// Reports whether the cursor landed on a valid position (false means n
// overran the end of the stream).
func (c *Cursor) advance(m *Multibytes, n int) bool {
	c.off += n
	return c.trueUp(m)
}

func (c *Cursor) trueUp(m *Multibytes) bool {
	for {
		if c.page >= len(m.pages) {
			return c.page == len(m.pages) && c.off == 0
		}
		l := m.pages[c.page].Len()
		if c.off >= l {
			c.off -= l
			c.page++
			continue
		}
		return true
	}
}

// Remaining returns the number of bytes left in m from c's position to the
// end of the stream.
func (c Cursor) Remaining(m *Multibytes) int {
	total := 0
	for i := c.page; i < len(m.pages); i++ {
		total += m.pages[i].Len()
	}
	total -= c.off
	if total < 0 {
		return 0
	}
	return total
}

// HasAtLeast reports whether Remaining(m) >= n, short-circuiting as soon as
// the answer is known rather than always summing every remaining page.
func (c Cursor) HasAtLeast(m *Multibytes, n int) bool {
	if n <= 0 {
		return true
	}
	need := n + c.off
	sum := 0
	for i := c.page; i < len(m.pages); i++ {
		sum += m.pages[i].Len()
		if sum >= need {
			return true
		}
	}
	return false
}

// RunOffEnd returns how many bytes a failed advance ran past the end of
// the stream: 0 if the cursor is within range, otherwise the shortfall
// (additional bytes that would need to arrive for the cursor to become
// valid). Only meaningful on a cursor produced by a failed Cursor.AdvanceBy.
func (c Cursor) RunOffEnd(m *Multibytes) int {
	if c.page < len(m.pages) {
		return 0
	}
	return c.off
}

// AdvanceBy returns a copy of c advanced by n bytes against m, and whether
// the result lands within the stream. On failure the returned cursor still
// reports its overrun via RunOffEnd, and calling AdvanceBy(m, 0) on it
// later re-trues it against a since-grown m.
func (c Cursor) AdvanceBy(m *Multibytes, n int) (Cursor, bool) {
	nc := c
	ok := nc.advance(m, n)
	return nc, ok
}
