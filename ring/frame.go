// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// RingFrame is a frozen, read-only view of one frame: the elements
// appended between the frame's header and the next one (or the ring's
// current head, if this is still the newest frame). RingFrame values may
// be released in any order; see Release.
type RingFrame[T any] struct {
	ring  *FramedRing[T]
	start uint64
}

// RingFrameMut is the single, exclusive mutable handle to the frame
// currently open at the ring's head. A FramedRing has at most one
// RingFrameMut alive at a time: Frame opens the first one, and Next
// consumes the current handle to freeze it and open the next.
type RingFrameMut[T any] struct {
	f RingFrame[T]
}

// Frame opens a new mutable frame at the ring's current head. Callers
// normally call this once, then drive further frames through
// RingFrameMut.Next.
func (r *FramedRing[T]) Frame() (*RingFrameMut[T], error) {
	start := r.head
	idx, err := r.push(slot[T]{isHeader: true, header: frameHeader{next: start + 1, isLive: true}})
	if err != nil {
		return nil, err
	}
	return &RingFrameMut[T]{f: RingFrame[T]{ring: r, start: idx}}, nil
}

// Append writes elem into the mutable frame and advances the ring's head.
func (fm *RingFrameMut[T]) Append(elem T) error {
	r := fm.f.ring
	if _, err := r.push(slot[T]{elem: elem}); err != nil {
		return err
	}
	r.at(fm.f.start).header.next++
	return nil
}

// Next freezes the current frame as a read-only RingFrame and opens a new
// mutable frame at the ring's new head, consuming fm.
func (fm *RingFrameMut[T]) Next() (*RingFrame[T], *RingFrameMut[T], error) {
	r := fm.f.ring
	head := r.head
	idx, err := r.push(slot[T]{isHeader: true, header: frameHeader{next: head + 1, isLive: true}})
	if err != nil {
		return nil, nil, err
	}
	closed := fm.f
	return &closed, &RingFrameMut[T]{f: RingFrame[T]{ring: r, start: idx}}, nil
}

// Inner returns the read-only view of the frame this handle is currently
// writing to.
func (fm *RingFrameMut[T]) Inner() *RingFrame[T] { return &fm.f }

// header returns this frame's header slot.
func (f *RingFrame[T]) header() *frameHeader { return &f.ring.at(f.start).header }

// Len returns the number of elements appended to this frame.
func (f *RingFrame[T]) Len() int { return int(f.header().next - f.start - 1) }

// At returns the i'th element appended to this frame, or false if i is out
// of range.
func (f *RingFrame[T]) At(i int) (*T, bool) {
	idx := f.start + 1 + uint64(i)
	if idx >= f.header().next {
		return nil, false
	}
	return &f.ring.at(idx).elem, true
}

// All returns a range-over-func iterator yielding pointers to this frame's
// elements in insertion order.
func (f *RingFrame[T]) All() func(yield func(*T) bool) {
	return func(yield func(*T) bool) {
		end := f.header().next
		for i := f.start + 1; i < end; i++ {
			if !yield(&f.ring.at(i).elem) {
				return
			}
		}
	}
}

// TryPromote re-obtains mutability over f iff f is still the ring's head
// frame, i.e. no newer frame has been opened (via Next) since f was
// frozen. Reports false otherwise, leaving f unchanged.
func (f *RingFrame[T]) TryPromote() (*RingFrameMut[T], bool) {
	if f.header().next != f.ring.head {
		return nil, false
	}
	return &RingFrameMut[T]{f: RingFrame[T]{ring: f.ring, start: f.start}}, true
}

// Release drops f. If f sits at the ring's base, base advances to the
// next live frame header in the chain (or to head, if none remain). If f
// is the newest frame (its header.next equals head, i.e. nothing was
// appended after it), head rolls back and its space is reclaimed
// immediately. Otherwise f is marked dead and its space stays occupied
// until base walks forward past it.
//
// Release must be called at most once per RingFrame and never on one that
// has been promoted back to a RingFrameMut.
func (f *RingFrame[T]) Release() {
	r := f.ring
	here := r.at(f.start)

	if r.head == here.header.next {
		r.head = f.start
		return
	}

	if r.base == f.start {
		headerIdx := f.start
		for {
			nextIdx := r.at(headerIdx).header.next
			if nextIdx >= r.head {
				r.base = r.head
				return
			}
			headerIdx = nextIdx
			if r.at(headerIdx).header.isLive {
				r.base = headerIdx
				return
			}
		}
	}

	here.header.isLive = false
}
