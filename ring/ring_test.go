// Copyright 2026 The Packetcore Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"github.com/zc-net/packetcore/ring"
)

func TestAppendIteratesInInsertionOrder(t *testing.T) {
	r := ring.New[int](4)
	fm, err := r.Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	for _, v := range []int{1, 2, 3} {
		if err := fm.Append(v); err != nil {
			t.Fatalf("Append(%d) error = %v", v, err)
		}
	}

	frame := fm.Inner()
	if got := frame.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	var got []int
	frame.All()(func(v *int) bool {
		got = append(got, *v)
		return true
	})
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNextFreezesAndOpensNewFrame(t *testing.T) {
	r := ring.New[int](2)
	fm, _ := r.Frame()
	fm.Append(1)
	fm.Append(2)

	frame1, fm2, err := fm.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	fm2.Append(10)

	if got := frame1.Len(); got != 2 {
		t.Fatalf("frame1.Len() = %d, want 2", got)
	}
	if got := fm2.Inner().Len(); got != 1 {
		t.Fatalf("frame2.Len() = %d, want 1", got)
	}

	v, ok := frame1.At(0)
	if !ok || *v != 1 {
		t.Fatalf("frame1.At(0) = %v, %v, want 1, true", v, ok)
	}
	v, ok = frame1.At(1)
	if !ok || *v != 2 {
		t.Fatalf("frame1.At(1) = %v, %v, want 2, true", v, ok)
	}
	if _, ok := frame1.At(2); ok {
		t.Fatal("frame1.At(2) = true, want false")
	}
}

func TestReleaseAtBaseSkipsDeadInteriorFrames(t *testing.T) {
	r := ring.New[int](2)
	fm, _ := r.Frame()
	fm.Append(1)
	frame1, fm2, _ := fm.Next()
	fm2.Append(2)
	frame2, fm3, _ := fm2.Next()
	fm3.Append(3)
	frame3 := fm3.Inner()

	// frame2 is interior (not base, not tail): releasing it only marks it
	// dead, it doesn't move base.
	frame2.Release()

	// Releasing frame1 (the base) must walk forward past the dead frame2
	// and land base on frame3.
	frame1.Release()

	v, ok := frame3.At(0)
	if !ok || *v != 3 {
		t.Fatalf("frame3.At(0) = %v, %v, want 3, true", v, ok)
	}

	frame3.Release()
}

func TestTryPromoteOnlySucceedsOnHeadFrame(t *testing.T) {
	r := ring.New[int](2)
	fm, _ := r.Frame()
	fm.Append(1)
	frame1, fm2, _ := fm.Next()

	// A newer frame is open; frame1 is no longer promotable.
	if _, ok := frame1.TryPromote(); ok {
		t.Fatal("TryPromote() on superseded frame = true, want false")
	}

	frame2 := fm2.Inner()
	promoted, ok := frame2.TryPromote()
	if !ok {
		t.Fatal("TryPromote() on head frame = false, want true")
	}
	promoted.Append(99)
	if got := frame2.Len(); got != 1 {
		t.Fatalf("frame2.Len() after promoted append = %d, want 1", got)
	}
}

func TestGrowthPreservesElements(t *testing.T) {
	r := ring.New[int](2) // capacity 2: forces growth almost immediately
	fm, err := r.Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	for i := 0; i < 20; i++ {
		if err := fm.Append(i); err != nil {
			t.Fatalf("Append(%d) error = %v", i, err)
		}
	}

	frame := fm.Inner()
	if got := frame.Len(); got != 20 {
		t.Fatalf("Len() = %d, want 20", got)
	}
	for i := 0; i < 20; i++ {
		v, ok := frame.At(i)
		if !ok || *v != i {
			t.Fatalf("At(%d) = %v, %v, want %d, true", i, v, ok, i)
		}
	}
}

func TestGrowthPreservesMultipleFrames(t *testing.T) {
	r := ring.New[int](1)
	fm, _ := r.Frame()
	fm.Append(1)
	frame1, fm2, _ := fm.Next()
	fm2.Append(2)
	fm2.Append(3)
	fm2.Append(4) // several rounds of growth by now
	frame2 := fm2.Inner()

	v, ok := frame1.At(0)
	if !ok || *v != 1 {
		t.Fatalf("frame1.At(0) = %v, %v, want 1, true", v, ok)
	}
	for i, want := range []int{2, 3, 4} {
		v, ok := frame2.At(i)
		if !ok || *v != want {
			t.Fatalf("frame2.At(%d) = %v, %v, want %d, true", i, v, ok, want)
		}
	}

	frame1.Release()
	frame2.Release()
}
