// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segvec

import "testing"

func TestPushAndAsSlice(t *testing.T) {
	var root SegVecRoot[int]
	s := root.Extend()
	defer s.Close()

	s.Push(1)
	s.Push(2)
	s.Push(3)

	got := s.AsSlice()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("AsSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AsSlice() = %v, want %v", got, want)
		}
	}
}

func TestNestedScopeLIFO(t *testing.T) {
	var root SegVecRoot[int]
	outer := root.Extend()
	defer outer.Close()

	outer.Push(10)
	outer.Push(20)
	before := append([]int(nil), outer.AsSlice()...)

	inner := outer.Extend()
	inner.Push(100)
	inner.Push(200)
	if inner.Len() != 2 {
		t.Fatalf("inner.Len() = %d, want 2", inner.Len())
	}
	inner.Close()

	after := outer.AsSlice()
	if len(after) != len(before) {
		t.Fatalf("outer slice after inner Close = %v, want %v", after, before)
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("outer slice after inner Close = %v, want %v", after, before)
		}
	}
}

func TestPopWithinScopeOnly(t *testing.T) {
	var root SegVecRoot[int]
	outer := root.Extend()
	defer outer.Close()
	outer.Push(1)

	inner := outer.Extend()
	defer inner.Close()

	if _, ok := inner.Pop(); ok {
		t.Fatal("Pop() on empty inner scope should not remove outer's element")
	}
	if outer.Len() != 1 {
		t.Fatalf("outer.Len() = %d, want 1 (inner Pop must not reach into outer)", outer.Len())
	}
}

func TestSwapRemove(t *testing.T) {
	var root SegVecRoot[string]
	s := root.Extend()
	defer s.Close()
	s.Push("a")
	s.Push("b")
	s.Push("c")

	removed := s.SwapRemove(0)
	if removed != "a" {
		t.Fatalf("SwapRemove(0) = %q, want %q", removed, "a")
	}
	got := s.AsSlice()
	if len(got) != 2 || got[0] != "c" || got[1] != "b" {
		t.Fatalf("AsSlice() after SwapRemove(0) = %v, want [c b]", got)
	}
}

func TestClosedScopeDoesNotLeakIntoSibling(t *testing.T) {
	var root SegVecRoot[int]
	a := root.Extend()
	a.Push(1)
	a.Close()

	b := root.Extend()
	defer b.Close()
	b.Push(2)
	if got := b.AsSlice(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("AsSlice() = %v, want [2]; sibling scope leaked", got)
	}
}
