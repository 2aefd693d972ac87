// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

import "iter"

// List is an index-addressed convenience layer over a Tree, specialized
// to the common case where callers want both positional access
// (GetAt/SetAt/InsertAt/RemoveAt) and fold queries over the same sequence
// (spec.md §4.8).
//
// node.go's per-node size cache already gives every Tree, regardless of
// its D, exact O(log n) position lookups (inOrderRank/selectKth); List
// therefore needs no separate "counted" product monoid running alongside
// the caller's own D the way spec.md §4.8 originally sketches — it is a
// thin set of index-translating wrappers around Tree/Chain/MutChain, not
// a second tree instantiation (see DESIGN.md).
type List[T, D any] struct {
	tree *Tree[T, D]
}

// NewList returns an empty List configured with s.
func NewList[T, D any](s Settings[T, D]) *List[T, D] {
	return &List[T, D]{tree: New(s)}
}

// ListFromSeq bulk-constructs a List from seq, per FromSeq.
func ListFromSeq[T, D any](s Settings[T, D], sizeHint int, seq iter.Seq[T]) *List[T, D] {
	return &List[T, D]{tree: FromSeq(s, sizeHint, seq)}
}

func (l *List[T, D]) Len() int    { return l.tree.Len() }
func (l *List[T, D]) Empty() bool { return l.tree.Empty() }
func (l *List[T, D]) Fold() D     { return l.tree.Fold() }

// Clone deep-copies the list.
func (l *List[T, D]) Clone() *List[T, D] {
	return &List[T, D]{tree: l.tree.Clone()}
}

// GetAt returns the element at index i. Panics with *IndexError if i is
// out of [0, Len()).
func (l *List[T, D]) GetAt(i int) T {
	return Whole(l.tree).GetAt(i)
}

// SetAt replaces the element at index i with v. Panics with *IndexError
// if i is out of [0, Len()).
func (l *List[T, D]) SetAt(i int, v T) {
	m := MutWhole(l.tree)
	m.SetAt(i, v)
}

// UpdateAt replaces the element at index i with f applied to its current
// value. Panics with *IndexError if i is out of [0, Len()).
func (l *List[T, D]) UpdateAt(i int, f func(T) T) {
	m := MutWhole(l.tree)
	m.UpdateAt(i, f)
}

// InsertAt inserts v at index i, shifting the former occupant of i and
// everything after it one position over. InsertAt(Len(), v) appends and
// is never out of bounds; any other i outside [0, Len()] panics with
// *IndexError.
func (l *List[T, D]) InsertAt(i int, v T) {
	m := MutWhole(l.tree)
	m.InsertAt(i, v)
}

// RemoveAt removes and returns the element at index i. Panics with
// *IndexError if i is out of [0, Len()).
func (l *List[T, D]) RemoveAt(i int) T {
	m := MutWhole(l.tree)
	return m.RemoveAt(i)
}

// PushFront and PushBack append at either end without shifting an index.
func (l *List[T, D]) PushFront(v T) {
	m := MutWhole(l.tree)
	m.AppendLeft(v)
}
func (l *List[T, D]) PushBack(v T) {
	m := MutWhole(l.tree)
	m.AppendRight(v)
}

// Slice returns an immutable Chain view over the half-open index range
// [lo, hi), per spec.md §4.8's "Slice(lo, hi int)". Panics with
// *IndexError if the range does not satisfy 0 <= lo <= hi <= Len().
func (l *List[T, D]) Slice(lo, hi int) Chain[T, D] {
	n := l.tree.Len()
	if lo < 0 || lo > hi || hi > n {
		panic(&IndexError{Index: hi, Len: n})
	}
	if lo == hi {
		return Chain[T, D]{base: l.tree}
	}
	whole := Whole(l.tree)
	left := whole.nthInChain(lo)
	right := whole.nthInChain(hi - 1)
	return Chain[T, D]{base: l.tree, left: left, right: right}
}

// All ranges over the list's elements in order, per iter.Seq.
func (l *List[T, D]) All() iter.Seq[T] {
	return Whole(l.tree).All()
}
