// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

import "iter"

// All ranges over c's elements in its current orientation, per iter.Seq.
// Forward iteration is built directly on walkRange (spec.md §4.5,
// component C5) rather than on repeated PopLeft/GetAt calls, so it costs
// O(range length) total instead of O(range length · log n); reversed
// iteration steps node by node (see walkInOrderReversed).
func (c Chain[T, D]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c.left == nil {
			return
		}
		if !c.rev {
			walkInOrder(c.left, c.right, yield)
			return
		}
		walkInOrderReversed(c.left, c.right, yield)
	}
}

// Enumerate ranges over (index, element) pairs, index counted from 0 in
// the chain's current orientation, per iter.Seq2.
func (c Chain[T, D]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range c.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// walkInOrder yields every element of [lo, hi] left to right, stopping
// early if yield returns false.
func walkInOrder[T, D any](lo, hi *node[T, D], yield func(T) bool) bool {
	ok := true
	walkRange[T, D](lo, hi, rangeVisitor[T, D]{
		visitNode: func(n *node[T, D]) {
			if ok {
				ok = yield(n.value)
			}
		},
		visitSubtree: func(sub *node[T, D]) {
			if ok {
				ok = visitSubtreeInOrder(sub, yield)
			}
		},
	})
	return ok
}

// walkInOrderReversed yields every element of [lo, hi] right to left.
// walkRange always delivers nodes/subtrees in ascending in-order, so it
// is not reusable here without buffering the whole range; descending
// iteration instead steps node-by-node via inOrderPrev, at the same
// O(log n) worst-case per-step cost as PopRight, without mutating
// anything.
func walkInOrderReversed[T, D any](lo, hi *node[T, D], yield func(T) bool) bool {
	for n := hi; ; n = inOrderPrev(n) {
		if !yield(n.value) {
			return false
		}
		if n == lo {
			return true
		}
	}
}

func visitSubtreeInOrder[T, D any](n *node[T, D], yield func(T) bool) bool {
	if n.left != nil && !visitSubtreeInOrder(n.left, yield) {
		return false
	}
	if !yield(n.value) {
		return false
	}
	if n.right != nil && !visitSubtreeInOrder(n.right, yield) {
		return false
	}
	return true
}
