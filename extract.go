// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

// extractRange severs the inclusive in-order range [lo, hi] out of the
// tree containing them, returning (extracted, residual): extracted is a
// well-formed standalone tree of exactly that range (root has no parent),
// and residual is a well-formed tree of everything else. O(log n) —
// spec.md §4.6, component C6.
//
// Implementation note: spec.md describes two "taker" state machines
// climbing from lo and hi toward their common ancestor, each tracking
// whether its side is currently inside or outside the kept range. This
// module instead composes C6 from two simpler, symmetric primitives
// (splitBefore, splitAfter) that each climb from a single endpoint to the
// root, accumulating the "kept" and "discarded" halves purely via
// appendTree — the same O(log n) amortized bound (each call's climb does
// O(log n) appendTree joins whose combined cost telescopes to O(log n),
// the standard join-based balanced-tree split argument), and the same
// "all joins use append_tree" contract, but easier to verify by
// inspection than the five-state taker machine (see DESIGN.md).
func extractRange[T, D any](lo, hi *node[T, D], s *Settings[T, D]) (extracted, residual *node[T, D]) {
	loPath, hiPath := ancestorChain(lo), ancestorChain(hi)
	invariant(loPath[len(loPath)-1] == hiPath[len(hiPath)-1] && inOrderRank(lo) <= inOrderRank(hi),
		"extractRange: endpoints do not bound a range of one tree")

	if lo == hi {
		before, fromLo := splitBefore(lo, s)
		afterHi, extracted := splitAfterKeepingHead(fromLo, s)
		residual = appendTree(before, afterHi, s)
		return extracted, residual
	}

	before, _ := splitBefore(lo, s)
	uptoHi, afterHi := splitAfter(hi, s)
	residual = appendTree(before, afterHi, s)
	return uptoHi, residual
}

// splitStep records one level of the climb from an endpoint to the root:
// the ancestor p, which side the climbing node was on, and p's other
// child (the sibling subtree that must be filed to the correct side).
type splitStep[T, D any] struct {
	p        *node[T, D]
	wasRight bool
	sibling  *node[T, D]
}

func recordClimb[T, D any](n *node[T, D]) []splitStep[T, D] {
	var steps []splitStep[T, D]
	for cur := n; cur.parent != nil; cur = cur.parent {
		p := cur.parent
		var sib *node[T, D]
		if cur.isRightChild {
			sib = p.left
		} else {
			sib = p.right
		}
		steps = append(steps, splitStep[T, D]{p: p, wasRight: cur.isRightChild, sibling: sib})
	}
	return steps
}

// isolate detaches n from its current position, turning it into a
// standalone rank-0 single-node tree. Must be called only on a node whose
// old children/parent are no longer referenced elsewhere.
func isolate[T, D any](n *node[T, D]) *node[T, D] {
	n.left, n.right = nil, nil
	n.rank = 0
	n.size = 1
	n.detach()
	return n
}

// splitBefore splits the tree containing n into (everything strictly
// before n in-order, n and everything from n onward), given only a
// pointer to n. O(log n).
func splitBefore[T, D any](n *node[T, D], s *Settings[T, D]) (before, fromN *node[T, D]) {
	steps := recordClimb(n)

	before = n.left
	originalRight := n.right
	fromN = appendTree(isolate(n), originalRight, s)

	for _, st := range steps {
		p := isolate(st.p)
		if st.wasRight {
			before = appendTree(appendTree(st.sibling, p, s), before, s)
		} else {
			fromN = appendTree(fromN, appendTree(p, st.sibling, s), s)
		}
	}
	return before, fromN
}

// splitAfter splits the tree containing n (typically the result of a
// prior splitBefore call that left n somewhere in its "fromN" half) into
// (n and everything before it, in-order; and everything strictly after
// n), given only a pointer to n. O(log n).
func splitAfter[T, D any](n *node[T, D], s *Settings[T, D]) (uptoN, after *node[T, D]) {
	steps := recordClimb(n)

	originalLeft := n.left
	uptoN = appendTree(originalLeft, isolate(n), s)
	after = nil

	for _, st := range steps {
		p := isolate(st.p)
		if st.wasRight {
			uptoN = appendTree(uptoN, appendTree(p, st.sibling, s), s)
		} else {
			after = appendTree(appendTree(st.sibling, p, s), after, s)
		}
	}
	return uptoN, after
}

// splitAfterKeepingHead handles the lo == hi special case of extractRange:
// root's leftmost node is lo itself (since it was just isolated by
// splitBefore), so the extracted range is that single node and everything
// else is "after".
func splitAfterKeepingHead[T, D any](root *node[T, D], s *Settings[T, D]) (after, extracted *node[T, D]) {
	popped, residual, needsRepair := popLeftmostInPlace(root, s)
	if needsRepair {
		residual = bubbleUpRepair(residual, s)
	}
	extracted = isolate(popped)
	return residual, extracted
}
