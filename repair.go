// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

// updateAndRepair restores the WAVL rank invariant and the augmentation
// invariant at *np (a pointer to the slot holding this node — the slot may
// itself be rewritten by a rotation), given that one of its children may
// have just changed rank or been replaced. It reports whether this node's
// own rank changed, which tells the caller whether repair must continue at
// the parent.
//
// Follows the Haeupler-Sen-Tarjan WAVL rebalancing rules (spec.md §4.2),
// mirrored across left/right via a runtime direction flag rather than a
// type-level parameter (spec.md §9 design note, option (b) — grounded on
// the pack's danswartzendruber/avl, which threads a runtime sign int
// through its rotation helpers the same way).
func updateAndRepair[T, D any](np **node[T, D], s *Settings[T, D]) (rankChanged bool) {
	n := *np
	oldRank := n.rank

	lr, rr := rankOf(n.left), rankOf(n.right)
	ldiff, rdiff := int(n.rank)-int(lr), int(n.rank)-int(rr)

	switch {
	case absInt(ldiff-rdiff) >= 3:
		// Catastrophic imbalance: only reachable after a bulk splice put a
		// much taller subtree under a much shorter one. Shed both children,
		// turning n into a rank-0 leaf, and re-append left, n and right in
		// order, letting appendTree rebuild a valid shape from scratch.
		left, right := n.left, n.right
		n.left, n.right = nil, nil
		n.rank = 0
		n.detach()
		n.recalcFold(s)
		left.detach()
		right.detach()
		merged := appendTree(appendTree(left, n, s), right, s)
		*np = merged
		if merged != nil {
			merged.detach()
		}
		return true

	case ldiff == 2:
		repairTall(np, s, false)
	case rdiff == 2:
		repairTall(np, s, true)

	default:
		// Rank difference on both sides is small: no rotation needed, but
		// the node's own rank may still need nudging into the admissible
		// window {smaller_child+1, larger_child+1} (spec.md §4.2, "rank
		// difference <= 1" case). Keep the current rank when it is already
		// admissible, to minimize disruption to ancestors.
		lo, hi := minInt8(lr, rr)+1, maxInt8(lr, rr)+1
		if n.rank < lo || n.rank > hi {
			n.rank = hi
		}
	}

	n = *np
	n.relinkChildrenAndRecalc(s)
	return n.rank != oldRank
}

// repairTall handles the case where the child on side `tall` (false=left,
// true=right) is two ranks taller than its sibling. It is the workhorse of
// the WAVL promote/rotate/double-rotate decision (spec.md §4.2).
func repairTall[T, D any](np **node[T, D], s *Settings[T, D], tall bool) {
	n := *np
	child := n.child(tall)

	outer := child.child(tall)      // child's grandchild on the same side as tall
	inner := child.child(!tall)     // child's grandchild on the opposite side
	outerRank, innerRank := rankOf(outer), rankOf(inner)
	childRank := child.rank

	switch {
	case outerRank == childRank-1:
		// Single rotation: child rises to replace n.
		*np = rotateSingle(n, child, tall, s)

	case innerRank == childRank-1:
		// Double rotation through inner: inner rises above both n and child.
		*np = rotateDouble(n, child, inner, tall, s)

	default:
		// Both grandchildren are childRank-2: demote the tall child instead
		// of rotating, and keep repairing upward from it.
		child.rank--
		childPtr := child
		updateAndRepair(&childPtr, s)
		n.setChild(tall, childPtr)
		n.rank--
	}
}

// rotateSingle performs the classic single rotation: child (on side `tall`
// of n) becomes the new subtree root, n becomes child's child on the
// opposite side, and child's opposite-side subtree becomes n's new `tall`
// child.
func rotateSingle[T, D any](n, child *node[T, D], tall bool, s *Settings[T, D]) *node[T, D] {
	handoff := child.child(!tall)
	n.setChild(tall, handoff)
	child.setChild(!tall, n)

	n.rank = maxInt8(rankOf(n.left), rankOf(n.right)) + 1
	n.relinkChildrenAndRecalc(s)

	child.rank = maxInt8(rankOf(child.left), rankOf(child.right)) + 1
	child.relinkChildrenAndRecalc(s)
	return child
}

// rotateDouble performs the WAVL double rotation through `inner`, the
// grandchild on the opposite side of `tall`. inner rises to become the new
// subtree root.
func rotateDouble[T, D any](n, child, inner *node[T, D], tall bool, s *Settings[T, D]) *node[T, D] {
	a := inner.child(!tall)
	b := inner.child(tall)

	n.setChild(tall, a)
	child.setChild(!tall, b)

	inner.setChild(!tall, n)
	inner.setChild(tall, child)

	child.rank = maxInt8(rankOf(child.left), rankOf(child.right)) + 1
	child.relinkChildrenAndRecalc(s)

	n.rank = maxInt8(rankOf(n.left), rankOf(n.right)) + 1
	n.relinkChildrenAndRecalc(s)

	// child's (and n's) ranks may have changed; a further repair pass on the
	// displaced subtree (now child, which is inner's new left-or-right
	// child) may be required per spec.md §4.2.
	childPtr := child
	updateAndRepair(&childPtr, s)
	if tall {
		inner.right = childPtr
	} else {
		inner.left = childPtr
	}

	inner.rank = inner.rank + 1
	inner.relinkChildrenAndRecalc(s)
	return inner
}

// bubbleUpRepair walks from n toward the root, repeatedly calling
// updateAndRepair, stopping the structural phase as soon as a repair
// reports no further rank change; it then continues walking purely to
// refresh delta on the remaining ancestors (spec.md §4.2 "Bubble-up
// repair"). Must be called after any local mutation: leaf insertion,
// endpoint replacement, or a user callback mutating an element in place.
//
// Returns the new root of the tree n belongs to.
func bubbleUpRepair[T, D any](n *node[T, D], s *Settings[T, D]) *node[T, D] {
	cur := n
	for cur != nil {
		parent := cur.parent
		wasRight := cur.isRightChild

		changed := updateAndRepair(&cur, s)

		if parent == nil {
			cur.detach()
			return cur
		}
		parent.setChild(wasRight, cur)

		if !changed {
			return bubbleUpFoldRefresh(parent, s)
		}
		cur = parent
	}
	return cur
}

// bubbleUpFoldRefresh walks from n to the root recomputing delta on every
// ancestor, without touching rank (spec.md §4.2 "Bubble-up fold refresh").
// Used when an element's fold contribution changed but no rank changed
// (e.g. in-place mutation via a user callback).
func bubbleUpFoldRefresh[T, D any](n *node[T, D], s *Settings[T, D]) *node[T, D] {
	cur := n
	var root *node[T, D]
	for cur != nil {
		cur.recalcFold(s)
		root = cur
		cur = cur.parent
	}
	return root
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt8(a, b int8) int8 {
	if a > b {
		return a
	}
	return b
}

func minInt8(a, b int8) int8 {
	if a < b {
		return a
	}
	return b
}
