// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

// appendTree joins tree a (left) and tree b (right) in order into a single
// well-formed tree, in O(log n) — spec.md §4.3, component C3. Either
// argument may be nil. The result's root has no parent.
func appendTree[T, D any](a, b *node[T, D], s *Settings[T, D]) *node[T, D] {
	if a == nil {
		b.detach()
		return b
	}
	if b == nil {
		a.detach()
		return a
	}
	a.detach()
	b.detach()

	var out *node[T, D]
	ra, rb := a.rank, b.rank
	switch {
	case int(ra) >= int(rb)+2:
		out = appendDescendingRight(a, b, s)
	case int(rb) >= int(ra)+2:
		out = appendDescendingLeft(a, b, s)
	default:
		out = joinAtRoot(a, b, s)
	}
	out.detach()
	return out
}

// appendDescendingRight handles rank(a) >= rank(b)+2: descend a's rightmost
// spine until a node whose rank is within 1 of b's is found, graft b there
// as the new right subtree, and repair upward.
func appendDescendingRight[T, D any](a, b *node[T, D], s *Settings[T, D]) *node[T, D] {
	spine := a
	for int(spine.rank) >= int(b.rank)+2 && spine.right != nil {
		spine = spine.right
	}

	merged := appendTree(spine.right, b, s)
	spine.right = nil
	spine.setChild(true, merged)

	return bubbleUpRepair(spine, s)
}

// appendDescendingLeft is the mirror: rank(b) >= rank(a)+2.
func appendDescendingLeft[T, D any](a, b *node[T, D], s *Settings[T, D]) *node[T, D] {
	spine := b
	for int(spine.rank) >= int(a.rank)+2 && spine.left != nil {
		spine = spine.left
	}

	merged := appendTree(a, spine.left, s)
	spine.left = nil
	spine.setChild(false, merged)

	return bubbleUpRepair(spine, s)
}

// joinAtRoot handles |rank(a) - rank(b)| <= 1: pop the leftmost leaf of b to
// use as the new joining root, with a as its left subtree and the residual
// of b as its right. When a is exactly one rank taller, pop from a's
// rightmost spine instead, to keep the new root's rank close to both
// sides.
func joinAtRoot[T, D any](a, b *node[T, D], s *Settings[T, D]) *node[T, D] {
	if a.rank > b.rank {
		popped, residual, _ := popRightmostInPlace(a, s)
		popped.setChild(false, residual)
		popped.setChild(true, b)
		popped.rank = maxInt8(rankOf(residual), rankOf(b)) + 1
		popped.relinkChildrenAndRecalc(s)
		return popped
	}

	popped, residual, _ := popLeftmostInPlace(b, s)
	popped.setChild(false, a)
	popped.setChild(true, residual)
	popped.rank = maxInt8(rankOf(a), rankOf(residual)) + 1
	popped.relinkChildrenAndRecalc(s)
	return popped
}

// popLeftmostInPlace recursively descends the left spine of n, removes the
// leftmost leaf, and returns (poppedLeaf, residualSubtreeRoot, needsRepair).
// residualSubtreeRoot has no parent link set (the caller installs it).
func popLeftmostInPlace[T, D any](n *node[T, D], s *Settings[T, D]) (popped, residual *node[T, D], needsRepair bool) {
	if n.left == nil {
		popped = n
		residual = n.right
		popped.left, popped.right = nil, nil
		popped.rank = 0
		popped.size = 1
		residual.detach()
		return popped, residual, false
	}

	var childRepair bool
	popped, residual, childRepair = popLeftmostInPlace(n.left, s)
	n.left = residual
	if residual != nil {
		residual.parent = n
		residual.isRightChild = false
	}

	if childRepair {
		np := n
		changed := updateAndRepair(&np, s)
		return popped, np, changed
	}

	n.recalcFold(s)
	return popped, n, false
}

// popRightmostInPlace is the mirror of popLeftmostInPlace.
func popRightmostInPlace[T, D any](n *node[T, D], s *Settings[T, D]) (popped, residual *node[T, D], needsRepair bool) {
	if n.right == nil {
		popped = n
		residual = n.left
		popped.left, popped.right = nil, nil
		popped.rank = 0
		popped.size = 1
		residual.detach()
		return popped, residual, false
	}

	var childRepair bool
	popped, residual, childRepair = popRightmostInPlace(n.right, s)
	n.right = residual
	if residual != nil {
		residual.parent = n
		residual.isRightChild = true
	}

	if childRepair {
		np := n
		changed := updateAndRepair(&np, s)
		return popped, np, changed
	}

	n.recalcFold(s)
	return popped, n, false
}
