// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

// Chain is a read-only view of an inclusive in-order sub-range
// [left, right] of a Tree's elements, in some orientation (spec.md §4.7,
// component C7). An empty Chain stores nil for both endpoints.
//
// Per spec.md §3.1/§9, the four independent "flush" possibilities (left
// flush, right flush, both, neither) are collapsed into one uniform
// representation: a Chain stores its two endpoint nodes directly and
// carries no flush flags. MutChain adds flushLeft/flushRight, which record
// whether that endpoint tracks the base's cached leftmost/rightmost, so a
// MutChain mutation at that endpoint can keep the base's cache current
// in the same step (spec.md §4.7, "update the base's cached
// leftmost/rightmost if affected").
type Chain[T, D any] struct {
	base       *Tree[T, D]
	left, right *node[T, D]
	rev        bool
}

// Whole returns a Chain over the entire tree.
func Whole[T, D any](t *Tree[T, D]) Chain[T, D] {
	return Chain[T, D]{base: t, left: t.leftmost, right: t.rightmost}
}

// Len reports the number of elements in the chain, in O(log n): walkRange
// visits O(log n) nodes/whole-subtrees to cover the range, and each
// whole-subtree's element count is an O(1) lookup of its cached size
// (node.go's node.size).
func (c Chain[T, D]) Len() int {
	if c.left == nil {
		return 0
	}
	n := 0
	walkRange[T, D](c.left, c.right, rangeVisitor[T, D]{
		visitNode:    func(*node[T, D]) { n++ },
		visitSubtree: func(sub *node[T, D]) { n += sub.size },
	})
	return n
}

// Empty reports whether the chain holds no elements.
func (c Chain[T, D]) Empty() bool {
	return c.left == nil
}

// Fold computes the fold of the chain's elements, per spec.md §8.1
// invariant 4. Reversing a chain flips
// traversal order but never the underlying op argument order (spec.md
// §8.4 Scenario B): Fold always combines elements in base left-to-right
// order, because it is built from the same cached, orientation-
// independent node deltas that base traversal uses.
func (c Chain[T, D]) Fold() D {
	if c.left == nil {
		return c.base.settings.Empty()
	}
	acc := c.base.settings.Empty()
	op := c.base.settings.Op
	delta := c.base.settings.Delta
	walkRange[T, D](c.left, c.right, rangeVisitor[T, D]{
		visitNode:    func(n *node[T, D]) { acc = op(acc, delta(&n.value)) },
		visitSubtree: func(n *node[T, D]) { acc = op(acc, n.delta) },
	})
	return acc
}

// TakeLeftUntil returns the longest prefix (in the chain's current
// orientation) whose fold does not satisfy p, per spec.md §8.1 invariant
// 5 / §8.3 boundary behaviors 10-11.
func (c Chain[T, D]) TakeLeftUntil(p monotonePredicate[D]) Chain[T, D] {
	hit := c.searchBoundary(p)
	return c.leftPortionBefore(hit)
}

// DropLeftUntil is the complement of TakeLeftUntil.
func (c Chain[T, D]) DropLeftUntil(p monotonePredicate[D]) Chain[T, D] {
	hit := c.searchBoundary(p)
	return c.leftPortionFrom(hit)
}

// TakeRightUntil and DropRightUntil are TakeLeftUntil/DropLeftUntil run
// from the chain's other end: the longest suffix whose fold (accumulated
// right to left) does not satisfy p, and its complement. Expressed as
// Reversed().TakeLeftUntil(p).Reversed() rather than separate logic,
// since reversing twice restores the original orientation while the
// intervening reversed search does the right-to-left work.
func (c Chain[T, D]) TakeRightUntil(p monotonePredicate[D]) Chain[T, D] {
	return c.Reversed().TakeLeftUntil(p).Reversed()
}
func (c Chain[T, D]) DropRightUntil(p monotonePredicate[D]) Chain[T, D] {
	return c.Reversed().DropLeftUntil(p).Reversed()
}

func (c Chain[T, D]) searchBoundary(p monotonePredicate[D]) *node[T, D] {
	if c.left == nil {
		return nil
	}
	whole, own := identityProjection[T, D](c.base.settings.Delta)
	hit, _ := searchBoundaryInRange(c.left, c.right, c.base.settings.Empty(), c.base.settings.Op, whole, own, c.rev, p)
	return hit
}

// leftPortionBefore/leftPortionFrom split the chain at the node returned
// by searchBoundary (nil meaning "no element satisfies p", i.e. the
// whole chain is the prefix), honoring chain orientation: in a reversed
// chain the chain-order prefix corresponds to the tree-order suffix
// running from just past hit up to c.right.
func (c Chain[T, D]) leftPortionBefore(hit *node[T, D]) Chain[T, D] {
	if c.left == nil || hit == nil {
		return c
	}
	if !c.rev {
		prev := inOrderPrev(hit)
		if prev == nil || hit == c.left {
			return Chain[T, D]{base: c.base, rev: c.rev}
		}
		return Chain[T, D]{base: c.base, left: c.left, right: prev, rev: c.rev}
	}
	next := inOrderNext(hit)
	if next == nil || hit == c.right {
		return Chain[T, D]{base: c.base, rev: c.rev}
	}
	return Chain[T, D]{base: c.base, left: next, right: c.right, rev: c.rev}
}

func (c Chain[T, D]) leftPortionFrom(hit *node[T, D]) Chain[T, D] {
	if c.left == nil {
		return c
	}
	if hit == nil {
		return Chain[T, D]{base: c.base, rev: c.rev}
	}
	if !c.rev {
		return Chain[T, D]{base: c.base, left: hit, right: c.right, rev: c.rev}
	}
	return Chain[T, D]{base: c.base, left: c.left, right: hit, rev: c.rev}
}

// TakeAll detaches the chain's range into its own standalone Tree,
// leaving the base with everything else (spec.md §4.7 "take_all"). When
// the chain spans the base's entire current range, the base's root is
// swapped out wholesale rather than paying for an extraction.
//
// A Tree has no orientation of its own, so a reversed chain's
// presentation order is baked in physically via reverseSubtree before
// the tree is handed back: spec.md §8.4 Scenario B requires that
// append_all_left, built from two TakeAll calls, join its operands in
// each chain's own visual order, not the tree's underlying storage
// order.
func (c Chain[T, D]) TakeAll() *Tree[T, D] {
	if c.left == nil {
		return New(c.base.settings)
	}
	if c.left == c.base.leftmost && c.right == c.base.rightmost {
		root := c.base.root
		c.base.root, c.base.leftmost, c.base.rightmost, c.base.size = nil, nil, nil, 0
		if c.rev {
			root = reverseSubtree(root, &c.base.settings)
		}
		out := &Tree[T, D]{settings: c.base.settings, root: root}
		if root != nil {
			out.leftmost = root.leftmostDescendant()
			out.rightmost = root.rightmostDescendant()
			out.size = root.size
		}
		return out
	}

	extracted, residual := extractRange(c.left, c.right, &c.base.settings)
	n := c.Len()
	c.base.root = residual
	c.base.size -= n
	if residual != nil {
		c.base.leftmost = residual.leftmostDescendant()
		c.base.rightmost = residual.rightmostDescendant()
	} else {
		c.base.leftmost, c.base.rightmost = nil, nil
	}

	if c.rev {
		extracted = reverseSubtree(extracted, &c.base.settings)
	}
	out := &Tree[T, D]{settings: c.base.settings, root: extracted, size: n}
	if extracted != nil {
		out.leftmost = extracted.leftmostDescendant()
		out.rightmost = extracted.rightmostDescendant()
	}
	return out
}

// Reversed returns a chain over the same range with orientation flipped;
// spec.md §8.2 invariant 6 (double-reverse is a no-op) holds because rev
// is a plain bool toggle.
func (c Chain[T, D]) Reversed() Chain[T, D] {
	c.rev = !c.rev
	return c
}

// TakeLeft returns the first n elements of the chain in its current
// orientation, and DropLeft their complement. spec.md §4.7 describes this
// as a (count, carry) simplification run through the same C4 search;
// this module instead locates the n-th boundary directly via the tree's
// cached per-node subtree sizes (node.go's node.size, an order-statistics
// style augmentation kept alongside the user's own D) — an equivalent
// O(log n) position lookup, without requiring the caller's D to carry a
// count (see DESIGN.md).
func (c Chain[T, D]) TakeLeft(n int) Chain[T, D] {
	hit := c.searchCountBoundary(n)
	return c.leftPortionBefore(hit)
}

// DropLeft is the complement of TakeLeft.
func (c Chain[T, D]) DropLeft(n int) Chain[T, D] {
	hit := c.searchCountBoundary(n)
	return c.leftPortionFrom(hit)
}

// nthInChain returns the 0-indexed n-th node in the chain's current
// orientation, or nil if n is out of range, in O(log n) using the
// tree-wide rank/select helpers over cached subtree sizes (node.go).
func (c Chain[T, D]) nthInChain(n int) *node[T, D] {
	if c.left == nil || n < 0 {
		return nil
	}
	loRank, hiRank := inOrderRank(c.left), inOrderRank(c.right)
	if !c.rev {
		target := loRank + n
		if target > hiRank {
			return nil
		}
		return selectKth(c.base.root, target)
	}
	target := hiRank - n
	if target < loRank {
		return nil
	}
	return selectKth(c.base.root, target)
}

func (c Chain[T, D]) searchCountBoundary(n int) *node[T, D] {
	return c.nthInChain(n)
}

// GetAt returns the element at position i (0-based, in chain order).
// Panics with *IndexError if i is out of range.
func (c Chain[T, D]) GetAt(i int) T {
	hit := c.nthInChain(i)
	if hit == nil {
		panic(&IndexError{Index: i, Len: c.Len()})
	}
	return hit.value
}

// AppendAllRight returns a new standalone Tree holding c's elements
// (in chain order) followed by other's (in chain order), consuming both
// via C3 (spec.md §4.7 "append_all_right"). c and other are each taken in
// full via TakeAll (which, for a reversed chain, bakes that orientation
// into its result — see TakeAll) before the two standalone trees are
// joined; neither c, other, nor their base trees are meant to be read
// again afterward.
func (c Chain[T, D]) AppendAllRight(other Chain[T, D]) *Tree[T, D] {
	left := c.TakeAll()
	right := other.TakeAll()
	return joinTrees(left, right)
}

// AppendAllLeft is AppendAllRight's mirror: C3 at the left endpoint,
// yielding other's elements (in other's chain order) followed by c's.
func (c Chain[T, D]) AppendAllLeft(other Chain[T, D]) *Tree[T, D] {
	left := other.TakeAll()
	right := c.TakeAll()
	return joinTrees(left, right)
}

func joinTrees[T, D any](a, b *Tree[T, D]) *Tree[T, D] {
	root := appendTree(a.root, b.root, &a.settings)
	out := &Tree[T, D]{settings: a.settings, root: root, size: a.size + b.size}
	if root != nil {
		out.leftmost = root.leftmostDescendant()
		out.rightmost = root.rightmostDescendant()
	}
	return out
}

// MutChain is an exclusive, mutating borrow of a sub-range of a Tree's
// elements (spec.md §4.7, §5 "Borrow hierarchy"). Unlike Chain, mutation
// through a MutChain keeps the base Tree's cached leftmost/rightmost
// current whenever the mutated endpoint is flush with the base (spec.md
// §4.7's "update the base's cached leftmost/rightmost if affected").
type MutChain[T, D any] struct {
	base        *Tree[T, D]
	left, right *node[T, D]
	rev         bool
	flushLeft   bool
	flushRight  bool
}

// MutWhole returns a mutable chain over the entire tree.
func MutWhole[T, D any](t *Tree[T, D]) MutChain[T, D] {
	return MutChain[T, D]{base: t, left: t.leftmost, right: t.rightmost, flushLeft: true, flushRight: true}
}

func (m MutChain[T, D]) asChain() Chain[T, D] {
	return Chain[T, D]{base: m.base, left: m.left, right: m.right, rev: m.rev}
}

// Len, Fold, Empty delegate to the equivalent read-only view.
func (m MutChain[T, D]) Len() int    { return m.asChain().Len() }
func (m MutChain[T, D]) Empty() bool { return m.asChain().Empty() }
func (m MutChain[T, D]) Fold() D     { return m.asChain().Fold() }

// PopLeft removes and returns the chain's first element in its current
// orientation (spec.md §4.7 "pop_left"). ok is false on an empty chain.
func (m *MutChain[T, D]) PopLeft() (v T, ok bool) {
	if m.left == nil {
		return v, false
	}
	target := m.left
	if m.rev {
		target = m.right
	}

	// target is always a chain endpoint by construction; pop it directly
	// rather than walking the leftmost spine of the whole range root,
	// since the range root may extend past [left, right]. popSpecific may
	// physically unlink a different node (removed) than target, when
	// target had two children and its value was swapped down to its
	// predecessor — target's structural in-order position, and hence its
	// successor/predecessor, is unaffected by that value swap.
	popped, residual, removed := popSpecific(target, &m.base.settings)
	v = popped.value

	if m.left == m.right {
		m.left, m.right = nil, nil
	} else if target == m.left {
		m.left = inOrderNext(target)
	} else {
		m.right = inOrderPrev(target)
	}

	m.spliceOut(removed, residual)
	m.base.size--
	return v, true
}

// PopRight is the mirror of PopLeft for the chain's other end.
func (m *MutChain[T, D]) PopRight() (v T, ok bool) {
	m.rev = !m.rev
	v, ok = m.PopLeft()
	m.rev = !m.rev
	return v, ok
}

// GetAt returns the element at position i (0-based, in the chain's
// current orientation). Panics with *IndexError if i is out of range
// (spec.md §7 "Out-of-bounds index").
func (m MutChain[T, D]) GetAt(i int) T { return m.asChain().GetAt(i) }

// UpdateAt replaces the element at position i with f applied to its
// current value, refreshing every ancestor's cached fold but never the
// tree's shape (spec.md §4.2 "Bubble-up fold refresh"). Panics with
// *IndexError if i is out of range.
func (m *MutChain[T, D]) UpdateAt(i int, f func(T) T) {
	n := m.asChain().nthInChain(i)
	if n == nil {
		panic(&IndexError{Index: i, Len: m.Len()})
	}
	n.value = f(n.value)
	bubbleUpFoldRefresh(n, &m.base.settings)
}

// SetAt replaces the element at position i with v. Panics with
// *IndexError if i is out of range.
func (m *MutChain[T, D]) SetAt(i int, v T) {
	m.UpdateAt(i, func(T) T { return v })
}

// RemoveAt removes and returns the element at position i (spec.md §4.8,
// "remove_at"). Panics with *IndexError if i is out of range. Like
// PopLeft, the node physically unlinked from the tree (removed) may
// differ from the node at position i (target) when target has two
// children and its value was swapped down to its predecessor; target's
// own structural position — and so its role as a chain boundary — is
// unaffected by that swap.
func (m *MutChain[T, D]) RemoveAt(i int) T {
	target := m.asChain().nthInChain(i)
	if target == nil {
		panic(&IndexError{Index: i, Len: m.Len()})
	}

	popped, residual, removed := popSpecific(target, &m.base.settings)

	switch {
	case m.left == m.right:
		m.left, m.right = nil, nil
	case target == m.left:
		m.left = inOrderNext(target)
	case target == m.right:
		m.right = inOrderPrev(target)
	}

	m.spliceOut(removed, residual)
	m.base.size--
	return popped.value
}

// InsertAt inserts v so that it occupies position i (0-based, in the
// chain's current orientation), shifting the former occupant of i and
// everything after it one position over. insert_at(Len(), v) appends and
// is never out of bounds (spec.md §7, "insert_at(len, _) is not out of
// bounds"); any other i outside [0, Len()] panics with *IndexError.
func (m *MutChain[T, D]) InsertAt(i int, v T) {
	n := m.Len()
	if i < 0 || i > n {
		panic(&IndexError{Index: i, Len: n})
	}

	switch i {
	case 0:
		m.AppendLeft(v)
		return
	case n:
		m.AppendRight(v)
		return
	}

	target := m.asChain().nthInChain(i)
	leaf := newLeaf[T, D](v, m.base.settings.Delta(&v))
	m.graftBefore(target, leaf, !m.rev)
	m.base.size++
}

// spliceOut detaches target from the base tree structure by replacing it
// with residual (target's erstwhile single in-place subtree after
// removing its minimal descendant — see popSpecific), bubbling repair up
// from the point of change, and refreshing the base's root/endpoint
// caches.
func (m *MutChain[T, D]) spliceOut(target, residual *node[T, D]) {
	parent := target.parent
	wasRight := target.isRightChild
	target.detach()

	var newRoot *node[T, D]
	if parent == nil {
		newRoot = residual
		if newRoot != nil {
			newRoot.detach()
		}
	} else {
		parent.setChild(wasRight, residual)
		newRoot = bubbleUpRepair(parent, &m.base.settings)
	}

	m.base.root = newRoot
	if newRoot != nil {
		m.base.leftmost = newRoot.leftmostDescendant()
		m.base.rightmost = newRoot.rightmostDescendant()
	} else {
		m.base.leftmost, m.base.rightmost = nil, nil
	}
	if m.flushLeft {
		m.left = m.base.leftmost
	}
	if m.flushRight {
		m.right = m.base.rightmost
	}
}

// popSpecific removes node target from the tree it belongs to in place,
// returning (target's original value as a standalone leaf, the residual
// subtree that occupies the removed slot, the actual node object
// unlinked from the tree structure — which is target itself only when
// target has at most one child). When target has two children, its
// value is swapped down with its in-order predecessor and the
// predecessor (which by construction has no right child) is the one
// physically removed; spliceOut must act on that node, not target.
func popSpecific[T, D any](target *node[T, D], s *Settings[T, D]) (popped, residual, removed *node[T, D]) {
	if target.left != nil && target.right != nil {
		pred := target.left.rightmostDescendant()
		target.value, pred.value = pred.value, target.value
		target.recalcFold(s)
		return popSpecific(pred, s)
	}

	popped = &node[T, D]{value: target.value, rank: 0, size: 1}
	if target.left != nil {
		residual = target.left
	} else {
		residual = target.right
	}
	residual.detach()
	return popped, residual, target
}

// AppendLeft inserts v as the chain's new first element in its current
// orientation (spec.md §4.7 "append_left").
func (m *MutChain[T, D]) AppendLeft(v T) {
	leaf := newLeaf[T, D](v, m.base.settings.Delta(&v))
	if m.left == nil {
		m.base.root = leaf
		m.base.leftmost, m.base.rightmost = leaf, leaf
		m.left, m.right = leaf, leaf
		m.base.size++
		return
	}

	target := m.left
	if m.rev {
		target = m.right
	}
	m.graftBefore(target, leaf, !m.rev)
	if !m.rev {
		m.left = leaf
	} else {
		m.right = leaf
	}
	m.base.size++
}

// AppendRight is the mirror of AppendLeft.
func (m *MutChain[T, D]) AppendRight(v T) {
	m.rev = !m.rev
	m.AppendLeft(v)
	m.rev = !m.rev
}

// graftBefore inserts leaf immediately before (before=true) or after
// (before=false) target in tree in-order position, by descending to an
// absent child slot and bubbling repair back up.
func (m *MutChain[T, D]) graftBefore(target, leaf *node[T, D], before bool) {
	s := &m.base.settings
	var parent *node[T, D]
	var onRight bool
	if before {
		if target.left == nil {
			parent, onRight = target, false
		} else {
			parent = target.left.rightmostDescendant()
			parent, onRight = parent, true
		}
	} else {
		if target.right == nil {
			parent, onRight = target, true
		} else {
			parent = target.right.leftmostDescendant()
			parent, onRight = parent, false
		}
	}
	parent.setChild(onRight, leaf)
	newRoot := bubbleUpRepair(leaf, s)
	m.base.root = newRoot
	m.base.leftmost = newRoot.leftmostDescendant()
	m.base.rightmost = newRoot.rightmostDescendant()
	if m.flushLeft {
		m.left = m.base.leftmost
	}
	if m.flushRight {
		m.right = m.base.rightmost
	}
}

// SimplifiedChain is a read-only view over the same range as some Chain,
// but folding/searching through a secondary monoid D2 rather than the
// tree's own D, per simplify.go (spec.md §4.7/§9). Go methods cannot
// introduce a type parameter beyond their receiver's, so the projection
// from Chain[T, D] to a D2 of the caller's choosing is a free function
// (Simplify) rather than a Chain method; what it returns is this type,
// which carries its own Fold/TakeLeftUntil/DropLeftUntil over D2.
type SimplifiedChain[T, D, D2 any] struct {
	left, right *node[T, D]
	rev         bool
	op2         func(D2, D2) D2
	empty2      func() D2
	whole       func(*node[T, D]) D2
	own         func(*node[T, D]) D2
}

// Simplify projects c's fold domain from D down to D2 via s. The
// projection composes with whatever base delta c's tree already uses, so
// chaining Simplify calls nests the projections right-to-left (spec.md
// §9 option (a)) without needing a heterogeneous Simplifier list.
func Simplify[T, D, D2 any](c Chain[T, D], s Simplifier[D, D2]) SimplifiedChain[T, D, D2] {
	baseWhole, baseOwn := identityProjection[T, D](c.base.settings.Delta)
	whole, own := composeProjection[T, D, D2](baseWhole, baseOwn, s)
	empty2 := s.Empty2
	if empty2 == nil {
		empty := c.base.settings.Empty
		empty2 = func() D2 { return s.Simplify(empty()) }
	}
	return SimplifiedChain[T, D, D2]{
		left: c.left, right: c.right, rev: c.rev,
		op2: s.Op2, empty2: empty2, whole: whole, own: own,
	}
}

func (c SimplifiedChain[T, D, D2]) Empty() bool { return c.left == nil }

// Fold computes the chain's fold in D2, in the same traversal order Chain
// uses: orientation reversal never changes op2's argument order, only
// which end of the range is treated as "left".
func (c SimplifiedChain[T, D, D2]) Fold() D2 {
	if c.left == nil {
		return c.empty2()
	}
	acc := c.empty2()
	walkRange[T, D](c.left, c.right, rangeVisitor[T, D]{
		visitNode:    func(n *node[T, D]) { acc = c.op2(acc, c.own(n)) },
		visitSubtree: func(n *node[T, D]) { acc = c.op2(acc, c.whole(n)) },
	})
	return acc
}

// TakeLeftUntil and DropLeftUntil mirror Chain's, searching on the
// projected D2 fold instead of the tree's own D.
func (c SimplifiedChain[T, D, D2]) TakeLeftUntil(p monotonePredicate[D2]) SimplifiedChain[T, D, D2] {
	hit := c.searchBoundary(p)
	return c.leftPortionBefore(hit)
}
func (c SimplifiedChain[T, D, D2]) DropLeftUntil(p monotonePredicate[D2]) SimplifiedChain[T, D, D2] {
	hit := c.searchBoundary(p)
	return c.leftPortionFrom(hit)
}

func (c SimplifiedChain[T, D, D2]) searchBoundary(p monotonePredicate[D2]) *node[T, D] {
	if c.left == nil {
		return nil
	}
	hit, _ := searchBoundaryInRange(c.left, c.right, c.empty2(), c.op2, c.whole, c.own, c.rev, p)
	return hit
}

func (c SimplifiedChain[T, D, D2]) leftPortionBefore(hit *node[T, D]) SimplifiedChain[T, D, D2] {
	if c.left == nil || hit == nil {
		return c
	}
	if !c.rev {
		prev := inOrderPrev(hit)
		if prev == nil || hit == c.left {
			c.left, c.right = nil, nil
			return c
		}
		c.right = prev
		return c
	}
	next := inOrderNext(hit)
	if next == nil || hit == c.right {
		c.left, c.right = nil, nil
		return c
	}
	c.left = next
	return c
}

// SimplifyAny is Simplify's dynamic-depth counterpart: it accepts an
// AnySimplifier (spec.md §9 option (b)), whose D2 is erased to any, so a
// composition of runtime-determined length can be built up via repeated
// AnySimplifier.Then calls before ever touching a Chain.
func SimplifyAny[T, D any](c Chain[T, D], a AnySimplifier[T, D]) SimplifiedChain[T, D, any] {
	return SimplifiedChain[T, D, any]{
		left: c.left, right: c.right, rev: c.rev,
		op2: a.op2, empty2: a.empty, whole: a.whole, own: a.own,
	}
}

func (c SimplifiedChain[T, D, D2]) leftPortionFrom(hit *node[T, D]) SimplifiedChain[T, D, D2] {
	if c.left == nil {
		return c
	}
	if hit == nil {
		c.left, c.right = nil, nil
		return c
	}
	if !c.rev {
		c.left = hit
		return c
	}
	c.right = hit
	return c
}
