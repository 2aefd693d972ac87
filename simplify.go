// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

// Simplifier records a secondary monoid D2 projected from a tree's
// primary fold domain D, per spec.md §4.7/§9: Simplify must satisfy
// Simplify(Op(a,b)) == Op2(Simplify(a), Simplify(b)) and Empty2() ==
// Simplify(Empty()) for the projection to be sound (spec.md §6 "Required
// contract on user callables"). Once installed on a Chain via Simplify,
// every subsequent fold/search on that chain is computed in D2 instead
// of D.
type Simplifier[D, D2 any] struct {
	Simplify func(D) D2
	Op2      func(D2, D2) D2
	Empty2   func() D2
}

// wholeDelta and ownDelta, below, are the two projections searchFoldIn /
// searchFoldReversed need: "the whole cached fold of a subtree" and "this
// node's own per-element delta", both passed through whatever simplifier
// chain is currently active. identityProjection builds these for the
// unsimplified case (D2 == D); composeProjection builds them for a
// Simplifier layered on top of an existing pair of projections — which is
// how composing simplifications applies them right-to-left through
// function composition (spec.md §4.7), without needing a heterogeneous
// list of Simplifier types: each new layer simply closes over the
// previous layer's projection functions (spec.md §9 option (a), "keep the
// types nested").
func identityProjection[T, D any](delta func(*T) D) (whole func(*node[T, D]) D, own func(*node[T, D]) D) {
	whole = func(n *node[T, D]) D { return n.delta }
	own = func(n *node[T, D]) D { return delta(&n.value) }
	return
}

func composeProjection[T, D, D2 any](
	prevWhole, prevOwn func(*node[T, D]) D,
	simp Simplifier[D, D2],
) (whole func(*node[T, D]) D2, own func(*node[T, D]) D2) {
	whole = func(n *node[T, D]) D2 { return simp.Simplify(prevWhole(n)) }
	own = func(n *node[T, D]) D2 { return simp.Simplify(prevOwn(n)) }
	return
}

// AnySimplifier erases the D2 type parameter so a chain of simplifications
// of runtime-determined depth can be assembled without Go generics needing
// a heterogeneous list; offered for callers that need dynamic composition
// depth, at the cost of one extra indirection per fold/search call
// compared to the direct-use nested closures above (documented trade-off,
// spec.md §9).
type AnySimplifier[T, D any] struct {
	op2   func(any, any) any
	empty func() any
	whole func(*node[T, D]) any
	own   func(*node[T, D]) any
}

// Identity returns an AnySimplifier equivalent to no simplification at
// all, computing folds with the tree's own op, delta and empty.
func Identity[T, D any](op func(D, D) D, delta func(*T) D, empty func() D) AnySimplifier[T, D] {
	return AnySimplifier[T, D]{
		op2:   func(a, b any) any { return op(a.(D), b.(D)) },
		empty: func() any { return empty() },
		whole: func(n *node[T, D]) any { return n.delta },
		own:   func(n *node[T, D]) any { return delta(&n.value) },
	}
}

// Then layers simp on top of a (the identity, or a prior Then result),
// implementing right-to-left composition: the newest simplifier is
// applied last when projecting a node's cached D down to the final D2.
func (a AnySimplifier[T, D]) Then(simp Simplifier[any, any]) AnySimplifier[T, D] {
	prevWhole, prevOwn, prevEmpty := a.whole, a.own, a.empty
	empty := simp.Empty2
	if empty == nil {
		empty = func() any { return simp.Simplify(prevEmpty()) }
	}
	return AnySimplifier[T, D]{
		op2:   simp.Op2,
		empty: empty,
		whole: func(n *node[T, D]) any { return simp.Simplify(prevWhole(n)) },
		own:   func(n *node[T, D]) any { return simp.Simplify(prevOwn(n)) },
	}
}
