// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

// Package foldlist implements an ordered sequence container backed by a
// weak-AVL (WAVL) balanced binary search tree, augmented at every
// internal position with the fold of its subtree under a caller-supplied
// monoid (an associative Op, a per-element Delta projection, and an
// Empty identity).
//
// Tree is the engine: O(log n) append (join), O(log n) extraction of an
// arbitrary contiguous range (split), and O(log n) fold-driven binary
// search for the first element at which a monotone predicate over the
// running fold becomes true. Chain and MutChain present read-only and
// mutable windows ("slices") onto a Tree — possibly reversed, possibly
// simplified to a cheaper secondary monoid via Simplify — without
// re-expressing any of the tree algorithms. List layers index-addressed
// convenience (GetAt/SetAt/InsertAt/RemoveAt) on top of the same engine.
//
// A Tree (and any Chain/MutChain into it) is single-owner: concurrent
// use from multiple goroutines without external synchronization is not
// supported.
package foldlist
