// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// sumSettings is the op=+, delta=identity, empty=0 monoid used throughout
// this file, matching spec.md §8.4 Scenario C and the random-op property
// test (Scenario E); every random op below is driven over plain ints so
// the oracle can just be a Go slice.
func sumSettings() Settings[int, int] {
	return Settings[int, int]{
		Op:    func(a, b int) int { return a + b },
		Delta: func(v *int) int { return *v },
		Empty: func() int { return 0 },
	}
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// TestScenarioC_RemoveAt is spec.md §8.4 Scenario C: 100 ints 0..99 under
// sum, removing index 50 returns 50, shortens the sequence by one, drops
// the fold by exactly the removed value, and leaves index 50 holding what
// was previously at index 51.
func TestScenarioC_RemoveAt(t *testing.T) {
	s := sumSettings()
	tree := New(s)
	m := MutWhole(tree)
	for i := 0; i < 100; i++ {
		m.AppendRight(i)
	}

	foldBefore := tree.Fold()
	removed := m.RemoveAt(50)

	require.Equal(t, 50, removed)
	require.Equal(t, 99, tree.Len())
	require.Equal(t, foldBefore-50, tree.Fold())
	require.Equal(t, 51, m.GetAt(50))
}

// TestScenarioD_SplitAndRejoin is spec.md §8.4 Scenario D / invariant 7:
// for every split point k, taking the left-k prefix and the complementary
// suffix out of independent clones and rejoining them via AppendAllRight
// reproduces the original sequence element-wise, with equal folds at
// every prefix.
func TestScenarioD_SplitAndRejoin(t *testing.T) {
	s := sumSettings()
	base := New(s)
	m := MutWhole(base)
	for i := 0; i < 37; i++ {
		m.AppendRight(i * i)
	}
	want := collectInts(base)

	for k := 0; k <= base.Len(); k++ {
		clone := base.Clone()
		view := Whole(clone)
		leftChain, rightChain := view.TakeLeft(k), view.DropLeft(k)
		left := leftChain.TakeAll()
		right := rightChain.TakeAll()
		joined := Whole(left).AppendAllRight(Whole(right))

		got := collectInts(joined)
		require.Equalf(t, want, got, "k=%d", k)

		runningFold := 0
		for i, v := range got {
			runningFold += v
			require.Equal(t, runningFold, Whole(joined).TakeLeft(i+1).Fold())
		}
	}
}

// TestScenarioF_FoldDrivenSearchExactness is spec.md §8.4 Scenario F:
// under op=max with delta=identity, TakeLeftUntil(v > t) must return the
// longest prefix all of whose elements are <= t, for a deliberately
// non-monotone (but still fold-monotone, since max is monotone under
// appending any value) value sequence.
func TestScenarioF_FoldDrivenSearchExactness(t *testing.T) {
	s := Settings[int, int]{
		Op:    func(a, b int) int { return max(a, b) },
		Delta: func(v *int) int { return *v },
		Empty: func() int { return -1 << 62 },
	}
	values := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	tree := New(s)
	m := MutWhole(tree)
	for _, v := range values {
		m.AppendRight(v)
	}

	for threshold := -1; threshold <= 10; threshold++ {
		wantLen := 0
		for wantLen < len(values) {
			running := s.Empty()
			for _, v := range values[:wantLen+1] {
				running = s.Op(running, v)
			}
			if running > threshold {
				break
			}
			wantLen++
		}

		th := threshold
		prefix := Whole(tree).TakeLeftUntil(func(v int) bool { return v > th })
		require.Equal(t, wantLen, prefix.Len())
		for _, v := range collectInts(tree)[:wantLen] {
			require.LessOrEqual(t, v, th)
		}
	}
}

// TestScenarioE_RandomOpsAgainstOracle is spec.md §8.4 Scenario E: a long
// run of random operations checked step by step against a trivial vector
// oracle, asserting length, fold, and the element sequence match after
// every step (popped and removed elements are checked as they are
// returned), plus, when DebugAssertions is set, the engine's own
// structural-integrity check.
func TestScenarioE_RandomOpsAgainstOracle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := sumSettings()
		tree := New(s)
		m := MutWhole(tree)
		var oracle []int

		// spec.md's Scenario E issues 20000 ops in a single run; rapid
		// instead explores many independent runs (100 by default, more
		// under -rapid.checks), each picking its own random op sequence,
		// so a shorter per-run step count still gives broader aggregate
		// coverage than one long fixed run would.
		const steps = 2000
		for step := 0; step < steps; step++ {
			op := rapid.SampledFrom([]string{
				"append_left", "append_right", "pop_left", "pop_right",
				"set_at", "remove_at", "insert_at",
				"take_left", "drop_left", "take_left_until", "drop_left_until",
				"reverse", "simplify", "split_and_rejoin",
			}).Draw(rt, "op")

			switch op {
			case "append_left":
				v := rapid.IntRange(-1000, 1000).Draw(rt, "v")
				m.AppendLeft(v)
				oracle = append([]int{v}, oracle...)

			case "append_right":
				v := rapid.IntRange(-1000, 1000).Draw(rt, "v")
				m.AppendRight(v)
				oracle = append(oracle, v)

			case "pop_left":
				v, ok := m.PopLeft()
				require.Equal(rt, len(oracle) > 0, ok)
				if ok {
					require.Equal(rt, oracle[0], v)
					oracle = oracle[1:]
				}

			case "pop_right":
				v, ok := m.PopRight()
				require.Equal(rt, len(oracle) > 0, ok)
				if ok {
					require.Equal(rt, oracle[len(oracle)-1], v)
					oracle = oracle[:len(oracle)-1]
				}

			case "set_at":
				if len(oracle) > 0 {
					i := rapid.IntRange(0, len(oracle)-1).Draw(rt, "i")
					v := rapid.IntRange(-1000, 1000).Draw(rt, "v")
					m.SetAt(i, v)
					oracle[i] = v
				}

			case "remove_at":
				if len(oracle) > 0 {
					i := rapid.IntRange(0, len(oracle)-1).Draw(rt, "i")
					got := m.RemoveAt(i)
					require.Equal(rt, oracle[i], got)
					oracle = append(oracle[:i], oracle[i+1:]...)
				}

			case "insert_at":
				i := rapid.IntRange(0, len(oracle)).Draw(rt, "i")
				v := rapid.IntRange(-1000, 1000).Draw(rt, "v")
				m.InsertAt(i, v)
				tail := append([]int{}, oracle[i:]...)
				oracle = append(append(oracle[:i], v), tail...)

			case "take_left":
				k := rapid.IntRange(0, len(oracle)).Draw(rt, "k")
				view := m.asChain()
				got := collectInts2(view.TakeLeft(k))
				require.Equal(rt, oracle[:k], got)
				require.Equal(rt, sum(oracle[:k]), view.TakeLeft(k).Fold())

			case "drop_left":
				k := rapid.IntRange(0, len(oracle)).Draw(rt, "k")
				got := collectInts2(m.asChain().DropLeft(k))
				require.Equal(rt, oracle[k:], got)

			case "take_left_until":
				th := rapid.IntRange(-2000, 2000).Draw(rt, "threshold")
				wantLen := prefixLenBySum(oracle, th)
				got := m.asChain().TakeLeftUntil(func(acc int) bool { return acc > th })
				require.Equal(rt, wantLen, got.Len())

			case "drop_left_until":
				th := rapid.IntRange(-2000, 2000).Draw(rt, "threshold")
				wantLen := prefixLenBySum(oracle, th)
				got := m.asChain().DropLeftUntil(func(acc int) bool { return acc > th })
				require.Equal(rt, len(oracle)-wantLen, got.Len())

			case "reverse":
				// Reversed() is a pure flag flip (spec.md §8.2 invariant 6);
				// the oracle is kept in the chain's current-orientation
				// view throughout this loop, so it must flip too.
				m.rev = !m.rev
				for i, j := 0, len(oracle)-1; i < j; i, j = i+1, j-1 {
					oracle[i], oracle[j] = oracle[j], oracle[i]
				}

			case "simplify":
				ident := Identity[int, int](s.Op, s.Delta, s.Empty)
				got := SimplifyAny(m.asChain(), ident).Fold()
				require.Equal(rt, tree.Fold(), got)

			case "split_and_rejoin":
				if len(oracle) == 0 {
					break
				}
				k := rapid.IntRange(0, len(oracle)).Draw(rt, "k")
				clone := tree.Clone()
				view := Whole(clone)
				view.rev = m.rev
				leftChain, rightChain := view.TakeLeft(k), view.DropLeft(k)
				left := leftChain.TakeAll()
				right := rightChain.TakeAll()
				joined := Whole(left).AppendAllRight(Whole(right))
				require.Equal(rt, oracle, collectInts(joined))
			}

			require.Equal(rt, len(oracle), tree.Len())
			require.Equal(rt, sum(oracle), tree.Fold())
			require.Equal(rt, oracle, collectInts2(m.asChain()))
			if DebugAssertions {
				tree.checkInvariants()
			}
		}
	})
}

func prefixLenBySum(oracle []int, threshold int) int {
	running := 0
	n := 0
	for n < len(oracle) {
		running += oracle[n]
		if running > threshold {
			break
		}
		n++
	}
	return n
}

func collectInts(tree *Tree[int, int]) []int {
	var out []int
	for v := range Whole(tree).All() {
		out = append(out, v)
	}
	return out
}

func collectInts2(c Chain[int, int]) []int {
	var out []int
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}
