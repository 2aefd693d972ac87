// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intSettings() Settings[int, int] {
	return Settings[int, int]{
		Op:    func(a, b int) int { return a + b },
		Delta: func(v *int) int { return *v },
		Empty: func() int { return 0 },
	}
}

func TestNewLeaf(t *testing.T) {
	s := intSettings()
	n := newLeaf[int, int](7, s.Delta(&[]int{7}[0]))
	assert.Equal(t, 7, n.value)
	assert.Equal(t, 7, n.delta)
	assert.EqualValues(t, 0, n.rank)
	assert.Equal(t, 1, n.size)
	assert.Nil(t, n.left)
	assert.Nil(t, n.right)
}

func TestSizeOfNilIsZero(t *testing.T) {
	assert.Equal(t, 0, sizeOf[int, int](nil))
}

func TestRecalcFoldLeaf(t *testing.T) {
	s := intSettings()
	n := &node[int, int]{value: 5}
	n.recalcFold(&s)
	assert.Equal(t, 5, n.delta)
	assert.Equal(t, 1, n.size)
}

func TestRecalcFoldBothChildren(t *testing.T) {
	s := intSettings()
	left := newLeaf[int, int](1, 1)
	right := newLeaf[int, int](3, 3)
	n := &node[int, int]{value: 2}
	n.setChild(false, left)
	n.setChild(true, right)
	n.relinkChildrenAndRecalc(&s)

	assert.Equal(t, 6, n.delta) // 1 + 2 + 3
	assert.Equal(t, 3, n.size)
	assert.Same(t, n, left.parent)
	assert.Same(t, n, right.parent)
	assert.False(t, left.isRightChild)
	assert.True(t, right.isRightChild)
}

func TestInOrderRankAndSelectKth(t *testing.T) {
	s := intSettings()

	// Hand-build a small balanced shape:
	//        3
	//      /   \
	//     1     5
	//    / \   / \
	//   0   2 4   6
	leaves := make([]*node[int, int], 7)
	for i := range leaves {
		leaves[i] = newLeaf[int, int](i, i)
	}
	n1 := &node[int, int]{value: 1, rank: 1}
	n1.setChild(false, leaves[0])
	n1.setChild(true, leaves[2])
	n1.relinkChildrenAndRecalc(&s)

	n5 := &node[int, int]{value: 5, rank: 1}
	n5.setChild(false, leaves[4])
	n5.setChild(true, leaves[6])
	n5.relinkChildrenAndRecalc(&s)

	root := &node[int, int]{value: 3, rank: 2}
	root.setChild(false, n1)
	root.setChild(true, n5)
	root.relinkChildrenAndRecalc(&s)

	require.Equal(t, 7, root.size)
	for i := 0; i < 7; i++ {
		got := selectKth[int, int](root, i)
		require.NotNil(t, got)
		assert.Equal(t, i, got.value)
		assert.Equal(t, i, inOrderRank[int, int](got))
	}

	assert.Nil(t, selectKth[int, int](root, -1))
	assert.Nil(t, selectKth[int, int](root, 7))
}

func TestCloneSubtreeIsIndependent(t *testing.T) {
	s := intSettings()
	left := newLeaf[int, int](1, 1)
	right := newLeaf[int, int](3, 3)
	n := &node[int, int]{value: 2, rank: 1}
	n.setChild(false, left)
	n.setChild(true, right)
	n.relinkChildrenAndRecalc(&s)

	clone := cloneSubtree(n, &s)
	require.NotSame(t, n, clone)
	require.NotSame(t, n.left, clone.left)
	require.NotSame(t, n.right, clone.right)
	assert.Equal(t, n.delta, clone.delta)
	assert.Equal(t, n.size, clone.size)

	clone.left.value = 99
	bubbleUpFoldRefresh(clone.left, &s)
	assert.NotEqual(t, n.delta, clone.delta)
	assert.Equal(t, 1, n.left.value)
}
