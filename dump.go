// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/xlab/treeprint"
)

// DumpOptions controls what Dump renders alongside each node's value.
type DumpOptions struct {
	// ShowRank prints each node's WAVL rank.
	ShowRank bool
	// ShowFold prints each node's cached subtree fold, via fmt.Sprintf("%v", delta).
	ShowFold bool
	// ShowSize prints each node's cached subtree size.
	ShowSize bool
	// Color enables fatih/color highlighting of the value/rank/fold/size
	// labels; disabled automatically when the destination isn't a
	// terminal (color.NoColor, which the color package already detects).
	Color bool
}

// Dump renders the tree's structure as an indented tree diagram, useful
// during development and in bug reports (spec.md names no such
// requirement directly, but every engine this complex needs one — see
// DESIGN.md). An empty tree renders as a single "(empty)" line.
func (t *Tree[T, D]) Dump(opts DumpOptions) string {
	root := treeprint.New()
	if t.root == nil {
		root.SetValue("(empty)")
		return root.String()
	}
	root.SetValue(fmt.Sprintf("foldlist (size=%d)", t.size))
	dumpNode(root, t.root, opts)
	return root.String()
}

func dumpNode[T, D any](parent treeprint.Tree, n *node[T, D], opts DumpOptions) {
	label := nodeLabel(n, opts)
	if n.left == nil && n.right == nil {
		parent.AddNode(label)
		return
	}
	branch := parent.AddBranch(label)
	if n.left != nil {
		dumpNode(branch.AddBranch("L"), n.left, opts)
	} else {
		branch.AddBranch("L").SetValue("·")
	}
	if n.right != nil {
		dumpNode(branch.AddBranch("R"), n.right, opts)
	} else {
		branch.AddBranch("R").SetValue("·")
	}
}

func nodeLabel[T, D any](n *node[T, D], opts DumpOptions) string {
	value := fmt.Sprintf("%v", n.value)
	if opts.Color {
		value = color.New(color.FgHiWhite, color.Bold).Sprint(value)
	}
	label := value
	if opts.ShowRank {
		label += " " + fieldLabel("rank", n.rank, opts.Color, color.FgYellow)
	}
	if opts.ShowSize {
		label += " " + fieldLabel("size", n.size, opts.Color, color.FgCyan)
	}
	if opts.ShowFold {
		label += " " + fieldLabel("fold", n.delta, opts.Color, color.FgGreen)
	}
	return label
}

func fieldLabel(name string, v any, colored bool, attr color.Attribute) string {
	s := fmt.Sprintf("%s=%v", name, v)
	if colored {
		return color.New(attr).Sprint(s)
	}
	return s
}

// String implements fmt.Stringer with a plain, field-free dump — the
// quick form used by test failure messages and %v formatting of a Tree
// embedded in a larger struct.
func (t *Tree[T, D]) String() string {
	return t.Dump(DumpOptions{})
}
