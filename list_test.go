// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT
//
// adapted for a monoid-folding ordered sequence by the foldlist authors.

package foldlist_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tascofield/foldlist"
)

// item is a small struct element, used here (rather than a plain int) so
// List's index operations are exercised against a type whose equality
// isn't just "==", matching how cmp.Diff is meant to be used.
type item struct {
	Name   string
	Weight int
}

func weightSettings() foldlist.Settings[item, int] {
	return foldlist.Settings[item, int]{
		Op:    func(a, b int) int { return a + b },
		Delta: func(it *item) int { return it.Weight },
		Empty: func() int { return 0 },
	}
}

func collectItems(l *foldlist.List[item, int]) []item {
	var out []item
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func TestList_PushAndIndex(t *testing.T) {
	l := foldlist.NewList(weightSettings())
	l.PushBack(item{"a", 1})
	l.PushBack(item{"b", 2})
	l.PushFront(item{"z", 9})

	want := []item{{"z", 9}, {"a", 1}, {"b", 2}}
	if diff := cmp.Diff(want, collectItems(l)); diff != "" {
		t.Fatalf("unexpected sequence (-want +got):\n%s", diff)
	}
	require.Equal(t, 12, l.Fold())
	require.Equal(t, item{"a", 1}, l.GetAt(1))
}

func TestList_SetUpdateInsertRemove(t *testing.T) {
	l := foldlist.NewList(weightSettings())
	for _, it := range []item{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}} {
		l.PushBack(it)
	}

	l.SetAt(1, item{"bb", 20})
	l.UpdateAt(2, func(it item) item { it.Weight *= 10; return it })
	l.InsertAt(0, item{"front", 100})
	removed := l.RemoveAt(l.Len() - 1)

	require.Equal(t, item{"d", 4}, removed)
	want := []item{{"front", 100}, {"a", 1}, {"bb", 20}, {"c", 30}}
	if diff := cmp.Diff(want, collectItems(l)); diff != "" {
		t.Fatalf("unexpected sequence (-want +got):\n%s", diff)
	}
	require.Equal(t, 100+1+20+30, l.Fold())
}

func TestList_SliceIsHalfOpen(t *testing.T) {
	l := foldlist.NewList(weightSettings())
	for _, it := range []item{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}} {
		l.PushBack(it)
	}

	mid := l.Slice(1, 4)
	require.Equal(t, 3, mid.Len())
	require.Equal(t, 2+3+4, mid.Fold())

	var got []item
	for v := range mid.All() {
		got = append(got, v)
	}
	want := []item{{"b", 2}, {"c", 3}, {"d", 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected slice (-want +got):\n%s", diff)
	}

	empty := l.Slice(2, 2)
	require.True(t, empty.Empty())
	require.Equal(t, 0, empty.Fold())
}

func TestList_IndexOutOfRangePanics(t *testing.T) {
	l := foldlist.NewList(weightSettings())
	l.PushBack(item{"a", 1})

	require.Panics(t, func() { l.GetAt(1) })
	require.Panics(t, func() { l.GetAt(-1) })
	require.Panics(t, func() { l.InsertAt(2, item{"x", 0}) })
	require.NotPanics(t, func() { l.InsertAt(1, item{"x", 0}) })
}

func TestList_Clone(t *testing.T) {
	l := foldlist.NewList(weightSettings())
	l.PushBack(item{"a", 1})
	l.PushBack(item{"b", 2})

	clone := l.Clone()
	clone.SetAt(0, item{"a", 100})

	require.Equal(t, item{"a", 1}, l.GetAt(0))
	require.Equal(t, item{"a", 100}, clone.GetAt(0))
}
