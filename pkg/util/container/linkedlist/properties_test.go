// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestListProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("push back then iterate preserves order", prop.ForAll(
		func(vals []int) bool {
			l := New[int]()
			for _, v := range vals {
				if l.PushBack(v) != nil {
					return false
				}
			}
			var rev []int
			for _, v := range l.Backward() {
				rev = append(rev, v)
			}
			slices.Reverse(rev)
			return l.Len() == len(vals) &&
				slices.Equal(vals, values(l)) &&
				slices.Equal(vals, rev)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("sort yields a non-decreasing permutation", prop.ForAll(
		func(vals []int) bool {
			l := Of(vals...)
			SortOrdered(l)
			got := values(l)
			want := slices.Clone(vals)
			slices.Sort(want)
			return slices.Equal(want, got)
		},
		gen.SliceOf(gen.IntRange(-20, 20)),
	))

	properties.Property("find returns the lowest matching position", prop.ForAll(
		func(vals []int, q int) bool {
			return Find(Of(vals...), q) == slices.Index(vals, q)
		},
		gen.SliceOf(gen.IntRange(0, 10)),
		gen.IntRange(0, 12),
	))

	properties.Property("insert then erase at the same position is the identity", prop.ForAll(
		func(vals []int, pos int) bool {
			pos = pos % (len(vals) + 1)
			l := Of(vals...)
			if l.Insert(pos, -1) != nil {
				return false
			}
			if v, err := l.Get(pos); err != nil || v != -1 {
				return false
			}
			return l.Erase(pos) == nil && slices.Equal(vals, values(l))
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
