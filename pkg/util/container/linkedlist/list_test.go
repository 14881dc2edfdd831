// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import (
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

// checkInvariants walks the chain in both directions and verifies that the
// links agree with each other and with the recorded length.
func checkInvariants[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.size == 0 {
		require.Equal(t, nilNode, l.head)
		require.Equal(t, nilNode, l.tail)
		return
	}
	require.Equal(t, nilNode, l.nodes[l.head].prev)
	require.Equal(t, nilNode, l.nodes[l.tail].next)
	var forward, backward []int
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		forward = append(forward, id)
		require.LessOrEqual(t, len(forward), l.size, "cycle in forward links")
	}
	for id := l.tail; id != nilNode; id = l.nodes[id].prev {
		backward = append(backward, id)
		require.LessOrEqual(t, len(backward), l.size, "cycle in backward links")
	}
	require.Len(t, forward, l.size)
	slices.Reverse(backward)
	require.Equal(t, forward, backward)
	require.LessOrEqual(t, l.used, len(l.nodes))
}

func values[T any](l *List[T]) []T {
	return slices.Collect(l.Values())
}

func TestPushFrontReversesOrder(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, l.PushFront(v))
		checkInvariants(t, l)
	}
	require.Equal(t, []int{3, 2, 1}, values(l))
	require.Equal(t, 3, l.Front())
	require.Equal(t, 1, l.Back())
}

func TestForwardAndReverseIteration(t *testing.T) {
	l := New[string]()
	in := []string{"a", "b", "c", "d"}
	for _, s := range in {
		require.NoError(t, l.PushBack(s))
	}
	checkInvariants(t, l)

	var fwd []string
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		fwd = append(fwd, it.Value())
	}
	require.Equal(t, in, fwd)

	var rev []string
	for it := l.RBegin(); !it.Equal(l.REnd()); it = it.Next() {
		rev = append(rev, it.Value())
	}
	require.Equal(t, []string{"d", "c", "b", "a"}, rev)

	var idx []int
	for i, s := range l.Backward() {
		idx = append(idx, i)
		require.Equal(t, in[i], s)
	}
	require.Equal(t, []int{3, 2, 1, 0}, idx)

	for i, s := range l.All() {
		require.Equal(t, in[i], s)
		if i == 1 {
			break
		}
	}
	require.Equal(t, "c", l.RBegin().Next().Next().Base().Next().Value())
}

func TestIteratorSet(t *testing.T) {
	l := Of(1, 2, 3)
	it := l.Begin().Next()
	it.Set(20)
	*l.RBegin().Ptr() = 30
	require.Equal(t, []int{1, 20, 30}, values(l))
	require.Panics(t, func() { l.End().Value() })
	require.Panics(t, func() { l.REnd().Value() })
}

func TestFrontBackOnEmptyPanics(t *testing.T) {
	l := New[int]()
	require.Panics(t, func() { l.Front() })
	require.Panics(t, func() { l.Back() })
	require.NoError(t, l.PushBack(1))
	l.PopBack()
	require.Panics(t, func() { l.Front() })
}

func TestPositionalAccess(t *testing.T) {
	l := Of(10, 20, 30, 40, 50)
	for i := 0; i < l.Len(); i++ {
		v, err := l.Get(i)
		require.NoError(t, err)
		require.Equal(t, (i+1)*10, v)
	}
	for _, i := range []int{-1, 5, 100} {
		_, err := l.Get(i)
		require.True(t, errors.Is(err, ErrOutOfRange), "%d: %v", i, err)
		require.True(t, errors.Is(l.Set(i, 0), ErrOutOfRange))
		_, err = l.GetPtr(i)
		require.True(t, errors.Is(err, ErrOutOfRange))
	}
	p, err := l.GetPtr(3)
	require.NoError(t, err)
	*p = 44
	require.NoError(t, l.Set(0, 11))
	require.Equal(t, []int{11, 20, 30, 44, 50}, values(l))
}

func TestFind(t *testing.T) {
	l := Of(4, 8, 15, 16, 23, 42, 15)
	for i, v := range []int{4, 8, 15, 16, 23, 42} {
		require.Equal(t, i, Find(l, v))
	}
	require.Equal(t, NotFound, Find(l, 7))
	require.Equal(t, NotFound, Find(New[int](), 7))
	require.Equal(t, 3, l.FindFunc(func(v int) bool { return v%2 == 0 && v > 10 }))
}

func TestInsertAndErase(t *testing.T) {
	l := New[int]()
	require.True(t, errors.Is(l.Insert(1, 0), ErrOutOfRange))
	require.True(t, errors.Is(l.Erase(0), ErrOutOfRange))

	require.NoError(t, l.Insert(0, 2))
	require.NoError(t, l.Insert(0, 0))
	require.NoError(t, l.Insert(1, 1))
	require.NoError(t, l.Insert(3, 3))
	checkInvariants(t, l)
	require.Equal(t, []int{0, 1, 2, 3}, values(l))

	p, err := l.Emplace(2, nil)
	require.NoError(t, err)
	require.Equal(t, 0, *p)
	*p = 9
	require.Equal(t, []int{0, 1, 9, 2, 3}, values(l))

	require.NoError(t, l.Erase(2))
	require.Equal(t, 4, l.Len())
	checkInvariants(t, l)
	require.NoError(t, l.Erase(3))
	require.NoError(t, l.Erase(0))
	checkInvariants(t, l)
	require.Equal(t, []int{1, 2}, values(l))
	require.True(t, errors.Is(l.Erase(2), ErrOutOfRange))
	require.True(t, errors.Is(l.Erase(-1), ErrOutOfRange))
}

func TestEmplaceFrontCountsSize(t *testing.T) {
	type pair struct{ a, b int }
	l := New[pair]()
	p, err := l.EmplaceFront(func(p *pair) { p.a = 1 })
	require.NoError(t, err)
	p.b = 2
	_, err = l.EmplaceBack(func(p *pair) { *p = pair{3, 4} })
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())
	require.Equal(t, []pair{{1, 2}, {3, 4}}, values(l))
}

func TestNodeReuse(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, l.PushBack(i))
	}
	allocs := l.AllocStats().Allocations
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			l.PopFront()
		} else {
			require.NoError(t, l.Erase(l.Len()/2))
		}
		require.NoError(t, l.PushBack(i))
	}
	checkInvariants(t, l)
	require.Equal(t, 100, l.Len())
	require.Equal(t, allocs, l.AllocStats().Allocations)

	l.Clear()
	checkInvariants(t, l)
	require.Equal(t, 0, l.Len())
	for i := 0; i < 100; i++ {
		require.NoError(t, l.PushFront(i))
	}
	require.Equal(t, allocs, l.AllocStats().Allocations)

	l.Release()
	stats := l.AllocStats()
	require.Equal(t, stats.Allocations, stats.Deallocations)
	require.Zero(t, stats.LiveSlots)
	require.NoError(t, l.PushBack(1))
	require.Equal(t, []int{1}, values(l))
}

func TestSort(t *testing.T) {
	l := Of(3, -1, 7, 7, 0, 12, -5, 3)
	SortOrdered(l)
	checkInvariants(t, l)
	require.Equal(t, []int{-5, -1, 0, 3, 3, 7, 7, 12}, values(l))

	// Values move; nodes stay where they are.
	before := l.Begin().Next()
	l.Sort(func(a, b int) bool { return a >= b })
	require.Equal(t, 7, before.Value())
	require.Equal(t, []int{12, 7, 7, 3, 3, 0, -1, -5}, values(l))

	words := Of("pear", "fig", "banana", "kiwi")
	words.Sort(func(a, b string) bool { return len(a) <= len(b) })
	require.Equal(t, "fig", words.Front())
	require.Equal(t, "banana", words.Back())
}

func TestSortMatchesModel(t *testing.T) {
	var in []int
	for i := 0; i < 500; i++ {
		in = append(in, (i*7919)%263)
	}
	l := Of(in...)
	SortOrdered(l)
	checkInvariants(t, l)
	want := slices.Clone(in)
	slices.Sort(want)
	if diff := cmp.Diff(want, values(l)); diff != "" {
		t.Errorf("unexpected sort result (-want +got):\n%s", diff)
	}
}

func TestSortLargeSortedInput(t *testing.T) {
	// Already sorted input is the worst case for a last-element pivot; it
	// must not exhaust the stack.
	l := New[int]()
	const n = 5000
	for i := 0; i < n; i++ {
		require.NoError(t, l.PushBack(i))
	}
	l.Sort(func(a, b int) bool { return a >= b })
	require.Equal(t, n-1, l.Front())
	require.Equal(t, 0, l.Back())
}

func TestSwapCloneMove(t *testing.T) {
	a, b := Of(1, 2, 3), Of(9)
	a.Swap(b)
	require.Equal(t, []int{9}, values(a))
	require.Equal(t, []int{1, 2, 3}, values(b))
	checkInvariants(t, a)
	checkInvariants(t, b)

	c, err := b.Clone()
	require.NoError(t, err)
	require.True(t, Equal(b, c))
	require.NoError(t, c.Set(0, 100))
	require.False(t, Equal(b, c))

	a.MoveFrom(c)
	require.Equal(t, []int{100, 2, 3}, values(a))
	require.Equal(t, 0, c.Len())
	require.True(t, c.Empty())
	require.NoError(t, c.PushBack(5))
	checkInvariants(t, c)
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		a, b []int
		exp  int
	}{
		{nil, nil, 0},
		{[]int{1}, []int{1}, 0},
		{[]int{9}, []int{1, 1}, -1},
		{[]int{1, 2}, []int{1, 3}, -1},
		{[]int{2, 0}, []int{1, 3}, 1},
	} {
		a, b := Of(tc.a...), Of(tc.b...)
		require.Equal(t, tc.exp, Compare(a, b), "%v %v", tc.a, tc.b)
		require.Equal(t, tc.exp < 0, Less(a, b))
		require.Equal(t, tc.exp <= 0, LessEq(a, b))
		require.Equal(t, tc.exp > 0, Greater(a, b))
		require.Equal(t, tc.exp >= 0, GreaterEq(a, b))
		require.Equal(t, tc.exp == 0, Equal(a, b))
	}
	ll := Of(Of(1, 2), Of(3))
	mm := Of(Of(1, 2), Of(3))
	require.True(t, EqualFunc(ll, mm, Equal[int]), "%s", pretty.Diff(values(ll), values(mm)))
	require.Equal(t, "[[1 2] [3]]", ll.String())
}
