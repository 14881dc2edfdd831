// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import "cmp"

// Sort orders the list so that leq holds between every element and its
// successor. leq reports whether a may precede b.
//
// Sort is a quicksort over the node chain. Only values move; every node
// keeps its place in the chain, so iterators keep addressing the same
// position. The sort is not stable.
func (l *List[T]) Sort(leq func(a, b T) bool) {
	if l.size < 2 {
		return
	}
	l.quickSort(l.head, l.tail, l.size, leq)
}

// SortOrdered sorts l in non-decreasing order.
func SortOrdered[T cmp.Ordered](l *List[T]) {
	l.Sort(func(a, b T) bool { return a <= b })
}

// quickSort sorts the n values held by the chain running from left to
// right, both inclusive. It recurses into the shorter side of each
// partition and loops over the longer one, so the stack holds at most
// log2(n) frames.
func (l *List[T]) quickSort(left, right, n int, leq func(a, b T) bool) {
	for n > 1 {
		pivot, below := l.partition(left, right, leq)
		above := n - below - 1
		if below < above {
			if below > 1 {
				l.quickSort(left, l.nodes[pivot].prev, below, leq)
			}
			left, n = l.nodes[pivot].next, above
		} else {
			if above > 1 {
				l.quickSort(l.nodes[pivot].next, right, above, leq)
			}
			right, n = l.nodes[pivot].prev, below
		}
	}
}

// partition uses the value at right as the pivot. Values for which
// leq(v, pivot) holds are swapped toward left behind a trailing cursor,
// and the pivot is then swapped into the slot after the cursor. It returns
// the pivot's node and the number of values placed before it.
func (l *List[T]) partition(left, right int, leq func(a, b T) bool) (pivot, below int) {
	pv := l.nodes[right].value
	i := nilNode
	advance := func() {
		if i == nilNode {
			i = left
		} else {
			i = l.nodes[i].next
		}
	}
	for j := left; j != right; j = l.nodes[j].next {
		if leq(l.nodes[j].value, pv) {
			advance()
			l.swapValues(i, j)
			below++
		}
	}
	advance()
	l.swapValues(i, right)
	return i, below
}

func (l *List[T]) swapValues(a, b int) {
	if a != b {
		l.nodes[a].value, l.nodes[b].value = l.nodes[b].value, l.nodes[a].value
	}
}
