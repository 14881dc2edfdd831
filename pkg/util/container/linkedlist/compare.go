// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import (
	"cmp"

	"github.com/cockroachdb/redact"
)

// Equal returns true if a and b have the same length and equal elements.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	return CompareFunc(a, b, func(x, y T) int {
		if eq(x, y) {
			return 0
		}
		return 1
	}) == 0
}

// Compare orders lists by length first and then element by element,
// returning -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders elements with c.
func CompareFunc[T any](a, b *List[T], c func(T, T) int) int {
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	for x, y := a.head, b.head; x != nilNode; x, y = a.nodes[x].next, b.nodes[y].next {
		if r := c(a.nodes[x].value, b.nodes[y].value); r != 0 {
			return r
		}
	}
	return 0
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) < 0 }

// LessEq reports whether a does not order after b.
func LessEq[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) > 0 }

// GreaterEq reports whether a does not order before b.
func GreaterEq[T cmp.Ordered](a, b *List[T]) bool { return Compare(a, b) >= 0 }

// SafeFormat implements the redact.SafeFormatter interface.
func (l *List[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		if id != l.head {
			w.SafeRune(' ')
		}
		w.Print(l.nodes[id].value)
	}
	w.SafeRune(']')
}

// String implements the fmt.Stringer interface.
func (l *List[T]) String() string {
	return redact.StringWithoutMarkers(l)
}
