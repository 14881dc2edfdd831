// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector

import (
	"cmp"

	"github.com/cockroachdb/redact"
)

// Equal returns true if a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Compare orders vectors by length first and then element by element. It
// returns -1, 0 or +1.
//
// Note that this is not the lexicographic order of strings: a shorter
// vector sorts before a longer one regardless of their contents.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders elements with c. It is what makes
// vectors of vectors orderable:
//
//	vector.CompareFunc(a, b, vector.Compare[int])
func CompareFunc[T any](a, b *Vector[T], c func(T, T) int) int {
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	for i := 0; i < a.size; i++ {
		if r := c(a.buf[i], b.buf[i]); r != 0 {
			return r
		}
	}
	return 0
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessEq reports whether a does not order after b.
func LessEq[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterEq reports whether a does not order before b.
func GreaterEq[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }

// SafeFormat implements the redact.SafeFormatter interface. Elements are
// considered unsafe.
func (v *Vector[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v.buf[i])
	}
	w.SafeRune(']')
}

// String implements the fmt.Stringer interface.
func (v *Vector[T]) String() string {
	return redact.StringWithoutMarkers(v)
}
