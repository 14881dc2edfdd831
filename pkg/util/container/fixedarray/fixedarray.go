// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package fixedarray provides Array, a bounds-checked array whose length is
// chosen at construction and never changes.
package fixedarray

import (
	"cmp"
	"iter"
	"slices"

	"github.com/cockroachdb/containers/pkg/util/container/alloc"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrOutOfRange marks errors returned for indexes outside the array.
var ErrOutOfRange = errors.New("index out of range")

// ErrLengthMismatch is returned by Swap for arrays of different lengths.
var ErrLengthMismatch = errors.New("array lengths differ")

// Array is a fixed-length array of T.
type Array[T any] struct {
	data []T
}

// New returns an array of n zero values.
func New[T any](n int) (*Array[T], error) {
	var a alloc.Allocator[T]
	data, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	return &Array[T]{data: data}, nil
}

// Of returns an array holding exactly vals.
func Of[T any](vals ...T) *Array[T] {
	return &Array[T]{data: slices.Clone(vals)}
}

// Len returns the length of the array.
func (a *Array[T]) Len() int { return len(a.data) }

// Empty returns true for an array of length zero.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= len(a.data) {
		return errors.Mark(
			errors.Newf("invalid index %d for array of length %d", errors.Safe(i), errors.Safe(len(a.data))),
			ErrOutOfRange)
	}
	return nil
}

// At returns element i, or an ErrOutOfRange error.
func (a *Array[T]) At(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Set replaces element i, or returns an ErrOutOfRange error.
func (a *Array[T]) Set(i int, val T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.data[i] = val
	return nil
}

// Index returns element i. Out of range indexes panic.
func (a *Array[T]) Index(i int) T { return a.data[i] }

// Ptr returns the address of element i. Out of range indexes panic.
func (a *Array[T]) Ptr(i int) *T { return &a.data[i] }

// Front returns the first element. It panics on an empty array.
func (a *Array[T]) Front() T { return a.data[0] }

// Back returns the last element. It panics on an empty array.
func (a *Array[T]) Back() T { return a.data[len(a.data)-1] }

// Data returns the elements. The slice aliases the array.
func (a *Array[T]) Data() []T { return a.data }

// Fill sets every element to val.
func (a *Array[T]) Fill(val T) {
	for i := range a.data {
		a.data[i] = val
	}
}

// AssignValues copies vals into the array. Values past the array's length
// are dropped and elements past len(vals) are reset to the zero value.
func (a *Array[T]) AssignValues(vals ...T) {
	n := copy(a.data, vals)
	clear(a.data[n:])
}

// Swap exchanges the contents of a and other, which must have the same
// length.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.data) != len(other.data) {
		return errors.Wrapf(ErrLengthMismatch, "%d != %d",
			errors.Safe(len(a.data)), errors.Safe(len(other.data)))
	}
	a.data, other.data = other.data, a.data
	return nil
}

// All returns an iterator over index/element pairs.
func (a *Array[T]) All() iter.Seq2[int, T] { return slices.All(a.data) }

// Values returns an iterator over the elements.
func (a *Array[T]) Values() iter.Seq[T] { return slices.Values(a.data) }

// Equal returns true if a and b have the same length and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.data, b.data)
}

// Compare orders arrays by length and then element by element.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	if c := cmp.Compare(len(a.data), len(b.data)); c != 0 {
		return c
	}
	return slices.Compare(a.data, b.data)
}

// SafeFormat implements the redact.SafeFormatter interface.
func (a *Array[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	for i, v := range a.data {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v)
	}
	w.SafeRune(']')
}

func (a *Array[T]) String() string {
	return redact.StringWithoutMarkers(a)
}
