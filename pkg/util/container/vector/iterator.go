// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector

import "iter"

// Iterator is a random-access position in a Vector. It names a slot by
// index, so it keeps addressing the same position across reallocations;
// addresses obtained through Ptr do not.
//
// The zero Iterator is the null iterator, returned by operations that were
// handed an invalid range.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v}
}

// End returns an iterator to the position one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, i: v.size}
}

// IsNull returns true for the null iterator.
func (it Iterator[T]) IsNull() bool {
	return it.v == nil
}

// Valid returns true if it addresses a live element.
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.i >= 0 && it.i < it.v.size
}

// Index returns the index the iterator is positioned at.
func (it Iterator[T]) Index() int {
	return it.i
}

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] {
	it.i++
	return it
}

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] {
	it.i--
	return it
}

// Add returns the iterator n positions forward.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Sub returns the iterator n positions back.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.i -= n
	return it
}

// Distance returns the number of positions from other to it.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return it.i - other.i
}

// Value returns the element at the iterator. Like Vector.Index, it is not
// checked against the vector's length.
func (it Iterator[T]) Value() T {
	return it.v.buf[it.i]
}

// At returns the element n positions from the iterator, unchecked.
func (it Iterator[T]) At(n int) T {
	return it.v.buf[it.i+n]
}

// Ptr returns the address of the element at the iterator, unchecked.
func (it Iterator[T]) Ptr() *T {
	return &it.v.buf[it.i]
}

// Set stores val at the iterator, unchecked.
func (it Iterator[T]) Set(val T) {
	it.v.buf[it.i] = val
}

// Equal returns true if both iterators address the same position of the
// same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.i == other.i
}

// Less returns true if it is positioned before other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.i < other.i }

// LessEq returns true if it is not positioned after other.
func (it Iterator[T]) LessEq(other Iterator[T]) bool { return it.i <= other.i }

// Greater returns true if it is positioned after other.
func (it Iterator[T]) Greater(other Iterator[T]) bool { return it.i > other.i }

// GreaterEq returns true if it is not positioned before other.
func (it Iterator[T]) GreaterEq(other Iterator[T]) bool { return it.i >= other.i }

// ReverseIterator walks a Vector from the last element toward the first.
type ReverseIterator[T any] struct {
	v *Vector[T]
	i int
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{v: v, i: v.size - 1}
}

// REnd returns a reverse iterator to the position one before the first
// element.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{v: v, i: -1}
}

// Valid returns true if it addresses a live element.
func (it ReverseIterator[T]) Valid() bool {
	return it.v != nil && it.i >= 0 && it.i < it.v.size
}

// Next returns the iterator one element closer to the front.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	it.i--
	return it
}

// Prev returns the iterator one element closer to the back.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	it.i++
	return it
}

// Value returns the element at the iterator, unchecked.
func (it ReverseIterator[T]) Value() T {
	return it.v.buf[it.i]
}

// Base returns the forward iterator addressing the same element.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return Iterator[T]{v: it.v, i: it.i}
}

// Equal returns true if both iterators address the same position.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.v == other.v && it.i == other.i
}

// All returns an iterator over index/element pairs, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
