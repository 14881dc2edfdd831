// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package linkedlist

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Iterator is a bidirectional position in a List. It stays valid until the
// element it addresses is removed.
//
// End is a sentinel that addresses no element. Stepping back from End
// lands on the last element, and stepping back from the first element
// lands on End. Stepping forward from End stays at End.
type Iterator[T any] struct {
	l  *List[T]
	id int
}

// Begin returns an iterator to the first element, or End if the list is
// empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l: l, id: l.head}
}

// End returns the sentinel iterator one past the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l: l, id: nilNode}
}

// Valid returns true if it addresses an element.
func (it Iterator[T]) Valid() bool {
	return it.l != nil && it.id != nilNode
}

// Next returns the iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] {
	if it.id != nilNode {
		it.id = it.l.nodes[it.id].next
	}
	return it
}

// Prev returns the iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.id == nilNode {
		it.id = it.l.tail
	} else {
		it.id = it.l.nodes[it.id].prev
	}
	return it
}

// Value returns the element at the iterator. It panics at End.
func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// Ptr returns the address of the element at the iterator. It panics at
// End.
func (it Iterator[T]) Ptr() *T {
	if it.id == nilNode {
		panic(errors.AssertionFailedf("dereferencing the End iterator"))
	}
	return &it.l.nodes[it.id].value
}

// Set replaces the element at the iterator. It panics at End.
func (it Iterator[T]) Set(val T) {
	*it.Ptr() = val
}

// Equal returns true if both iterators address the same position of the
// same list.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.l == other.l && it.id == other.id
}

// ReverseIterator walks a List from the last element toward the first.
//
// REnd is a sentinel one before the first element. Stepping back from REnd
// lands on the first element, and stepping back from the last element
// lands on REnd.
type ReverseIterator[T any] struct {
	l  *List[T]
	id int
}

// RBegin returns a reverse iterator to the last element, or REnd if the
// list is empty.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{l: l, id: l.tail}
}

// REnd returns the sentinel reverse iterator one before the first element.
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{l: l, id: nilNode}
}

// Valid returns true if it addresses an element.
func (it ReverseIterator[T]) Valid() bool {
	return it.l != nil && it.id != nilNode
}

// Next returns the iterator one element closer to the front.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	if it.id != nilNode {
		it.id = it.l.nodes[it.id].prev
	}
	return it
}

// Prev returns the iterator one element closer to the back.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	if it.id == nilNode {
		it.id = it.l.head
	} else {
		it.id = it.l.nodes[it.id].next
	}
	return it
}

// Value returns the element at the iterator. It panics at REnd.
func (it ReverseIterator[T]) Value() T {
	return *it.Ptr()
}

// Ptr returns the address of the element at the iterator. It panics at
// REnd.
func (it ReverseIterator[T]) Ptr() *T {
	if it.id == nilNode {
		panic(errors.AssertionFailedf("dereferencing the REnd iterator"))
	}
	return &it.l.nodes[it.id].value
}

// Base returns the forward iterator addressing the same element. REnd maps
// to End.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return Iterator[T]{l: it.l, id: it.id}
}

// Equal returns true if both iterators address the same position of the
// same list.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.l == other.l && it.id == other.id
}

// All returns an iterator over position/element pairs, front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for id := l.head; id != nilNode; id = l.nodes[id].next {
			if !yield(i, l.nodes[id].value) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := l.head; id != nilNode; id = l.nodes[id].next {
			if !yield(l.nodes[id].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over position/element pairs, back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for id := l.tail; id != nilNode; id = l.nodes[id].prev {
			if !yield(i, l.nodes[id].value) {
				return
			}
			i--
		}
	}
}
