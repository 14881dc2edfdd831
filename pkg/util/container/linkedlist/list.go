// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package linkedlist implements List, a doubly linked sequence with
// positional access, bidirectional iterators and an in-place quicksort.
//
// Nodes live in an arena owned by the list and refer to each other by slot
// number. The forward link is the only owning path to a node; the backward
// link is used for navigation alone. Released slots are threaded onto a
// free chain and reused by later insertions, and Clear releases the whole
// arena at once.
//
// A List is not safe for concurrent use.
package linkedlist

import (
	"github.com/cockroachdb/containers/pkg/util/container/alloc"
	"github.com/cockroachdb/errors"
)

// NotFound is returned by Find and FindFunc when no element matches.
const NotFound = -1

// ErrOutOfRange marks errors returned when a position does not address an
// element (or, for insertions, a gap) of the list.
var ErrOutOfRange = errors.New("index out of range")

// nilNode is the slot number that never holds a node. Slot 0 of the arena
// is reserved for it so that the zero List is valid.
const nilNode = 0

// minArenaSize is the number of slots allocated on first use, including
// the reserved one.
const minArenaSize = 4

type node[T any] struct {
	value T
	next  int
	prev  int
}

// List is a doubly linked list of T. The zero List is empty and ready to
// use.
type List[T any] struct {
	nodes []node[T]
	// used is the number of arena slots that have ever been handed out,
	// counting the reserved one.
	used int
	free int

	head, tail int
	size       int

	alloc *alloc.Allocator[node[T]]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding the given values, in order.
func Of[T any](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		if err := l.PushBack(v); err != nil {
			panic(err)
		}
	}
	return l
}

func (l *List[T]) allocator() *alloc.Allocator[node[T]] {
	if l.alloc == nil {
		l.alloc = &alloc.Allocator[node[T]]{}
	}
	return l.alloc
}

// AllocStats returns the counters of the allocator backing the node arena.
func (l *List[T]) AllocStats() alloc.Stats {
	return l.allocator().Stats()
}

// grow doubles the arena.
func (l *List[T]) grow() error {
	a := l.allocator()
	nodes, err := a.Allocate(max(2*len(l.nodes), minArenaSize))
	if err != nil {
		return err
	}
	if l.used == 0 {
		l.used = 1
	}
	copy(nodes, l.nodes)
	a.Deallocate(l.nodes)
	l.nodes = nodes
	return nil
}

// newNode takes a slot from the free chain, or from the unused tail of the
// arena, and stores val in it. The slot is not linked.
func (l *List[T]) newNode(val T) (int, error) {
	id := l.free
	if id != nilNode {
		l.free = l.nodes[id].next
	} else {
		if l.used >= len(l.nodes) {
			if err := l.grow(); err != nil {
				return nilNode, err
			}
		}
		id = l.used
		l.used++
	}
	l.nodes[id] = node[T]{value: val}
	return id, nil
}

// releaseNode zeroes an unlinked slot and pushes it onto the free chain.
func (l *List[T]) releaseNode(id int) {
	l.nodes[id] = node[T]{next: l.free}
	l.free = id
}

func (l *List[T]) errOutOfRange(i, n int) error {
	return errors.Mark(
		errors.Newf("index %d out of the list's range [0,%d)", errors.Safe(i), errors.Safe(n)),
		ErrOutOfRange)
}

// nodeAt returns the slot holding element i, walking from whichever end is
// nearer. i must be in [0, Len).
func (l *List[T]) nodeAt(i int) int {
	if i < l.size/2 {
		id := l.head
		for ; i > 0; i-- {
			id = l.nodes[id].next
		}
		return id
	}
	id := l.tail
	for i = l.size - 1 - i; i > 0; i-- {
		id = l.nodes[id].prev
	}
	return id
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Empty returns true if the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Front returns the first element. It panics on an empty list.
func (l *List[T]) Front() T {
	if l.size == 0 {
		panic(errors.AssertionFailedf("Front called on an empty list"))
	}
	return l.nodes[l.head].value
}

// Back returns the last element. It panics on an empty list.
func (l *List[T]) Back() T {
	if l.size == 0 {
		panic(errors.AssertionFailedf("Back called on an empty list"))
	}
	return l.nodes[l.tail].value
}

// Get returns element i, or an ErrOutOfRange error.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, l.errOutOfRange(i, l.size)
	}
	return l.nodes[l.nodeAt(i)].value, nil
}

// GetPtr returns the address of element i, or an ErrOutOfRange error. The
// address is only good until the next insertion.
func (l *List[T]) GetPtr(i int) (*T, error) {
	if i < 0 || i >= l.size {
		return nil, l.errOutOfRange(i, l.size)
	}
	return &l.nodes[l.nodeAt(i)].value, nil
}

// Set replaces element i, or returns an ErrOutOfRange error.
func (l *List[T]) Set(i int, val T) error {
	if i < 0 || i >= l.size {
		return l.errOutOfRange(i, l.size)
	}
	l.nodes[l.nodeAt(i)].value = val
	return nil
}

// Find returns the position of the first element equal to val, or
// NotFound.
func Find[T comparable](l *List[T], val T) int {
	return l.FindFunc(func(v T) bool { return v == val })
}

// FindFunc returns the position of the first element satisfying pred, or
// NotFound.
func (l *List[T]) FindFunc(pred func(T) bool) int {
	i := 0
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		if pred(l.nodes[id].value) {
			return i
		}
		i++
	}
	return NotFound
}

func (l *List[T]) linkFront(id int) {
	l.nodes[id].next = l.head
	if l.head != nilNode {
		l.nodes[l.head].prev = id
	} else {
		l.tail = id
	}
	l.head = id
	l.size++
}

func (l *List[T]) linkBack(id int) {
	l.nodes[id].prev = l.tail
	if l.tail != nilNode {
		l.nodes[l.tail].next = id
	} else {
		l.head = id
	}
	l.tail = id
	l.size++
}

// linkBefore splices id in front of at, which is neither nilNode nor the
// head.
func (l *List[T]) linkBefore(at, id int) {
	prev := l.nodes[at].prev
	l.nodes[id].prev = prev
	l.nodes[id].next = at
	l.nodes[prev].next = id
	l.nodes[at].prev = id
	l.size++
}

// PushFront prepends val.
func (l *List[T]) PushFront(val T) error {
	id, err := l.newNode(val)
	if err != nil {
		return err
	}
	l.linkFront(id)
	return nil
}

// PushBack appends val.
func (l *List[T]) PushBack(val T) error {
	id, err := l.newNode(val)
	if err != nil {
		return err
	}
	l.linkBack(id)
	return nil
}

// EmplaceFront prepends a zero value, lets init fill it in place if init
// is non-nil, and returns its address. The address is only good until the
// next insertion.
func (l *List[T]) EmplaceFront(init func(*T)) (*T, error) {
	var zero T
	id, err := l.newNode(zero)
	if err != nil {
		return nil, err
	}
	l.linkFront(id)
	return l.initValue(id, init), nil
}

// EmplaceBack appends a zero value, lets init fill it in place if init is
// non-nil, and returns its address.
func (l *List[T]) EmplaceBack(init func(*T)) (*T, error) {
	var zero T
	id, err := l.newNode(zero)
	if err != nil {
		return nil, err
	}
	l.linkBack(id)
	return l.initValue(id, init), nil
}

func (l *List[T]) initValue(id int, init func(*T)) *T {
	p := &l.nodes[id].value
	if init != nil {
		init(p)
	}
	return p
}

// Insert inserts val so that it ends up at position pos. pos may equal Len.
func (l *List[T]) Insert(pos int, val T) error {
	_, err := l.Emplace(pos, func(p *T) { *p = val })
	return err
}

// Emplace inserts a zero value at position pos, lets init fill it in place
// if init is non-nil, and returns its address.
func (l *List[T]) Emplace(pos int, init func(*T)) (*T, error) {
	switch {
	case pos < 0 || pos > l.size:
		return nil, l.errOutOfRange(pos, l.size+1)
	case pos == 0:
		return l.EmplaceFront(init)
	case pos == l.size:
		return l.EmplaceBack(init)
	}
	var zero T
	id, err := l.newNode(zero)
	if err != nil {
		return nil, err
	}
	l.linkBefore(l.nodeAt(pos), id)
	return l.initValue(id, init), nil
}

// PopFront removes the first element. It is a no-op on an empty list.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		return
	}
	l.unlink(l.head)
}

// PopBack removes the last element. It is a no-op on an empty list.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		return
	}
	l.unlink(l.tail)
}

// Erase removes the element at position pos.
func (l *List[T]) Erase(pos int) error {
	if pos < 0 || pos >= l.size {
		return l.errOutOfRange(pos, l.size)
	}
	l.unlink(l.nodeAt(pos))
	return nil
}

// unlink detaches id from its neighbours and releases it.
func (l *List[T]) unlink(id int) {
	n := &l.nodes[id]
	if n.prev != nilNode {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilNode {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
	l.releaseNode(id)
}

// Clear removes every element. The arena is kept for reuse.
func (l *List[T]) Clear() {
	clear(l.nodes)
	l.used = min(l.used, 1)
	l.free = nilNode
	l.head, l.tail = nilNode, nilNode
	l.size = 0
}

// Release clears the list and returns the arena to the allocator.
func (l *List[T]) Release() {
	l.Clear()
	l.allocator().Deallocate(l.nodes)
	l.nodes, l.used = nil, 0
}

// Swap exchanges the contents of l and other.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	*l, *other = *other, *l
}

// Clone returns a copy of l holding the same values in the same order.
func (l *List[T]) Clone() (*List[T], error) {
	c := New[T]()
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		if err := c.PushBack(l.nodes[id].value); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MoveFrom releases l's nodes, takes ownership of other's, and leaves other
// empty.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Release()
	*l = *other
	*other = List[T]{}
}
