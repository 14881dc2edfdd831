// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package vector implements Vector, a contiguous, dynamically growing array
// that manages its own capacity instead of leaning on append.
//
// Storage is obtained from an alloc.Allocator and grown by half of the
// current capacity whenever an operation would overflow it, so a sequence
// of N appends performs O(log N) reallocations. Structural mutation in the
// middle of the array (Insert, Emplace, Erase) moves the tail of the array
// as a single block.
//
// A Vector is not safe for concurrent use.
package vector

import (
	"slices"

	"github.com/cockroachdb/containers/pkg/util/container/alloc"
	"github.com/cockroachdb/errors"
)

// DefaultCapacity is the capacity of a vector returned by New.
const DefaultCapacity = 2

// ErrOutOfRange marks errors returned by checked accessors when an index
// does not address a live element.
var ErrOutOfRange = errors.New("index out of range")

// ErrInvalidRange marks errors returned when a pair of iterators does not
// describe a range of a single vector.
var ErrInvalidRange = errors.New("invalid iterator range")

// Vector is a growable array of T.
//
// The backing buffer always has exactly Cap() slots; the first Len() of
// them hold live elements and the remainder hold the zero value. The zero
// Vector is empty, has no capacity, and is ready to use.
type Vector[T any] struct {
	buf   []T
	size  int
	alloc *alloc.Allocator[T]
}

// New returns an empty vector with DefaultCapacity slots.
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	if err := v.realloc(DefaultCapacity); err != nil {
		panic(err)
	}
	return v
}

// NewWithSize returns a vector holding n zero values.
func NewWithSize[T any](n int) (*Vector[T], error) {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a vector holding n copies of val.
func NewFilled[T any](n int, val T) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.ResizeWith(n, val); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding exactly the given values, in order, with no
// spare capacity.
func Of[T any](vals ...T) *Vector[T] {
	v := &Vector[T]{}
	if err := v.AssignValues(vals...); err != nil {
		panic(err)
	}
	return v
}

// NewFromRange returns a vector holding a copy of the elements in
// [first, last). It fails with ErrInvalidRange if first is positioned after
// last or the iterators belong to different vectors.
func NewFromRange[T any](first, last Iterator[T]) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.AssignRange(first, last); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) allocator() *alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = &alloc.Allocator[T]{}
	}
	return v.alloc
}

// AllocStats returns the counters of the allocator backing v.
func (v *Vector[T]) AllocStats() alloc.Stats {
	return v.allocator().Stats()
}

// growCapacity returns the capacity that follows c: c plus half of c,
// rounded up, and never less than c+1.
func growCapacity(c int) int {
	n := c + (c+1)/2
	if n <= c {
		n = c + 1
	}
	return n
}

// realloc moves the live elements into a fresh buffer of newCap slots and
// returns the old buffer to the allocator.
func (v *Vector[T]) realloc(newCap int) error {
	a := v.allocator()
	buf, err := a.Allocate(newCap)
	if err != nil {
		return err
	}
	copy(buf, v.buf[:v.size])
	a.Deallocate(v.buf)
	v.buf = buf
	return nil
}

// makeRoom ensures there are at least n free slots past the live elements.
func (v *Vector[T]) makeRoom(n int) error {
	required := v.size + n
	if required <= len(v.buf) {
		return nil
	}
	return v.realloc(max(required, growCapacity(len(v.buf))))
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.size {
		return errors.Mark(
			errors.Newf("index %d out of range [0,%d)", errors.Safe(i), errors.Safe(v.size)),
			ErrOutOfRange)
	}
	return nil
}

func (v *Vector[T]) errEmpty() error {
	return errors.Mark(errors.New("no elements in the vector"), ErrOutOfRange)
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty returns true if the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at index i, or an ErrOutOfRange error.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[i], nil
}

// AtPtr returns the address of the element at index i, or an ErrOutOfRange
// error. The address is only good until the next reallocation.
func (v *Vector[T]) AtPtr(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return &v.buf[i], nil
}

// Index returns the element at index i without checking it against Len.
// Indexes past Cap panic.
func (v *Vector[T]) Index(i int) T {
	return v.buf[i]
}

// Ptr returns the address of slot i without checking it against Len.
func (v *Vector[T]) Ptr(i int) *T {
	return &v.buf[i]
}

// Set stores val in slot i without checking it against Len.
func (v *Vector[T]) Set(i int, val T) {
	v.buf[i] = val
}

// Front returns the first element, or an ErrOutOfRange error if the vector
// is empty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, v.errEmpty()
	}
	return v.buf[0], nil
}

// Back returns the last element, or an ErrOutOfRange error if the vector
// is empty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, v.errEmpty()
	}
	return v.buf[v.size-1], nil
}

// Data returns the live elements. The slice aliases the vector's storage
// and its capacity is clipped so that appending to it never writes into
// the vector.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// Reserve grows the backing storage to at least n slots. It never shrinks.
// Element values survive but their addresses do not.
func (v *Vector[T]) Reserve(n int) error {
	if n > len(v.buf) {
		return v.realloc(n)
	}
	return nil
}

// ShrinkToFit reallocates the backing storage down to exactly Len slots.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size < len(v.buf) {
		return v.realloc(v.size)
	}
	return nil
}

// PushBack appends val.
func (v *Vector[T]) PushBack(val T) error {
	if err := v.makeRoom(1); err != nil {
		return err
	}
	v.buf[v.size] = val
	v.size++
	return nil
}

// EmplaceBack appends a zero value, lets init fill it in place if init is
// non-nil, and returns its address.
func (v *Vector[T]) EmplaceBack(init func(*T)) (*T, error) {
	if err := v.makeRoom(1); err != nil {
		return nil, err
	}
	p := &v.buf[v.size]
	if init != nil {
		init(p)
	}
	v.size++
	return p, nil
}

// PopBack removes the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.allocator().Destroy(&v.buf[v.size])
}

// insertionPoint validates pos as a position in [Begin, End].
func (v *Vector[T]) insertionPoint(pos Iterator[T]) int {
	if pos.v != v || pos.i < 0 || pos.i > v.size {
		panic(errors.AssertionFailedf(
			"insert position %d outside [0,%d]", errors.Safe(pos.i), errors.Safe(v.size)))
	}
	return pos.i
}

// openGap shifts [at, Len) right by n slots and zeroes the freed slots.
func (v *Vector[T]) openGap(at, n int) error {
	if err := v.makeRoom(n); err != nil {
		return err
	}
	copy(v.buf[at+n:v.size+n], v.buf[at:v.size])
	clear(v.buf[at : at+n])
	v.size += n
	return nil
}

// Insert inserts val before pos and returns an iterator to it.
func (v *Vector[T]) Insert(pos Iterator[T], val T) (Iterator[T], error) {
	at := v.insertionPoint(pos)
	if err := v.openGap(at, 1); err != nil {
		return Iterator[T]{}, err
	}
	v.buf[at] = val
	return Iterator[T]{v: v, i: at}, nil
}

// InsertN inserts count copies of val before pos and returns an iterator
// to the first of them.
func (v *Vector[T]) InsertN(pos Iterator[T], count int, val T) (Iterator[T], error) {
	at := v.insertionPoint(pos)
	if count <= 0 {
		return Iterator[T]{v: v, i: at}, nil
	}
	if err := v.openGap(at, count); err != nil {
		return Iterator[T]{}, err
	}
	for i := at; i < at+count; i++ {
		v.buf[i] = val
	}
	return Iterator[T]{v: v, i: at}, nil
}

// InsertValues inserts vals, in order, before pos and returns an iterator
// to the first of them.
func (v *Vector[T]) InsertValues(pos Iterator[T], vals ...T) (Iterator[T], error) {
	at := v.insertionPoint(pos)
	if err := v.openGap(at, len(vals)); err != nil {
		return Iterator[T]{}, err
	}
	copy(v.buf[at:], vals)
	return Iterator[T]{v: v, i: at}, nil
}

// InsertRange inserts a copy of [first, last) before pos. The range may
// belong to v itself.
func (v *Vector[T]) InsertRange(pos Iterator[T], first, last Iterator[T]) (Iterator[T], error) {
	src, err := rangeOf(first, last)
	if err != nil {
		return Iterator[T]{}, err
	}
	return v.InsertValues(pos, slices.Clone(src)...)
}

// Emplace inserts a zero value before pos, lets init fill it in place if
// init is non-nil, and returns an iterator to it.
func (v *Vector[T]) Emplace(pos Iterator[T], init func(*T)) (Iterator[T], error) {
	at := v.insertionPoint(pos)
	if err := v.openGap(at, 1); err != nil {
		return Iterator[T]{}, err
	}
	if init != nil {
		init(&v.buf[at])
	}
	return Iterator[T]{v: v, i: at}, nil
}

// eraseSpan removes n elements starting at at and closes the gap.
func (v *Vector[T]) eraseSpan(at, n int) Iterator[T] {
	copy(v.buf[at:], v.buf[at+n:v.size])
	clear(v.buf[v.size-n : v.size])
	v.size -= n
	return Iterator[T]{v: v, i: at}
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. It returns the null iterator if pos does not address
// an element of v.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	if pos.v != v || pos.i < 0 || pos.i >= v.size {
		return Iterator[T]{}
	}
	return v.eraseSpan(pos.i, 1)
}

// EraseRange removes the elements in [first, last) and returns an iterator
// to the element that followed the range. It returns the null iterator if
// first does not address an element of v, last is past End, or first is
// positioned after last.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	if first.v != v || last.v != v ||
		first.i < 0 || first.i >= v.size || last.i > v.size || first.i > last.i {
		return Iterator[T]{}
	}
	return v.eraseSpan(first.i, last.i-first.i)
}

// Resize changes the length to n, dropping elements from the back or
// appending zero values.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith changes the length to n, dropping elements from the back or
// appending copies of val. Growing past Cap reallocates to exactly n slots.
func (v *Vector[T]) ResizeWith(n int, val T) error {
	if n < 0 {
		return errors.Mark(errors.Newf("negative length %d", errors.Safe(n)), ErrOutOfRange)
	}
	for v.size > n {
		v.PopBack()
	}
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			v.buf[i] = val
		}
		v.size = n
	}
	return nil
}

// Assign replaces the contents with count copies of val.
func (v *Vector[T]) Assign(count int, val T) error {
	v.Clear()
	return v.ResizeWith(count, val)
}

// AssignValues replaces the contents with vals. Storage is reallocated to
// exactly len(vals) slots.
func (v *Vector[T]) AssignValues(vals ...T) error {
	v.Clear()
	if err := v.realloc(len(vals)); err != nil {
		return err
	}
	copy(v.buf, vals)
	v.size = len(vals)
	return nil
}

// AssignRange replaces the contents with a copy of [first, last). The
// range may belong to v itself.
func (v *Vector[T]) AssignRange(first, last Iterator[T]) error {
	src, err := rangeOf(first, last)
	if err != nil {
		return err
	}
	return v.AssignValues(slices.Clone(src)...)
}

// Clear removes all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Swap exchanges the contents of v and other without copying elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.alloc, other.alloc = other.alloc, v.alloc
}

// Clone returns a deep copy of v with the same capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{}
	if err := c.CopyFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents of v with a copy of other's elements and
// matches other's capacity.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	v.Clear()
	if len(v.buf) != len(other.buf) {
		if err := v.realloc(len(other.buf)); err != nil {
			return err
		}
	}
	copy(v.buf, other.buf[:other.size])
	v.size = other.size
	return nil
}

// MoveFrom releases v's storage, takes ownership of other's, and leaves
// other empty with no capacity.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.buf, v.size, v.alloc = other.buf, other.size, other.allocator()
	other.buf, other.size, other.alloc = nil, 0, nil
}

// Release returns the backing storage to the allocator, leaving v empty
// with no capacity.
func (v *Vector[T]) Release() {
	v.allocator().Deallocate(v.buf)
	v.buf, v.size = nil, 0
}

func rangeOf[T any](first, last Iterator[T]) ([]T, error) {
	if first.v == nil || first.v != last.v ||
		first.i < 0 || last.i > first.v.size || first.i > last.i {
		return nil, errors.Mark(
			errors.Newf("iterator range [%d,%d) is not a range of a single vector",
				errors.Safe(first.i), errors.Safe(last.i)),
			ErrInvalidRange)
	}
	return first.v.buf[first.i:last.i], nil
}
