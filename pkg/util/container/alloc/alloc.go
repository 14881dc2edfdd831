// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package alloc provides the slot allocator used by the container packages.
// It is a thin layer over the Go allocator that turns impossible or failed
// requests into errors and keeps a few counters around so that callers can
// observe how often storage is reallocated.
package alloc

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// ErrOutOfMemory is returned when the runtime cannot satisfy an allocation.
var ErrOutOfMemory = errors.New("out of memory")

// ErrAllocationTooLarge is returned when a request exceeds the number of
// elements of the given type that can be addressed.
var ErrAllocationTooLarge = errors.New("allocation too large")

// Stats summarizes the activity of an Allocator.
type Stats struct {
	// Allocations is the number of non-empty buffers handed out.
	Allocations int64
	// Deallocations is the number of non-empty buffers returned.
	Deallocations int64
	// LiveSlots is the number of element slots currently handed out.
	LiveSlots int64
	// LiveBytes is LiveSlots multiplied by the element size.
	LiveBytes int64
}

// Allocator hands out zeroed buffers of T. The zero value is ready to use.
// An Allocator is not safe for concurrent use.
type Allocator[T any] struct {
	stats Stats
}

// ElemSize returns the size in bytes of a single T.
func (a *Allocator[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// MaxSize returns the largest element count that Allocate will attempt.
func (a *Allocator[T]) MaxSize() int {
	sz := a.ElemSize()
	if sz == 0 {
		return math.MaxInt
	}
	return math.MaxInt / sz
}

// Allocate returns a buffer of n zeroed slots. Requests that cannot be
// addressed fail with ErrAllocationTooLarge; requests the runtime refuses
// fail with ErrOutOfMemory.
func (a *Allocator[T]) Allocate(n int) (buf []T, err error) {
	if n < 0 || n > a.MaxSize() {
		return nil, errors.Wrapf(ErrAllocationTooLarge,
			"cannot allocate %d elements of %d bytes", errors.Safe(n), errors.Safe(a.ElemSize()))
	}
	if n == 0 {
		return []T{}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			// makeslice reports lengths the heap can never hold as a
			// runtime error; anything else is not ours to swallow.
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, errors.Wrapf(ErrOutOfMemory,
				"allocating %d elements of %d bytes", errors.Safe(n), errors.Safe(a.ElemSize()))
		}
	}()
	buf = make([]T, n)
	a.stats.Allocations++
	a.stats.LiveSlots += int64(n)
	a.stats.LiveBytes += int64(n) * int64(a.ElemSize())
	return buf, nil
}

// Deallocate returns a buffer previously obtained from Allocate. The slots
// are zeroed so that anything they reference can be collected.
func (a *Allocator[T]) Deallocate(buf []T) {
	if len(buf) == 0 {
		return
	}
	clear(buf)
	a.stats.Deallocations++
	a.stats.LiveSlots -= int64(len(buf))
	a.stats.LiveBytes -= int64(len(buf)) * int64(a.ElemSize())
}

// Construct stores v into the slot at p.
func (a *Allocator[T]) Construct(p *T, v T) {
	*p = v
}

// Destroy resets the slot at p to the zero value.
func (a *Allocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Stats returns a snapshot of the allocator's counters.
func (a *Allocator[T]) Stats() Stats {
	return a.stats
}
