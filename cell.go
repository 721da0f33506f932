// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"math"

	"code.hybscloud.com/atomix"
)

// cell is one slot of the ring: a sequence number and the value it
// guards. sequence encodes both the slot's lap and its free/full
// state (see ring doc). value accesses are relaxed; the release and
// acquire operations on sequence transitively order them.
type cell[E any] struct {
	seq   atomix.Uint64
	value E
	_     padTail
}

// ring is the shared substrate for all four endpoint variants: a
// fixed power-of-two array of cells plus the head/tail cursors. It
// is never resized after construction. head and tail are isolated on
// distinct cache lines from each other and from the array header to
// avoid false sharing between producers and consumers.
//
// Embedding ring in a concrete endpoint type gives that type Peek,
// IsEmpty, Size, and Cap for free; the endpoint itself only needs to
// implement Offer, Poll, and (for single-consumer endpoints) Drain,
// since those are the only operations whose CAS discipline differs
// across SPSC/MPSC/SPMC/MPMC.
type ring[E any] struct {
	_        pad
	head     atomix.Uint64
	_        pad
	tail     atomix.Uint64
	_        pad
	buffer   []cell[E]
	mask     uint64
	capacity uint64
}

// newRing allocates a ring of at least the requested capacity,
// rounded up to the next power of two, and initializes cell i's
// sequence to i as required by the lap invariant.
func newRing[E any](capacity int) (*ring[E], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	n := uint64(roundUpPow2(capacity))
	r := &ring[E]{
		buffer:   make([]cell[E], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		r.buffer[i].seq.StoreRelaxed(i)
	}
	return r, nil
}

// Cap returns the fixed, post-rounding capacity.
func (r *ring[E]) Cap() int {
	return int(r.capacity)
}

// Peek returns the element the next Poll would return, without
// removing it. Best-effort: it is not a synchronization point and a
// concurrent Poll may remove the element before the caller observes
// this result.
func (r *ring[E]) Peek() (E, error) {
	head := r.head.LoadAcquire()
	slot := &r.buffer[head&r.mask]
	seq := slot.seq.LoadAcquire()

	var zero E
	if seq != head+1 {
		return zero, ErrWouldBlock
	}
	return slot.value, nil
}

// IsEmpty reports whether the queue had no ready element at the
// moment of inspection. Like Peek, this is best-effort under
// concurrency.
func (r *ring[E]) IsEmpty() bool {
	head := r.head.LoadAcquire()
	seq := r.buffer[head&r.mask].seq.LoadAcquire()
	return seq != head+1
}

// Size returns an approximate element count, clamped to
// [0, math.MaxInt]. tail and head are read independently, so the
// result can be stale by the time the caller observes it; it is
// intended for monitoring, not synchronization.
func (r *ring[E]) Size() int {
	tail := r.tail.LoadAcquire()
	head := r.head.LoadAcquire()

	diff := int64(tail - head)
	if diff < 0 {
		return 0
	}
	if diff > math.MaxInt {
		return math.MaxInt
	}
	return int(diff)
}
