// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/spin"

// MPSC is a multi-producer single-consumer bounded queue.
//
// Offer is lock-free: producers race to CAS tail forward and retry on
// contention. Poll is wait-free, identical to SPSC's, because only
// one goroutine ever writes head. The total enqueue order is the order
// in which producers win the tail CAS; the consumer observes
// per-index release order, which matches that total order.
type MPSC[E any] struct {
	*ring[E]
}

// NewMPSC creates a new MPSC queue. Capacity rounds up to the next
// power of two. Panics if capacity is not positive.
func NewMPSC[E any](capacity int) *MPSC[E] {
	r, err := newRing[E](capacity)
	if err != nil {
		panic(err)
	}
	return &MPSC[E]{ring: r}
}

// Offer adds elem to the queue (multiple producers safe).
// Returns ErrInvalidArgument if elem is nil, ErrWouldBlock if full.
func (q *MPSC[E]) Offer(elem *E) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	sw := spin.Wait{}
	for {
		tail := q.tail.LoadRelaxed()
		slot := &q.buffer[tail&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		switch {
		case diff == 0:
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				slot.value = *elem
				slot.seq.StoreRelease(tail + 1)
				return nil
			}
		case diff < 0:
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Poll removes and returns an element (consumer goroutine only, no
// CAS: head is written by exactly one goroutine by contract).
// Returns (zero-value, ErrWouldBlock) if empty.
func (q *MPSC[E]) Poll() (E, error) {
	head := q.head.LoadRelaxed()
	slot := &q.buffer[head&q.mask]

	var zero E
	if slot.seq.LoadAcquire() != head+1 {
		return zero, ErrWouldBlock
	}

	elem := slot.value
	slot.value = zero
	slot.seq.StoreRelease(head + q.capacity)
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Drain polls up to max elements, invoking cb with each in order.
// See [Drainer] for the full contract.
func (q *MPSC[E]) Drain(cb func(E) error, max int) (int, error) {
	return drain[E](q, cb, max)
}
