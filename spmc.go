// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/spin"

// SPMC is a single-producer multi-consumer bounded queue.
//
// Offer is wait-free, identical to SPSC's, because only one goroutine
// ever writes tail. Poll is lock-free: consumers race to CAS head
// forward and retry on contention. An element already claimed by a
// faster consumer is simply not visible to the loser once it reloads
// head, so a losing CAS is always followed by a fresh read rather
// than a blind retry on the same index.
type SPMC[E any] struct {
	*ring[E]
}

// NewSPMC creates a new SPMC queue. Capacity rounds up to the next
// power of two. Panics if capacity is not positive.
func NewSPMC[E any](capacity int) *SPMC[E] {
	r, err := newRing[E](capacity)
	if err != nil {
		panic(err)
	}
	return &SPMC[E]{ring: r}
}

// Offer adds elem to the queue (producer goroutine only, no CAS: tail
// is written by exactly one goroutine by contract).
// Returns ErrInvalidArgument if elem is nil, ErrWouldBlock if full.
func (q *SPMC[E]) Offer(elem *E) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	tail := q.tail.LoadRelaxed()
	slot := &q.buffer[tail&q.mask]
	if slot.seq.LoadAcquire() != tail {
		return ErrWouldBlock
	}

	slot.value = *elem
	slot.seq.StoreRelease(tail + 1)
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Poll removes and returns an element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if empty.
func (q *SPMC[E]) Poll() (E, error) {
	sw := spin.Wait{}
	var zero E
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]

		if slot.seq.LoadAcquire() != head+1 {
			return zero, ErrWouldBlock
		}

		if q.head.CompareAndSwapAcqRel(head, head+1) {
			elem := slot.value
			slot.value = zero
			slot.seq.StoreRelease(head + q.capacity)
			return elem, nil
		}
		sw.Once()
	}
}
