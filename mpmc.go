// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "code.hybscloud.com/spin"

// MPMC is a multi-producer multi-consumer bounded queue: the full
// two-sided protocol. Offer is MPSC's producer loop; Poll is SPMC's
// consumer loop with one refinement — if a consumer observes that
// sequence already advanced past the slot it claimed (another
// consumer beat it to that index), it spin-hints and retries instead
// of reporting empty, since the queue may still hold later elements.
type MPMC[E any] struct {
	*ring[E]
}

// NewMPMC creates a new MPMC queue. Capacity rounds up to the next
// power of two. Panics if capacity is not positive.
func NewMPMC[E any](capacity int) *MPMC[E] {
	r, err := newRing[E](capacity)
	if err != nil {
		panic(err)
	}
	return &MPMC[E]{ring: r}
}

// Offer adds elem to the queue (multiple producers safe).
// Returns ErrInvalidArgument if elem is nil, ErrWouldBlock if full.
func (q *MPMC[E]) Offer(elem *E) error {
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

// Poll removes and returns an element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if empty.
func (q *MPMC[E]) Poll() (E, error) {
	sw := spin.Wait{}
	var zero E
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head&q.mask]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		switch {
		case diff == 0:
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := slot.value
				slot.value = zero
				slot.seq.StoreRelease(head + q.capacity)
				return elem, nil
			}
		case diff < 0:
			return zero, ErrWouldBlock
		}
		// diff > 0: another consumer already took this index; retry.
		sw.Once()
	}
}
