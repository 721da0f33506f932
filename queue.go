// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the operation set shared by every endpoint variant.
//
// All operations are non-blocking: Offer returns ErrWouldBlock when
// the queue is full, Poll and Peek return ErrWouldBlock when it is
// empty. Neither condition is treated as a failure; callers implement
// their own retry, backoff, or timeout policy on top of it.
type Queue[E any] interface {
	// Offer adds elem to the queue. Returns ErrInvalidArgument if
	// elem is nil, ErrWouldBlock if the queue is full.
	//
	// Thread safety depends on the endpoint:
	//   - SPSC, SPMC: single producer only
	//   - MPSC, MPMC: multiple producers safe
	Offer(elem *E) error

	// Poll removes and returns the oldest ready element. Returns
	// (zero-value, ErrWouldBlock) if the queue is empty.
	//
	// Thread safety depends on the endpoint:
	//   - SPSC, MPSC: single consumer only
	//   - SPMC, MPMC: multiple consumers safe
	Poll() (E, error)

	// Peek returns the element the next Poll would return, without
	// removing it. Best-effort: see [ring.Peek].
	Peek() (E, error)

	// IsEmpty reports whether the queue had no ready element at the
	// moment of inspection. Best-effort.
	IsEmpty() bool

	// Size returns an approximate element count, saturated to
	// math.MaxInt. Approximate; intended for monitoring only.
	Size() int

	// Cap returns the fixed, post-rounding capacity.
	Cap() int
}

// Drainer is implemented by the single-consumer endpoints (SPSC,
// MPSC). Drain is a loop over the endpoint's own Poll, so each
// element goes through the full cell sequence protocol.
type Drainer[E any] interface {
	// Drain repeatedly polls, invoking cb with each element in
	// order, until the queue reports empty or max elements have been
	// drained. Returns the count actually drained.
	//
	// Returns ErrInvalidArgument without polling if cb is nil or max
	// is not positive. If cb returns an error, Drain stops and
	// returns immediately: the element that produced the error has
	// already been removed from the queue and is included in the
	// returned count. Drain never rolls back a removal.
	//
	// The callback runs synchronously on the calling goroutine, after
	// the element's slot has already been released for reuse by a
	// producer; it must not call back into the same queue expecting
	// to observe the pre-drain state.
	Drain(cb func(E) error, max int) (int, error)
}

// poller is the minimal capability drain needs; SPSC and MPSC both
// satisfy it via their own CAS-free Poll.
type poller[E any] interface {
	Poll() (E, error)
}

// drain implements the [Drainer] contract in terms of repeated Poll
// calls, shared by SPSC and MPSC since neither endpoint's Drain
// differs from "poll in a tight loop".
func drain[E any](p poller[E], cb func(E) error, max int) (int, error) {
	if cb == nil || max <= 0 {
		return 0, ErrInvalidArgument
	}

	count := 0
	for count < max {
		v, err := p.Poll()
		if err != nil {
			break
		}
		count++
		if cbErr := cb(v); cbErr != nil {
			return count, cbErr
		}
	}
	return count, nil
}
