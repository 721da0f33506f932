// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides bounded, array-backed, lock-free ring-buffer
// queues.
//
// Four endpoint variants cover the common producer/consumer shapes:
//
//   - SPSC: Single-Producer Single-Consumer
//   - MPSC: Multi-Producer Single-Consumer
//   - SPMC: Single-Producer Multi-Consumer
//   - MPMC: Multi-Producer Multi-Consumer
//
// All four share one algorithmic substrate: a per-cell sequence
// number protocol (a variant of Vyukov's bounded-queue design) over a
// power-of-two array. The variants differ only in which cursor, if
// any, requires a CAS to advance.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := ringq.NewSPSC[Event](1024)
//	q := ringq.NewMPMC[*Request](4096)
//
// Builder API auto-selects the algorithm from declared constraints:
//
//	q := ringq.Build[Event](ringq.New(1024).SingleProducer().SingleConsumer()) // → SPSC
//	q := ringq.Build[Event](ringq.New(1024).SingleConsumer())                  // → MPSC
//	q := ringq.Build[Event](ringq.New(1024).SingleProducer())                  // → SPMC
//	q := ringq.Build[Event](ringq.New(1024))                                   // → MPMC
//
// # Basic Usage
//
// All four variants share the same operation set:
//
//	q := ringq.NewMPMC[int](1024)
//
//	value := 42
//	if err := q.Offer(&value); err != nil {
//	    // queue is full
//	}
//
//	elem, err := q.Poll()
//	if err == nil {
//	    fmt.Println(elem)
//	}
//
// # Common Patterns
//
// Pipeline stage (SPSC):
//
//	q := ringq.NewSPSC[Data](1024)
//
//	go func() { // producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Offer(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Poll()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// Event aggregation (MPSC), many sources feeding one processor:
//
//	q := ringq.NewMPSC[Event](4096)
//
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.Offer(&ev)
//	        }
//	    }(sensor)
//	}
//
//	go func() { // single aggregator
//	    for {
//	        ev, err := q.Poll()
//	        if err == nil {
//	            aggregate(ev)
//	        }
//	    }
//	}()
//
// Work distribution (SPMC), one dispatcher feeding many workers:
//
//	q := ringq.NewSPMC[Task](1024)
//
//	go func() { // single dispatcher
//	    backoff := iox.Backoff{}
//	    for task := range tasks {
//	        for q.Offer(&task) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            task, err := q.Poll()
//	            if err == nil {
//	                task.Execute()
//	            }
//	        }
//	    }()
//	}
//
// Worker pool (MPMC), many submitters feeding many workers:
//
//	q := ringq.NewMPMC[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            job, err := q.Poll()
//	            if err == nil {
//	                job.Run()
//	            }
//	        }
//	    }()
//	}
//
//	func Submit(j Job) error {
//	    return q.Offer(&j)
//	}
//
// # Batched Drain
//
// SPSC and MPSC additionally implement [Drainer], a batched poll loop
// for the single-consumer variants:
//
//	n, err := q.Drain(func(e Event) error {
//	    return process(e)
//	}, 256)
//
// Drain stops when the queue reports empty, max elements have been
// drained, or the callback returns a non-nil error. An erroring
// element has already been removed from the queue; Drain never rolls
// a removal back.
//
// # Capacity and Length
//
// Capacity rounds up to the next power of 2:
//
//	q := ringq.NewMPMC[int](3)     // actual capacity: 4
//	q := ringq.NewMPMC[int](1000)  // actual capacity: 1024
//	q := ringq.NewMPMC[int](1024)  // actual capacity: 1024
//
// Minimum requested capacity is 1. Constructors panic on a
// non-positive capacity; [Build] and its typed variants do too, since
// [New] panics first.
//
// Size is intentionally approximate: an accurate count under
// concurrency requires expensive cross-core synchronization.
// [Queue.Size] is a clamped, possibly-stale snapshot intended for
// monitoring, not synchronization. Track exact counts in application
// logic if needed.
//
// # Thread Safety
//
// Queue operations are thread-safe only within their declared access
// pattern:
//
//   - SPSC: one producer goroutine, one consumer goroutine
//   - MPSC: multiple producer goroutines, one consumer goroutine
//   - SPMC: one producer goroutine, multiple consumer goroutines
//   - MPMC: multiple producer and consumer goroutines
//
// Violating these constraints (e.g. two goroutines calling Offer on
// an SPSC queue) is undefined behavior, not a detected error.
//
// # Error Handling
//
// Non-blocking operations return [ErrWouldBlock] when they cannot
// proceed. This is a control flow signal, not a failure; it is
// sourced from [code.hybscloud.com/iox] for ecosystem consistency.
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Offer(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !ringq.IsWouldBlock(err) {
//	        return err // unexpected error
//	    }
//	    backoff.Wait()
//	}
//
// Construction and argument errors ([ErrInvalidCapacity],
// [ErrInvalidArgument]) are reported synchronously and never leave
// the queue in a mutated state.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives
// (mutex, channel, WaitGroup) but cannot observe a happens-before
// relationship established purely through acquire/release orderings
// on a separate atomic variable. This package's cell sequence
// protocol does exactly that: a release-store on cell.seq orders the
// plain value write that precedes it, and an acquire-load on the same
// field orders the plain value read that follows it, for variables
// the race detector never sees connected.
//
// Concurrent stress tests that would false-positive under the race
// detector for this reason check [RaceEnabled] and skip themselves
// when it is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for typed atomics
// with explicit memory ordering, [code.hybscloud.com/spin] for CAS
// retry backoff, and [code.hybscloud.com/iox] for semantic errors.
package ringq
