// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"testing"

	"github.com/flowlattice/ringq"
)

func TestSPSCBasic(t *testing.T) {
	q := ringq.NewSPSC[int](3)

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}

	for i := range 4 {
		v := i + 100
		if err := q.Offer(&v); err != nil {
			t.Fatalf("Offer(%d): %v", i, err)
		}
	}

	v := 999
	if err := q.Offer(&v); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Offer on full: got %v, want ErrWouldBlock", err)
	}
	if q.Size() != 4 {
		t.Fatalf("Size: got %d, want 4", q.Size())
	}

	for i := range 4 {
		val, err := q.Poll()
		if err != nil {
			t.Fatalf("Poll(%d): %v", i, err)
		}
		if val != i+100 {
			t.Fatalf("Poll(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, err := q.Poll(); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Poll on empty: got %v, want ErrWouldBlock", err)
	}
	if q.Size() != 0 {
		t.Fatalf("Size: got %d, want 0", q.Size())
	}
}

func TestSPSCOfferNilRejected(t *testing.T) {
	q := ringq.NewSPSC[int](4)
	if err := q.Offer(nil); !errors.Is(err, ringq.ErrInvalidArgument) {
		t.Fatalf("Offer(nil): got %v, want ErrInvalidArgument", err)
	}
	if !q.IsEmpty() {
		t.Fatalf("queue should remain empty after rejected Offer")
	}
}

func TestSPSCPeekIdempotent(t *testing.T) {
	q := ringq.NewSPSC[string](4)
	v := "a"
	if err := q.Offer(&v); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		got, err := q.Peek()
		if err != nil || got != "a" {
			t.Fatalf("Peek(%d): got (%q, %v), want (\"a\", nil)", i, got, err)
		}
	}
	got, err := q.Poll()
	if err != nil || got != "a" {
		t.Fatalf("Poll: got (%q, %v)", got, err)
	}
}

func TestSPSCEmptyPeekAndPoll(t *testing.T) {
	q := ringq.NewSPSC[int](16)
	if _, err := q.Peek(); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Peek on empty: got %v, want ErrWouldBlock", err)
	}
	if _, err := q.Poll(); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Poll on empty: got %v, want ErrWouldBlock", err)
	}
	if q.Size() != 0 {
		t.Fatalf("Size: got %d, want 0", q.Size())
	}
}

func TestSPSCCapacityOne(t *testing.T) {
	q := ringq.NewSPSC[int](1)
	if q.Cap() != 1 {
		t.Fatalf("Cap: got %d, want 1", q.Cap())
	}

	v := 42
	if err := q.Offer(&v); err != nil {
		t.Fatal(err)
	}
	if err := q.Offer(&v); !errors.Is(err, ringq.ErrWouldBlock) {
		t.Fatalf("Offer on full 1-capacity queue: got %v", err)
	}

	got, err := q.Poll()
	if err != nil || got != 42 {
		t.Fatalf("Poll: got (%d, %v)", got, err)
	}
	if err := q.Offer(&v); err != nil {
		t.Fatalf("Offer after drain: %v", err)
	}
}

func TestSPSCFullDrainCycleReturnsToInitialState(t *testing.T) {
	q := ringq.NewSPSC[int](8)
	for i := 0; i < q.Cap(); i++ {
		v := i
		if err := q.Offer(&v); err != nil {
			t.Fatalf("Offer(%d): %v", i, err)
		}
	}
	for i := 0; i < q.Cap(); i++ {
		if _, err := q.Poll(); err != nil {
			t.Fatalf("Poll(%d): %v", i, err)
		}
	}
	if !q.IsEmpty() || q.Size() != 0 {
		t.Fatalf("queue not back to initial state: empty=%v size=%d", q.IsEmpty(), q.Size())
	}
}

func TestSPSCDrainBatches(t *testing.T) {
	q := ringq.NewSPSC[int](64)
	for i := 0; i < 10; i++ {
		v := i
		if err := q.Offer(&v); err != nil {
			t.Fatal(err)
		}
	}

	var got []int
	n, err := q.Drain(func(e int) error {
		got = append(got, e)
		return nil
	}, 6)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 6 {
		t.Fatalf("Drain count: got %d, want 6", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("drained[%d]: got %d, want %d", i, v, i)
		}
	}

	n, err = q.Drain(func(int) error { return nil }, 10)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 4 {
		t.Fatalf("Drain remaining: got %d, want 4", n)
	}
}

func TestSPSCDrainStopsOnCallbackError(t *testing.T) {
	q := ringq.NewSPSC[int](16)
	for i := 0; i < 5; i++ {
		v := i
		if err := q.Offer(&v); err != nil {
			t.Fatal(err)
		}
	}

	boom := errors.New("boom")
	var seen int
	n, err := q.Drain(func(int) error {
		seen++
		if seen == 3 {
			return boom
		}
		return nil
	}, 10)

	if !errors.Is(err, boom) {
		t.Fatalf("Drain error: got %v, want boom", err)
	}
	if n != 3 {
		t.Fatalf("Drain count on error: got %d, want 3 (element already removed)", n)
	}

	// The 4th and 5th elements remain, since Drain stopped, not rolled back.
	v, err := q.Poll()
	if err != nil || v != 3 {
		t.Fatalf("Poll after aborted drain: got (%d, %v), want (3, nil)", v, err)
	}
}

func TestSPSCDrainInvalidArgument(t *testing.T) {
	q := ringq.NewSPSC[int](4)
	if _, err := q.Drain(nil, 1); !errors.Is(err, ringq.ErrInvalidArgument) {
		t.Fatalf("Drain(nil, ...): got %v, want ErrInvalidArgument", err)
	}
	if _, err := q.Drain(func(int) error { return nil }, 0); !errors.Is(err, ringq.ErrInvalidArgument) {
		t.Fatalf("Drain(cb, 0): got %v, want ErrInvalidArgument", err)
	}
}

// TestSPSCOneMillionOrderedPairs runs a large sequential offer/poll
// sequence single-threaded to check for mis-ordering or drops outside
// of concurrent contention (B4's cardinality, exercised serially so it
// also runs under -race).
func TestSPSCOneMillionOrderedPairs(t *testing.T) {
	const n = 1 << 20
	q := ringq.NewSPSC[int](1024)

	produced, consumed := 0, 0
	for consumed < n {
		for produced < n {
			v := produced
			if err := q.Offer(&v); err != nil {
				break
			}
			produced++
		}
		for {
			v, err := q.Poll()
			if err != nil {
				break
			}
			if v != consumed {
				t.Fatalf("mis-ordered element: got %d, want %d", v, consumed)
			}
			consumed++
		}
	}
}
