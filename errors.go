// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrInvalidCapacity is the value the constructors (NewSPSC, NewMPSC,
// NewSPMC, NewMPMC) and New panic with when the requested capacity is
// not a positive integer. No queue is created.
var ErrInvalidCapacity = errors.New("ringq: capacity must be positive")

// ErrInvalidArgument is returned by Offer when the offered element is
// nil, or by Drain when the callback is nil. No state is mutated.
var ErrInvalidArgument = errors.New("ringq: invalid argument")

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Offer: the queue is full (backpressure).
// For Poll/Peek: the queue is empty (no data available).
//
// ErrWouldBlock is a control flow signal, not a failure. The caller
// should retry later, typically with backoff, rather than propagating
// the error up the stack.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
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
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than
// a failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition
// (nil or ErrWouldBlock). Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
