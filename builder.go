// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Options configures queue creation and algorithm selection.
type Options struct {
	singleProducer bool
	singleConsumer bool
	capacity       int
}

// Builder creates queues with fluent configuration. The algorithm is
// selected from the declared producer/consumer constraints; the
// builder never has to be told which of SPSC/MPSC/SPMC/MPMC to use.
//
// Example:
//
//	q := ringq.Build[Event](ringq.New(1024).SingleProducer().SingleConsumer())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given requested capacity.
// Capacity rounds up to the next power of two. Panics if capacity is
// not positive.
func New(capacity int) *Builder {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will call Offer.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will call Poll.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Queue[E] with automatic algorithm selection:
//
//	SingleProducer + SingleConsumer → SPSC
//	SingleProducer only             → SPMC
//	SingleConsumer only             → MPSC
//	Neither                         → MPMC
func Build[E any](b *Builder) Queue[E] {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		return NewSPSC[E](b.opts.capacity)
	case b.opts.singleProducer:
		return NewSPMC[E](b.opts.capacity)
	case b.opts.singleConsumer:
		return NewMPSC[E](b.opts.capacity)
	default:
		return NewMPMC[E](b.opts.capacity)
	}
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if the builder is not configured with
// SingleProducer().SingleConsumer().
func BuildSPSC[E any](b *Builder) *SPSC[E] {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("ringq: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	return NewSPSC[E](b.opts.capacity)
}

// BuildMPSC creates an MPSC queue with compile-time type safety.
// Panics if the builder declares SingleProducer, or omits
// SingleConsumer.
func BuildMPSC[E any](b *Builder) *MPSC[E] {
	if b.opts.singleProducer || !b.opts.singleConsumer {
		panic("ringq: BuildMPSC requires SingleConsumer() without SingleProducer()")
	}
	return NewMPSC[E](b.opts.capacity)
}

// BuildSPMC creates an SPMC queue with compile-time type safety.
// Panics if the builder declares SingleConsumer, or omits
// SingleProducer.
func BuildSPMC[E any](b *Builder) *SPMC[E] {
	if !b.opts.singleProducer || b.opts.singleConsumer {
		panic("ringq: BuildSPMC requires SingleProducer() without SingleConsumer()")
	}
	return NewSPMC[E](b.opts.capacity)
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Panics if the builder declares either constraint.
func BuildMPMC[E any](b *Builder) *MPMC[E] {
	if b.opts.singleProducer || b.opts.singleConsumer {
		panic("ringq: BuildMPMC requires no constraints")
	}
	return NewMPMC[E](b.opts.capacity)
}
