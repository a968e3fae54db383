// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

// strategy selects the concurrency mechanism behind a queue.
type strategy int

const (
	strategyLockFree strategy = iota
	strategyTwoLock
	strategySingleLock
)

// Options configures queue creation and strategy selection.
type Options struct {
	strategy strategy
}

// Builder creates queues with fluent configuration.
//
// Builder provides a fluent API for selecting the queue strategy.
// The default is the lock-free queue; the lock-based variants exist as
// interchangeable baselines with the same contract.
//
// Example:
//
//	// Lock-free queue (default, general purpose)
//	q := cq.Build[Request](cq.New())
//
//	// Two-lock queue
//	q := cq.Build[Event](cq.New().TwoLock())
//
//	// Fully serialized baseline
//	q := cq.Build[Event](cq.New().SingleLock())
type Builder struct {
	opts Options
}

// New creates a queue builder.
//
// The builder defaults to the lock-free strategy. Queues are unbounded,
// so there is no capacity to configure.
func New() *Builder {
	return &Builder{}
}

// LockFree selects the non-blocking Michael–Scott queue.
// This is the default strategy.
func (b *Builder) LockFree() *Builder {
	b.opts.strategy = strategyLockFree
	return b
}

// TwoLock selects the queue with separately locked head and tail buffers.
func (b *Builder) TwoLock() *Builder {
	b.opts.strategy = strategyTwoLock
	return b
}

// SingleLock selects the fully serialized baseline queue.
func (b *Builder) SingleLock() *Builder {
	b.opts.strategy = strategySingleLock
	return b
}

// Build creates a Queue[T] with the configured strategy.
//
// Strategy selection:
//
//	(default)     → LockFree (Michael–Scott, non-blocking)
//	TwoLock()     → TwoLock (head/tail mutexes, amortized transfer)
//	SingleLock()  → SingleLock (one mutex, serialized baseline)
//
// For concrete types, use:
//   - BuildLockFree[T](b) → *LockFree[T]
//   - BuildTwoLock[T](b) → *TwoLock[T]
//   - BuildSingleLock[T](b) → *SingleLock[T]
func Build[T any](b *Builder) Queue[T] {
	switch b.opts.strategy {
	case strategyTwoLock:
		return NewTwoLock[T]()
	case strategySingleLock:
		return NewSingleLock[T]()
	default:
		return NewLockFree[T]()
	}
}

// BuildLockFree creates a lock-free queue with compile-time type safety.
// Panics if the builder selected a different strategy.
func BuildLockFree[T any](b *Builder) *LockFree[T] {
	if b.opts.strategy != strategyLockFree {
		panic("cq: BuildLockFree requires the LockFree strategy")
	}
	return NewLockFree[T]()
}

// BuildTwoLock creates a two-lock queue with compile-time type safety.
// Panics if the builder is not configured with TwoLock().
func BuildTwoLock[T any](b *Builder) *TwoLock[T] {
	if b.opts.strategy != strategyTwoLock {
		panic("cq: BuildTwoLock requires TwoLock()")
	}
	return NewTwoLock[T]()
}

// BuildSingleLock creates a single-lock queue with compile-time type safety.
// Panics if the builder is not configured with SingleLock().
func BuildSingleLock[T any](b *Builder) *SingleLock[T] {
	if b.opts.strategy != strategySingleLock {
		panic("cq: BuildSingleLock requires SingleLock()")
	}
	return NewSingleLock[T]()
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
