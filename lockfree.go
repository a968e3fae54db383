// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// node is one queued element plus its successor link. While linked, a
// node is owned by the queue; after head advances past it, the garbage
// collector reclaims it once no in-flight operation still references it.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// LockFree is a non-blocking multi-producer multi-consumer unbounded queue.
//
// Based on the Michael–Scott algorithm (PODC 1996): a singly linked
// chain of nodes behind two atomic references. head always points at a
// sentinel whose value has already been consumed; tail points at the
// last node or lags it by at most one link. Lagging tails are repaired
// by whichever operation observes them, so a stalled enqueuer can never
// strand a linked node.
//
// Progress: lock-free, not wait-free. At least one contender completes
// in a bounded number of steps; an individual goroutine may retry under
// adversarial scheduling.
//
// Memory: one node allocation per element.
type LockFree[T any] struct {
	_    pad
	head atomic.Pointer[node[T]] // Sentinel; its value is never live
	_    pad
	tail atomic.Pointer[node[T]] // Last node, or one link behind it
	_    pad
}

// NewLockFree creates a new lock-free queue.
//
// The initial sentinel node holds no value, only a successor link, so T
// never needs a meaningful default representation.
func NewLockFree[T any]() *LockFree[T] {
	q := &LockFree[T]{}
	sentinel := &node[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Enqueue adds an element to the queue (multiple producers safe).
// The queue is unbounded, so Enqueue always succeeds.
func (q *LockFree[T]) Enqueue(elem *T) {
	n := &node[T]{value: *elem}

	sw := spin.Wait{}
	for {
		tail := q.tail.Load()
		next := tail.next.Load()

		if tail != q.tail.Load() {
			// tail moved under us; re-read before touching links
			sw.Once()
			continue
		}

		if next == nil {
			if tail.next.CompareAndSwap(nil, n) {
				// Linked. Swing tail forward; losing this CAS is
				// harmless because the observer that beat us already
				// advanced it on our behalf.
				q.tail.CompareAndSwap(tail, n)
				return
			}
		} else {
			// tail lags the true last node: help it forward and retry.
			q.tail.CompareAndSwap(tail, next)
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *LockFree[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()

		if head != q.head.Load() {
			sw.Once()
			continue
		}

		if head == tail {
			if next == nil {
				var zero T
				return zero, ErrWouldBlock
			}
			// Stale tail: an enqueuer linked a node but has not swung
			// tail yet. Help it forward and retry.
			q.tail.CompareAndSwap(tail, next)
			sw.Once()
			continue
		}

		// Read the value before the swing: after a competing dequeuer
		// wins, next becomes its sentinel and must not be read.
		elem := next.value
		if q.head.CompareAndSwap(head, next) {
			// The old sentinel is now unreachable from the queue and
			// is collected once no in-flight reader still holds it.
			return elem, nil
		}
		sw.Once()
	}
}
