// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import "sync"

// SingleLock is an unbounded queue guarded by one mutex. Every
// operation serializes on the same lock; it exists as the correctness
// and performance baseline for the other variants.
type SingleLock[T any] struct {
	mu  sync.Mutex
	buf deque[T]
}

// NewSingleLock creates a new single-lock queue.
func NewSingleLock[T any]() *SingleLock[T] {
	return &SingleLock[T]{}
}

// Enqueue adds an element to the queue.
// The queue is unbounded, so Enqueue always succeeds.
func (q *SingleLock[T]) Enqueue(elem *T) {
	q.mu.Lock()
	q.buf.pushBack(*elem)
	q.mu.Unlock()
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SingleLock[T]) Dequeue() (T, error) {
	q.mu.Lock()
	elem, ok := q.buf.popFront()
	q.mu.Unlock()
	if !ok {
		var zero T
		return zero, ErrWouldBlock
	}
	return elem, nil
}
