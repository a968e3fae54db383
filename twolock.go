// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

import "sync"

// TwoLock is an unbounded queue built from two independently-locked
// buffers. Producers append to the tail buffer under the tail lock;
// consumers pop from the head buffer under the head lock. When the head
// buffer runs dry, the tail buffer's contents are transferred in one
// amortized step.
//
// Lock order is strictly head before tail. Every check-and-drain
// sequence holds the head lock for its whole duration, so two
// goroutines can never both observe an empty head buffer and perform
// overlapping transfers.
//
// Progress: blocking. Enqueue and Dequeue proceed concurrently except
// during a transfer, which momentarily serializes both sides.
type TwoLock[T any] struct {
	headMu  sync.Mutex
	headBuf deque[T]
	_       pad
	tailMu  sync.Mutex
	tailBuf deque[T]
}

// NewTwoLock creates a new two-lock queue.
func NewTwoLock[T any]() *TwoLock[T] {
	return &TwoLock[T]{}
}

// Enqueue adds an element to the queue.
// The queue is unbounded, so Enqueue always succeeds.
func (q *TwoLock[T]) Enqueue(elem *T) {
	q.tailMu.Lock()
	q.tailBuf.pushBack(*elem)
	q.tailMu.Unlock()

	// Amortized transfer: keep the head buffer fed so consumers rarely
	// have to reach across to the tail side themselves. Acquiring head
	// first preserves the head→tail lock order.
	q.headMu.Lock()
	if q.headBuf.len() == 0 {
		q.tailMu.Lock()
		q.drainLocked()
		q.tailMu.Unlock()
	}
	q.headMu.Unlock()
}

// Dequeue removes and returns an element from the queue.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *TwoLock[T]) Dequeue() (T, error) {
	q.headMu.Lock()
	if elem, ok := q.headBuf.popFront(); ok {
		q.headMu.Unlock()
		return elem, nil
	}

	// Head buffer dry: transfer from the tail side. The head lock stays
	// held across the check and the drain.
	q.tailMu.Lock()
	if q.tailBuf.len() == 0 {
		q.tailMu.Unlock()
		q.headMu.Unlock()
		var zero T
		return zero, ErrWouldBlock
	}
	q.drainLocked()
	q.tailMu.Unlock()

	elem, _ := q.headBuf.popFront()
	q.headMu.Unlock()
	return elem, nil
}

// drainLocked moves every element from tailBuf to headBuf.
// Both locks must be held.
func (q *TwoLock[T]) drainLocked() {
	for {
		elem, ok := q.tailBuf.popFront()
		if !ok {
			return
		}
		q.headBuf.pushBack(elem)
	}
}
