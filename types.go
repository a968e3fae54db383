// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

// Queue is the combined producer-consumer interface for an unbounded
// FIFO queue.
//
// Queue provides a non-failing Enqueue and a non-blocking Dequeue.
// Dequeue returns ErrWouldBlock when the queue is empty.
//
// The interface intentionally excludes length because accurate counts
// in lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// Example:
//
//	q := cq.NewLockFree[int]()
//
//	// Enqueue
//	val := 42
//	q.Enqueue(&val)
//
//	// Dequeue
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue.
	// The element is copied into the queue's internal storage.
	// The queue is unbounded, so Enqueue always succeeds.
	//
	// Safe for any number of concurrent producers on every variant.
	Enqueue(elem *T)
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied out of the queue's internal
// storage). The queue releases its reference to the stored value so the
// garbage collector can reclaim consumed payloads.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns the dequeued element on success.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	//
	// Safe for any number of concurrent consumers on every variant.
	Dequeue() (T, error)
}
