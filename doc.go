// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cq provides unbounded concurrent FIFO queue implementations.
//
// The package offers three queue variants with different concurrency
// strategies behind one contract:
//
//   - LockFree: non-blocking MPMC queue (Michael–Scott algorithm)
//   - TwoLock: two independently-locked buffers with amortized transfer
//   - SingleLock: one mutex-guarded buffer, the reference baseline
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := cq.NewLockFree[Event]()
//	q := cq.NewTwoLock[*Request]()
//
// Builder API selects the strategy:
//
//	q := cq.Build[Event](cq.New())              // → LockFree
//	q := cq.Build[Event](cq.New().TwoLock())    // → TwoLock
//	q := cq.Build[Event](cq.New().SingleLock()) // → SingleLock
//
// # Basic Usage
//
// All queues share the same interface for enqueueing and dequeueing:
//
//	q := cq.NewLockFree[int]()
//
//	// Enqueue (never fails; the queue is unbounded)
//	value := 42
//	q.Enqueue(&value)
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if cq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Choosing a Variant
//
// LockFree never blocks a goroutine on another goroutine's lock: at
// least one contender always completes in a bounded number of steps.
// Use it on hot producer/consumer paths where lock convoys hurt.
//
// TwoLock separates head and tail contention: producers and consumers
// proceed concurrently except during the amortized transfer between the
// two buffers. A simpler middle ground.
//
// SingleLock fully serializes and exists as the correctness and
// performance baseline for the other two.
//
// # Consumer Loop Pattern
//
//	go func() {
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Error Handling
//
// Dequeue returns [ErrWouldBlock] when the queue is empty. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency.
// It is a control flow signal, not a failure: retry later, do not
// propagate. Enqueue has no failure mode.
//
// For semantic error classification (delegates to iox):
//
//	cq.IsWouldBlock(err)  // true if queue empty
//	cq.IsSemantic(err)    // true if control flow signal
//	cq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Ordering Guarantees
//
// Every queue is linearizable: any concurrent history is equivalent to
// some sequential ordering consistent with each goroutine's own call
// order, and that ordering is FIFO with respect to values enqueued by
// the same goroutine. No ordering is guaranteed across distinct queue
// instances.
//
// Length is intentionally not provided because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// # Memory Reclamation
//
// LockFree retires a node by advancing head past it; the node stays
// alive as long as any concurrent operation still holds a reference
// loaded before retirement, and the garbage collector frees it only
// after no such observer remains. Node addresses are never recycled
// while a compare-and-swap contender can still observe them, so the
// ABA problem cannot occur on the link pointers.
//
// # Thread Safety
//
// All operations on all three variants are safe to invoke concurrently
// from any number of goroutines without external synchronization.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/spin] for CPU pause instructions in contended
// retry loops.
package cq
