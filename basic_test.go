// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/cq"
)

// newEachQueue returns a fresh queue of every variant, keyed by name.
func newEachQueue[T any]() map[string]cq.Queue[T] {
	return map[string]cq.Queue[T]{
		"LockFree":   cq.NewLockFree[T](),
		"TwoLock":    cq.NewTwoLock[T](),
		"SingleLock": cq.NewSingleLock[T](),
	}
}

// =============================================================================
// Basic Operations
// =============================================================================

// TestEmptyDequeue verifies a fresh queue of every variant reports empty.
func TestEmptyDequeue(t *testing.T) {
	for name, q := range newEachQueue[int]() {
		t.Run(name, func(t *testing.T) {
			if _, err := q.Dequeue(); !errors.Is(err, cq.ErrWouldBlock) {
				t.Fatalf("Dequeue on empty: got %v, want ErrWouldBlock", err)
			}
		})
	}
}

// TestFIFOOrder verifies single-goroutine FIFO ordering for every variant.
func TestFIFOOrder(t *testing.T) {
	for name, q := range newEachQueue[int]() {
		t.Run(name, func(t *testing.T) {
			const n = 1000
			for i := range n {
				v := i + 100
				q.Enqueue(&v)
			}

			for i := range n {
				val, err := q.Dequeue()
				if err != nil {
					t.Fatalf("Dequeue(%d): %v", i, err)
				}
				if val != i+100 {
					t.Fatalf("Dequeue(%d): got %d, want %d", i, val, i+100)
				}
			}

			if _, err := q.Dequeue(); !errors.Is(err, cq.ErrWouldBlock) {
				t.Fatalf("Dequeue on drained: got %v, want ErrWouldBlock", err)
			}
		})
	}
}

// TestInterleavedFillDrain alternates partial fills and drains so the
// two-lock transfer and the lock-free sentinel handoff both cycle.
func TestInterleavedFillDrain(t *testing.T) {
	for name, q := range newEachQueue[int]() {
		t.Run(name, func(t *testing.T) {
			next := 0
			expect := 0
			for round := range 50 {
				for range round%7 + 1 {
					v := next
					q.Enqueue(&v)
					next++
				}
				for range round%5 + 1 {
					val, err := q.Dequeue()
					if err != nil {
						if expect != next {
							t.Fatalf("round %d: early empty at %d (enqueued %d)", round, expect, next)
						}
						break
					}
					if val != expect {
						t.Fatalf("round %d: got %d, want %d", round, val, expect)
					}
					expect++
				}
			}

			// Drain the remainder.
			for expect < next {
				val, err := q.Dequeue()
				if err != nil {
					t.Fatalf("drain: %v at %d/%d", err, expect, next)
				}
				if val != expect {
					t.Fatalf("drain: got %d, want %d", val, expect)
				}
				expect++
			}

			if _, err := q.Dequeue(); !errors.Is(err, cq.ErrWouldBlock) {
				t.Fatalf("Dequeue on drained: got %v, want ErrWouldBlock", err)
			}
		})
	}
}

// TestValueCopied verifies the queue stores a copy, not the caller's slot.
func TestValueCopied(t *testing.T) {
	for name, q := range newEachQueue[int]() {
		t.Run(name, func(t *testing.T) {
			v := 7
			q.Enqueue(&v)
			v = 8 // Mutating after Enqueue must not affect the stored copy

			val, err := q.Dequeue()
			if err != nil {
				t.Fatalf("Dequeue: %v", err)
			}
			if val != 7 {
				t.Fatalf("got %d, want 7", val)
			}
		})
	}
}

// TestZeroValue verifies the zero value is a valid payload everywhere.
func TestZeroValue(t *testing.T) {
	for name, q := range newEachQueue[int]() {
		t.Run(name, func(t *testing.T) {
			v := 0
			q.Enqueue(&v)
			val, err := q.Dequeue()
			if err != nil {
				t.Fatalf("dequeue: %v", err)
			}
			if val != 0 {
				t.Fatalf("got %d, want 0", val)
			}
		})
	}
}

// TestNonComparablePayload verifies value types with no useful default
// (and no comparability) flow through: the sentinel never fabricates one.
func TestNonComparablePayload(t *testing.T) {
	type payload struct {
		data []byte
		tags map[string]int
	}

	for name, q := range newEachQueue[payload]() {
		t.Run(name, func(t *testing.T) {
			p := payload{data: []byte("abc"), tags: map[string]int{"k": 1}}
			q.Enqueue(&p)

			got, err := q.Dequeue()
			if err != nil {
				t.Fatalf("Dequeue: %v", err)
			}
			if string(got.data) != "abc" || got.tags["k"] != 1 {
				t.Fatalf("payload corrupted: %+v", got)
			}
		})
	}
}

// =============================================================================
// Builder
// =============================================================================

// TestBuildSelection verifies the builder maps strategies to concrete types.
func TestBuildSelection(t *testing.T) {
	if _, ok := cq.Build[int](cq.New()).(*cq.LockFree[int]); !ok {
		t.Fatal("Build default: want *LockFree")
	}
	if _, ok := cq.Build[int](cq.New().TwoLock()).(*cq.TwoLock[int]); !ok {
		t.Fatal("Build TwoLock: want *TwoLock")
	}
	if _, ok := cq.Build[int](cq.New().SingleLock()).(*cq.SingleLock[int]); !ok {
		t.Fatal("Build SingleLock: want *SingleLock")
	}
	if _, ok := cq.Build[int](cq.New().SingleLock().LockFree()).(*cq.LockFree[int]); !ok {
		t.Fatal("Build, last strategy wins: want *LockFree")
	}
}

// TestTypedBuilders verifies the concrete builders and their panics.
func TestTypedBuilders(t *testing.T) {
	_ = cq.BuildLockFree[int](cq.New())
	_ = cq.BuildTwoLock[int](cq.New().TwoLock())
	_ = cq.BuildSingleLock[int](cq.New().SingleLock())

	tests := []struct {
		name  string
		build func()
	}{
		{"LockFreeMismatch", func() { cq.BuildLockFree[int](cq.New().TwoLock()) }},
		{"TwoLockMismatch", func() { cq.BuildTwoLock[int](cq.New()) }},
		{"SingleLockMismatch", func() { cq.BuildSingleLock[int](cq.New().TwoLock()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic for mismatched strategy")
				}
			}()
			tt.build()
		})
	}
}

// =============================================================================
// Interface Compliance
// =============================================================================

func TestQueueInterface(t *testing.T) {
	var _ cq.Queue[int] = cq.NewLockFree[int]()
	var _ cq.Queue[int] = cq.NewTwoLock[int]()
	var _ cq.Queue[int] = cq.NewSingleLock[int]()
	var _ cq.Producer[string] = cq.NewLockFree[string]()
	var _ cq.Consumer[string] = cq.NewLockFree[string]()
}
