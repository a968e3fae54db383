// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cq

// deque is a growable ring buffer with FIFO access. It carries no
// synchronization of its own; callers mutate it only while holding the
// owning queue's lock.
type deque[T any] struct {
	buf  []T
	head uint64 // Index of the front element
	size uint64
	mask uint64 // len(buf) - 1
}

const dequeMinCap = 16

func (d *deque[T]) pushBack(elem T) {
	if d.buf == nil {
		d.buf = make([]T, dequeMinCap)
		d.mask = dequeMinCap - 1
	} else if d.size > d.mask {
		d.grow()
	}
	d.buf[(d.head+d.size)&d.mask] = elem
	d.size++
}

func (d *deque[T]) popFront() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	elem := d.buf[d.head&d.mask]
	var zero T
	d.buf[d.head&d.mask] = zero // Release the reference for the collector
	d.head++
	d.size--
	return elem, true
}

func (d *deque[T]) len() int {
	return int(d.size)
}

// grow doubles the buffer, unwrapping the ring so front stays at head.
func (d *deque[T]) grow() {
	next := make([]T, uint64(roundToPow2(int(d.size*2))))
	for i := uint64(0); i < d.size; i++ {
		next[i] = d.buf[(d.head+i)&d.mask]
	}
	d.buf = next
	d.head = 0
	d.mask = uint64(len(next)) - 1
}
