// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shardmap provides a sharded, mutex-guarded hash map.
//
// The map splits its key space across a fixed number of shards, each
// guarded by its own mutex, so operations on keys that hash to
// different shards proceed in parallel. It is an independent utility
// with no interaction with the queue package.
//
// Example:
//
//	m := shardmap.New[string, int](16)
//	m.Insert("requests", 1)
//	if v, ok := m.Get("requests"); ok {
//	    fmt.Println(v)
//	}
package shardmap

import (
	"hash/maphash"
	"sync"
)

// Map is a sharded concurrent hash map. All operations are safe to
// invoke from any number of goroutines without external
// synchronization.
type Map[K comparable, V any] struct {
	seed   maphash.Seed
	shards []shard[K, V]
}

type shard[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]V
	_  [40]byte // Keep neighboring shard locks off one cache line
}

// New creates a map with the given number of shards.
// Panics if numShards < 1.
func New[K comparable, V any](numShards int) *Map[K, V] {
	if numShards < 1 {
		panic("shardmap: number of shards must be positive")
	}
	m := &Map[K, V]{
		seed:   maphash.MakeSeed(),
		shards: make([]shard[K, V], numShards),
	}
	for i := range m.shards {
		m.shards[i].m = make(map[K]V)
	}
	return m
}

func (m *Map[K, V]) shardFor(key K) *shard[K, V] {
	h := maphash.Comparable(m.seed, key)
	return &m.shards[h%uint64(len(m.shards))]
}

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s := m.shardFor(key)
	s.mu.Lock()
	v, ok := s.m[key]
	s.mu.Unlock()
	return v, ok
}

// Insert stores value under key and returns the previous value, if any.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	s := m.shardFor(key)
	s.mu.Lock()
	prev, ok := s.m[key]
	s.m[key] = value
	s.mu.Unlock()
	return prev, ok
}

// Remove deletes key and returns the removed value, if any.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	s := m.shardFor(key)
	s.mu.Lock()
	prev, ok := s.m[key]
	if ok {
		delete(s.m, key)
	}
	s.mu.Unlock()
	return prev, ok
}

// Len returns the total number of entries across all shards.
// The count is a snapshot; concurrent mutations may change it before
// the caller observes it.
func (m *Map[K, V]) Len() int {
	total := 0
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		total += len(s.m)
		s.mu.Unlock()
	}
	return total
}
