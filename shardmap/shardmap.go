// Package shardmap implements the sharded concurrent map primitive the
// cache builds every index on top of. It generalizes the teacher's
// cache/tlru package (a single sync.RWMutex guarding one map) into an
// N-way partitioned map: readers only ever block writers touching the
// same partition, and writers touching different partitions never contend.
package shardmap

import (
	"sync"
)

// DefaultShards is used by New when no shard count is supplied. It's a
// small power of two so keys distribute reasonably without every caller
// having to think about sizing.
const DefaultShards = 32

// Keyer lets a key type pick its own shard. Composite keys (guild+user
// pairs, etc.) combine their parts; plain snowflake-backed ids just
// return their underlying value.
type Keyer interface {
	comparable
	ShardKey() uint64
}

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Map is a fixed number of independently-locked partitions of a Go map.
// The zero value is not usable; construct with New.
type Map[K Keyer, V any] struct {
	shards []*shard[K, V]
}

// New builds a Map with the given number of shards. n <= 0 uses
// DefaultShards.
func New[K Keyer, V any](n int) *Map[K, V] {
	if n <= 0 {
		n = DefaultShards
	}
	m := &Map[K, V]{shards: make([]*shard[K, V], n)}
	for i := range m.shards {
		m.shards[i] = &shard[K, V]{m: make(map[K]V)}
	}
	return m
}

func (m *Map[K, V]) shardFor(k K) *shard[K, V] {
	return m.shards[k.ShardKey()%uint64(len(m.shards))]
}

// Get returns the value stored for k, if any.
func (m *Map[K, V]) Get(k K) (V, bool) {
	s := m.shardFor(k)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[k]
	return v, ok
}

// Set installs v for k unconditionally.
func (m *Map[K, V]) Set(k K, v V) {
	s := m.shardFor(k)
	s.mu.Lock()
	s.m[k] = v
	s.mu.Unlock()
}

// Delete removes k, returning the value that was stored and whether it
// existed.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	s := m.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[k]
	if ok {
		delete(s.m, k)
	}
	return v, ok
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Mutate runs fn under the exclusive lock of k's shard. fn receives the
// current value (the zero value if absent) and whether it was present,
// and returns the value to store plus whether the key should remain in
// the map at all. This is how reverse-index sets honor the
// "delete-when-empty" invariants (I5) atomically with the mutation that
// might empty them.
func (m *Map[K, V]) Mutate(k K, fn func(v V, ok bool) (V, bool)) {
	s := m.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.m[k]
	next, keep := fn(cur, ok)
	if keep {
		s.m[k] = next
	} else if ok {
		delete(s.m, k)
	}
}

// Len returns the total number of entries across all shards. It is not
// atomic across shards and is intended for tests/metrics, not for
// invariants.
func (m *Map[K, V]) Len() int {
	total := 0
	for _, s := range m.shards {
		s.mu.RLock()
		total += len(s.m)
		s.mu.RUnlock()
	}
	return total
}

// Clear empties every shard.
func (m *Map[K, V]) Clear() {
	for _, s := range m.shards {
		s.mu.Lock()
		s.m = make(map[K]V)
		s.mu.Unlock()
	}
}

// Range calls fn for every entry. fn must not call back into the same
// Map from within the callback. Iteration order is unspecified and does
// not reflect a single consistent snapshot across shards.
func (m *Map[K, V]) Range(fn func(k K, v V) bool) {
	for _, s := range m.shards {
		s.mu.RLock()
		for k, v := range s.m {
			if !fn(k, v) {
				s.mu.RUnlock()
				return
			}
		}
		s.mu.RUnlock()
	}
}
