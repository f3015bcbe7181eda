package shardmap

import (
	"sync"
	"testing"
)

type intKey uint64

func (k intKey) ShardKey() uint64 { return uint64(k) }

func TestMapSetGet(t *testing.T) {
	m := New[intKey, string](4)
	m.Set(intKey(1), "one")

	v, ok := m.Get(intKey(1))
	if !ok {
		t.Fatal("expected key to exist")
	}
	if v != "one" {
		t.Errorf("expected \"one\", got %q", v)
	}

	if _, ok := m.Get(intKey(2)); ok {
		t.Error("expected missing key to report not found")
	}
}

func TestMapDelete(t *testing.T) {
	m := New[intKey, string](4)
	m.Set(intKey(1), "one")

	v, ok := m.Delete(intKey(1))
	if !ok || v != "one" {
		t.Errorf("expected delete to return (\"one\", true), got (%q, %v)", v, ok)
	}
	if m.Has(intKey(1)) {
		t.Error("expected key to be gone after delete")
	}
}

func TestMapMutateRemovesWhenNotKept(t *testing.T) {
	m := New[intKey, int](4)
	m.Set(intKey(5), 1)

	m.Mutate(intKey(5), func(v int, ok bool) (int, bool) {
		return v, false
	})

	if m.Has(intKey(5)) {
		t.Error("expected Mutate with keep=false to delete the key")
	}
}

func TestMapLen(t *testing.T) {
	m := New[intKey, int](4)
	for i := 0; i < 10; i++ {
		m.Set(intKey(i), i)
	}
	if got := m.Len(); got != 10 {
		t.Errorf("expected Len()=10, got %d", got)
	}
}

func TestMapConcurrentWrites(t *testing.T) {
	m := New[intKey, int](8)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Set(intKey(i), i)
		}(i)
	}
	wg.Wait()

	if got := m.Len(); got != 100 {
		t.Errorf("expected Len()=100 after concurrent writes, got %d", got)
	}
}
