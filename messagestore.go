package chatcache

import (
	"sync"

	"github.com/google/btree"
	"github.com/rs/zerolog"
)

// messageItem is the btree element backing a single channel's message
// store; ordering is purely by MessageID, which Discord guarantees is
// monotonically increasing (spec.md §4.8).
type messageItem struct {
	id  MessageID
	msg *Message
}

func messageLess(a, b messageItem) bool { return a.id < b.id }

// messageStore is a bounded, ordered per-channel message index. It
// resolves the eviction-direction open question (§9, OQ1) by evicting
// the smallest key (oldest message) once the store is at capacity,
// matching spec.md's recommended policy rather than the original's
// apparent evict-newest behavior.
type messageStore struct {
	mu     sync.RWMutex
	tree   *btree.BTreeG[messageItem]
	cap    int
	logger zerolog.Logger
}

func newMessageStore(cap int, logger zerolog.Logger) *messageStore {
	return &messageStore{tree: btree.NewG(32, messageLess), cap: cap, logger: logger}
}

// upsert installs msg, evicting the oldest entry first if the store is
// already at capacity and msg is not itself a replacement of an existing
// entry. Returns the shared handle now stored for msg.ID (spec.md §4.2's
// equality short-circuit applies here too).
func (s *messageStore) upsert(msg *Message) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := messageItem{id: msg.ID}
	if old, ok := s.tree.Get(item); ok {
		if old.msg.Equal(msg) {
			return old.msg
		}
		s.tree.ReplaceOrInsert(messageItem{id: msg.ID, msg: msg})
		return msg
	}

	if s.cap > 0 && s.tree.Len() >= s.cap {
		if oldest, ok := s.tree.Min(); ok {
			s.logger.Debug().
				Str("evicted_message", oldest.id.String()).
				Str("incoming_message", msg.ID.String()).
				Msg("message cache at capacity, evicting oldest")
			s.tree.Delete(oldest)
		}
	}
	s.tree.ReplaceOrInsert(messageItem{id: msg.ID, msg: msg})
	return msg
}

func (s *messageStore) get(id MessageID) (*Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.tree.Get(messageItem{id: id})
	if !ok {
		return nil, false
	}
	return item.msg, true
}

func (s *messageStore) delete(id MessageID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Delete(messageItem{id: id})
}

func (s *messageStore) deleteBulk(ids []MessageID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.tree.Delete(messageItem{id: id})
	}
}

// update locates the message and replaces it with fn's result. No-op if
// the message isn't cached (it may already have been evicted).
func (s *messageStore) update(id MessageID, fn func(*Message) *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.tree.Get(messageItem{id: id})
	if !ok {
		return
	}
	s.tree.ReplaceOrInsert(messageItem{id: id, msg: fn(item.msg)})
}

func (s *messageStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}
