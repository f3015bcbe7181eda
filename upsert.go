package chatcache

import "github.com/emberloop/chatcache/shardmap"

// Equatable is satisfied by every cache entity pointer type: a pointer to
// a struct with an Equal method comparing against another pointer of the
// same type. upsertItem and upsertGuildItem use it to short-circuit a
// write when the incoming value is structurally identical to what's
// already cached (spec.md §4.2).
type Equatable[T any] interface {
	Equal(other T) bool
}

// upsertItem stores v under k, but if an equal value is already cached it
// keeps the existing value's identity instead of replacing it. This
// mirrors the original's upsert_item (src/lib.rs): skip the write
// entirely when nothing actually changed, so existing handles/pointers
// callers are holding stay valid.
func upsertItem[K shardmap.Keyer, V Equatable[V]](m *shardmap.Map[K, V], k K, v V) V {
	var result V
	m.Mutate(k, func(cur V, ok bool) (V, bool) {
		if ok && cur.Equal(v) {
			result = cur
			return cur, true
		}
		result = v
		return v, true
	})
	return result
}

// GuildItem wraps a value that belongs to exactly one guild (roles,
// emojis) alongside the guild id it was last upserted under, the same
// shape as the original's GuildItem<T> (src/lib.rs).
type GuildItem[V any] struct {
	GuildID GuildID
	Data    V
}

// upsertGuildItem is upsertItem for guild-owned values, and only requires
// V's own Equal: when the cached Data equals v it keeps the existing
// GuildItem, including the GuildID stored with it; otherwise it installs
// v under guild.
func upsertGuildItem[K shardmap.Keyer, V Equatable[V]](m *shardmap.Map[K, GuildItem[V]], k K, guild GuildID, v V) GuildItem[V] {
	var result GuildItem[V]
	m.Mutate(k, func(cur GuildItem[V], ok bool) (GuildItem[V], bool) {
		if ok && cur.Data.Equal(v) {
			result = cur
			return cur, true
		}
		result = GuildItem[V]{GuildID: guild, Data: v}
		return result, true
	})
	return result
}
