package chatcache

import (
	"github.com/andersfylling/snowflake/v2"
)

// Snowflake is re-exported the same way the teacher's cache/tlru package
// aliases it, so callers never need to import andersfylling/snowflake
// directly.
type Snowflake = snowflake.Snowflake

// GuildID, ChannelID, RoleID, EmojiID, UserID, and MessageID are opaque
// newtypes over Snowflake. They're distinct Go types so a ChannelID can
// never be passed where a GuildID is expected, even though both are
// ultimately the same 64-bit value underneath — the same domain
// separation spec.md §3 requires ("Opaque 64-bit unsigned newtypes
// distinguishing domain").
type (
	GuildID   snowflake.Snowflake
	ChannelID snowflake.Snowflake
	RoleID    snowflake.Snowflake
	EmojiID   snowflake.Snowflake
	UserID    snowflake.Snowflake
	MessageID snowflake.Snowflake
)

func (id GuildID) String() string   { return snowflake.Snowflake(id).String() }
func (id ChannelID) String() string { return snowflake.Snowflake(id).String() }
func (id RoleID) String() string    { return snowflake.Snowflake(id).String() }
func (id EmojiID) String() string   { return snowflake.Snowflake(id).String() }
func (id UserID) String() string    { return snowflake.Snowflake(id).String() }
func (id MessageID) String() string { return snowflake.Snowflake(id).String() }

func (id GuildID) Empty() bool   { return snowflake.Snowflake(id).Empty() }
func (id ChannelID) Empty() bool { return snowflake.Snowflake(id).Empty() }
func (id RoleID) Empty() bool    { return snowflake.Snowflake(id).Empty() }
func (id EmojiID) Empty() bool   { return snowflake.Snowflake(id).Empty() }
func (id UserID) Empty() bool    { return snowflake.Snowflake(id).Empty() }
func (id MessageID) Empty() bool { return snowflake.Snowflake(id).Empty() }

// ShardKey implements shardmap.Keyer for every plain id newtype: the
// snowflake's own bits are already well distributed (Discord snowflakes
// encode a timestamp in the high bits and a per-process sequence in the
// low bits), so no extra mixing is needed.
func (id GuildID) ShardKey() uint64   { return uint64(id) }
func (id ChannelID) ShardKey() uint64 { return uint64(id) }
func (id RoleID) ShardKey() uint64    { return uint64(id) }
func (id EmojiID) ShardKey() uint64   { return uint64(id) }
func (id UserID) ShardKey() uint64    { return uint64(id) }
func (id MessageID) ShardKey() uint64 { return uint64(id) }

// GuildUserKey is the composite identity used by members, presences, and
// voice states: each is scoped to a (guild, user) pair (spec.md §3).
type GuildUserKey struct {
	Guild GuildID
	User  UserID
}

// ShardKey XORs a rotated guild id into the user id so that two users in
// the same guild land, on average, in different shards (pure addition
// would cluster all of a busy guild's members onto one shard's lock).
func (k GuildUserKey) ShardKey() uint64 {
	g := uint64(k.Guild)
	return uint64(k.User) ^ (g<<32 | g>>32)
}
