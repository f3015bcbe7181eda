package chatcache

import (
	"sync"

	"github.com/emberloop/chatcache/shardmap"
)

// userEntry is the value stored in the users index: a shared User
// alongside the set of guilds whose member table currently references it
// (spec.md §3 `users`, I3).
type userEntry struct {
	User   *User
	Guilds shardmap.Set[GuildID]
}

// Cache is a process-local, cheaply shareable handle onto the cache's
// state (spec.md §4.1). Copying the *Cache pointer that New returns
// yields another handle onto the same underlying indices, the same
// sharing model the teacher's *Cache wraps around *tlru.CacheList. A Cache
// value itself is not copied: it holds the current_user mutex and pointer
// directly.
type Cache struct {
	conf Config

	guilds            *shardmap.Map[GuildID, *Guild]
	unavailableGuilds *shardmap.Map[GuildID, struct{}]

	channelsGuild   *shardmap.Map[ChannelID, GuildItem[*GuildChannel]]
	channelsPrivate *shardmap.Map[ChannelID, *PrivateChannel]
	groups          *shardmap.Map[ChannelID, *Group]
	guildChannels   *shardmap.Map[GuildID, shardmap.Set[ChannelID]]

	emojis      *shardmap.Map[EmojiID, GuildItem[*Emoji]]
	guildEmojis *shardmap.Map[GuildID, shardmap.Set[EmojiID]]

	roles      *shardmap.Map[RoleID, GuildItem[*Role]]
	guildRoles *shardmap.Map[GuildID, shardmap.Set[RoleID]]

	members      *shardmap.Map[GuildUserKey, *Member]
	guildMembers *shardmap.Map[GuildID, shardmap.Set[UserID]]

	presences      *shardmap.Map[GuildUserKey, *Presence]
	guildPresences *shardmap.Map[GuildID, shardmap.Set[UserID]]

	users *shardmap.Map[UserID, userEntry]

	messages *shardmap.Map[ChannelID, *messageStore]

	voiceStates        *shardmap.Map[GuildUserKey, *VoiceState]
	voiceStateChannels *shardmap.Map[ChannelID, shardmap.Set[GuildUserKey]]
	voiceStateGuilds   *shardmap.Map[GuildID, shardmap.Set[UserID]]

	currentUserMu sync.Mutex
	currentUser   *CurrentUser
}

// New constructs an empty Cache with the given options applied over the
// defaults (spec.md §6.1).
func New(opts ...Option) *Cache {
	conf := defaultConfig()
	for _, opt := range opts {
		opt(&conf)
	}
	return newCacheFromConfig(conf)
}

func newCacheFromConfig(conf Config) *Cache {
	return &Cache{
		conf: conf,

		guilds:            shardmap.New[GuildID, *Guild](0),
		unavailableGuilds: shardmap.New[GuildID, struct{}](0),

		channelsGuild:   shardmap.New[ChannelID, GuildItem[*GuildChannel]](0),
		channelsPrivate: shardmap.New[ChannelID, *PrivateChannel](0),
		groups:          shardmap.New[ChannelID, *Group](0),
		guildChannels:   shardmap.New[GuildID, shardmap.Set[ChannelID]](0),

		emojis:      shardmap.New[EmojiID, GuildItem[*Emoji]](0),
		guildEmojis: shardmap.New[GuildID, shardmap.Set[EmojiID]](0),

		roles:      shardmap.New[RoleID, GuildItem[*Role]](0),
		guildRoles: shardmap.New[GuildID, shardmap.Set[RoleID]](0),

		members:      shardmap.New[GuildUserKey, *Member](0),
		guildMembers: shardmap.New[GuildID, shardmap.Set[UserID]](0),

		presences:      shardmap.New[GuildUserKey, *Presence](0),
		guildPresences: shardmap.New[GuildID, shardmap.Set[UserID]](0),

		users: shardmap.New[UserID, userEntry](0),

		messages: shardmap.New[ChannelID, *messageStore](0),

		voiceStates:        shardmap.New[GuildUserKey, *VoiceState](0),
		voiceStateChannels: shardmap.New[ChannelID, shardmap.Set[GuildUserKey]](0),
		voiceStateGuilds:   shardmap.New[GuildID, shardmap.Set[UserID]](0),
	}
}

// Config returns a copy of the cache's runtime configuration (spec.md
// §4.9).
func (c *Cache) Config() Config {
	return c.conf
}

// Clear drops every index, including current_user (spec.md §4.9). This
// fully resets all indices — a deliberate deviation from the original's
// apparent partial clear, recorded in DESIGN.md.
func (c *Cache) Clear() {
	c.guilds.Clear()
	c.unavailableGuilds.Clear()
	c.channelsGuild.Clear()
	c.channelsPrivate.Clear()
	c.groups.Clear()
	c.guildChannels.Clear()
	c.emojis.Clear()
	c.guildEmojis.Clear()
	c.roles.Clear()
	c.guildRoles.Clear()
	c.members.Clear()
	c.guildMembers.Clear()
	c.presences.Clear()
	c.guildPresences.Clear()
	c.users.Clear()
	c.messages.Clear()
	c.voiceStates.Clear()
	c.voiceStateChannels.Clear()
	c.voiceStateGuilds.Clear()

	c.currentUserMu.Lock()
	c.currentUser = nil
	c.currentUserMu.Unlock()
}

// addToSet performs an atomic read-modify-write on a reverse index,
// adding elem to the set stored under key (creating it if absent).
func addToSet[K shardmap.Keyer, E comparable](m *shardmap.Map[K, shardmap.Set[E]], key K, elem E) {
	m.Mutate(key, func(cur shardmap.Set[E], ok bool) (shardmap.Set[E], bool) {
		cur = cur.Add(elem)
		return cur, true
	})
}

// removeFromSet removes elem from the set stored under key, deleting the
// key entirely once the set becomes empty (I5 and its analogues).
func removeFromSet[K shardmap.Keyer, E comparable](m *shardmap.Map[K, shardmap.Set[E]], key K, elem E) {
	m.Mutate(key, func(cur shardmap.Set[E], ok bool) (shardmap.Set[E], bool) {
		if !ok {
			return cur, false
		}
		cur.Remove(elem)
		return cur, len(cur) > 0
	})
}

// setSnapshot returns an owned copy of the set stored under key, or an
// empty (nil) set if absent (spec.md §4.9 — reverse-index queries "never
// a live reference"). The copy is taken under the shard's lock, since
// addToSet/removeFromSet modify the stored set in place.
func setSnapshot[K shardmap.Keyer, E comparable](m *shardmap.Map[K, shardmap.Set[E]], key K) []E {
	var out []E
	m.Mutate(key, func(cur shardmap.Set[E], ok bool) (shardmap.Set[E], bool) {
		if ok {
			out = cur.Slice()
		}
		return cur, ok
	})
	return out
}
