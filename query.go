package chatcache

// The remaining operations exposed to consumers (spec.md §4.9). All
// scalar lookups take id arguments only and return either an optional
// shared handle or an owned copy of a small set — never a live
// reference into an index.

func (c *Cache) Guild(id GuildID) (*Guild, bool) { return c.guilds.Get(id) }

func (c *Cache) GuildChannel(id ChannelID) (*GuildChannel, bool) {
	item, ok := c.channelsGuild.Get(id)
	if !ok {
		return nil, false
	}
	return item.Data, true
}

func (c *Cache) PrivateChannel(id ChannelID) (*PrivateChannel, bool) {
	return c.channelsPrivate.Get(id)
}

func (c *Cache) Group(id ChannelID) (*Group, bool) { return c.groups.Get(id) }

func (c *Cache) Role(id RoleID) (*Role, bool) {
	item, ok := c.roles.Get(id)
	if !ok {
		return nil, false
	}
	return item.Data, true
}

func (c *Cache) Emoji(id EmojiID) (*Emoji, bool) {
	item, ok := c.emojis.Get(id)
	if !ok {
		return nil, false
	}
	return item.Data, true
}

func (c *Cache) Member(guild GuildID, user UserID) (*Member, bool) {
	return c.members.Get(GuildUserKey{Guild: guild, User: user})
}

func (c *Cache) Presence(guild GuildID, user UserID) (*Presence, bool) {
	return c.presences.Get(GuildUserKey{Guild: guild, User: user})
}

func (c *Cache) Message(channel ChannelID, id MessageID) (*Message, bool) {
	store, ok := c.messages.Get(channel)
	if !ok {
		return nil, false
	}
	return store.get(id)
}

func (c *Cache) User(id UserID) (*User, bool) {
	entry, ok := c.users.Get(id)
	if !ok {
		return nil, false
	}
	return entry.User, true
}

func (c *Cache) VoiceState(guild GuildID, user UserID) (*VoiceState, bool) {
	return c.voiceStates.Get(GuildUserKey{Guild: guild, User: user})
}

func (c *Cache) GuildChannels(id GuildID) []ChannelID { return setSnapshot(c.guildChannels, id) }
func (c *Cache) GuildEmojis(id GuildID) []EmojiID     { return setSnapshot(c.guildEmojis, id) }
func (c *Cache) GuildMembers(id GuildID) []UserID     { return setSnapshot(c.guildMembers, id) }
func (c *Cache) GuildPresences(id GuildID) []UserID   { return setSnapshot(c.guildPresences, id) }
func (c *Cache) GuildRoles(id GuildID) []RoleID       { return setSnapshot(c.guildRoles, id) }

// VoiceChannelStates returns a snapshot of every voice state for users
// currently in the given channel (spec.md §4.9).
func (c *Cache) VoiceChannelStates(channel ChannelID) []*VoiceState {
	keys := setSnapshot(c.voiceStateChannels, channel)
	if keys == nil {
		return nil
	}
	out := make([]*VoiceState, 0, len(keys))
	for _, key := range keys {
		if vs, ok := c.voiceStates.Get(key); ok {
			out = append(out, vs)
		}
	}
	return out
}
