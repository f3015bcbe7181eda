package chatcache

import "github.com/emberloop/chatcache/shardmap"

// handleMemberAdd inserts the member record and updates guild_members
// and users (spec.md §4.5).
func (c *Cache) handleMemberAdd(e *MemberAdd) {
	if !c.eventAllowed(EventMemberAdd, "MemberAdd") || e == nil || e.Member == nil {
		return
	}
	c.cacheMember(e.Member)
}

// cacheMember is the shared insertion path used by member-add,
// member-chunk, and guild-create cascades.
func (c *Cache) cacheMember(m *Member) {
	if m == nil || m.User == nil {
		return
	}
	shared := c.cacheUser(m.User, m.GuildID)
	clone := *m
	clone.User = shared
	upsertItem(c.members, clone.Key(), &clone)
	addToSet(c.guildMembers, m.GuildID, m.User.ID)
}

// handleMemberUpdate locates the member and overlays nickname and roles
// only (spec.md §4.5).
func (c *Cache) handleMemberUpdate(e *MemberUpdate) {
	if !c.eventAllowed(EventMemberUpdate, "MemberUpdate") || e == nil {
		return
	}
	key := GuildUserKey{Guild: e.Overlay.GuildID, User: e.Overlay.UserID}
	m, ok := c.members.Get(key)
	if !ok {
		return
	}
	clone := *m
	clone.Nick = e.Overlay.Nick
	clone.Roles = e.Overlay.Roles
	upsertItem(c.members, key, &clone)
}

// handleMemberRemove deletes the (guild, user) member entry, removes the
// user from guild_members[guild], and drops the user from the shared
// users index once it is no longer referenced by any guild (spec.md
// §4.5, §4.6).
func (c *Cache) handleMemberRemove(e *MemberRemove) {
	if !c.eventAllowed(EventMemberRemove, "MemberRemove") || e == nil {
		return
	}
	c.members.Delete(GuildUserKey{Guild: e.GuildID, User: e.UserID})
	removeFromSet(c.guildMembers, e.GuildID, e.UserID)
	c.forgetUserGuild(e.UserID, e.GuildID)
}

// handleMemberChunk is a batched member-add for member-list pagination
// responses (spec.md §4.5).
func (c *Cache) handleMemberChunk(e *MemberChunk) {
	if !c.eventAllowed(EventMemberChunk, "MemberChunk") || e == nil {
		return
	}
	for _, m := range e.Members {
		m.GuildID = e.GuildID
		c.cacheMember(m)
	}
}

// cacheUser implements the cache_user helper (spec.md §4.6): if the
// stored record is structurally equal, only add guild to the back-set
// and return the existing shared handle; otherwise replace the record,
// merging guild into the existing guild set rather than resetting it to
// just the new guild (resolves OQ2, per spec.md's stated recommendation).
func (c *Cache) cacheUser(u *User, guild GuildID) *User {
	var shared *User
	c.users.Mutate(u.ID, func(cur userEntry, ok bool) (userEntry, bool) {
		if !ok {
			shared = u
			return userEntry{User: u, Guilds: shardmap.NewSet(guild)}, true
		}
		if cur.User.Equal(u) {
			shared = cur.User
			cur.Guilds = cur.Guilds.Add(guild)
			return cur, true
		}
		shared = u
		cur.User = u
		cur.Guilds = cur.Guilds.Add(guild)
		return cur, true
	})
	return shared
}

// forgetUserGuild removes guild from uid's back-set, discarding the user
// entry entirely once the set empties (spec.md §4.6, I3).
func (c *Cache) forgetUserGuild(uid UserID, guild GuildID) {
	c.users.Mutate(uid, func(cur userEntry, ok bool) (userEntry, bool) {
		if !ok {
			return cur, false
		}
		cur.Guilds.Remove(guild)
		return cur, len(cur.Guilds) > 0
	})
}
