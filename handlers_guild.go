package chatcache

// handleGuildCreate cascades every child into its primary index and its
// per-guild reverse index, inserts the guild record, and clears the guild
// from unavailable_guilds if present (spec.md §4.5). Reverse-index sets
// are created only as children are added: a guild with no children of a
// kind gets no entry in that kind's reverse index.
func (c *Cache) handleGuildCreate(e *GuildCreate) {
	if !c.eventAllowed(EventGuildCreate, "GuildCreate") || e == nil || e.Guild == nil {
		return
	}
	c.cascadeGuild(e.Guild)
}

func (c *Cache) cascadeGuild(payload *GuildCreatePayload) {
	gid := payload.Guild.ID

	for _, ch := range payload.Channels {
		ch.GuildID = gid
		upsertGuildItem(c.channelsGuild, ch.ID, gid, ch)
		addToSet(c.guildChannels, gid, ch.ID)
	}
	for _, em := range payload.Emojis {
		upsertGuildItem(c.emojis, em.ID, gid, em)
		addToSet(c.guildEmojis, gid, em.ID)
	}
	for _, m := range payload.Members {
		m.GuildID = gid
		c.cacheMember(m)
	}
	for _, p := range payload.Presences {
		p.GuildID = gid
		upsertItem(c.presences, p.Key(), p)
		addToSet(c.guildPresences, gid, p.UserID)
	}
	for _, r := range payload.Roles {
		upsertGuildItem(c.roles, r.ID, gid, r)
		addToSet(c.guildRoles, gid, r.ID)
	}
	for _, vs := range payload.VoiceStates {
		vs.GuildID = gid
		c.applyVoiceState(vs)
	}

	upsertItem(c.guilds, gid, payload.Guild)
	c.unavailableGuilds.Delete(gid)
}

// handleGuildDelete drops the guild record and drains every reverse
// index, removing referenced children from their primary indices
// (spec.md §4.5, Lifecycle).
func (c *Cache) handleGuildDelete(e *GuildDelete) {
	if !c.eventAllowed(EventGuildDelete, "GuildDelete") || e == nil {
		return
	}
	gid := e.GuildID

	c.guilds.Delete(gid)

	for _, cid := range setSnapshot(c.guildChannels, gid) {
		c.channelsGuild.Delete(cid)
	}
	c.guildChannels.Delete(gid)

	for _, eid := range setSnapshot(c.guildEmojis, gid) {
		c.emojis.Delete(eid)
	}
	c.guildEmojis.Delete(gid)

	for _, rid := range setSnapshot(c.guildRoles, gid) {
		c.roles.Delete(rid)
	}
	c.guildRoles.Delete(gid)

	for _, uid := range setSnapshot(c.guildMembers, gid) {
		c.members.Delete(GuildUserKey{Guild: gid, User: uid})
		c.forgetUserGuild(uid, gid)
	}
	c.guildMembers.Delete(gid)

	for _, uid := range setSnapshot(c.guildPresences, gid) {
		c.presences.Delete(GuildUserKey{Guild: gid, User: uid})
	}
	c.guildPresences.Delete(gid)

	for _, uid := range setSnapshot(c.voiceStateGuilds, gid) {
		key := GuildUserKey{Guild: gid, User: uid}
		if vs, ok := c.voiceStates.Delete(key); ok {
			removeFromSet(c.voiceStateChannels, vs.ChannelID, key)
		}
	}
	c.voiceStateGuilds.Delete(gid)

	if e.Unavailable {
		c.unavailableGuilds.Set(gid, struct{}{})
	} else {
		c.unavailableGuilds.Delete(gid)
	}
}

// handleGuildUpdate overlays the fields present on the update onto the
// existing snapshot; silently drops if the guild is unknown (spec.md
// §4.5).
func (c *Cache) handleGuildUpdate(e *GuildUpdate) {
	if !c.eventAllowed(EventGuildUpdate, "GuildUpdate") || e == nil {
		return
	}
	g, ok := c.guilds.Get(e.GuildID)
	if !ok {
		return
	}
	clone := *g
	applyGuildOverlay(&clone, e.Overlay)
	upsertItem(c.guilds, e.GuildID, &clone)
}

// handleGuildEmojisUpdate replaces the owning guild's emoji set with the
// provided collection, pruning ids that are no longer present — a true
// full-replace, deviating from the original's apparent add-only
// behavior (documented in DESIGN.md).
func (c *Cache) handleGuildEmojisUpdate(e *GuildEmojisUpdate) {
	if !c.eventAllowed(EventGuildEmojisUpdate, "GuildEmojisUpdate") || e == nil {
		return
	}
	gid := e.GuildID
	keep := make(map[EmojiID]struct{}, len(e.Emojis))
	for _, em := range e.Emojis {
		upsertGuildItem(c.emojis, em.ID, gid, em)
		addToSet(c.guildEmojis, gid, em.ID)
		keep[em.ID] = struct{}{}
	}
	for _, eid := range setSnapshot(c.guildEmojis, gid) {
		if _, ok := keep[eid]; !ok {
			c.emojis.Delete(eid)
			removeFromSet(c.guildEmojis, gid, eid)
		}
	}
}
