package chatcache

// handleChannelCreate dispatches by channel class (spec.md §4.5): guild
// channels go into channels_guild plus guild_channels[guild_id], private
// channels into channels_private, groups into groups.
func (c *Cache) handleChannelCreate(e *ChannelCreate) {
	if !c.eventAllowed(EventChannelCreate, "ChannelCreate") || e == nil || e.Channel == nil {
		return
	}
	c.upsertChannelPayload(e.Channel)
}

func (c *Cache) handleChannelUpdate(e *ChannelUpdate) {
	if !c.eventAllowed(EventChannelUpdate, "ChannelUpdate") || e == nil || e.Channel == nil {
		return
	}
	c.upsertChannelPayload(e.Channel)
}

func (c *Cache) upsertChannelPayload(payload *GuildOrPrivateChannel) {
	switch {
	case payload.Guild != nil:
		ch := payload.Guild
		upsertGuildItem(c.channelsGuild, ch.ID, ch.GuildID, ch)
		addToSet(c.guildChannels, ch.GuildID, ch.ID)
	case payload.Private != nil:
		upsertItem(c.channelsPrivate, payload.Private.ID, payload.Private)
	case payload.Group != nil:
		upsertItem(c.groups, payload.Group.ID, payload.Group)
	}
}

// handleChannelDelete removes the channel from whichever index holds it;
// guild channels are also pruned from guild_channels[guild_id].
func (c *Cache) handleChannelDelete(e *ChannelDelete) {
	if !c.eventAllowed(EventChannelDelete, "ChannelDelete") || e == nil {
		return
	}
	if !e.GuildID.Empty() {
		c.channelsGuild.Delete(e.ChannelID)
		removeFromSet(c.guildChannels, e.GuildID, e.ChannelID)
		return
	}
	if _, ok := c.channelsPrivate.Delete(e.ChannelID); ok {
		return
	}
	c.groups.Delete(e.ChannelID)
}

// handleChannelPinsUpdate locates the channel across the three channel
// indices and replaces only last_pin_timestamp, copy-on-write (spec.md
// §4.5). It only falls through to private channels / groups when the id
// is entirely absent from channels_guild (resolves OQ3).
func (c *Cache) handleChannelPinsUpdate(e *ChannelPinsUpdate) {
	if e == nil {
		return
	}

	if item, ok := c.channelsGuild.Get(e.ChannelID); ok {
		// Only Text channels carry last_pin_timestamp (spec.md §3); a
		// Category/Voice hit is a no-op, not a fallthrough (original
		// cache/in-memory/src/updates.rs's ChannelPinsUpdate handler).
		if item.Data.Type != GuildChannelText {
			return
		}
		clone := *item.Data
		clone.LastPinTimestamp = e.LastPinTimestamp
		upsertGuildItem(c.channelsGuild, e.ChannelID, item.GuildID, &clone)
		return
	}

	if pc, ok := c.channelsPrivate.Get(e.ChannelID); ok {
		clone := *pc
		clone.LastPinTimestamp = e.LastPinTimestamp
		upsertItem(c.channelsPrivate, e.ChannelID, &clone)
		return
	}

	if g, ok := c.groups.Get(e.ChannelID); ok {
		clone := *g
		clone.LastPinTimestamp = e.LastPinTimestamp
		upsertItem(c.groups, e.ChannelID, &clone)
	}
}
