package chatcache

// handleVoiceStateUpdate delegates to the voice-state coordinator
// (spec.md §4.5, §4.7). A voice state whose guild_id is absent is
// ignored — voice states must be guild-scoped for this cache.
func (c *Cache) handleVoiceStateUpdate(e *VoiceStateUpdate) {
	if !c.eventAllowed(EventVoiceStateUpdate, "VoiceStateUpdate") || e == nil || e.VoiceState == nil {
		return
	}
	if e.VoiceState.GuildID.Empty() {
		return
	}
	c.applyVoiceState(e.VoiceState)
}

// applyVoiceState runs the state machine of spec.md §4.7: Absent/InChannel
// transitions driven by whether the incoming state carries a channel id.
func (c *Cache) applyVoiceState(vs *VoiceState) {
	key := vs.Key()
	prev, existed := c.voiceStates.Get(key)

	switch {
	case !existed && vs.ChannelID.Empty():
		// Absent + None: no-op.
		return

	case !existed:
		// Absent + Some(c): join.
		upsertItem(c.voiceStates, key, vs)
		addToSet(c.voiceStateGuilds, vs.GuildID, vs.UserID)
		addToSet(c.voiceStateChannels, vs.ChannelID, key)

	case vs.ChannelID.Empty():
		// InChannel(c0) + None: leave.
		removeFromSet(c.voiceStateChannels, prev.ChannelID, key)
		removeFromSet(c.voiceStateGuilds, vs.GuildID, vs.UserID)
		c.voiceStates.Delete(key)

	case vs.ChannelID == prev.ChannelID:
		// InChannel(c0) + Some(c0): same channel, replace state only.
		upsertItem(c.voiceStates, key, vs)

	default:
		// InChannel(c0) + Some(c1): move.
		removeFromSet(c.voiceStateChannels, prev.ChannelID, key)
		addToSet(c.voiceStateChannels, vs.ChannelID, key)
		upsertItem(c.voiceStates, key, vs)
	}
}
