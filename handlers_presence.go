package chatcache

// handlePresenceUpdate upserts into presences[(g,u)] and adds the user
// to guild_presences[g] (spec.md §4.5).
func (c *Cache) handlePresenceUpdate(e *PresenceUpdate) {
	if !c.eventAllowed(EventPresenceUpdate, "PresenceUpdate") || e == nil || e.Presence == nil {
		return
	}
	p := e.Presence
	upsertItem(c.presences, p.Key(), p)
	addToSet(c.guildPresences, p.GuildID, p.UserID)
}
