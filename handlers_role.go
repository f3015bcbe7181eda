package chatcache

// handleRoleCreate upserts via the guild-item helper and adds the id to
// guild_roles[guild] (spec.md §4.5).
func (c *Cache) handleRoleCreate(e *RoleCreate) {
	if !c.eventAllowed(EventRoleCreate, "RoleCreate") || e == nil || e.Role == nil {
		return
	}
	upsertGuildItem(c.roles, e.Role.ID, e.GuildID, e.Role)
	addToSet(c.guildRoles, e.GuildID, e.Role.ID)
}

// handleRoleUpdate upserts via the guild-item helper (spec.md §4.5).
func (c *Cache) handleRoleUpdate(e *RoleUpdate) {
	if !c.eventAllowed(EventRoleUpdate, "RoleUpdate") || e == nil || e.Role == nil {
		return
	}
	upsertGuildItem(c.roles, e.Role.ID, e.GuildID, e.Role)
	addToSet(c.guildRoles, e.GuildID, e.Role.ID)
}

// handleRoleDelete removes from roles and from guild_roles[owning_guild],
// discovered through the guild pointer stored alongside the role
// (spec.md §4.5).
func (c *Cache) handleRoleDelete(e *RoleDelete) {
	if !c.eventAllowed(EventRoleDelete, "RoleDelete") || e == nil {
		return
	}
	item, ok := c.roles.Get(e.RoleID)
	if !ok {
		return
	}
	c.roles.Delete(e.RoleID)
	removeFromSet(c.guildRoles, item.GuildID, e.RoleID)
}

// handleUnavailableGuild removes from guilds, inserts into
// unavailable_guilds (spec.md §4.5, I7).
func (c *Cache) handleUnavailableGuild(e *UnavailableGuild) {
	if !c.eventAllowed(EventUnavailableGuild, "UnavailableGuild") || e == nil {
		return
	}
	c.guilds.Delete(e.GuildID)
	c.unavailableGuilds.Set(e.GuildID, struct{}{})
}
