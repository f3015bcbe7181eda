package chatcache

// handleReady sets current_user and cascades each listed guild: online
// guilds via guild-create semantics, offline guilds into
// unavailable_guilds (spec.md §4.5).
func (c *Cache) handleReady(e *Ready) {
	if !c.eventAllowed(EventReady, "Ready") || e == nil {
		return
	}
	c.setCurrentUser(e.CurrentUser)
	for _, rg := range e.Guilds {
		if rg.Unavailable {
			c.unavailableGuilds.Set(rg.GuildID, struct{}{})
			continue
		}
		if rg.Guild != nil {
			c.cascadeGuild(rg.Guild)
		}
	}
}

// handleUserUpdate replaces current_user; the event always targets the
// bot itself (spec.md §4.5).
func (c *Cache) handleUserUpdate(e *UserUpdate) {
	if !c.eventAllowed(EventUserUpdate, "UserUpdate") || e == nil {
		return
	}
	c.setCurrentUser(e.User)
}

func (c *Cache) setCurrentUser(u *CurrentUser) {
	c.currentUserMu.Lock()
	c.currentUser = u
	c.currentUserMu.Unlock()
}

// currentUserID reports the bot's own user id, used by the reaction
// handlers to compute the "me" flag (spec.md §4.5).
func (c *Cache) currentUserID() (UserID, bool) {
	c.currentUserMu.Lock()
	defer c.currentUserMu.Unlock()
	if c.currentUser == nil {
		return UserID(0), false
	}
	return c.currentUser.ID, true
}

// CurrentUser returns the bot's own cached identity, if known (spec.md
// §4.9).
func (c *Cache) CurrentUser() *CurrentUser {
	c.currentUserMu.Lock()
	defer c.currentUserMu.Unlock()
	return c.currentUser
}
