package chatcache

// storeFor returns the message store for channel, creating one (sized by
// the configured cap) if this is the first message seen for it.
func (c *Cache) storeFor(channel ChannelID) *messageStore {
	var store *messageStore
	c.messages.Mutate(channel, func(cur *messageStore, ok bool) (*messageStore, bool) {
		if !ok {
			cur = newMessageStore(c.conf.MessageCacheSize, c.conf.Logger)
		}
		store = cur
		return cur, true
	})
	return store
}

// handleMessageCreate appends to messages[channel], evicting the
// oldest-keyed entry first if the channel is already at capacity
// (spec.md §4.5, §4.8, I6).
func (c *Cache) handleMessageCreate(e *MessageCreate) {
	if !c.eventAllowed(EventMessageCreate, "MessageCreate") || e == nil || e.Message == nil {
		return
	}
	c.storeFor(e.Message.ChannelID).upsert(e.Message)
}

// handleMessageDelete removes a single message id from its channel's
// ordered map (spec.md §4.5).
func (c *Cache) handleMessageDelete(e *MessageDelete) {
	if !c.eventAllowed(EventMessageDelete, "MessageDelete") || e == nil {
		return
	}
	if store, ok := c.messages.Get(e.ChannelID); ok {
		store.delete(e.MessageID)
	}
}

// handleMessageDeleteBulk removes multiple message ids from a channel's
// ordered map in one pass (spec.md §4.5).
func (c *Cache) handleMessageDeleteBulk(e *MessageDeleteBulk) {
	if !c.eventAllowed(EventMessageDeleteBulk, "MessageDeleteBulk") || e == nil {
		return
	}
	if store, ok := c.messages.Get(e.ChannelID); ok {
		store.deleteBulk(e.MessageIDs)
	}
}

// handleMessageUpdate locates the message and overlays only the fields
// present on the update; ignored if the message was already evicted
// (spec.md §4.5).
func (c *Cache) handleMessageUpdate(e *MessageUpdate) {
	if !c.eventAllowed(EventMessageUpdate, "MessageUpdate") || e == nil {
		return
	}
	store, ok := c.messages.Get(e.Overlay.ChannelID)
	if !ok {
		return
	}
	store.update(e.Overlay.ID, func(m *Message) *Message {
		clone := *m
		applyMessageOverlay(&clone, e.Overlay)
		return &clone
	})
}

func applyMessageOverlay(m *Message, o MessageUpdateOverlay) {
	if o.Content != nil {
		m.Content = *o.Content
	}
	if o.EmbedsSet {
		m.Embeds = o.Embeds
	}
	if o.AttachmentsSet {
		m.Attachments = o.Attachments
	}
	if o.EditedTimestamp != nil {
		m.EditedTimestamp = *o.EditedTimestamp
	}
	if o.MentionEveryone != nil {
		m.MentionEveryone = *o.MentionEveryone
	}
	if o.MentionRolesSet {
		m.MentionRoles = o.MentionRoles
	}
	if o.MentionsSet {
		m.Mentions = o.Mentions
	}
	if o.Pinned != nil {
		m.Pinned = *o.Pinned
	}
	if o.TTS != nil {
		m.TTS = *o.TTS
	}
	if o.Timestamp != nil {
		m.Timestamp = *o.Timestamp
	}
}
