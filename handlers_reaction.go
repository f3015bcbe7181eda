package chatcache

// handleReactionAdd locates the message; if absent, ignores. Finds a
// reaction of matching emoji — increments its count, and sets the "me"
// flag if the reacting user is the current user — or else pushes a new
// reaction record (spec.md §4.5).
func (c *Cache) handleReactionAdd(e *ReactionAdd) {
	if !c.eventAllowed(EventReactionAdd, "ReactionAdd") || e == nil {
		return
	}
	me, _ := c.currentUserID()
	c.mutateMessageReactions(e.ChannelID, e.MessageID, func(reactions []Reaction) []Reaction {
		for i := range reactions {
			if reactions[i].Emoji.Equal(e.Emoji) {
				reactions[i].Count++
				if e.UserID == me {
					reactions[i].Me = true
				}
				return reactions
			}
		}
		return append(reactions, Reaction{Emoji: e.Emoji, Count: 1, Me: e.UserID == me})
	})
}

// handleReactionRemove mirrors add: decrements the matching reaction's
// count, removing the entry once it reaches zero, and clears "me" if the
// removing user is the current user (spec.md §4.5).
func (c *Cache) handleReactionRemove(e *ReactionRemove) {
	if !c.eventAllowed(EventReactionRemove, "ReactionRemove") || e == nil {
		return
	}
	me, _ := c.currentUserID()
	c.mutateMessageReactions(e.ChannelID, e.MessageID, func(reactions []Reaction) []Reaction {
		for i := range reactions {
			if !reactions[i].Emoji.Equal(e.Emoji) {
				continue
			}
			reactions[i].Count--
			if e.UserID == me {
				reactions[i].Me = false
			}
			if reactions[i].Count <= 0 {
				return append(reactions[:i], reactions[i+1:]...)
			}
			return reactions
		}
		return reactions
	})
}

// handleReactionRemoveAll clears the reactions vector entirely (spec.md
// §4.5).
func (c *Cache) handleReactionRemoveAll(e *ReactionRemoveAll) {
	if !c.eventAllowed(EventReactionRemoveAll, "ReactionRemoveAll") || e == nil {
		return
	}
	c.mutateMessageReactions(e.ChannelID, e.MessageID, func([]Reaction) []Reaction {
		return nil
	})
}

// handleReactionRemoveEmoji removes every reaction entry matching one
// emoji, regardless of who reacted.
func (c *Cache) handleReactionRemoveEmoji(e *ReactionRemoveEmoji) {
	if e == nil {
		return
	}
	c.mutateMessageReactions(e.ChannelID, e.MessageID, func(reactions []Reaction) []Reaction {
		out := reactions[:0]
		for _, r := range reactions {
			if !r.Emoji.Equal(e.Emoji) {
				out = append(out, r)
			}
		}
		return out
	})
}

func (c *Cache) mutateMessageReactions(channel ChannelID, message MessageID, fn func([]Reaction) []Reaction) {
	store, ok := c.messages.Get(channel)
	if !ok {
		return
	}
	store.update(message, func(m *Message) *Message {
		clone := *m
		reactions := make([]Reaction, len(m.Reactions))
		copy(reactions, m.Reactions)
		clone.Reactions = fn(reactions)
		return &clone
	})
}
