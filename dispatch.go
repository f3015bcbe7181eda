package chatcache

import "fmt"

// Update applies a single gateway event to the cache (spec.md §4.4).
// Variants carrying no cacheable information are no-ops; every other
// variant delegates to a per-category handler. Each handler whose
// category has an EventType bit checks the configured event filter
// before touching any index (spec.md §4.3); ChannelPinsUpdate and
// ReactionRemoveEmoji have no bit and are always applied.
func (c *Cache) Update(event any) {
	switch e := event.(type) {
	case *ChannelCreate:
		c.handleChannelCreate(e)
	case *ChannelUpdate:
		c.handleChannelUpdate(e)
	case *ChannelDelete:
		c.handleChannelDelete(e)
	case *ChannelPinsUpdate:
		c.handleChannelPinsUpdate(e)

	case *GuildCreate:
		c.handleGuildCreate(e)
	case *GuildDelete:
		c.handleGuildDelete(e)
	case *GuildUpdate:
		c.handleGuildUpdate(e)
	case *GuildEmojisUpdate:
		c.handleGuildEmojisUpdate(e)

	case *MemberAdd:
		c.handleMemberAdd(e)
	case *MemberUpdate:
		c.handleMemberUpdate(e)
	case *MemberRemove:
		c.handleMemberRemove(e)
	case *MemberChunk:
		c.handleMemberChunk(e)

	case *MessageCreate:
		c.handleMessageCreate(e)
	case *MessageDelete:
		c.handleMessageDelete(e)
	case *MessageDeleteBulk:
		c.handleMessageDeleteBulk(e)
	case *MessageUpdate:
		c.handleMessageUpdate(e)

	case *PresenceUpdate:
		c.handlePresenceUpdate(e)

	case *ReactionAdd:
		c.handleReactionAdd(e)
	case *ReactionRemove:
		c.handleReactionRemove(e)
	case *ReactionRemoveAll:
		c.handleReactionRemoveAll(e)
	case *ReactionRemoveEmoji:
		c.handleReactionRemoveEmoji(e)

	case *Ready:
		c.handleReady(e)

	case *RoleCreate:
		c.handleRoleCreate(e)
	case *RoleUpdate:
		c.handleRoleUpdate(e)
	case *RoleDelete:
		c.handleRoleDelete(e)

	case *UnavailableGuild:
		c.handleUnavailableGuild(e)

	case *UserUpdate:
		c.handleUserUpdate(e)

	case *VoiceStateUpdate:
		c.handleVoiceStateUpdate(e)

	case *BanAdd, *BanRemove, *GuildIntegrationsUpdate, *TypingStart,
		*VoiceServerUpdate, *WebhookUpdate:
		// no cacheable information (spec.md §4.4)

	default:
		c.conf.Logger.Debug().Str("event", fmt.Sprintf("%T", event)).Msg("unrecognized event type, ignoring")
	}
}
