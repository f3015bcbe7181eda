package chatcache

import "time"

// Events carry the identifiers and fields their handler needs (spec.md
// §6.3); the cache never retains the event value itself, only clones
// fields out of it into its own entities.

type ChannelCreate struct{ Channel *GuildOrPrivateChannel }
type ChannelUpdate struct{ Channel *GuildOrPrivateChannel }

// GuildOrPrivateChannel tags which channel-kind payload this event
// carries, mirroring how channel-create must "dispatch by channel class"
// (spec.md §4.5) before it knows which index to touch.
type GuildOrPrivateChannel struct {
	Guild   *GuildChannel
	Private *PrivateChannel
	Group   *Group
}

type ChannelDelete struct {
	ChannelID ChannelID
	GuildID   GuildID // empty when not a guild channel
}

type ChannelPinsUpdate struct {
	ChannelID        ChannelID
	LastPinTimestamp time.Time
}

type GuildCreate struct{ Guild *GuildCreatePayload }

// GuildCreatePayload is the cascading GUILD_CREATE shape: the guild
// record plus every child collection that arrives inline with it
// (spec.md §4.5 guild-create).
type GuildCreatePayload struct {
	Guild       *Guild
	Channels    []*GuildChannel
	Emojis      []*Emoji
	Members     []*Member
	Presences   []*Presence
	Roles       []*Role
	VoiceStates []*VoiceState
}

type GuildDelete struct {
	GuildID     GuildID
	Unavailable bool
}

type GuildUpdate struct {
	GuildID GuildID
	Overlay GuildUpdateOverlay
}

type GuildEmojisUpdate struct {
	GuildID GuildID
	Emojis  []*Emoji
}

type MemberAdd struct{ Member *Member }

type MemberUpdate struct{ Overlay MemberUpdateOverlay }

type MemberRemove struct {
	GuildID GuildID
	UserID  UserID
}

type MemberChunk struct {
	GuildID GuildID
	Members []*Member
}

type MessageCreate struct{ Message *Message }

type MessageDelete struct {
	ChannelID ChannelID
	MessageID MessageID
}

type MessageDeleteBulk struct {
	ChannelID  ChannelID
	MessageIDs []MessageID
}

type MessageUpdate struct{ Overlay MessageUpdateOverlay }

type PresenceUpdate struct{ Presence *Presence }

type ReactionAdd struct {
	ChannelID ChannelID
	MessageID MessageID
	UserID    UserID
	Emoji     ReactionEmoji
}

type ReactionRemove struct {
	ChannelID ChannelID
	MessageID MessageID
	UserID    UserID
	Emoji     ReactionEmoji
}

type ReactionRemoveAll struct {
	ChannelID ChannelID
	MessageID MessageID
}

type ReactionRemoveEmoji struct {
	ChannelID ChannelID
	MessageID MessageID
	Emoji     ReactionEmoji
}

type Ready struct {
	CurrentUser *CurrentUser
	Guilds      []*ReadyGuild
}

// ReadyGuild is one entry of the READY payload's guild list: either a
// full cascading guild (online) or a bare unavailable marker (offline).
type ReadyGuild struct {
	Unavailable bool
	GuildID     GuildID // set when Unavailable
	Guild       *GuildCreatePayload
}

type RoleCreate struct {
	GuildID GuildID
	Role    *Role
}

type RoleUpdate struct {
	GuildID GuildID
	Role    *Role
}

type RoleDelete struct {
	GuildID GuildID
	RoleID  RoleID
}

type UnavailableGuild struct{ GuildID GuildID }

type UserUpdate struct{ User *CurrentUser }

type VoiceStateUpdate struct{ VoiceState *VoiceState }

// The remaining categories carry no cacheable information (spec.md
// §4.4) and are accepted only so Update's type switch can route them to
// a no-op; that case does not consult the event filter.
type BanAdd struct{ GuildID GuildID }
type BanRemove struct{ GuildID GuildID }
type GuildIntegrationsUpdate struct{ GuildID GuildID }
type TypingStart struct{}
type VoiceServerUpdate struct{}
type WebhookUpdate struct{}
