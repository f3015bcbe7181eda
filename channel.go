package chatcache

import (
	"reflect"
	"time"
)

// GuildChannelType tags which of Category/Text/Voice a GuildChannel is.
// spec.md §9 calls for a tagged-variant representation rather than
// virtual dispatch, so GuildChannel is one struct carrying the fields
// common to all three plus the Text-only LastPinTimestamp, gated by Type.
type GuildChannelType uint8

const (
	GuildChannelCategory GuildChannelType = iota
	GuildChannelText
	GuildChannelVoice
)

// GuildChannel is a channel owned by a guild. On a guild-create cascade
// the cache sets GuildID to the owning guild's id, even if the incoming
// payload arrived with it unset (see cascadeGuild); channel create/update
// store the GuildID the payload carries.
type GuildChannel struct {
	ID       ChannelID
	GuildID  GuildID
	Type     GuildChannelType
	Name     string
	Position int
	ParentID ChannelID
	NSFW     bool

	// Text-only.
	Topic             string
	LastMessageID     MessageID
	LastPinTimestamp  time.Time
	RateLimitPerUser  int

	// Voice-only.
	Bitrate   int
	UserLimit int
}

func (c *GuildChannel) Equal(other *GuildChannel) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// PrivateChannel is a one-on-one DM.
type PrivateChannel struct {
	ID               ChannelID
	Recipients       []UserID
	LastMessageID    MessageID
	LastPinTimestamp time.Time
}

func (c *PrivateChannel) Equal(other *PrivateChannel) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.Recipients) != len(other.Recipients) {
		return false
	}
	for i := range c.Recipients {
		if c.Recipients[i] != other.Recipients[i] {
			return false
		}
	}
	a, b := *c, *other
	a.Recipients, b.Recipients = nil, nil
	return reflect.DeepEqual(a, b)
}

// Group is a group DM.
type Group struct {
	ID               ChannelID
	Name             string
	OwnerID          UserID
	Recipients       []UserID
	LastPinTimestamp time.Time
}

func (g *Group) Equal(other *Group) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.Recipients) != len(other.Recipients) {
		return false
	}
	for i := range g.Recipients {
		if g.Recipients[i] != other.Recipients[i] {
			return false
		}
	}
	a, b := *g, *other
	a.Recipients, b.Recipients = nil, nil
	return reflect.DeepEqual(a, b)
}
