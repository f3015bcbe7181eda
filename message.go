package chatcache

import (
	"reflect"
	"time"
)

// Attachment mirrors the teacher's Attachment (struct_channel.go) field
// for field — that type needed no behavioral change for this cache, only
// a home in the message model instead of the channel one.
type Attachment struct {
	ID       MessageID
	Filename string
	Size     int
	URL      string
	ProxyURL string
	Height   int
	Width    int
}

// Embed is kept intentionally shallow; the cache stores whatever the
// gateway sent verbatim and never interprets embed contents.
type Embed struct {
	Title       string
	Description string
	URL         string
}

// Reaction is one distinct-emoji reaction bucket on a message.
type Reaction struct {
	Emoji ReactionEmoji
	Count int
	Me    bool
}

// Message is bounded per channel by Config.MessageCacheSize (spec.md §3,
// §4.8).
type Message struct {
	ID              MessageID
	ChannelID       ChannelID
	AuthorID        UserID
	Content         string
	Embeds          []Embed
	Attachments     []Attachment
	Reactions       []Reaction
	MentionEveryone bool
	MentionRoles    []RoleID
	Mentions        []UserID
	Pinned          bool
	TTS             bool
	Timestamp       time.Time
	EditedTimestamp time.Time
	Flags           int
}

func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.Embeds) != len(other.Embeds) || len(m.Attachments) != len(other.Attachments) ||
		len(m.Reactions) != len(other.Reactions) || len(m.MentionRoles) != len(other.MentionRoles) ||
		len(m.Mentions) != len(other.Mentions) {
		return false
	}
	for i := range m.Embeds {
		if m.Embeds[i] != other.Embeds[i] {
			return false
		}
	}
	for i := range m.Attachments {
		if m.Attachments[i] != other.Attachments[i] {
			return false
		}
	}
	for i := range m.Reactions {
		if m.Reactions[i] != other.Reactions[i] {
			return false
		}
	}
	for i := range m.MentionRoles {
		if m.MentionRoles[i] != other.MentionRoles[i] {
			return false
		}
	}
	for i := range m.Mentions {
		if m.Mentions[i] != other.Mentions[i] {
			return false
		}
	}
	a, b := *m, *other
	a.Embeds, b.Embeds = nil, nil
	a.Attachments, b.Attachments = nil, nil
	a.Reactions, b.Reactions = nil, nil
	a.MentionRoles, b.MentionRoles = nil, nil
	a.Mentions, b.Mentions = nil, nil
	return reflect.DeepEqual(a, b)
}

// MessageUpdateOverlay carries the fields a MESSAGE_UPDATE event may
// change; only non-nil fields are overlaid (spec.md §4.5).
type MessageUpdateOverlay struct {
	ChannelID       ChannelID
	ID              MessageID
	Content         *string
	Embeds          []Embed
	EmbedsSet       bool
	Attachments     []Attachment
	AttachmentsSet  bool
	EditedTimestamp *time.Time
	MentionEveryone *bool
	MentionRoles    []RoleID
	MentionRolesSet bool
	Mentions        []UserID
	MentionsSet     bool
	Pinned          *bool
	TTS             *bool
	Timestamp       *time.Time
}
