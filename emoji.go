package chatcache

import "reflect"

// Emoji is the cache's projection of an emoji, grounded on
// original_source/cache/in-memory/src/model/emoji.rs's CachedEmoji. The
// creator User is stored as it arrives in the payload; it is not resolved
// through the shared users index.
type Emoji struct {
	ID            EmojiID
	Name          string
	Animated      bool
	Managed       bool
	RequireColons bool
	Available     bool
	Roles         []RoleID
	User          *User // creator, if known; nil otherwise
}

func (e *Emoji) Equal(other *Emoji) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.Roles) != len(other.Roles) {
		return false
	}
	for i := range e.Roles {
		if e.Roles[i] != other.Roles[i] {
			return false
		}
	}
	if (e.User == nil) != (other.User == nil) {
		return false
	}
	if e.User != nil && !e.User.Equal(other.User) {
		return false
	}
	a, b := *e, *other
	a.Roles, b.Roles = nil, nil
	a.User, b.User = nil, nil
	return reflect.DeepEqual(a, b)
}

// ReactionEmoji identifies the emoji used on a message reaction. It may
// be a custom emoji (ID set) or a unicode emoji (Name only, as noted in
// SPEC_FULL.md's reaction-identity supplement).
type ReactionEmoji struct {
	ID   EmojiID
	Name string
}

// Equal mirrors the original's `r.emoji == self.0.emoji` reaction match
// (updates.rs ReactionAdd/ReactionRemove): custom emoji compare by id,
// unicode emoji (no id) compare by name.
func (e ReactionEmoji) Equal(other ReactionEmoji) bool {
	if !e.ID.Empty() || !other.ID.Empty() {
		return e.ID == other.ID
	}
	return e.Name == other.Name
}
