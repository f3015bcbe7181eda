package chatcache

import (
	"reflect"
	"time"
)

// Member is a (guild, user) composite entity. It embeds the resolved
// shared User the same way original_source's CachedMember does
// (src/lib.rs cache_member: `user: self.cache_user(member.user, guild_id)`).
type Member struct {
	GuildID      GuildID
	User         *User
	Nick         string
	Roles        []RoleID
	JoinedAt     time.Time
	PremiumSince time.Time
	Deaf         bool
	Mute         bool
}

func (m *Member) Key() GuildUserKey {
	return GuildUserKey{Guild: m.GuildID, User: m.User.ID}
}

func (m *Member) Equal(other *Member) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.Roles) != len(other.Roles) {
		return false
	}
	for i := range m.Roles {
		if m.Roles[i] != other.Roles[i] {
			return false
		}
	}
	if (m.User == nil) != (other.User == nil) {
		return false
	}
	if m.User != nil && !m.User.Equal(other.User) {
		return false
	}
	a, b := *m, *other
	a.Roles, b.Roles = nil, nil
	a.User, b.User = nil, nil
	return reflect.DeepEqual(a, b)
}

// MemberUpdateOverlay carries the fields a MEMBER_UPDATE event may
// change. Per spec.md §4.5, member-update only overlays nickname and
// roles.
type MemberUpdateOverlay struct {
	GuildID GuildID
	UserID  UserID
	Nick    string
	Roles   []RoleID
}
