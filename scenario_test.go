package chatcache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestGuildCreateAttachesChannelGuildID is spec scenario S1: a guild
// channel arriving with no guild id attached must come out of the cache
// tagged with the guild it was cascaded under.
func TestGuildCreateAttachesChannelGuildID(t *testing.T) {
	c := New()
	c.Update(&GuildCreate{Guild: &GuildCreatePayload{
		Guild:    &Guild{ID: GuildID(123), Name: "home"},
		Channels: []*GuildChannel{{ID: ChannelID(111), Type: GuildChannelText, Name: "general"}},
	}})

	ch, ok := c.GuildChannel(ChannelID(111))
	require.True(t, ok)
	require.Equal(t, GuildID(123), ch.GuildID)
	require.Contains(t, c.GuildChannels(GuildID(123)), ChannelID(111))
}

// TestUserGuildSet is spec scenario S2.
func TestUserGuildSet(t *testing.T) {
	c := New()
	u := &User{ID: UserID(2), Username: "ember"}

	c.cacheUser(u, GuildID(1))
	entry, ok := c.users.Get(UserID(2))
	require.True(t, ok)
	require.ElementsMatch(t, []GuildID{1}, entry.Guilds.Slice())

	c.cacheUser(u, GuildID(3))
	entry, ok = c.users.Get(UserID(2))
	require.True(t, ok)
	require.ElementsMatch(t, []GuildID{1, 3}, entry.Guilds.Slice())

	c.Update(&MemberRemove{GuildID: GuildID(3), UserID: UserID(2)})
	entry, ok = c.users.Get(UserID(2))
	require.True(t, ok)
	require.ElementsMatch(t, []GuildID{1}, entry.Guilds.Slice())

	c.Update(&MemberRemove{GuildID: GuildID(1), UserID: UserID(2)})
	_, ok = c.users.Get(UserID(2))
	require.False(t, ok, "expected user to be fully forgotten once its last guild is removed")
}

// TestVoiceStateLifecycle is spec scenario S3: join, move, leave across
// multiple guilds and channels, checked at each step.
func TestVoiceStateLifecycle(t *testing.T) {
	c := New()

	apply := func(g, ch, u int64, leave bool) {
		vs := &VoiceState{GuildID: GuildID(g), UserID: UserID(u), SessionID: uuid.NewString()}
		if !leave {
			vs.ChannelID = ChannelID(ch)
		}
		c.Update(&VoiceStateUpdate{VoiceState: vs})
	}

	apply(1, 11, 1, false)
	require.Equal(t, 1, c.voiceStates.Len())
	require.True(t, c.voiceStateChannels.Has(ChannelID(11)))
	require.Len(t, c.VoiceChannelStates(ChannelID(11)), 1)

	apply(2, 21, 2, false)
	apply(1, 12, 3, false)
	require.Equal(t, 3, c.voiceStates.Len())

	// move u:3 from 12 -> 11
	apply(1, 11, 3, false)
	require.Equal(t, 3, c.voiceStates.Len())
	_, stillIn12 := c.voiceStateChannels.Get(ChannelID(12))
	require.False(t, stillIn12, "expected channel 12 to be pruned once empty")

	// u:3 leaves
	apply(1, 0, 3, true)
	require.Equal(t, 2, c.voiceStates.Len())

	// u:2 leaves
	apply(2, 0, 2, true)
	require.Equal(t, 1, c.voiceStates.Len())
	_, stillIn21 := c.voiceStateChannels.Get(ChannelID(21))
	require.False(t, stillIn21)

	// u:1 leaves: everything now empty
	apply(1, 0, 1, true)
	require.Equal(t, 0, c.voiceStates.Len())
	require.Equal(t, 0, c.voiceStateChannels.Len())
	require.Equal(t, 0, c.voiceStateGuilds.Len())
}

// TestRoleDeleteCrossIndex is spec scenario S4.
func TestRoleDeleteCrossIndex(t *testing.T) {
	c := New()
	c.Update(&RoleCreate{GuildID: GuildID(1), Role: &Role{ID: RoleID(5), Name: "mod"}})
	require.Contains(t, c.GuildRoles(GuildID(1)), RoleID(5))

	c.Update(&RoleDelete{GuildID: GuildID(1), RoleID: RoleID(5)})
	_, ok := c.Role(RoleID(5))
	require.False(t, ok)
	require.NotContains(t, c.GuildRoles(GuildID(1)), RoleID(5))
}

// TestMessageCap is spec scenario S5.
func TestMessageCap(t *testing.T) {
	c := New(WithMessageCacheSize(2))
	channel := ChannelID(1)
	for _, id := range []int64{100, 101, 102} {
		c.Update(&MessageCreate{Message: &Message{ID: MessageID(id), ChannelID: channel, Timestamp: time.Now()}})
	}

	_, ok := c.Message(channel, MessageID(100))
	require.False(t, ok, "oldest message should have been evicted")

	_, ok = c.Message(channel, MessageID(101))
	require.True(t, ok)
	_, ok = c.Message(channel, MessageID(102))
	require.True(t, ok)
}

// TestUnavailableGuildToggle is spec scenario S6.
func TestUnavailableGuildToggle(t *testing.T) {
	c := New()
	c.Update(&UnavailableGuild{GuildID: GuildID(7)})

	_, ok := c.Guild(GuildID(7))
	require.False(t, ok)
	_, ok = c.unavailableGuilds.Get(GuildID(7))
	require.True(t, ok)

	c.Update(&GuildCreate{Guild: &GuildCreatePayload{Guild: &Guild{ID: GuildID(7), Name: "back"}}})

	g, ok := c.Guild(GuildID(7))
	require.True(t, ok)
	require.Equal(t, "back", g.Name)
	_, ok = c.unavailableGuilds.Get(GuildID(7))
	require.False(t, ok)
}
