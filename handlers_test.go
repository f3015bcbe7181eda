package chatcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func TestReactionAddAndRemove(t *testing.T) {
	c := New()
	c.Update(&UserUpdate{User: &CurrentUser{ID: UserID(1)}})
	c.Update(&MessageCreate{Message: &Message{ID: MessageID(1), ChannelID: ChannelID(1)}})

	emoji := ReactionEmoji{Name: "👍"}
	c.Update(&ReactionAdd{ChannelID: ChannelID(1), MessageID: MessageID(1), UserID: UserID(1), Emoji: emoji})

	msg, ok := c.Message(ChannelID(1), MessageID(1))
	require.True(t, ok)
	require.Len(t, msg.Reactions, 1)
	require.Equal(t, 1, msg.Reactions[0].Count)
	require.True(t, msg.Reactions[0].Me)

	c.Update(&ReactionAdd{ChannelID: ChannelID(1), MessageID: MessageID(1), UserID: UserID(2), Emoji: emoji})
	msg, _ = c.Message(ChannelID(1), MessageID(1))
	require.Equal(t, 2, msg.Reactions[0].Count)

	c.Update(&ReactionRemove{ChannelID: ChannelID(1), MessageID: MessageID(1), UserID: UserID(1), Emoji: emoji})
	msg, _ = c.Message(ChannelID(1), MessageID(1))
	require.Len(t, msg.Reactions, 1)
	require.Equal(t, 1, msg.Reactions[0].Count)
	require.False(t, msg.Reactions[0].Me)

	c.Update(&ReactionRemove{ChannelID: ChannelID(1), MessageID: MessageID(1), UserID: UserID(2), Emoji: emoji})
	msg, _ = c.Message(ChannelID(1), MessageID(1))
	require.Len(t, msg.Reactions, 0)
}

func TestReactionOnUnknownMessageIsIgnored(t *testing.T) {
	c := New()
	c.Update(&ReactionAdd{ChannelID: ChannelID(1), MessageID: MessageID(999), UserID: UserID(1), Emoji: ReactionEmoji{Name: "x"}})
	_, ok := c.Message(ChannelID(1), MessageID(999))
	require.False(t, ok)
}

func TestMessageUpdateOverlaysOnlyPresentFields(t *testing.T) {
	c := New()
	c.Update(&MessageCreate{Message: &Message{ID: MessageID(1), ChannelID: ChannelID(1), Content: "hello", Pinned: false}})

	newContent := "edited"
	c.Update(&MessageUpdate{Overlay: MessageUpdateOverlay{
		ChannelID: ChannelID(1),
		ID:        MessageID(1),
		Content:   &newContent,
	}})

	msg, ok := c.Message(ChannelID(1), MessageID(1))
	require.True(t, ok)
	require.Equal(t, "edited", msg.Content)
	require.False(t, msg.Pinned)
}

func TestChannelPinsUpdateFallsThroughOnlyWhenAbsentFromGuildChannels(t *testing.T) {
	c := New()
	c.Update(&ChannelCreate{Channel: &GuildOrPrivateChannel{Private: &PrivateChannel{ID: ChannelID(5)}}})

	ts := mustTime(t, "2026-01-01T00:00:00Z")
	c.Update(&ChannelPinsUpdate{ChannelID: ChannelID(5), LastPinTimestamp: ts})

	pc, ok := c.PrivateChannel(ChannelID(5))
	require.True(t, ok)
	require.True(t, pc.LastPinTimestamp.Equal(ts))
}

func TestChannelPinsUpdateIgnoredForNonTextGuildChannel(t *testing.T) {
	c := New()
	c.Update(&GuildCreate{Guild: &GuildCreatePayload{
		Guild:    &Guild{ID: GuildID(1), Name: "g"},
		Channels: []*GuildChannel{{ID: ChannelID(5), Type: GuildChannelCategory}},
	}})

	ts := mustTime(t, "2026-01-01T00:00:00Z")
	c.Update(&ChannelPinsUpdate{ChannelID: ChannelID(5), LastPinTimestamp: ts})

	ch, ok := c.GuildChannel(ChannelID(5))
	require.True(t, ok)
	require.True(t, ch.LastPinTimestamp.IsZero(), "category channels have no last_pin_timestamp to update")
}

func TestMemberUpdateOnNilEventIsNoop(t *testing.T) {
	c := New()
	c.Update(&GuildCreate{Guild: &GuildCreatePayload{
		Guild:   &Guild{ID: GuildID(1), Name: "g"},
		Members: []*Member{{GuildID: GuildID(1), User: &User{ID: UserID(1)}}},
	}})

	require.NotPanics(t, func() {
		c.Update((*MemberUpdate)(nil))
	})

	m, ok := c.Member(GuildID(1), UserID(1))
	require.True(t, ok)
	require.Empty(t, m.Nick)
}

func TestGuildDeleteCascades(t *testing.T) {
	c := New()
	c.Update(&GuildCreate{Guild: &GuildCreatePayload{
		Guild:    &Guild{ID: GuildID(1), Name: "g"},
		Channels: []*GuildChannel{{ID: ChannelID(1), Type: GuildChannelText}},
		Roles:    []*Role{{ID: RoleID(1), Name: "r"}},
		Members:  []*Member{{GuildID: GuildID(1), User: &User{ID: UserID(1)}}},
	}})

	c.Update(&GuildDelete{GuildID: GuildID(1)})

	_, ok := c.Guild(GuildID(1))
	require.False(t, ok)
	_, ok = c.GuildChannel(ChannelID(1))
	require.False(t, ok)
	_, ok = c.Role(RoleID(1))
	require.False(t, ok)
	_, ok = c.Member(GuildID(1), UserID(1))
	require.False(t, ok)
	_, ok = c.User(UserID(1))
	require.False(t, ok, "member's user should be forgotten once its only guild is gone")
	require.Empty(t, c.GuildChannels(GuildID(1)))
}

func TestEventFilterSuppressesDisabledCategories(t *testing.T) {
	c := New(WithEventTypes(AllEventTypes &^ EventGuildCreate))
	c.Update(&GuildCreate{Guild: &GuildCreatePayload{Guild: &Guild{ID: GuildID(1), Name: "g"}}})

	_, ok := c.Guild(GuildID(1))
	require.False(t, ok, "guild-create should be a no-op when its category bit is cleared")
}

func TestClearResetsEveryIndex(t *testing.T) {
	c := New()
	c.Update(&GuildCreate{Guild: &GuildCreatePayload{
		Guild:    &Guild{ID: GuildID(1), Name: "g"},
		Channels: []*GuildChannel{{ID: ChannelID(1), Type: GuildChannelText}},
	}})
	c.Update(&UserUpdate{User: &CurrentUser{ID: UserID(99)}})

	c.Clear()

	_, ok := c.Guild(GuildID(1))
	require.False(t, ok)
	_, ok = c.GuildChannel(ChannelID(1))
	require.False(t, ok)
	require.Nil(t, c.CurrentUser())
}
