package chatcache

// VoiceState is a (guild, user) composite entity tracking a member's
// voice-channel membership and voice flags (spec.md §3, §4.7). ChannelID
// is empty when the user is not in a voice channel — callers must not
// observe a VoiceState with an empty ChannelID as "in channel"; the
// coordinator removes the entry entirely on leave instead (I5).
type VoiceState struct {
	GuildID   GuildID
	UserID    UserID
	ChannelID ChannelID
	SessionID string
	Deaf      bool
	Mute      bool
	SelfDeaf  bool
	SelfMute  bool
	Suppress  bool
}

func (v *VoiceState) Key() GuildUserKey {
	return GuildUserKey{Guild: v.GuildID, User: v.UserID}
}

func (v *VoiceState) Equal(other *VoiceState) bool {
	if v == nil || other == nil {
		return v == other
	}
	return *v == *other
}
