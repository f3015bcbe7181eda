package chatcache

import "reflect"

// Activity is one entry in a Presence's activity list (playing a game,
// streaming, listening, etc.) — kept minimal, as the cache never
// interprets activity contents, only stores them.
type Activity struct {
	Name string
	Type int
	URL  string
}

// Presence is a (guild, user) composite entity tracking online status
// and activities (spec.md §3).
type Presence struct {
	GuildID    GuildID
	UserID     UserID
	Status     string
	Activities []Activity
}

func (p *Presence) Key() GuildUserKey {
	return GuildUserKey{Guild: p.GuildID, User: p.UserID}
}

func (p *Presence) Equal(other *Presence) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.Activities) != len(other.Activities) {
		return false
	}
	for i := range p.Activities {
		if p.Activities[i] != other.Activities[i] {
			return false
		}
	}
	a, b := *p, *other
	a.Activities, b.Activities = nil, nil
	return reflect.DeepEqual(a, b)
}
