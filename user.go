package chatcache

// User is shared across every guild that has cached a member referencing
// it (spec.md §3 — "users are shared across guilds").
type User struct {
	ID            UserID
	Username      string
	Discriminator string
	Avatar        string
	Bot           bool
	System        bool
	PublicFlags   int
}

func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return *u == *other
}

// CurrentUser identifies the bot itself (spec.md §3, §4.1 — the only
// cache slot protected by a single mutex rather than a shardmap).
type CurrentUser struct {
	ID            UserID
	Username      string
	Discriminator string
	Bot           bool
	MFAEnabled    bool
	Verified      bool
}

func (c *CurrentUser) Equal(other *CurrentUser) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}
