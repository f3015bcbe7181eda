package chatcache

// Role is a guild role. Its owning guild id is carried alongside it by
// the GuildItem wrapper in the roles index (spec.md §3), not as a field
// here, matching upsertGuildItem's contract.
type Role struct {
	ID          RoleID
	Name        string
	Color       int
	Hoist       bool
	Position    int
	Permissions int64
	Managed     bool
	Mentionable bool
}

func (r *Role) Equal(other *Role) bool {
	if r == nil || other == nil {
		return r == other
	}
	return *r == *other
}
