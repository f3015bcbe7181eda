package chatcache

// eventAllowed reports whether category is enabled in the cache's
// configured EventType filter (spec.md §4.3). When the bit is unset it
// logs once at Debug and returns false, so every handler's early-return
// on a disabled category is observable instead of a silent no-op.
func (c *Cache) eventAllowed(category EventType, name string) bool {
	if c.conf.EventTypes.Has(category) {
		return true
	}
	c.conf.Logger.Debug().Str("event", name).Msg("ignored: category disabled")
	return false
}
