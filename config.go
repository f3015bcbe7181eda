package chatcache

import "github.com/rs/zerolog"

const defaultMessageCacheSize = 100

// Config is the cache's runtime configuration (spec.md §6.1), built via
// functional options the same way the teacher's CacheConfig is populated
// by its constructor helpers.
type Config struct {
	EventTypes       EventType
	MessageCacheSize int
	Logger           zerolog.Logger
}

func defaultConfig() Config {
	return Config{
		EventTypes:       AllEventTypes,
		MessageCacheSize: defaultMessageCacheSize,
		Logger:           defaultLogger(),
	}
}

// Option mutates a Config during New.
type Option func(*Config)

// WithEventTypes restricts which event categories are allowed to mutate
// cache state (spec.md §4.3, §6.1).
func WithEventTypes(types EventType) Option {
	return func(c *Config) { c.EventTypes = types }
}

// WithMessageCacheSize sets the per-channel retained-message cap
// (spec.md §4.8, I6). size <= 0 is treated as 1, since a zero-length
// ring buffer can never hold the message it just evicted room for.
func WithMessageCacheSize(size int) Option {
	return func(c *Config) {
		if size <= 0 {
			size = 1
		}
		c.MessageCacheSize = size
	}
}

// WithLogger overrides the default stderr zerolog.Logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
