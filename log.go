package chatcache

import (
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger writes to stderr, matching zerolog.New's usual wiring in
// the pack's gateway-adjacent services. Callers override it via
// WithLogger.
func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", "chatcache").Logger()
}
