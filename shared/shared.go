package shared

import (
	"context"

	"studio/shared/cache"

	"github.com/rs/zerolog/log"
)

// Truncate cuts s to at most n characters (runes, not bytes).
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}

// InvalidateCaches deletes every key, logging failures instead of returning them.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, keys ...string) {
	for _, key := range keys {
		if err := redisCache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to invalidate cache")
		}
	}
}
