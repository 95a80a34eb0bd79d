package adapter

import "context"

// AnalyticsCache caches serialized analytics results keyed by query shape.
// Implementations must be safe for concurrent use. A nil-safe no-op
// implementation is used when no cache backend is configured.
type AnalyticsCache interface {
	// Get returns the cached payload for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool)

	// Set stores the payload under key with the cache's configured TTL.
	Set(ctx context.Context, key string, payload []byte)

	// Invalidate drops all cached analytics entries. Called after any write
	// that can change aggregates.
	Invalidate(ctx context.Context)
}
