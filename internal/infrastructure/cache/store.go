package cache

import (
	"context"
	"time"

	"github.com/callcoachhq/call-coach/pkg/config"
)

// Store is a small key-value cache with expiration. Implementations must
// be safe for concurrent use.
type Store interface {
	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Get retrieves a value by key; the bool reports whether it was found
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}

// NewStore selects the cache backend from config: Redis when an address
// is configured, the in-memory store otherwise.
func NewStore(cfg *config.RedisConfig) (Store, error) {
	if cfg != nil && cfg.Addr != "" {
		return NewRedisStore(cfg)
	}
	return NewMemoryStore(), nil
}
