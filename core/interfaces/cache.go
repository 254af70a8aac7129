// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"

	"webfetch-api/core/domain"
)

// ContentStore defines the bounded key/value store of retrieved content.
// Implementations can be in-memory, Redis, SQLite or any other backend as
// long as they honour lazy expiry and batch eviction.
//
// Example usage:
//
//	store := someStore // implements ContentStore
//
//	// Store formatted content for 30 minutes
//	err := store.Put(ctx, "github.com/octocat", text, 30*time.Minute)
//
//	// Retrieve it while fresh
//	entry, err := store.Get(ctx, "github.com/octocat")
//	if err != nil {
//		// errors.ErrCacheMiss: absent or expired
//	}
type ContentStore interface {
	// Get returns the entry for key if present and unexpired.
	// Returns errors.ErrCacheMiss when the key is absent or expired.
	// Expired entries stay in storage until overwritten or evicted.
	Get(ctx context.Context, key string) (*domain.CacheEntry, error)

	// Lookup returns the entry for key even if it has expired.
	// Used to serve stale content when the origin times out.
	Lookup(ctx context.Context, key string) (*domain.CacheEntry, error)

	// Put inserts or overwrites key with StoredAt = now. When the store is
	// at capacity the oldest tenth of entries (at least one) is evicted first.
	Put(ctx context.Context, key string, content string, ttl time.Duration) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Len returns the number of stored entries, expired ones included.
	Len(ctx context.Context) (int, error)
}
