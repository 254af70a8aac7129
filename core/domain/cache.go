// ABOUTME: Cache entry model with lazy, per-entry expiry
// ABOUTME: Entries carry their own TTL so content-aware policies can vary per address

package domain

import "time"

// CacheEntry is a stored retrieval result
type CacheEntry struct {
	Content  string        `json:"content"`
	StoredAt time.Time     `json:"storedAt"`
	TTL      time.Duration `json:"ttl"`
}

// Expired reports whether the entry is stale at now.
// An entry is stale once now - StoredAt >= TTL.
func (e CacheEntry) Expired(now time.Time) bool {
	return now.Sub(e.StoredAt) >= e.TTL
}

// ConnectivityState is the memoized result of a reachability probe
type ConnectivityState struct {
	IsConnected bool
	CheckedAt   time.Time
}

// EvictionBatch returns how many of size entries a full store drops before
// an insert: a tenth, rounded up, never less than one.
func EvictionBatch(size int) int {
	n := (size + 9) / 10
	if n < 1 {
		return 1
	}
	return n
}
