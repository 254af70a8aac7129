// ABOUTME: In-memory content store backed by go-cache with bounded capacity
// ABOUTME: Expiry is checked lazily on read and the oldest tenth is evicted when full

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"webfetch-api/core/domain"
	"webfetch-api/core/errors"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCapacity is the number of entries kept when none is configured
const DefaultCapacity = 50

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source, used by tests to step past TTLs
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store implements interfaces.ContentStore in process memory
type Store struct {
	// mu serializes eviction with inserts so size never overshoots capacity
	mu       sync.Mutex
	items    *gocache.Cache
	capacity int
	now      func() time.Time
}

// NewStore creates a store holding at most capacity entries
func NewStore(capacity int, opts ...Option) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	s := &Store{
		// Items never expire inside go-cache; entries carry their own TTL so
		// stale content stays readable through Lookup.
		items:    gocache.New(gocache.NoExpiration, 0),
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a fresh entry or errors.ErrCacheMiss
func (s *Store) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	entry, err := s.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if entry.Expired(s.now()) {
		return nil, errors.ErrCacheMiss
	}
	return entry, nil
}

// Lookup returns the entry for key whether or not it has expired
func (s *Store) Lookup(ctx context.Context, key string) (*domain.CacheEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := s.items.Get(key)
	if !ok {
		return nil, errors.ErrCacheMiss
	}
	entry := value.(domain.CacheEntry)
	return &entry, nil
}

// Put stores content under key, evicting the oldest entries first when full
func (s *Store) Put(ctx context.Context, key string, content string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items.ItemCount() >= s.capacity {
		s.evictOldest()
	}

	s.items.Set(key, domain.CacheEntry{
		Content:  content,
		StoredAt: s.now(),
		TTL:      ttl,
	}, gocache.NoExpiration)
	return nil
}

// evictOldest drops the oldest tenth of entries by storedAt. Caller holds mu.
func (s *Store) evictOldest() {
	type aged struct {
		key      string
		storedAt time.Time
	}

	all := s.items.Items()
	entries := make([]aged, 0, len(all))
	for key, item := range all {
		entry := item.Object.(domain.CacheEntry)
		entries = append(entries, aged{key: key, storedAt: entry.StoredAt})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].storedAt.Equal(entries[j].storedAt) {
			return entries[i].key < entries[j].key
		}
		return entries[i].storedAt.Before(entries[j].storedAt)
	})

	n := domain.EvictionBatch(len(entries))
	for i := 0; i < n && i < len(entries); i++ {
		s.items.Delete(entries[i].key)
	}
}

// Clear removes every entry
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Flush()
	return nil
}

// Len returns the number of stored entries, expired ones included
func (s *Store) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.items.ItemCount(), nil
}
