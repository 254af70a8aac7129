// ABOUTME: Redis content store using go-redis with a sorted-set age index
// ABOUTME: Entries are JSON documents; writes and eviction run as Lua scripts

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"webfetch-api/core/domain"
	coreerrors "webfetch-api/core/errors"
	"webfetch-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store implements interfaces.ContentStore on Redis.
// Each entry lives at <prefix>:entry:<key>; <prefix>:index is a sorted set of
// keys scored by storedAt in milliseconds.
type Store struct {
	client   *redis.Client
	prefix   string
	capacity int
	now      func() time.Time
}

// NewStore connects to Redis and returns a store holding at most capacity entries
func NewStore(cfg config.RedisConfig, capacity int, opts ...Option) (*Store, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewStoreWithClient(client, cfg.Prefix, capacity, opts...), nil
}

// NewStoreWithClient wraps an existing client
func NewStoreWithClient(client *redis.Client, prefix string, capacity int, opts ...Option) *Store {
	if prefix == "" {
		prefix = "webfetch"
	}
	if capacity < 1 {
		capacity = 50
	}
	s := &Store{
		client:   client,
		prefix:   prefix,
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) entryKey(key string) string {
	return s.prefix + ":entry:" + key
}

func (s *Store) indexKey() string {
	return s.prefix + ":index"
}

// Get returns a fresh entry or errors.ErrCacheMiss
func (s *Store) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	entry, err := s.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if entry.Expired(s.now()) {
		return nil, coreerrors.ErrCacheMiss
	}
	return entry, nil
}

// Lookup returns the entry for key whether or not it has expired
func (s *Store) Lookup(ctx context.Context, key string) (*domain.CacheEntry, error) {
	data, err := s.client.Get(ctx, s.entryKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, coreerrors.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, &coreerrors.ParseError{What: "cache entry " + key, Err: err}
	}
	return &entry, nil
}

// putScriptSource counts, evicts and inserts in one step so concurrent writers
// cannot push the index past capacity.
// KEYS: index, entry key. ARGV: encoded entry, score, member, capacity, entry prefix.
const putScriptSource = `
local size = redis.call('ZCARD', KEYS[1])
local capacity = tonumber(ARGV[4])
local evicted = 0
if size >= capacity then
	local n = math.floor((size + 9) / 10)
	if n < 1 then n = 1 end
	local victims = redis.call('ZRANGE', KEYS[1], 0, n - 1)
	for _, member in ipairs(victims) do
		redis.call('DEL', ARGV[5] .. member)
	end
	if #victims > 0 then
		redis.call('ZREM', KEYS[1], unpack(victims))
	end
	evicted = #victims
end
redis.call('SET', KEYS[2], ARGV[1])
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[3])
return evicted
`

var putScript = redis.NewScript(putScriptSource)

// clearScriptSource drops every indexed entry and the index itself.
// KEYS: index. ARGV: entry prefix.
const clearScriptSource = `
local members = redis.call('ZRANGE', KEYS[1], 0, -1)
for _, member in ipairs(members) do
	redis.call('DEL', ARGV[1] .. member)
end
redis.call('DEL', KEYS[1])
return #members
`

var clearScript = redis.NewScript(clearScriptSource)

// Put stores content under key, evicting the oldest entries first when full
func (s *Store) Put(ctx context.Context, key string, content string, ttl time.Duration) error {
	entry := domain.CacheEntry{
		Content:  content,
		StoredAt: s.now(),
		TTL:      ttl,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	// No Redis-side TTL: expired entries must stay readable through Lookup
	keys := []string{s.indexKey(), s.entryKey(key)}
	err = putScript.Run(ctx, s.client, keys,
		string(data), entry.StoredAt.UnixMilli(), key, s.capacity, s.entryKey("")).Err()
	if err != nil {
		return fmt.Errorf("redis put: %w", err)
	}
	return nil
}

// Clear removes every entry written under the prefix
func (s *Store) Clear(ctx context.Context) error {
	err := clearScript.Run(ctx, s.client, []string{s.indexKey()}, s.entryKey("")).Err()
	if err != nil {
		return fmt.Errorf("redis clear: %w", err)
	}
	return nil
}

// Len returns the number of indexed entries, expired ones included
func (s *Store) Len(ctx context.Context) (int, error) {
	size, err := s.client.ZCard(ctx, s.indexKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("redis zcard: %w", err)
	}
	return int(size), nil
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
