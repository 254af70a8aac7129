// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: Bounded in-memory store backed by patrickmn/go-cache
// - cache/redis: Redis store using a sorted set as the age index
// - cache/sqlite: Persistent SQLite store
// - http/standard: net/http client and page fetcher with charset decoding
// - http/colly: Page fetcher built on gocolly/colly
// - logger/logrus: Structured logger backed by logrus
//
// # Stores
//
// Every store keeps entries until they are overwritten, evicted or cleared.
// Expiry is checked lazily on Get; Lookup returns expired entries too so
// the engine can serve stale content when a fetch times out. A Put on a full
// store first evicts the oldest tenth of entries.
//
//	store := memory.NewStore(memory.DefaultCapacity)
//	err := store.Put(ctx, "example.com/post", text, time.Hour)
//	entry, err := store.Get(ctx, "example.com/post")
//
//	store, err := redis.NewStore(cfg.Cache.Redis, cfg.Cache.Capacity)
//
//	store, err := sqlite.NewStore("webfetch-cache.db", 50, sqlite.WithLogger(logger))
//
// # Fetchers
//
// Page fetchers follow up to five redirects, accept any status below 400
// and return UTF-8 bodies. They never retry.
//
//	client := standard.NewStandardHTTPClient(standard.Options{Timeout: 10 * time.Second})
//	fetcher := standard.NewPageFetcher(client, 0)
//	doc, err := fetcher.Fetch(ctx, "https://example.com")
package infrastructure
