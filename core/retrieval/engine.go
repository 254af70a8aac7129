// ABOUTME: Retrieval engine choosing between cache, structured APIs and page scraping
// ABOUTME: Every retrieval resolves to tagged text; failures are rendered, never returned

package retrieval

import (
	"context"
	"errors"
	"sync"
	"time"

	"webfetch-api/core/domain"
	coreerrors "webfetch-api/core/errors"
	"webfetch-api/core/extract"
	"webfetch-api/core/interfaces"
	"webfetch-api/pkg/config"
)

// DefaultPageTimeout bounds a full document fetch
const DefaultPageTimeout = 10 * time.Second

// ConfidenceThreshold is the score above which a scrape is trusted
const ConfidenceThreshold = 0.5

// Options configures an Engine
type Options struct {
	// Registry classifies domains for strategy selection and TTL policy
	Registry config.Registry

	// PageTimeout bounds each document fetch
	PageTimeout time.Duration
}

// Engine answers check_internet, scrape_website and reset_cache.
// It is safe for concurrent use; ResetCache waits for in-flight retrievals
// and blocks new ones until both the store and the prober are cleared.
type Engine struct {
	mu       sync.RWMutex
	deps     interfaces.Dependencies
	registry config.Registry
	timeout  time.Duration
}

// NewEngine creates an engine. deps.Store, deps.Fetcher, deps.Extractor and
// deps.Prober are required; deps.API and deps.Logger are optional.
func NewEngine(deps interfaces.Dependencies, opts Options) (*Engine, error) {
	switch {
	case deps.Store == nil:
		return nil, errors.New("retrieval engine requires a content store")
	case deps.Fetcher == nil:
		return nil, errors.New("retrieval engine requires a page fetcher")
	case deps.Extractor == nil:
		return nil, errors.New("retrieval engine requires an extractor")
	case deps.Prober == nil:
		return nil, errors.New("retrieval engine requires a connectivity prober")
	}

	if opts.PageTimeout <= 0 {
		opts.PageTimeout = DefaultPageTimeout
	}

	return &Engine{
		deps:     deps,
		registry: opts.Registry,
		timeout:  opts.PageTimeout,
	}, nil
}

// CheckInternet reports reachability as "Internet: Connected" or
// "Internet: Offline"
func (e *Engine) CheckInternet(ctx context.Context) string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.deps.Prober.Check(ctx) {
		return "Internet: Connected"
	}
	return "Internet: Offline"
}

// ResetCache clears every cached entry and the memoized connectivity state
func (e *Engine) ResetCache(ctx context.Context) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.deps.Store.Clear(ctx); err != nil {
		e.log().Error("Failed to clear cache", map[string]interface{}{
			"error": err.Error(),
		})
		return "Error clearing cache: " + err.Error()
	}
	e.deps.Prober.Reset()

	e.log().Info("Cache cleared", nil)
	return "Cache cleared successfully."
}

// Scrape retrieves address and returns tagged text. It never fails: network
// errors come back as "Error scraping" text, or as stale cached content when
// the fetch timed out.
func (e *Engine) Scrape(ctx context.Context, address string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	address = domain.NormalizeAddress(address)
	if address == "" {
		return errorResponse(address, &coreerrors.ValidationError{Field: "url", Message: "url is required"})
	}
	key := domain.CacheKeyFor(address)
	host := domain.HostOf(address)

	if entry, ok := e.cached(ctx, key); ok {
		e.log().Info("Cache hit", map[string]interface{}{
			"url": address,
			"key": key,
		})
		return cachedResponse(address, entry.Content)
	}

	if e.deps.API != nil && e.deps.API.Supports(address) {
		content, err := e.deps.API.Fetch(ctx, address)
		if err == nil {
			e.store(ctx, key, content, TTLFor(address, e.registry))
			return apiResponse(address, content)
		}
		fields := map[string]interface{}{
			"url":   address,
			"error": err.Error(),
		}
		if coreerrors.IsNoAPIAvailable(err) {
			e.log().Debug("No API mapping, scraping instead", fields)
		} else {
			e.log().Warn("API fetch failed, falling back to scraping", fields)
		}
	}

	doc, err := e.fetch(ctx, address)
	if err != nil {
		return e.fetchFailed(ctx, address, key, err)
	}

	content := e.deps.Extractor.Extract(doc, address)
	confidence := extract.Score(content)
	text := render(content)

	e.log().Debug("Extracted content", map[string]interface{}{
		"url":        address,
		"confidence": confidence,
		"blocks":     len(content.MainContent),
	})

	switch {
	case confidence > ConfidenceThreshold || e.registry.IsBasicScrape(host):
		e.store(ctx, key, text, TTLFor(address, e.registry))
		return scrapedResponse(address, confidence, text)

	case e.registry.IsDynamic(host):
		text += "\n\n" + dynamicCaveat
		e.store(ctx, key, text, DynamicTTL(address, e.registry))
		return dynamicResponse(address, text)

	default:
		// low-confidence results are still cached under the normal policy
		text += "\n\n" + lowConfidenceNote
		e.store(ctx, key, text, TTLFor(address, e.registry))
		return scrapedResponse(address, confidence, text)
	}
}

func (e *Engine) fetch(ctx context.Context, address string) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.deps.Fetcher.Fetch(ctx, address)
}

// fetchFailed serves any stored entry, even an expired one, when the fetch
// timed out; every other failure is rendered as error text
func (e *Engine) fetchFailed(ctx context.Context, address, key string, err error) string {
	if coreerrors.IsTimeout(err) {
		if entry, lookupErr := e.deps.Store.Lookup(ctx, key); lookupErr == nil {
			e.log().Warn("Fetch timed out, serving cached content", map[string]interface{}{
				"url":       address,
				"stored_at": entry.StoredAt,
			})
			return staleResponse(address, entry.Content)
		}
	}

	e.log().Error("Failed to scrape", map[string]interface{}{
		"url":   address,
		"error": err.Error(),
	})
	return errorResponse(address, err)
}

func (e *Engine) cached(ctx context.Context, key string) (*domain.CacheEntry, bool) {
	entry, err := e.deps.Store.Get(ctx, key)
	if err == nil {
		return entry, true
	}
	if !coreerrors.IsCacheMiss(err) {
		e.log().Warn("Cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return nil, false
}

func (e *Engine) store(ctx context.Context, key, content string, ttl time.Duration) {
	if err := e.deps.Store.Put(ctx, key, content, ttl); err != nil {
		e.log().Warn("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	e.log().Debug("Cached content", map[string]interface{}{
		"key": key,
		"ttl": ttl.String(),
	})
}

func (e *Engine) log() interfaces.Logger {
	if e.deps.Logger == nil {
		return nopLogger{}
	}
	return e.deps.Logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
