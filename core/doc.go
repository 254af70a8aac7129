// Package core contains the business logic for the webfetch service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure models (CacheEntry, Document, ExtractedContent) and address helpers
// - connectivity: Memoized internet reachability probe
// - extract: Content extraction and confidence scoring
// - apiadapter: Public API shortcuts for registered sites
// - retrieval: The engine tying cache, APIs and scraping together
// - tools: Named operations dispatched to the engine
// - config: Extraction options derived from feature flags
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (store, HTTP, fetcher, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Store:     store,     // implements interfaces.ContentStore
//	    Fetcher:   fetcher,   // implements interfaces.PageFetcher
//	    Extractor: extract.NewExtractor(logger),
//	    API:       apiadapter.NewAdapter(client, logger, registry, apiadapter.Options{}),
//	    Prober:    connectivity.NewProber(client, logger, connectivity.Options{}),
//	    Logger:    logger,
//	}
//
//	engine, err := retrieval.NewEngine(deps, retrieval.Options{Registry: registry})
//	if err != nil {
//	    return err
//	}
//
//	text := engine.Scrape(ctx, "example.com")
package core
