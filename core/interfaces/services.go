// ABOUTME: Service interfaces for the retrieval engine
// ABOUTME: Defines contracts for the extractor, structured API adapter and connectivity prober

package interfaces

import (
	"context"

	"webfetch-api/core/domain"
)

// ContentExtractor parses a fetched document into ExtractedContent
type ContentExtractor interface {
	Extract(doc *domain.Document, sourceURL string) domain.ExtractedContent
}

// StructuredAPI fetches content for registered domains through their
// public APIs instead of scraping HTML
type StructuredAPI interface {
	// Supports reports whether the address's domain is registered
	Supports(address string) bool

	// Fetch returns formatted content, or errors.ErrNoAPIAvailable when the
	// address has no API mapping
	Fetch(ctx context.Context, address string) (string, error)
}

// ConnectivityChecker answers whether the network is reachable
type ConnectivityChecker interface {
	Check(ctx context.Context) bool
	Reset()
}
