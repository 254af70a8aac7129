// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the retrieval engine

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Store holds previously retrieved content
	Store ContentStore

	// Fetcher retrieves documents for extraction
	Fetcher PageFetcher

	// Extractor turns fetched documents into ExtractedContent
	Extractor ContentExtractor

	// API serves registered domains from their public APIs. Optional.
	API StructuredAPI

	// Prober answers check_internet
	Prober ConnectivityChecker

	// Logger provides structured logging
	Logger Logger
}
