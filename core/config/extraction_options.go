// ABOUTME: Extraction configuration for service-level control of optional strategies
// ABOUTME: Provides functional options independent of the feature flag backend

package config

import (
	"context"

	"webfetch-api/pkg/featureflags"
)

// ExtractionConfig controls which optional extraction strategies run
type ExtractionConfig struct {
	// ReadabilityFallback runs go-readability when the cascade and density
	// passes found no main content
	ReadabilityFallback bool

	// FeedParsing treats RSS/Atom documents as feeds
	FeedParsing bool

	// SiteProfiles runs site-specific profile extractors
	SiteProfiles bool
}

// DefaultExtractionConfig returns the default configuration with all strategies enabled
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		ReadabilityFallback: true,
		FeedParsing:         true,
		SiteProfiles:        true,
	}
}

// ExtractionOption is a functional option for configuring extraction
type ExtractionOption func(*ExtractionConfig)

// WithReadability enables or disables the readability fallback
func WithReadability(enabled bool) ExtractionOption {
	return func(c *ExtractionConfig) {
		c.ReadabilityFallback = enabled
	}
}

// WithFeeds enables or disables feed parsing
func WithFeeds(enabled bool) ExtractionOption {
	return func(c *ExtractionConfig) {
		c.FeedParsing = enabled
	}
}

// WithProfiles enables or disables site profile extraction
func WithProfiles(enabled bool) ExtractionOption {
	return func(c *ExtractionConfig) {
		c.SiteProfiles = enabled
	}
}

// FromFlags maps feature flags onto extraction options
func FromFlags(ctx context.Context, flags featureflags.Manager) []ExtractionOption {
	return []ExtractionOption{
		WithReadability(flags.IsEnabled(ctx, featureflags.ReadabilityFallback)),
		WithFeeds(flags.IsEnabled(ctx, featureflags.FeedParsing)),
		WithProfiles(flags.IsEnabled(ctx, featureflags.SiteProfiles)),
	}
}

// NewExtractionConfig creates a new extraction configuration with the given options
func NewExtractionConfig(opts ...ExtractionOption) ExtractionConfig {
	config := DefaultExtractionConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
