// ABOUTME: Content-aware TTL policy for cached retrieval results
// ABOUTME: Fast-changing pages expire sooner; dynamic sites are capped regardless of policy

package retrieval

import (
	"strings"
	"time"

	"webfetch-api/core/domain"
	"webfetch-api/pkg/config"
)

// TTL tiers, evaluated in order by TTLFor
const (
	FeedTTL       = 300 * time.Second
	ProfileTTL    = 1800 * time.Second
	NewsTTL       = 600 * time.Second
	DefaultTTL    = 3600 * time.Second
	DynamicTTLCap = 600 * time.Second
)

// TTLFor returns how long content retrieved from address stays fresh.
// First match wins: feed or timeline paths, profile hosts, news hosts and
// aggregators, then the default.
func TTLFor(address string, registry config.Registry) time.Duration {
	path := strings.ToLower(domain.PathOf(address))
	host := domain.HostOf(address)

	switch {
	case strings.Contains(path, "feed") || strings.Contains(path, "timeline"):
		return FeedTTL
	case registry.IsProfileSite(host):
		return ProfileTTL
	case strings.Contains(host, "news") || registry.IsAggregator(host):
		return NewsTTL
	default:
		return DefaultTTL
	}
}

// DynamicTTL caps the policy TTL for JavaScript-rendered sites
func DynamicTTL(address string, registry config.Registry) time.Duration {
	return min(TTLFor(address, registry), DynamicTTLCap)
}
