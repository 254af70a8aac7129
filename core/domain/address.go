// ABOUTME: Address normalization and cache key derivation for retrieval requests
// ABOUTME: Keeps query-string variants of a page on a single cache entry

package domain

import (
	"net/url"
	"strings"
)

// NormalizeAddress prefixes https:// when the address has no scheme.
// Applying it twice yields the same result as applying it once.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return address
	}
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address
	}
	if i := strings.Index(address, "://"); i > 0 && !strings.ContainsAny(address[:i], "/.?#") {
		return address
	}
	return "https://" + address
}

// CacheKeyFor derives the cache key for a normalized address.
//
// Paths containing /api/ keep the full address so API variants stay
// distinct; everything else collapses to host + path, dropping the query
// and fragment.
func CacheKeyFor(normalized string) string {
	u, err := url.Parse(normalized)
	if err != nil || u.Host == "" {
		return normalized
	}
	if strings.Contains(u.Path, "/api/") {
		return normalized
	}
	return u.Hostname() + u.Path
}

// HostOf returns the lower-cased hostname of an address without a leading
// "www.", or "" when the address cannot be parsed.
func HostOf(address string) string {
	u, err := url.Parse(address)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// PathOf returns the path component of an address, or "" on parse failure.
func PathOf(address string) string {
	u, err := url.Parse(address)
	if err != nil {
		return ""
	}
	return u.Path
}
