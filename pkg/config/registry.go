// ABOUTME: Domain classification tables used by the retrieval engine
// ABOUTME: Loaded from defaults or a TOML file so lists change without touching control flow

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Registry classifies domains for strategy selection and TTL policy
type Registry struct {
	// ProfileSites host user profiles (1800s TTL, profile extraction)
	ProfileSites []string `toml:"profile_sites"`

	// AggregatorSites are discussion aggregators (600s TTL)
	AggregatorSites []string `toml:"aggregator_sites"`

	// APISites are served by the structured API adapter
	APISites []string `toml:"api_sites"`

	// BasicScrapeSites are known to extract well with plain HTML scraping
	BasicScrapeSites []string `toml:"basic_scrape_sites"`

	// DynamicSites render most content with JavaScript
	DynamicSites []string `toml:"dynamic_sites"`
}

// DefaultRegistry returns the built-in domain tables
func DefaultRegistry() Registry {
	return Registry{
		ProfileSites:    []string{"github.com"},
		AggregatorSites: []string{"news.ycombinator.com", "reddit.com", "lobste.rs"},
		APISites:        []string{"github.com", "news.ycombinator.com"},
		BasicScrapeSites: []string{
			"wikipedia.org",
			"stackoverflow.com",
			"developer.mozilla.org",
			"docs.python.org",
			"go.dev",
			"pkg.go.dev",
			"github.com",
			"news.ycombinator.com",
		},
		DynamicSites: []string{
			"twitter.com",
			"x.com",
			"instagram.com",
			"facebook.com",
			"linkedin.com",
			"tiktok.com",
			"threads.net",
		},
	}
}

// LoadRegistry reads a TOML registry file. Lists missing from the file keep
// their defaults.
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("failed to read registry file: %w", err)
	}

	var fromFile Registry
	if err := toml.Unmarshal(data, &fromFile); err != nil {
		return Registry{}, fmt.Errorf("failed to parse registry file: %w", err)
	}

	registry := DefaultRegistry()
	if fromFile.ProfileSites != nil {
		registry.ProfileSites = fromFile.ProfileSites
	}
	if fromFile.AggregatorSites != nil {
		registry.AggregatorSites = fromFile.AggregatorSites
	}
	if fromFile.APISites != nil {
		registry.APISites = fromFile.APISites
	}
	if fromFile.BasicScrapeSites != nil {
		registry.BasicScrapeSites = fromFile.BasicScrapeSites
	}
	if fromFile.DynamicSites != nil {
		registry.DynamicSites = fromFile.DynamicSites
	}
	return registry, nil
}

// IsProfileSite reports whether host is a profile-hosting domain
func (r Registry) IsProfileSite(host string) bool {
	return MatchesDomain(host, r.ProfileSites)
}

// IsAggregator reports whether host is a known discussion aggregator
func (r Registry) IsAggregator(host string) bool {
	return MatchesDomain(host, r.AggregatorSites)
}

// HasAPI reports whether host is served by the structured API adapter
func (r Registry) HasAPI(host string) bool {
	return MatchesDomain(host, r.APISites)
}

// IsBasicScrape reports whether host is on the basic-scrape allow-list
func (r Registry) IsBasicScrape(host string) bool {
	return MatchesDomain(host, r.BasicScrapeSites)
}

// IsDynamic reports whether host is a known JavaScript-rendered site
func (r Registry) IsDynamic(host string) bool {
	return MatchesDomain(host, r.DynamicSites)
}

// MatchesDomain reports whether host equals one of domains or is a
// subdomain of one. A leading "www." on host is ignored.
func MatchesDomain(host string, domains []string) bool {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if host == "" {
		return false
	}
	for _, d := range domains {
		d = strings.TrimPrefix(strings.ToLower(d), "www.")
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
