// ABOUTME: Site-specific profile extractors that add a SiteProfile to generic content
// ABOUTME: GitHub user pages are built in; further sites register their own extractor

package extract

import (
	"net/url"

	"webfetch-api/core/domain"
	"webfetch-api/pkg/utils/html"

	"github.com/PuerkitoBio/goquery"
)

// ProfileExtractor pulls a profile block out of a known profile site
type ProfileExtractor interface {
	// Matches reports whether u is a profile page this extractor understands
	Matches(u *url.URL) bool

	// Extract returns the profile or nil when the page has none
	Extract(dom *goquery.Document, u *url.URL) *domain.SiteProfile
}

// GitHubProfile extracts user profiles from github.com/<user> pages
type GitHubProfile struct{}

// Matches accepts github.com paths with a single non-reserved segment
func (GitHubProfile) Matches(u *url.URL) bool {
	_, ok := domain.GitHubUsername(u)
	return ok
}

// Extract reads the vcard sidebar, follower counters and pinned repositories
func (GitHubProfile) Extract(dom *goquery.Document, u *url.URL) *domain.SiteProfile {
	username := html.CollapseWhitespace(dom.Find(".p-nickname").First().Text())
	if username == "" {
		return nil
	}

	profile := &domain.SiteProfile{
		Site:        "github",
		Username:    username,
		DisplayName: html.CollapseWhitespace(dom.Find(".p-name").First().Text()),
		Bio:         html.CollapseWhitespace(dom.Find(".p-note, [data-bio-text]").First().Text()),
	}

	for _, stat := range []struct {
		label string
		tab   string
	}{
		{"followers", "followers"},
		{"following", "following"},
		{"stars", "stars"},
		{"repositories", "repositories"},
	} {
		link := dom.Find(`a[href*="tab=` + stat.tab + `"]`).First()
		value := html.CollapseWhitespace(link.Find(".text-bold, .Counter").First().Text())
		if value != "" {
			profile.Stats = append(profile.Stats, domain.Stat{Label: stat.label, Value: value})
		}
	}

	dom.Find(".pinned-item-list-item").Each(func(_ int, s *goquery.Selection) {
		name := html.CollapseWhitespace(s.Find(".repo").First().Text())
		if name != "" {
			profile.Pinned = append(profile.Pinned, name)
		}
	})

	return profile
}
