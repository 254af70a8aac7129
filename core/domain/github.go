// ABOUTME: GitHub profile URL recognition shared by the API adapter and page extractor
// ABOUTME: A profile is github.com/<user> where <user> is not a reserved top-level route

package domain

import (
	"net/url"
	"strings"
)

// reservedGitHubPaths are top-level routes that are not user names
var reservedGitHubPaths = map[string]bool{
	"about": true, "collections": true, "enterprise": true, "explore": true,
	"features": true, "issues": true, "login": true, "marketplace": true,
	"new": true, "notifications": true, "orgs": true, "pricing": true,
	"pulls": true, "search": true, "settings": true, "signup": true,
	"sponsors": true, "topics": true, "trending": true,
}

// GitHubUsername returns the user named by a github.com profile URL
func GitHubUsername(u *url.URL) (string, bool) {
	if u == nil || HostOf(u.String()) != "github.com" {
		return "", false
	}
	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) != 1 || reservedGitHubPaths[strings.ToLower(segments[0])] {
		return "", false
	}
	return segments[0], true
}
