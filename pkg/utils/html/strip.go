// ABOUTME: HTML utilities for turning markup fragments into plain text
// ABOUTME: Used for feed item descriptions and text normalization during extraction

package html

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// StripHTML parses an HTML fragment and returns its visible text with
// whitespace collapsed. Script and style content is dropped.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return CollapseWhitespace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CollapseWhitespace(fragment)
	}
	doc.Find("script, style").Remove()

	return CollapseWhitespace(doc.Text())
}

// CollapseWhitespace trims s and replaces every whitespace run with one space
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
