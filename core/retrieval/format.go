package retrieval

import (
	"fmt"
	"math"
	"strings"

	"webfetch-api/core/domain"
)

const separatorWidth = 50

var separator = strings.Repeat("=", separatorWidth)

const (
	dynamicCaveat = "Note: This site loads content dynamically with JavaScript. " +
		"Some content may be missing from this extraction."
	lowConfidenceNote = "Note: Extraction confidence is low. " +
		"The page structure was not recognized and content may be incomplete."
)

// respond renders the tagged text returned to callers: a label line, the
// separator, then the body
func respond(label, body string) string {
	return label + "\n" + separator + "\n" + body
}

func cachedResponse(address, content string) string {
	return respond(fmt.Sprintf("Cached content from %s:", address), content)
}

func staleResponse(address, content string) string {
	return respond(fmt.Sprintf("Cached content from %s (served during timeout):", address), content)
}

func apiResponse(address, content string) string {
	return respond(fmt.Sprintf("API content from %s:", address), content)
}

func scrapedResponse(address string, confidence float64, content string) string {
	return respond(fmt.Sprintf("Scraped content from %s (confidence: %d%%):", address, percent(confidence)), content)
}

func dynamicResponse(address, content string) string {
	return respond(fmt.Sprintf("Scraped content from %s (dynamic site):", address), content)
}

func errorResponse(address string, err error) string {
	return respond(fmt.Sprintf("Error scraping %s:", address), err.Error())
}

func percent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

// render turns extracted content into the plain text that gets cached
func render(c domain.ExtractedContent) string {
	var sections []string

	var meta []string
	addLine(&meta, "Title", c.Meta.Title)
	addLine(&meta, "Description", c.Meta.Description)
	addLine(&meta, "Author", c.Meta.Author)
	addLine(&meta, "Published", c.Meta.PublishedTime)
	addLine(&meta, "Image", c.Meta.Image)
	if len(meta) > 0 {
		sections = append(sections, strings.Join(meta, "\n"))
	}

	if p := c.Profile; p != nil {
		sections = append(sections, renderProfile(p))
	}

	if len(c.Headings) > 0 {
		lines := []string{"Headings:"}
		for _, h := range c.Headings {
			lines = append(lines, fmt.Sprintf("%s %s", strings.Repeat("#", h.Level), h.Text))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(c.MainContent) > 0 {
		sections = append(sections, "Content:\n"+strings.Join(c.MainContent, "\n\n"))
	}

	if len(c.StructuredData) > 0 {
		sections = append(sections, "Structured data:\n"+strings.Join(c.StructuredData, "\n"))
	}

	if len(sections) == 0 {
		return "No readable content was found on this page."
	}
	return strings.Join(sections, "\n\n")
}

func renderProfile(p *domain.SiteProfile) string {
	lines := []string{fmt.Sprintf("Profile (%s):", p.Site)}
	addLine(&lines, "Username", p.Username)
	addLine(&lines, "Name", p.DisplayName)
	addLine(&lines, "Bio", p.Bio)
	for _, s := range p.Stats {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Label, s.Value))
	}
	if len(p.Pinned) > 0 {
		lines = append(lines, "Pinned: "+strings.Join(p.Pinned, ", "))
	}
	return strings.Join(lines, "\n")
}

func addLine(lines *[]string, label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*lines = append(*lines, label+": "+value)
	}
}
