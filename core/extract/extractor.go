// ABOUTME: Content extractor turning fetched documents into ExtractedContent
// ABOUTME: Runs feed parsing, selector cascade, density scoring and readability in turn

package extract

import (
	"bytes"
	"net/url"
	"strings"

	"webfetch-api/core/config"
	"webfetch-api/core/domain"
	"webfetch-api/core/errors"
	"webfetch-api/core/interfaces"
	"webfetch-api/pkg/utils/html"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// boilerplateSelector matches nodes removed before main content extraction
const boilerplateSelector = "script, style, nav, header, footer, noscript"

// maxHeadings caps how many headings are collected per page
const maxHeadings = 10

// Extractor implements interfaces.ContentExtractor
type Extractor struct {
	cfg      config.ExtractionConfig
	density  DensityOptions
	profiles []ProfileExtractor
	logger   interfaces.Logger
}

// NewExtractor creates an extractor with the GitHub profile extractor
// registered and default density thresholds
func NewExtractor(logger interfaces.Logger, opts ...config.ExtractionOption) *Extractor {
	return &Extractor{
		cfg:      config.NewExtractionConfig(opts...),
		density:  DefaultDensityOptions(),
		profiles: []ProfileExtractor{GitHubProfile{}},
		logger:   logger,
	}
}

// SetDensityOptions replaces the density scoring thresholds
func (e *Extractor) SetDensityOptions(opts DensityOptions) {
	e.density = opts
}

// RegisterProfile adds a site-specific profile extractor. Extractors are
// consulted in registration order and the first match wins.
func (e *Extractor) RegisterProfile(p ProfileExtractor) {
	e.profiles = append(e.profiles, p)
}

// Extract parses doc. It never fails: malformed input yields whatever
// partial content could be recovered.
func (e *Extractor) Extract(doc *domain.Document, sourceURL string) domain.ExtractedContent {
	var content domain.ExtractedContent
	if doc == nil || len(doc.Body) == 0 {
		return content
	}

	if e.cfg.FeedParsing && looksLikeFeed(doc) {
		if feedContent, ok := e.extractFeed(doc); ok {
			return feedContent
		}
	}

	dom, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Body))
	if err != nil {
		e.debug("Failed to parse document", sourceURL, &errors.ParseError{What: "document", Err: err})
		return content
	}

	// JSON-LD lives in script tags, so it is collected before stripping
	content.StructuredData = e.structuredData(dom, sourceURL)
	content.Meta = extractMetadata(dom)
	if e.cfg.SiteProfiles {
		content.Profile = e.siteProfile(dom, sourceURL)
	}

	dom.Find(boilerplateSelector).Remove()

	content.Headings = extractHeadings(dom, maxHeadings)
	content.MainContent = cascade(dom)
	if len(content.MainContent) == 0 {
		content.MainContent = densityBlocks(dom, e.density)
	}
	if len(content.MainContent) == 0 && e.cfg.ReadabilityFallback {
		content.MainContent = e.readable(doc, sourceURL)
	}

	return content
}

func (e *Extractor) siteProfile(dom *goquery.Document, sourceURL string) *domain.SiteProfile {
	u, err := url.Parse(sourceURL)
	if err != nil {
		e.debug("Skipping profile extraction", sourceURL, &errors.ParseError{What: "URL", Err: err})
		return nil
	}
	for _, p := range e.profiles {
		if p.Matches(u) {
			return p.Extract(dom, u)
		}
	}
	return nil
}

// readable runs go-readability over the raw document and splits its text
// into paragraphs
func (e *Extractor) readable(doc *domain.Document, sourceURL string) []string {
	pageURL, err := url.Parse(sourceURL)
	if err != nil {
		e.debug("Skipping readability fallback", sourceURL, &errors.ParseError{What: "URL", Err: err})
		return nil
	}

	article, err := readability.FromReader(bytes.NewReader(doc.Body), pageURL)
	if err != nil {
		e.debug("Readability fallback failed", sourceURL, err)
		return nil
	}

	var blocks []string
	for _, line := range strings.Split(article.TextContent, "\n") {
		text := html.CollapseWhitespace(line)
		if runeLen(text) > minBlockLength {
			blocks = append(blocks, text)
		}
	}
	return blocks
}

func (e *Extractor) debug(msg, sourceURL string, err error) {
	if e.logger == nil {
		return
	}
	e.logger.Debug(msg, map[string]interface{}{
		"url":   sourceURL,
		"error": err.Error(),
	})
}
