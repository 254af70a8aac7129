package extract

import (
	"bytes"
	"encoding/json"
	"strings"

	"webfetch-api/core/domain"
	"webfetch-api/core/errors"
	"webfetch-api/pkg/utils/html"
	timeutil "webfetch-api/pkg/utils/time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
)

// extractMetadata reads page metadata. For each field the document's own
// title/meta tags win over Open Graph, which wins over Twitter cards.
func extractMetadata(dom *goquery.Document) domain.Metadata {
	return domain.Metadata{
		Title: firstNonEmpty(
			html.CollapseWhitespace(dom.Find("title").First().Text()),
			metaContent(dom, `meta[property="og:title"]`),
			metaContent(dom, `meta[name="twitter:title"], meta[property="twitter:title"]`),
		),
		Description: firstNonEmpty(
			metaContent(dom, `meta[name="description"]`),
			metaContent(dom, `meta[property="og:description"]`),
			metaContent(dom, `meta[name="twitter:description"], meta[property="twitter:description"]`),
		),
		Image: firstNonEmpty(
			metaContent(dom, `meta[name="image"], meta[itemprop="image"]`),
			metaContent(dom, `meta[property="og:image"]`),
			metaContent(dom, `meta[name="twitter:image"], meta[name="twitter:image:src"], meta[property="twitter:image"]`),
		),
		Author: firstNonEmpty(
			metaContent(dom, `meta[name="author"]`),
			metaContent(dom, `meta[property="article:author"], meta[property="og:article:author"]`),
			metaContent(dom, `meta[name="twitter:creator"], meta[property="twitter:creator"]`),
		),
		PublishedTime: timeutil.NormalizeTimestamp(firstNonEmpty(
			metaContent(dom, `meta[name="date"], meta[name="pubdate"], meta[itemprop="datePublished"]`),
			metaContent(dom, `meta[property="article:published_time"], meta[property="og:article:published_time"]`),
		)),
	}
}

// metaContent returns the first non-empty content attribute among matches
func metaContent(dom *goquery.Document, selector string) string {
	var value string
	dom.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		value = strings.TrimSpace(s.AttrOr("content", ""))
		return value == ""
	})
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// extractHeadings returns up to limit non-empty h1-h6 headings in document order
func extractHeadings(dom *goquery.Document, limit int) []domain.Heading {
	var headings []domain.Heading
	dom.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := html.CollapseWhitespace(s.Text())
		if text == "" {
			return true
		}
		name := goquery.NodeName(s)
		headings = append(headings, domain.Heading{
			Level: int(name[1] - '0'),
			Text:  text,
		})
		return len(headings) < limit
	})
	return headings
}

// structuredData returns compacted JSON-LD blocks. Malformed blocks are
// repaired when possible and skipped otherwise.
func (e *Extractor) structuredData(dom *goquery.Document, sourceURL string) []string {
	var blocks []string
	dom.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}

		block, err := compactJSONLD(raw)
		if err != nil {
			e.debug("Skipping malformed JSON-LD", sourceURL, err)
			return
		}
		blocks = append(blocks, block)
	})
	return blocks
}

// compactJSONLD validates raw, falling back to jsonrepair for the kind of
// damage commonly seen in hand-written JSON-LD (trailing commas, single quotes)
func compactJSONLD(raw string) (string, error) {
	if !json.Valid([]byte(raw)) {
		repaired, err := jsonrepair.JSONRepair(raw)
		if err != nil {
			return "", &errors.ParseError{What: "JSON-LD", Err: err}
		}
		raw = repaired
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return "", &errors.ParseError{What: "JSON-LD", Err: err}
	}
	return buf.String(), nil
}
