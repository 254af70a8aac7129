package extract

import (
	"bytes"
	"fmt"
	"strings"

	"webfetch-api/core/domain"
	"webfetch-api/pkg/utils/html"
	timeutil "webfetch-api/pkg/utils/time"

	"github.com/mmcdole/gofeed"
)

// maxFeedItems caps how many feed entries become main content
const maxFeedItems = 10

// looksLikeFeed sniffs the content type and the start of the body for
// RSS, Atom or RDF markers
func looksLikeFeed(doc *domain.Document) bool {
	ct := strings.ToLower(doc.ContentType)
	if strings.Contains(ct, "rss") || strings.Contains(ct, "atom") {
		return true
	}
	if strings.Contains(ct, "html") {
		return false
	}

	head := doc.Body
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.ToLower(head)
	return bytes.Contains(head, []byte("<rss")) ||
		bytes.Contains(head, []byte("<feed")) ||
		bytes.Contains(head, []byte("<rdf:rdf"))
}

// extractFeed parses doc as a feed. ok is false when gofeed rejects it so
// the caller can fall back to HTML extraction.
func (e *Extractor) extractFeed(doc *domain.Document) (domain.ExtractedContent, bool) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(doc.Body))
	if err != nil {
		e.debug("Document is not a parseable feed", doc.URL, err)
		return domain.ExtractedContent{}, false
	}

	content := domain.ExtractedContent{
		Meta: domain.Metadata{
			Title:       html.CollapseWhitespace(feed.Title),
			Description: html.StripHTML(feed.Description),
		},
	}
	if feed.Image != nil {
		content.Meta.Image = feed.Image.URL
	}
	if len(feed.Authors) > 0 && feed.Authors[0] != nil {
		content.Meta.Author = feed.Authors[0].Name
	}
	content.Meta.PublishedTime = timeutil.NormalizeTimestamp(firstNonEmpty(feed.Published, feed.Updated))

	for i, item := range feed.Items {
		if i >= maxFeedItems {
			break
		}
		title := html.CollapseWhitespace(item.Title)
		if title != "" && len(content.Headings) < maxHeadings {
			content.Headings = append(content.Headings, domain.Heading{Level: 2, Text: title})
		}

		block := feedItemText(item)
		if block != "" {
			content.MainContent = append(content.MainContent, block)
		}
	}

	return content, true
}

// feedItemText renders one entry as "title: summary (link)"
func feedItemText(item *gofeed.Item) string {
	title := html.CollapseWhitespace(item.Title)
	summary := html.StripHTML(firstNonEmpty(item.Description, item.Content))
	if len([]rune(summary)) > 300 {
		summary = string([]rune(summary)[:300]) + "..."
	}

	var text string
	switch {
	case title != "" && summary != "":
		text = title + ": " + summary
	case title != "":
		text = title
	default:
		text = summary
	}

	if text != "" && item.Link != "" {
		text = fmt.Sprintf("%s (%s)", text, item.Link)
	}
	return text
}
