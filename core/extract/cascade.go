package extract

import (
	"unicode/utf8"

	"webfetch-api/pkg/utils/html"

	"github.com/PuerkitoBio/goquery"
)

// mainContentSelectors are tried in order; the first with a qualifying
// element wins
var mainContentSelectors = []string{
	"article",
	"main",
	"[role='main']",
	".post-content",
	".entry-content",
	".article-content",
	".article-body",
	".markdown-body",
	".content",
	"#content",
	".post",
	"#main",
}

const (
	// minContainerLength is the trimmed text a cascade winner must exceed
	minContainerLength = 100

	// minBlockLength is the text a descendant block must exceed to be kept
	minBlockLength = 20
)

// blockDescendants are the elements collected from a cascade winner
const blockDescendants = "p, h1, h2, h3, h4, h5, h6, li"

// cascade returns the text blocks of the first qualifying main-content
// container, or nil when no selector qualifies
func cascade(dom *goquery.Document) []string {
	for _, selector := range mainContentSelectors {
		var winner *goquery.Selection
		dom.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if runeLen(html.CollapseWhitespace(s.Text())) > minContainerLength {
				winner = s
				return false
			}
			return true
		})
		if winner != nil {
			return containerBlocks(winner)
		}
	}
	return nil
}

// containerBlocks collects paragraph, heading and list item text. A
// container without such descendants contributes its own text.
func containerBlocks(container *goquery.Selection) []string {
	var blocks []string
	seen := make(map[string]bool)

	container.Find(blockDescendants).Each(func(_ int, s *goquery.Selection) {
		text := html.CollapseWhitespace(s.Text())
		if runeLen(text) <= minBlockLength || seen[text] {
			return
		}
		seen[text] = true
		blocks = append(blocks, text)
	})

	if len(blocks) == 0 {
		blocks = append(blocks, html.CollapseWhitespace(container.Text()))
	}
	return blocks
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
