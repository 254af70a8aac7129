// ABOUTME: Density scoring fallback for pages without a recognised content container
// ABOUTME: Ranks block elements by word count, link density and punctuation density

package extract

import (
	"sort"
	"strings"

	"webfetch-api/pkg/utils/html"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// DensityOptions holds the thresholds of the density scoring pass
type DensityOptions struct {
	// MinTextLength is the shortest own text a block may have to be scored
	MinTextLength int

	// MinWords must be exceeded to earn the word count point
	MinWords int

	// MaxLinkDensity must not be reached to earn the link point
	MaxLinkDensity float64

	// MinPunctuationDensity must be exceeded to earn the punctuation point
	MinPunctuationDensity float64

	// MinScore is the lowest score a block needs to be kept
	MinScore int

	// MaxBlocks caps how many blocks are returned
	MaxBlocks int
}

// DefaultDensityOptions returns the standard thresholds
func DefaultDensityOptions() DensityOptions {
	return DensityOptions{
		MinTextLength:         50,
		MinWords:              10,
		MaxLinkDensity:        0.3,
		MinPunctuationDensity: 0.5,
		MinScore:              2,
		MaxBlocks:             10,
	}
}

// densityCandidates are the block-level elements considered
const densityCandidates = "p, div, section, article, td, blockquote, pre, li, dd"

// inlineElements contribute their text to the enclosing block's own text
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "dfn": true, "em": true,
	"font": true, "i": true, "kbd": true, "label": true, "mark": true,
	"q": true, "s": true, "samp": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "time": true, "u": true,
	"var": true, "wbr": true,
}

type scoredBlock struct {
	text  string
	score int
}

// BlockMetrics are the measurements scored for a single block
type BlockMetrics struct {
	TextLength         int
	WordCount          int
	LinkDensity        float64
	PunctuationDensity float64
}

// Score awards one point per satisfied threshold
func (m BlockMetrics) Score(opts DensityOptions) int {
	score := 0
	if m.WordCount > opts.MinWords {
		score++
	}
	if m.LinkDensity < opts.MaxLinkDensity {
		score++
	}
	if m.PunctuationDensity > opts.MinPunctuationDensity {
		score++
	}
	return score
}

// Measure computes the metrics of a block whose text contains anchors links
func Measure(text string, anchors int) BlockMetrics {
	length := runeLen(text)
	m := BlockMetrics{
		TextLength: length,
		WordCount:  len(strings.Fields(text)),
	}
	if length == 0 {
		return m
	}

	per100 := float64(length) / 100
	m.LinkDensity = float64(anchors) / per100
	m.PunctuationDensity = float64(strings.Count(text, ".")+strings.Count(text, "!")+strings.Count(text, "?")) / per100
	return m
}

// densityBlocks scores candidate blocks and returns the best ones ordered by
// score then length, both descending
func densityBlocks(dom *goquery.Document, opts DensityOptions) []string {
	var retained []scoredBlock

	dom.Find(densityCandidates).Each(func(_ int, s *goquery.Selection) {
		text := ownText(s)
		if runeLen(text) < opts.MinTextLength {
			return
		}

		metrics := Measure(text, s.Find("a").Length())
		if score := metrics.Score(opts); score >= opts.MinScore {
			retained = append(retained, scoredBlock{text: text, score: score})
		}
	})

	sort.SliceStable(retained, func(i, j int) bool {
		if retained[i].score != retained[j].score {
			return retained[i].score > retained[j].score
		}
		return runeLen(retained[i].text) > runeLen(retained[j].text)
	})

	limit := opts.MaxBlocks
	if limit <= 0 || limit > len(retained) {
		limit = len(retained)
	}

	blocks := make([]string, 0, limit)
	for _, b := range retained[:limit] {
		blocks = append(blocks, b.text)
	}
	return blocks
}

// ownText returns the text of s excluding nested block-level elements
func ownText(s *goquery.Selection) string {
	var sb strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		node := c.Get(0)
		switch {
		case node.Type == xhtml.TextNode:
			sb.WriteString(node.Data)
		case node.Type == xhtml.ElementNode && node.Data == "br":
			sb.WriteString(" ")
		case node.Type == xhtml.ElementNode && inlineElements[node.Data]:
			sb.WriteString(c.Text())
		}
	})
	return html.CollapseWhitespace(sb.String())
}
