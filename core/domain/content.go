// ABOUTME: Domain models for documents and the structured content extracted from them
// ABOUTME: ExtractedContent is a closed shape consumed by the scorer and formatter

package domain

import "unicode/utf8"

// Document is a fetched page ready for extraction
type Document struct {
	// URL is the address the document was requested from
	URL string

	// FinalURL is the address after redirects
	FinalURL string

	// ContentType is the raw Content-Type header value
	ContentType string

	// StatusCode is the HTTP status the document was served with
	StatusCode int

	// Body holds the UTF-8 decoded document
	Body []byte
}

// Metadata holds page-level metadata gathered from title, Open Graph and
// Twitter card tags
type Metadata struct {
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image,omitempty"`
	Author        string `json:"author,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
}

// Heading is a single h1-h6 element
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Stat is a labelled counter shown on a profile page (followers, stars...)
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteProfile is the optional site-specific block for profile pages
type SiteProfile struct {
	Site        string   `json:"site"`
	Username    string   `json:"username,omitempty"`
	DisplayName string   `json:"displayName,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Stats       []Stat   `json:"stats,omitempty"`
	Pinned      []string `json:"pinned,omitempty"`
}

// ExtractedContent is the result of one extraction attempt
type ExtractedContent struct {
	// StructuredData holds JSON-LD script bodies that parsed as JSON
	StructuredData []string `json:"structuredData,omitempty"`

	// Meta holds title, description, image, author and published time
	Meta Metadata `json:"meta"`

	// MainContent is the ordered list of main text blocks
	MainContent []string `json:"mainContent,omitempty"`

	// Profile is set only when the source matched a known profile site
	Profile *SiteProfile `json:"profile,omitempty"`

	// Headings holds at most the first 10 headings of the page
	Headings []Heading `json:"headings,omitempty"`
}

// MainContentLength returns the character count of all main content blocks
// joined by a single space
func (c ExtractedContent) MainContentLength() int {
	if len(c.MainContent) == 0 {
		return 0
	}
	total := len(c.MainContent) - 1
	for _, block := range c.MainContent {
		total += utf8.RuneCountInString(block)
	}
	return total
}
