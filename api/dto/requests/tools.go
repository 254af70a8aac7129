// ABOUTME: Request DTOs for tool invocation endpoints
// ABOUTME: Huma validates these from struct tags before handlers run

package requests

// CallToolRequest is the body of POST /tools/{name}
type CallToolRequest struct {
	// Arguments are passed to the operation unchanged
	Arguments map[string]any `json:"arguments,omitempty" doc:"Operation arguments, e.g. {\"url\": \"example.com\"}"`
}

// ScrapeRequest is the body of POST /scrape
type ScrapeRequest struct {
	URL string `json:"url" minLength:"1" maxLength:"2048" doc:"Address to retrieve; https:// is assumed when no scheme is given"`
}
