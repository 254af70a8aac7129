package interfaces

import (
	"context"
	"io"
	"net/http"

	"webfetch-api/core/domain"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// headers may be nil; they are added on top of the client defaults.
	Get(ctx context.Context, url string, headers http.Header) (Response, error)

	// Head performs an HTTP HEAD request to the specified URL.
	Head(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string

	// FinalURL returns the URL after redirects were followed.
	FinalURL() string
}

// PageFetcher retrieves a full document for extraction.
// Implementations accept any status below 400 and decode the body to UTF-8.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.Document, error)
}
