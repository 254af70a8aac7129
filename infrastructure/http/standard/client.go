// ABOUTME: Standard HTTP client with a browser-like request signature and redirect cap
// ABOUTME: Makes a single attempt per call; callers choose a fallback instead of retrying

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"webfetch-api/core/interfaces"
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds every request made by the client
	Timeout time.Duration

	// MaxRedirects is the number of redirects followed before giving up
	MaxRedirects int

	// UserAgent is sent with every request
	UserAgent string
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client from opts
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	maxRedirects := opts.MaxRedirects
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: opts.UserAgent,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers http.Header) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.setDefaultHeaders(req)
	// Caller headers replace defaults of the same name
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return c.do(req)
}

// Head performs an HTTP HEAD request
func (c *StandardHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}

	c.setDefaultHeaders(req)
	return c.do(req)
}

func (c *StandardHTTPClient) setDefaultHeaders(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
}

func (c *StandardHTTPClient) do(req *http.Request) (interfaces.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
		finalURL:   resp.Request.URL.String(),
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
	finalURL   string
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// FinalURL returns the URL of the last request in the redirect chain
func (r *httpResponse) FinalURL() string {
	return r.finalURL
}
