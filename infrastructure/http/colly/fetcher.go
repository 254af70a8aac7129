// ABOUTME: Alternative page fetcher built on a colly collector
// ABOUTME: Selected with FETCHER_TYPE=colly; shares status and error rules with the standard fetcher

package colly

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"webfetch-api/core/domain"
	"webfetch-api/core/errors"

	"github.com/gocolly/colly"
)

// Options configures a PageFetcher
type Options struct {
	Timeout      time.Duration
	MaxRedirects int
	MaxBodyBytes int64
	UserAgent    string
}

// PageFetcher implements interfaces.PageFetcher with a fresh collector per fetch
type PageFetcher struct {
	opts Options
}

// NewPageFetcher creates a colly-backed fetcher
func NewPageFetcher(opts Options) *PageFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 5 * 1024 * 1024
	}
	return &PageFetcher{opts: opts}
}

// Fetch visits url once. The collector has no context support, so the
// request timeout is derived from the context deadline when it is sooner.
func (f *PageFetcher) Fetch(ctx context.Context, url string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Classify(url, err)
	}

	timeout := f.opts.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	c := colly.NewCollector(
		colly.UserAgent(f.opts.UserAgent),
		colly.MaxBodySize(int(f.opts.MaxBodyBytes)),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(timeout)
	c.ParseHTTPErrorResponse = true
	c.DetectCharset = true

	maxRedirects := f.opts.MaxRedirects
	c.RedirectHandler = func(req *http.Request, via []*http.Request) error {
		if len(via) > maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.5")
	})

	var doc *domain.Document
	var statusErr error
	c.OnResponse(func(r *colly.Response) {
		if r.StatusCode >= 400 {
			statusErr = &errors.HTTPStatusError{URL: url, StatusCode: r.StatusCode}
			return
		}
		doc = &domain.Document{
			URL:         url,
			FinalURL:    r.Request.URL.String(),
			ContentType: r.Headers.Get("Content-Type"),
			StatusCode:  r.StatusCode,
			Body:        r.Body,
		}
	})

	if err := c.Visit(url); err != nil {
		return nil, errors.Classify(url, err)
	}
	if statusErr != nil {
		return nil, statusErr
	}
	if doc == nil {
		return nil, fmt.Errorf("no response received from %s", url)
	}
	return doc, nil
}
