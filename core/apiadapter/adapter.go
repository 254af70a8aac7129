// ABOUTME: Structured-API adapter serving registered domains from their public APIs
// ABOUTME: Routes addresses to site handlers; unmapped paths report ErrNoAPIAvailable

package apiadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"webfetch-api/core/domain"
	"webfetch-api/core/errors"
	"webfetch-api/core/interfaces"
	"webfetch-api/pkg/config"
)

// DefaultTimeout bounds each API sub-request
const DefaultTimeout = 5 * time.Second

// Options configures an Adapter
type Options struct {
	GitHubBaseURL     string
	HackerNewsBaseURL string

	// StoryCount is how many ranked items are fetched from listings
	StoryCount int

	// Timeout bounds each sub-request independently of the caller's deadline
	Timeout time.Duration
}

// siteHandler serves the API-backed paths of one site
type siteHandler interface {
	matches(u *url.URL) bool
	fetch(ctx context.Context, u *url.URL) (string, error)
}

// Adapter implements interfaces.StructuredAPI
type Adapter struct {
	client   interfaces.HTTPClient
	logger   interfaces.Logger
	registry config.Registry
	timeout  time.Duration
	handlers []siteHandler
}

// NewAdapter creates an adapter for the API sites listed in registry
func NewAdapter(client interfaces.HTTPClient, logger interfaces.Logger, registry config.Registry, opts Options) *Adapter {
	if opts.GitHubBaseURL == "" {
		opts.GitHubBaseURL = "https://api.github.com"
	}
	if opts.HackerNewsBaseURL == "" {
		opts.HackerNewsBaseURL = "https://hacker-news.firebaseio.com/v0"
	}
	if opts.StoryCount <= 0 {
		opts.StoryCount = 10
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	a := &Adapter{
		client:   client,
		logger:   logger,
		registry: registry,
		timeout:  opts.Timeout,
	}
	a.handlers = []siteHandler{
		&gitHubHandler{api: a, baseURL: opts.GitHubBaseURL},
		&hackerNewsHandler{api: a, baseURL: opts.HackerNewsBaseURL, count: opts.StoryCount},
	}
	return a
}

// Supports reports whether the address's domain is registered for API access
func (a *Adapter) Supports(address string) bool {
	return a.registry.HasAPI(domain.HostOf(address))
}

// Fetch returns formatted content for address or errors.ErrNoAPIAvailable
// when no handler maps it
func (a *Adapter) Fetch(ctx context.Context, address string) (string, error) {
	if !a.Supports(address) {
		return "", errors.ErrNoAPIAvailable
	}

	u, err := url.Parse(address)
	if err != nil {
		return "", &errors.ParseError{What: "URL", Err: err}
	}

	for _, h := range a.handlers {
		if h.matches(u) {
			return h.fetch(ctx, u)
		}
	}
	return "", errors.WrapError(errors.ErrNoAPIAvailable, u.Host+u.Path)
}

// getJSON performs one sub-request with its own timeout and decodes the
// response into v
func (a *Adapter) getJSON(ctx context.Context, apiName, endpoint string, headers http.Header, v interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.Get(ctx, endpoint, headers)
	if err != nil {
		return errors.Classify(endpoint, err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        apiName,
		}
	}

	if err := json.NewDecoder(resp.Body()).Decode(v); err != nil {
		return &errors.ParseError{What: fmt.Sprintf("%s response", apiName), Err: err}
	}
	return nil
}

func (a *Adapter) warn(msg string, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Warn(msg, fields)
	}
}
