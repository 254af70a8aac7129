// ABOUTME: Page fetcher that downloads documents for extraction over the standard client
// ABOUTME: Accepts any status below 400, caps the body size and decodes it to UTF-8

package standard

import (
	"context"
	"fmt"
	"io"

	"webfetch-api/core/domain"
	"webfetch-api/core/errors"
	"webfetch-api/core/interfaces"

	"golang.org/x/net/html/charset"
)

// PageFetcher implements interfaces.PageFetcher on top of an HTTPClient
type PageFetcher struct {
	client       interfaces.HTTPClient
	maxBodyBytes int64
}

// NewPageFetcher creates a fetcher reading at most maxBodyBytes per document
func NewPageFetcher(client interfaces.HTTPClient, maxBodyBytes int64) *PageFetcher {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 5 * 1024 * 1024
	}
	return &PageFetcher{
		client:       client,
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch downloads url. Transport failures are classified as timeouts or
// unreachable networks so the caller can pick a fallback.
func (f *PageFetcher) Fetch(ctx context.Context, url string) (*domain.Document, error) {
	resp, err := f.client.Get(ctx, url, nil)
	if err != nil {
		return nil, errors.Classify(url, err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() >= 400 {
		return nil, &errors.HTTPStatusError{URL: url, StatusCode: resp.StatusCode()}
	}

	contentType := resp.Header("Content-Type")
	reader, err := charset.NewReader(io.LimitReader(resp.Body(), f.maxBodyBytes), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", url, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Classify(url, err)
	}

	finalURL := resp.FinalURL()
	if finalURL == "" {
		finalURL = url
	}

	return &domain.Document{
		URL:         url,
		FinalURL:    finalURL,
		ContentType: contentType,
		StatusCode:  resp.StatusCode(),
		Body:        body,
	}, nil
}
