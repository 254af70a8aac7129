package handlers

import (
	"context"
	"errors"
	"time"

	"webfetch-api/core/domain"
)

type mockRetriever struct {
	scraped []string
}

func (m *mockRetriever) CheckInternet(ctx context.Context) string { return "Internet: Offline" }

func (m *mockRetriever) Scrape(ctx context.Context, address string) string {
	m.scraped = append(m.scraped, address)
	return "Scraped content from " + address
}

func (m *mockRetriever) ResetCache(ctx context.Context) string { return "Cache cleared successfully." }

type mockStore struct {
	size int
	err  error
}

func (s *mockStore) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	return nil, errors.New("not used")
}
func (s *mockStore) Lookup(ctx context.Context, key string) (*domain.CacheEntry, error) {
	return nil, errors.New("not used")
}
func (s *mockStore) Put(ctx context.Context, key, content string, ttl time.Duration) error {
	return nil
}
func (s *mockStore) Clear(ctx context.Context) error      { return nil }
func (s *mockStore) Len(ctx context.Context) (int, error) { return s.size, s.err }

type mockReporter struct {
	state domain.ConnectivityState
	ok    bool
}

func (r *mockReporter) State() (domain.ConnectivityState, bool) { return r.state, r.ok }

type mockLogger struct {
	warns int
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  { l.warns++ }
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}
