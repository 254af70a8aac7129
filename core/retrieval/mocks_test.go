package retrieval

import (
	"context"
	"sync"
	"time"

	"webfetch-api/core/domain"
	coreerrors "webfetch-api/core/errors"
)

// fakeStore is an unbounded map store with a controllable clock
type fakeStore struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry
	now     time.Time
	puts     int
	clears   int
	putErr   error
	clearErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: make(map[string]domain.CacheEntry),
		now:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	entry, err := s.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.Expired(s.now) {
		return nil, coreerrors.ErrCacheMiss
	}
	return entry, nil
}

func (s *fakeStore) Lookup(ctx context.Context, key string) (*domain.CacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, coreerrors.ErrCacheMiss
	}
	return &entry, nil
}

func (s *fakeStore) Put(ctx context.Context, key, content string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	s.entries[key] = domain.CacheEntry{Content: content, StoredAt: s.now, TTL: ttl}
	return nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.entries = make(map[string]domain.CacheEntry)
	return nil
}

func (s *fakeStore) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries), nil
}

func (s *fakeStore) advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

func (s *fakeStore) entry(key string) (domain.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok
}

// mockFetcher serves a fixed body or runs fetchFunc
type mockFetcher struct {
	mu        sync.Mutex
	body      string
	fetchFunc func(ctx context.Context, url string) (*domain.Document, error)
	urls      []string
}

func (f *mockFetcher) Fetch(ctx context.Context, url string) (*domain.Document, error) {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()

	if f.fetchFunc != nil {
		return f.fetchFunc(ctx, url)
	}
	return &domain.Document{
		URL:         url,
		FinalURL:    url,
		ContentType: "text/html; charset=utf-8",
		StatusCode:  200,
		Body:        []byte(f.body),
	}, nil
}

func (f *mockFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

// mockAPI supports the addresses it has content or an error for
type mockAPI struct {
	supported map[string]bool
	content   string
	err       error
	calls     int
}

func (a *mockAPI) Supports(address string) bool {
	return a.supported[domain.HostOf(address)]
}

func (a *mockAPI) Fetch(ctx context.Context, address string) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return a.content, nil
}

// mockProber returns a fixed answer and counts resets
type mockProber struct {
	connected bool
	checks    int
	resets    int
}

func (p *mockProber) Check(ctx context.Context) bool {
	p.checks++
	return p.connected
}

func (p *mockProber) Reset() {
	p.resets++
}

// recordingLogger keeps every message by level
type recordingLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{messages: make(map[string][]string)}
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[level] = append(l.messages[level], msg)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg) }

func (l *recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages[level] {
		if m == msg {
			return true
		}
	}
	return false
}
