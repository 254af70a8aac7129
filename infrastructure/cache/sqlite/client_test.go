package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	coreerrors "webfetch-api/core/errors"
	"webfetch-api/core/interfaces"
)

var _ interfaces.ContentStore = (*Client)(nil)

// MockLogger records log calls
type MockLogger struct {
	debugs []string
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.debugs = append(m.debugs, msg) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *MockLogger) Error(msg string, fields map[string]interface{}) {}

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T, capacity int, opts ...Option) *Client {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	client, err := NewStore(path, capacity, opts...)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestClient_PutAndGet(t *testing.T) {
	client := newTestStore(t, 10)
	ctx := context.Background()

	if err := client.Put(ctx, "example.com", "hello", time.Hour); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	entry, err := client.Get(ctx, "example.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if entry.Content != "hello" {
		t.Errorf("Content = %q, want hello", entry.Content)
	}
	if entry.TTL != time.Hour {
		t.Errorf("TTL = %v, want 1h", entry.TTL)
	}
}

func TestClient_Get_Missing(t *testing.T) {
	client := newTestStore(t, 10)

	_, err := client.Get(context.Background(), "missing")
	if !coreerrors.IsCacheMiss(err) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestClient_EmptyKey(t *testing.T) {
	client := newTestStore(t, 10)
	ctx := context.Background()

	if err := client.Put(ctx, "", "v", time.Hour); err == nil {
		t.Error("Put() should reject an empty key")
	}
	if _, err := client.Lookup(ctx, ""); err == nil {
		t.Error("Lookup() should reject an empty key")
	}
}

func TestClient_ExpiryBoundaryAndStaleLookup(t *testing.T) {
	clock := &stepClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	client := newTestStore(t, 10, WithClock(clock.Now))
	ctx := context.Background()

	client.Put(ctx, "k", "v", 600*time.Second)

	clock.now = clock.now.Add(599 * time.Second)
	if _, err := client.Get(ctx, "k"); err != nil {
		t.Errorf("entry should be fresh at T-1s, got %v", err)
	}

	clock.now = clock.now.Add(time.Second)
	if _, err := client.Get(ctx, "k"); !coreerrors.IsCacheMiss(err) {
		t.Errorf("entry should be expired at T, got %v", err)
	}

	entry, err := client.Lookup(ctx, "k")
	if err != nil {
		t.Fatalf("Lookup() should serve stale entry, got %v", err)
	}
	if entry.Content != "v" {
		t.Errorf("stale Content = %q, want v", entry.Content)
	}
}

func TestClient_CapacityEviction(t *testing.T) {
	clock := &stepClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	logger := &MockLogger{}
	client := newTestStore(t, 20, WithClock(clock.Now), WithLogger(logger))
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		if err := client.Put(ctx, fmt.Sprintf("key-%02d", i), "v", time.Hour); err != nil {
			t.Fatal(err)
		}
		clock.now = clock.now.Add(time.Second)
	}

	if err := client.Put(ctx, "newest", "v", time.Hour); err != nil {
		t.Fatal(err)
	}

	n, err := client.Len(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 19 {
		t.Errorf("Len() = %d, want 19", n)
	}
	for _, gone := range []string{"key-00", "key-01"} {
		if _, err := client.Lookup(ctx, gone); !coreerrors.IsCacheMiss(err) {
			t.Errorf("%s should have been evicted", gone)
		}
	}
	if _, err := client.Get(ctx, "newest"); err != nil {
		t.Errorf("newest entry should be present, got %v", err)
	}
	if len(logger.debugs) != 1 {
		t.Errorf("expected one eviction log, got %d", len(logger.debugs))
	}
}

func TestClient_Clear(t *testing.T) {
	client := newTestStore(t, 10)
	ctx := context.Background()

	client.Put(ctx, "a", "1", time.Hour)
	client.Put(ctx, "b", "2", time.Hour)

	if err := client.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if n, _ := client.Len(ctx); n != 0 {
		t.Errorf("Len() after Clear = %d, want 0", n)
	}
}

func TestClient_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewStore(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	first.Put(ctx, "persisted", "still here", time.Hour)
	first.Close()

	second, err := NewStore(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	entry, err := second.Get(ctx, "persisted")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if entry.Content != "still here" {
		t.Errorf("Content = %q, want 'still here'", entry.Content)
	}
}
