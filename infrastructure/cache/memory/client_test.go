package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"webfetch-api/core/errors"
	"webfetch-api/core/interfaces"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var _ interfaces.ContentStore = (*Store)(nil)

func TestNewStore_DefaultCapacity(t *testing.T) {
	store := NewStore(0)
	if store.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", store.capacity, DefaultCapacity)
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store := NewStore(10)
	ctx := context.Background()

	if err := store.Put(ctx, "example.com", "hello", time.Hour); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	entry, err := store.Get(ctx, "example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if entry.Content != "hello" {
		t.Errorf("Content = %q, want hello", entry.Content)
	}
	if entry.TTL != time.Hour {
		t.Errorf("TTL = %v, want 1h", entry.TTL)
	}
}

func TestStore_Get_MissingKey(t *testing.T) {
	store := NewStore(10)

	_, err := store.Get(context.Background(), "missing")
	if err != errors.ErrCacheMiss {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestStore_ExpiryBoundary(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(10, WithClock(clock.Now))
	ctx := context.Background()

	if err := store.Put(ctx, "k", "v", 300*time.Second); err != nil {
		t.Fatal(err)
	}

	clock.Advance(299 * time.Second)
	if _, err := store.Get(ctx, "k"); err != nil {
		t.Errorf("entry should be fresh at T-1s, got %v", err)
	}

	clock.Advance(time.Second)
	if _, err := store.Get(ctx, "k"); err != errors.ErrCacheMiss {
		t.Errorf("entry should be expired at T, got %v", err)
	}

	// Expired entries stay in storage
	entry, err := store.Lookup(ctx, "k")
	if err != nil {
		t.Fatalf("Lookup should return stale entry, got %v", err)
	}
	if entry.Content != "v" {
		t.Errorf("stale Content = %q, want v", entry.Content)
	}
	if n, _ := store.Len(ctx); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
}

func TestStore_OverwriteResetsStoredAt(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(10, WithClock(clock.Now))
	ctx := context.Background()

	store.Put(ctx, "k", "old", time.Minute)
	clock.Advance(2 * time.Minute)
	store.Put(ctx, "k", "new", time.Minute)

	entry, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after overwrite returned %v", err)
	}
	if entry.Content != "new" {
		t.Errorf("Content = %q, want new", entry.Content)
	}
	if !entry.StoredAt.Equal(clock.Now()) {
		t.Errorf("StoredAt = %v, want %v", entry.StoredAt, clock.Now())
	}
}

func TestStore_CapacityEvictsOldestTenth(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(50, WithClock(clock.Now))
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		if err := store.Put(ctx, fmt.Sprintf("key-%02d", i), "v", time.Hour); err != nil {
			t.Fatal(err)
		}
		clock.Advance(time.Second)
	}

	if err := store.Put(ctx, "newest", "v", time.Hour); err != nil {
		t.Fatal(err)
	}

	n, _ := store.Len(ctx)
	if n != 46 {
		t.Errorf("Len = %d, want 46", n)
	}
	for i := 0; i < 5; i++ {
		if _, err := store.Lookup(ctx, fmt.Sprintf("key-%02d", i)); err != errors.ErrCacheMiss {
			t.Errorf("key-%02d should have been evicted", i)
		}
	}
	if _, err := store.Lookup(ctx, "key-05"); err != nil {
		t.Errorf("key-05 should survive eviction, got %v", err)
	}
	if _, err := store.Get(ctx, "newest"); err != nil {
		t.Errorf("newest entry should be present, got %v", err)
	}
}

func TestStore_SizeNeverExceedsCapacity(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(7, WithClock(clock.Now))
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		store.Put(ctx, fmt.Sprintf("key-%d", i), "v", time.Hour)
		clock.Advance(time.Millisecond)

		n, _ := store.Len(ctx)
		if n > 7 {
			t.Fatalf("after put %d Len = %d, exceeds capacity 7", i, n)
		}
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(10)
	ctx := context.Background()

	store.Put(ctx, "a", "1", time.Hour)
	store.Put(ctx, "b", "2", time.Hour)

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if n, _ := store.Len(ctx); n != 0 {
		t.Errorf("Len after Clear = %d, want 0", n)
	}
	if _, err := store.Lookup(ctx, "a"); err != errors.ErrCacheMiss {
		t.Errorf("Lookup after Clear = %v, want ErrCacheMiss", err)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	store := NewStore(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Put(ctx, "k", "v", time.Hour); err != context.Canceled {
		t.Errorf("Put error = %v, want context.Canceled", err)
	}
	if _, err := store.Get(ctx, "k"); err != context.Canceled {
		t.Errorf("Get error = %v, want context.Canceled", err)
	}
}

func TestStore_ConcurrentPuts(t *testing.T) {
	store := NewStore(20)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				store.Put(ctx, fmt.Sprintf("w%d-%d", worker, j), "v", time.Hour)
				store.Get(ctx, fmt.Sprintf("w%d-%d", worker, j))
			}
		}(i)
	}
	wg.Wait()

	if n, _ := store.Len(ctx); n > 20 {
		t.Errorf("Len = %d, exceeds capacity 20", n)
	}
}

func BenchmarkStore_PutAtCapacity(b *testing.B) {
	store := NewStore(DefaultCapacity)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Put(ctx, fmt.Sprintf("key-%d", i), "content", time.Hour)
	}
}
