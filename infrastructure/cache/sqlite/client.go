// ABOUTME: SQLite-based content store for caching that survives restarts
// ABOUTME: Keeps storedAt and TTL per row so expiry stays lazy and eviction is by age

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"webfetch-api/core/domain"
	coreerrors "webfetch-api/core/errors"
	"webfetch-api/core/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

// Option configures a Client
type Option func(*Client)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLogger reports evictions to logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client implements interfaces.ContentStore using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	capacity int
	now      func() time.Time
	logger   interfaces.Logger
}

// NewStore opens (or creates) the database at filePath
func NewStore(filePath string, capacity int, opts ...Option) (*Client, error) {
	if filePath == "" {
		filePath = "webfetch-cache.db"
	}
	if capacity < 1 {
		capacity = 50
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// A single writer keeps the count-evict-insert sequence atomic
	db.SetMaxOpenConns(1)

	client := &Client{
		db:       db,
		filePath: filePath,
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(client)
	}

	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the entries table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS entries (
			key TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			stored_at INTEGER NOT NULL,
			ttl_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_stored_at ON entries(stored_at);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get returns a fresh entry or errors.ErrCacheMiss
func (c *Client) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	entry, err := c.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if entry.Expired(c.now()) {
		return nil, coreerrors.ErrCacheMiss
	}
	return entry, nil
}

// Lookup returns the entry for key whether or not it has expired
func (c *Client) Lookup(ctx context.Context, key string) (*domain.CacheEntry, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var content string
	var storedAt, ttlMillis int64

	query := "SELECT content, stored_at, ttl_ms FROM entries WHERE key = ?"
	err := c.db.QueryRowContext(ctx, query, key).Scan(&content, &storedAt, &ttlMillis)

	if err == sql.ErrNoRows {
		return nil, coreerrors.ErrCacheMiss
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return &domain.CacheEntry{
		Content:  content,
		StoredAt: time.UnixMilli(storedAt),
		TTL:      time.Duration(ttlMillis) * time.Millisecond,
	}, nil
}

// Put stores content under key, evicting the oldest rows first when full
func (c *Client) Put(ctx context.Context, key string, content string, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var size int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&size); err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}

	if size >= c.capacity {
		n := domain.EvictionBatch(size)
		query := `
			DELETE FROM entries WHERE key IN (
				SELECT key FROM entries ORDER BY stored_at ASC, key ASC LIMIT ?
			)
		`
		if _, err := tx.ExecContext(ctx, query, n); err != nil {
			return fmt.Errorf("failed to evict entries: %w", err)
		}
		if c.logger != nil {
			c.logger.Debug("Evicted oldest cache entries", map[string]interface{}{
				"evicted": n,
				"size":    size,
			})
		}
	}

	query := `
		INSERT OR REPLACE INTO entries (key, content, stored_at, ttl_ms)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query, key, content, c.now().UnixMilli(), ttl.Milliseconds()); err != nil {
		return fmt.Errorf("failed to store entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entry: %w", err)
	}
	return nil
}

// Clear removes all entries
func (c *Client) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Len returns the number of rows, expired ones included
func (c *Client) Len(ctx context.Context) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
