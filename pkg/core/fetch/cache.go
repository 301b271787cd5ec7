package fetch

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheTTL bounds how long a fetched payload is reused before a
// fresh request goes out.
const DefaultCacheTTL = 600 * time.Second

// ResponseCache is a file-based cache for raw API payloads, keyed by
// request URL. Entries expire after the TTL.
type ResponseCache struct {
	dir string
	ttl time.Duration
}

// NewResponseCache creates a cache under .cache/fetch in the working
// directory.
func NewResponseCache() *ResponseCache {
	return NewResponseCacheWithDir(filepath.Join(".cache", "fetch"), DefaultCacheTTL)
}

// NewResponseCacheWithDir creates a cache with a custom directory and TTL.
func NewResponseCacheWithDir(dir string, ttl time.Duration) *ResponseCache {
	os.MkdirAll(dir, 0755)
	return &ResponseCache{dir: dir, ttl: ttl}
}

type cacheEntry struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

func (c *ResponseCache) filePath(url string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", md5.Sum([]byte(url))))
}

// Get returns the cached payload for url, or nil when absent or stale.
func (c *ResponseCache) Get(url string) []byte {
	data, err := os.ReadFile(c.filePath(url))
	if err != nil {
		return nil
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}
	if time.Since(entry.FetchedAt) > c.ttl {
		return nil
	}
	return entry.Payload
}

// Set stores a payload for url. Non-JSON payloads are rejected since the
// entry wrapper is JSON.
func (c *ResponseCache) Set(url string, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("cache payload for %s is not valid JSON", url)
	}
	entry := cacheEntry{FetchedAt: time.Now(), Payload: payload}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(c.filePath(url), data, 0644)
}

// Clear removes all cached entries.
func (c *ResponseCache) Clear() error {
	return os.RemoveAll(c.dir)
}
