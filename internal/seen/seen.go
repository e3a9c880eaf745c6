// Package seen keeps a small JSON file of items already published in earlier
// runs, so repeated fetches of the same feeds do not refill tomorrow's digest
// with today's stories. Within a single run the digest performs no
// deduplication at all.
package seen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Record is one remembered item.
type Record struct {
	Hash     string    `json:"hash"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Source   string    `json:"source"`
	SeenAt   time.Time `json:"seen_at"`
	Category string    `json:"category"`
}

// Cache is a TTL-bounded file-backed set of item hashes.
type Cache struct {
	path string
	ttl  time.Duration

	mu    sync.RWMutex
	items map[string]Record
}

// NewCache builds a cache over the given file path. ttlHours bounds how long
// a record suppresses re-ingestion.
func NewCache(path string, ttlHours int) *Cache {
	return &Cache{
		path:  path,
		ttl:   time.Duration(ttlHours) * time.Hour,
		items: make(map[string]Record),
	}
}

// Load reads the cache file if it exists, discarding expired records.
// A missing file is a clean start, not an error.
func (c *Cache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read seen cache: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode seen cache: %w", err)
	}

	cutoff := time.Now().Add(-c.ttl)
	for _, r := range records {
		if r.SeenAt.After(cutoff) {
			c.items[r.Hash] = r
		}
	}
	return nil
}

// Save writes the current records back to the file.
func (c *Cache) Save() error {
	c.mu.RLock()
	records := make([]Record, 0, len(c.items))
	for _, r := range c.items {
		records = append(records, r)
	}
	c.mu.RUnlock()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode seen cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write seen cache: %w", err)
	}
	return nil
}

// Hash derives a stable key from a normalized title plus the URL host, so the
// same story re-fetched with tracking parameters still collides.
func Hash(title, url string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(title))), " ")
	h := sha256.New()
	h.Write([]byte(normalized + "|" + hostOf(url)))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Seen reports whether the hash is present and still within TTL.
func (c *Cache) Seen(hash string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.items[hash]
	if !ok {
		return false
	}
	return r.SeenAt.After(time.Now().Add(-c.ttl))
}

// Mark records an item as published.
func (c *Cache) Mark(hash, title, url, source, category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[hash] = Record{
		Hash:     hash,
		Title:    title,
		URL:      url,
		Source:   source,
		Category: category,
		SeenAt:   time.Now(),
	}
}

// Len returns the number of live records.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func hostOf(url string) string {
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	if i := strings.IndexByte(url, '/'); i >= 0 {
		url = url[:i]
	}
	url = strings.TrimPrefix(url, "www.")
	if url == "" {
		return "unknown"
	}
	return strings.ToLower(url)
}
