package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mpopescu/gazex/internal/model"
)

// DiskCache persists extracted records across pipeline runs, one JSON
// file per record under the configured directory.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates the persistent record store.
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{dir: dir, ttl: ttl}
}

// recordEntry wraps a persisted record with its expiry.
type recordEntry struct {
	Record    model.CompanyRecord `json:"record"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// Get reads one record file. Expired or undecodable files are removed
// and count as misses.
func (c *DiskCache) Get(key string) (*model.CompanyRecord, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry recordEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}

	return &entry.Record, true
}

// Set writes one record file; ttl 0 uses the store's default.
func (c *DiskCache) Set(key string, rec *model.CompanyRecord, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	entry := recordEntry{Record: *rec, ExpiresAt: time.Now().Add(ttl)}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}
	return nil
}

// Delete removes one record file.
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.path(key))
}

// Clear removes the whole cache directory.
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// path names the record file by the digest part of the key, so the
// key's namespace prefix never leaks into filenames.
func (c *DiskCache) path(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		key = key[i+1:]
	}
	return filepath.Join(c.dir, key+".json")
}
