package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mpopescu/gazex/internal/model"
)

// MemoryCache holds extracted records for the lifetime of one pipeline
// run. Records are stored by value, so callers mutating their copy
// never corrupt the cached one.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates the in-process record store.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns a copy of the cached record.
func (c *MemoryCache) Get(key string) (*model.CompanyRecord, bool) {
	val, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	rec := val.(model.CompanyRecord)
	return &rec, true
}

// Set stores a record; ttl 0 uses the store's default.
func (c *MemoryCache) Set(key string, rec *model.CompanyRecord, ttl time.Duration) error {
	c.store.Set(key, *rec, ttl)
	return nil
}

// Delete removes one record.
func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

// Clear drops every cached record.
func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}
