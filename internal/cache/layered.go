package cache

import (
	"time"

	"github.com/mpopescu/gazex/internal/model"
)

// LayeredCache fronts the disk tier with the memory tier. Within one
// run repeated chunks hit memory; across runs the disk tier survives
// and its hits are promoted back into memory.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates the two-tier record store.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory first, then disk, promoting a disk hit.
func (c *LayeredCache) Get(key string) (*model.CompanyRecord, bool) {
	if rec, found := c.memory.Get(key); found {
		return rec, true
	}

	rec, found := c.disk.Get(key)
	if !found {
		return nil, false
	}
	// Promote with the memory tier's default TTL.
	_ = c.memory.Set(key, rec, 0)
	return rec, true
}

// Set writes through both tiers.
func (c *LayeredCache) Set(key string, rec *model.CompanyRecord, ttl time.Duration) error {
	if err := c.memory.Set(key, rec, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, rec, ttl)
}

// Delete removes the record from both tiers.
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear empties both tiers.
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
