// Package cache memoizes LLM extraction results so that re-running the
// hybrid pipeline over the same gazette pages never repeats an API call
// for an unchanged notice chunk.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/mpopescu/gazex/internal/model"
)

// Cache is a typed store of extracted company records.
type Cache interface {
	Get(key string) (*model.CompanyRecord, bool)
	Set(key string, rec *model.CompanyRecord, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for one extraction call. The chunk text is
// part of the hash, so any edit to the source notice misses the cache,
// as does switching provider or model.
func Key(provider, modelName, text string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + modelName + "\x00" + text))
	return "gazex:v1:" + hex.EncodeToString(hash[:])
}

// New builds the cache tier described by the configuration: nil when
// disabled, memory-only when no directory is set, layered otherwise.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	if cfg.Dir == "" {
		return NewMemoryCache(ttl, 10*time.Minute)
	}
	return NewLayeredCache(ttl, cfg.Dir, ttl)
}

// GetRecord is a nil-safe read: a disabled cache always misses.
func GetRecord(c Cache, key string) (*model.CompanyRecord, bool) {
	if c == nil {
		return nil, false
	}
	return c.Get(key)
}

// SetRecord is a nil-safe write.
func SetRecord(c Cache, key string, rec *model.CompanyRecord, ttl time.Duration) error {
	if c == nil || rec == nil {
		return nil
	}
	return c.Set(key, rec, ttl)
}
