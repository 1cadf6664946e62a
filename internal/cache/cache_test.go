package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mpopescu/gazex/internal/model"
)

func sampleRecord(name string) *model.CompanyRecord {
	rec := &model.CompanyRecord{ID: "abc", Type: "company", Name: name}
	rec.MainInfo.CUI = "RO12345678"
	return rec
}

func TestKey_SensitiveToEveryInput(t *testing.T) {
	base := Key("openai", "gpt-4o-mini", "Societatea ACME S.R.L.")

	if Key("openai", "gpt-4o-mini", "Societatea ACME S.R.L.") != base {
		t.Error("Expected stable key for identical input")
	}
	if Key("ollama", "gpt-4o-mini", "Societatea ACME S.R.L.") == base {
		t.Error("Expected provider change to change the key")
	}
	if Key("openai", "gpt-4o", "Societatea ACME S.R.L.") == base {
		t.Error("Expected model change to change the key")
	}
	if Key("openai", "gpt-4o-mini", "Societatea BETA S.R.L.") == base {
		t.Error("Expected text change to change the key")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", sampleRecord("ACME S.R.L."), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	rec, found := c.Get("k")
	if !found || rec.Name != "ACME S.R.L." {
		t.Errorf("Expected hit with record, got %+v found=%v", rec, found)
	}

	_ = c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_ReturnsDetachedCopy(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if err := c.Set("k", sampleRecord("ACME S.R.L."), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	first, _ := c.Get("k")
	first.Name = "MUTATED"

	second, _ := c.Get("k")
	if second.Name != "ACME S.R.L." {
		t.Errorf("Expected cached record to be unaffected, got %q", second.Name)
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("k", sampleRecord("ACME S.R.L."), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	rec, found := c.Get("k")
	if !found || rec.MainInfo.CUI != "RO12345678" {
		t.Errorf("Expected hit with record, got %+v found=%v", rec, found)
	}

	// An already-expired entry is a miss and gets removed.
	if err := c.Set("old", sampleRecord("OLD S.R.L."), -time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("old"); found {
		t.Error("Expected expired entry to miss")
	}
	if _, found := c.Get("old"); found {
		t.Error("Expected expired entry to stay gone")
	}
}

func TestDiskCache_DropsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	if _, found := c.Get("bad"); found {
		t.Error("Expected corrupt file to miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected corrupt file to be removed")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	// Write through the disk tier only, then read via the layered cache.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", sampleRecord("ACME S.R.L."), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	rec, found := c.Get("k")
	if !found || rec.Name != "ACME S.R.L." {
		t.Errorf("Expected layered hit from disk, got %+v found=%v", rec, found)
	}

	// Now present in the memory tier too.
	if _, found := c.memory.Get("k"); !found {
		t.Error("Expected disk hit to be promoted to memory")
	}
}

func TestNew_FollowsConfig(t *testing.T) {
	if c := New(model.CacheConfig{Enabled: false}); c != nil {
		t.Error("Expected nil cache when disabled")
	}
	if _, ok := New(model.CacheConfig{Enabled: true}).(*MemoryCache); !ok {
		t.Error("Expected memory cache without a directory")
	}
	if _, ok := New(model.CacheConfig{Enabled: true, Dir: t.TempDir()}).(*LayeredCache); !ok {
		t.Error("Expected layered cache with a directory")
	}
}

func TestRecordHelpers_NilSafe(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	key := Key("openai", "gpt-4o-mini", "text")

	if _, found := GetRecord(c, key); found {
		t.Error("Expected miss before store")
	}

	if err := SetRecord(c, key, sampleRecord("ACME S.R.L."), time.Minute); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}
	got, found := GetRecord(c, key)
	if !found || got.Name != "ACME S.R.L." {
		t.Errorf("Expected hit after store, got %+v found=%v", got, found)
	}

	// Nil cache is a silent no-op on both paths.
	if _, found := GetRecord(nil, key); found {
		t.Error("Expected miss on nil cache")
	}
	if err := SetRecord(nil, key, sampleRecord("X"), time.Minute); err != nil {
		t.Errorf("Expected nil cache store to be a no-op, got %v", err)
	}
}
