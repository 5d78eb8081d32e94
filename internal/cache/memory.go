package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps graphs in process with per-entry expiry
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache. A zero defaultTTL never expires.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	if defaultTTL == 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	b, ok := val.([]byte)
	return b, ok
}

// Set stores value; ttl 0 uses the cache default
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

// Len returns the number of entries, including expired ones not yet cleaned up
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
