package cache

import (
	"errors"
	"time"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
)

// LayeredCache checks a fast cache before a slow one and promotes slow hits
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache stacks memory in front of disk
func NewLayeredCache(memory, disk Cache) *LayeredCache {
	return &LayeredCache{memory: memory, disk: disk}
}

// New builds the cache described by cfg, or nil when caching is disabled
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	return NewLayeredCache(
		NewMemoryCache(cfg.MemoryTTL, 10*time.Minute),
		NewDiskCache(cfg.DiskDir, cfg.DiskTTL),
	)
}

func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}

	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, 0)
		return val, true
	}

	return nil, false
}

func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.memory.Delete(key), c.disk.Delete(key))
}

func (c *LayeredCache) Clear() error {
	return errors.Join(c.memory.Clear(), c.disk.Clear())
}
