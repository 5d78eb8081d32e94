package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskCache persists graphs across runs as one JSON file per key, sharded
// into subdirectories by the first bytes of the key hash.
type DiskCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewDiskCache creates a disk cache rooted at dir
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}
}

type diskEntry struct {
	Data      []byte    `json:"data"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

func (c *DiskCache) Get(key string) ([]byte, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false
	}

	if !entry.ExpiresAt.IsZero() && c.now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}

	return entry.Data, true
}

// Set writes value atomically; ttl 0 uses the cache default, and a zero
// default never expires.
func (c *DiskCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	now := c.now()
	entry := diskEntry{Data: value, StoredAt: now}
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename cache file: %w", err)
	}
	return nil
}

func (c *DiskCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes the whole cache directory
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// path maps a key to dir/<shard>/<hash>.json
func (c *DiskCache) path(key string) string {
	name := strings.TrimPrefix(key, keyPrefix)
	name = strings.NewReplacer("/", "_", ":", "_", string(filepath.Separator), "_").Replace(name)
	shard := "00"
	if len(name) >= 2 {
		shard = name[:2]
	}
	return filepath.Join(c.dir, shard, name+".json")
}
