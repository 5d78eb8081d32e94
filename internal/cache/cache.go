// Package cache memoises extracted knowledge graphs. Extraction is a pure
// function of the transcript and the tagger backends, so a hit is exact.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores opaque values by key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

const keyPrefix = "nidus:v1:"

// Key derives the cache key for a transcript extracted with the given tagger
// mode (for example "rules+rules" or "prose+golem").
func Key(tagger, text string) string {
	h := sha256.New()
	h.Write([]byte(tagger))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}
