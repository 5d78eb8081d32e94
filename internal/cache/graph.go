package cache

import (
	"encoding/json"
	"fmt"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
)

// GraphCache stores knowledge graphs in a byte cache as JSON
type GraphCache struct {
	store  Cache
	tagger string
}

// NewGraphCache wraps store; tagger identifies the tagger backends so graphs
// from different backends never collide.
func NewGraphCache(store Cache, tagger string) *GraphCache {
	return &GraphCache{store: store, tagger: tagger}
}

// Get returns the graph memoised for text. Undecodable entries are misses.
func (c *GraphCache) Get(text string) (*model.KnowledgeGraph, bool) {
	data, ok := c.store.Get(Key(c.tagger, text))
	if !ok {
		return nil, false
	}
	var g model.KnowledgeGraph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, false
	}
	if g.TranscriptTags == nil {
		g.TranscriptTags = []model.TranscriptTag{}
	}
	return &g, true
}

// Put memoises g for text using the store's default TTL
func (c *GraphCache) Put(text string, g *model.KnowledgeGraph) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal graph: %w", err)
	}
	return c.store.Set(Key(c.tagger, text), data, 0)
}
