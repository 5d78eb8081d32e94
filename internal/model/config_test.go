package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tagger.Lexical = "spacy"
	cfg.Output.Format = "xml"
	cfg.LLM.Provider = "gemini"
	cfg.Concurrency.Workers = 0
	cfg.RateLimiting.TranscriptsPerSecond = -1
	cfg.Cache.DiskDir = ""

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"tagger.lexical", "output.format", "llm.provider", "concurrency.workers", "rate_limiting", "cache.disk_dir"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestConfig_Validate_DisabledCacheNeedsNoDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Cache.DiskDir = ""
	assert.NoError(t, cfg.Validate())
}

func TestConfig_YAMLOmitsAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.APIKey = "sk-secret"

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sk-secret")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, cfg.Cache.MemoryTTL, decoded.Cache.MemoryTTL)
	assert.Equal(t, cfg.Tagger, decoded.Tagger)
}

func TestKnowledgeGraph_Tags(t *testing.T) {
	g := NewKnowledgeGraph()
	g.AddTag(TextRange{Start: 0, End: 4}, TagSource)
	g.AddTag(TextRange{Start: 5, End: 7}, TagMeasurement)
	g.AddTag(TextRange{Start: 0, End: 4}, TagSource)

	assert.Len(t, g.TranscriptTags, 3)
	assert.Len(t, g.TagsOf(TagSource), 2)
	assert.Empty(t, g.TagsOf(TagAction))
}

func TestTextRange(t *testing.T) {
	r := TextRange{Start: 2, End: 10}
	assert.Equal(t, 8, r.Len())
	assert.True(t, r.Contains(TextRange{Start: 2, End: 10}))
	assert.True(t, r.Contains(TextRange{Start: 3, End: 5}))
	assert.False(t, r.Contains(TextRange{Start: 1, End: 5}))
}
