package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider implements the Provider interface for testing
type mockProvider struct {
	name      string
	available bool
	response  *NarrateResponse
	err       error
	got       NarrateRequest
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Narrate(_ context.Context, req NarrateRequest) (*NarrateResponse, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) IsAvailable(context.Context) bool { return m.available }

func sampleGraph() *model.KnowledgeGraph {
	g := model.NewKnowledgeGraph()
	rt := model.ReportMosquitoSource
	larvae := 12
	fish := false
	cond := model.ConditionPoolGreen
	g.Fieldseeker.ReportType = &rt
	g.Breeding.LarvaeQuantity = &larvae
	g.Breeding.HasFish = &fish
	g.Breeding.Conditions = &cond
	g.Source.Volume = &model.Volume{
		Depth:  model.Measurement{Value: 3, Unit: model.UnitFeet},
		Length: model.Measurement{Value: 10, Unit: model.UnitFeet},
		Width:  model.Measurement{Value: 20, Unit: model.UnitFeet},
	}
	return g
}

func TestNewSummarizer_Disabled(t *testing.T) {
	s, err := NewSummarizer(Config{})
	require.NoError(t, err)
	assert.False(t, s.IsEnabled())
	assert.Empty(t, s.ProviderName())

	n, err := s.GenerateNarrative(context.Background(), sampleGraph())
	assert.NoError(t, err)
	assert.Nil(t, n)

	var nilSummarizer *Summarizer
	assert.False(t, nilSummarizer.IsEnabled())
}

func TestNewSummarizer_UnknownProvider(t *testing.T) {
	_, err := NewSummarizer(Config{Provider: "mystery"})
	assert.Error(t, err)
}

func TestSummarizer_ProviderUnavailable(t *testing.T) {
	s := NewSummarizerWithProvider(&mockProvider{name: "mock"}, Config{StrictFacts: true})

	n, err := s.GenerateNarrative(context.Background(), sampleGraph())
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.False(t, n.Enabled)
	require.Len(t, n.Warnings, 1)
	assert.Contains(t, n.Warnings[0], "not available")
}

func TestSummarizer_Success(t *testing.T) {
	p := &mockProvider{
		name:      "mock",
		available: true,
		response:  &NarrateResponse{Text: "Green pool with 12 larvae.", Model: "m-1", TokensUsed: 90},
	}
	s := NewSummarizerWithProvider(p, Config{Model: "m-0", MaxTokens: 200, StrictFacts: true})
	fixed := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	g := sampleGraph()
	n, err := s.GenerateNarrative(context.Background(), g)
	require.NoError(t, err)

	assert.True(t, n.Enabled)
	assert.Equal(t, "mock", n.Provider)
	assert.Equal(t, "m-1", n.Model)
	assert.Equal(t, "Green pool with 12 larvae.", n.Text)
	assert.Equal(t, fixed, n.GeneratedAt)
	assert.True(t, n.StrictFacts)
	assert.Contains(t, n.Warnings, "Tokens used: 90")

	assert.Same(t, g, p.got.Graph)
	assert.Equal(t, 200, p.got.MaxTokens)
	assert.Equal(t, "m-0", p.got.Model)
}

func TestSummarizer_ProviderError(t *testing.T) {
	p := &mockProvider{name: "mock", available: true, err: errors.New("rate limit exceeded")}
	s := NewSummarizerWithProvider(p, Config{})

	n, err := s.GenerateNarrative(context.Background(), sampleGraph())
	require.NoError(t, err)
	assert.False(t, n.Enabled)
	require.Len(t, n.Warnings, 1)
	assert.Contains(t, n.Warnings[0], "rate limit exceeded")
}

func TestSummarizer_EmptyGraphWarns(t *testing.T) {
	p := &mockProvider{name: "mock", available: true, response: &NarrateResponse{Text: "Nothing notable."}}
	s := NewSummarizerWithProvider(p, Config{})

	n, err := s.GenerateNarrative(context.Background(), model.NewKnowledgeGraph())
	require.NoError(t, err)
	assert.True(t, n.Enabled)
	assert.Len(t, n.Warnings, 1)
}

func TestFacts(t *testing.T) {
	facts := Facts(sampleGraph())
	assert.Equal(t, []string{
		"Report type: mosquito_source",
		"Water condition: green",
		"Larvae: 12",
		"Fish present: false",
		"Dimensions: 10 feet long, 20 feet wide, 3 feet deep",
	}, facts)

	assert.Empty(t, Facts(model.NewKnowledgeGraph()))
	assert.Nil(t, Facts(nil))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleGraph())
	assert.Contains(t, prompt, "Use ONLY the facts")
	assert.Contains(t, prompt, "- Larvae: 12\n")

	empty := BuildPrompt(model.NewKnowledgeGraph())
	assert.Contains(t, empty, "(nothing was extracted)")
}

func TestCheckFacts(t *testing.T) {
	prompt := BuildPrompt(sampleGraph())

	assert.NoError(t, checkFacts(Config{StrictFacts: true}, "12 larvae in a 10 by 20 pool", prompt))

	err := checkFacts(Config{StrictFacts: true}, "About 40 larvae, 12 pupae and 40 eggs", prompt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FACT LEAK")
	assert.True(t, strings.HasSuffix(err.Error(), ": 40"))

	assert.NoError(t, checkFacts(Config{StrictFacts: false}, "About 40 larvae", prompt))
}

func TestRenderMarkdown(t *testing.T) {
	assert.Empty(t, RenderMarkdown(nil))
	assert.Empty(t, RenderMarkdown(&model.Narrative{Enabled: false}))

	md := RenderMarkdown(&model.Narrative{
		Enabled:  true,
		Provider: "ollama",
		Model:    "llama3.1:8b",
		Text:     "Green pool.",
		Warnings: []string{"Tokens used: 10"},
	})
	assert.Contains(t, md, "## Inspection narrative")
	assert.Contains(t, md, "_Written by ollama (llama3.1:8b) from extracted facts only._")
	assert.Contains(t, md, "Green pool.\n")
	assert.Contains(t, md, "- Tokens used: 10\n")
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Empty(t, c.Provider)
	assert.True(t, c.StrictFacts)
	assert.Equal(t, 30, c.Timeout)
}

func TestConfigFromModel(t *testing.T) {
	c := ConfigFromModel(model.LLMConfig{Provider: "ollama", Model: "mistral", Timeout: 5, StrictFacts: true, HTTPProxy: "http://proxy:3128"})
	assert.Equal(t, "ollama", c.Provider)
	assert.Equal(t, "mistral", c.Model)
	assert.True(t, c.StrictFacts)
	assert.Equal(t, "http://proxy:3128", c.HTTPProxy)
}
