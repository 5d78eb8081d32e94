package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
)

// Summarizer turns extracted graphs into narratives. A Summarizer with no
// provider is valid and disabled.
type Summarizer struct {
	provider Provider
	config   Config
	now      func() time.Time
}

// NewSummarizer creates a summarizer for the configured provider
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config, now: time.Now}, nil
}

// NewSummarizerWithProvider wraps an existing provider
func NewSummarizerWithProvider(p Provider, config Config) *Summarizer {
	return &Summarizer{provider: p, config: config, now: time.Now}
}

func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

func (s *Summarizer) ProviderName() string {
	if !s.IsEnabled() {
		return ""
	}
	return s.provider.Name()
}

// GenerateNarrative asks the provider for a note on g. It returns nil when
// disabled. Provider trouble is reported in the narrative's warnings rather
// than as an error, so a failed narrative never fails an extraction.
func (s *Summarizer) GenerateNarrative(ctx context.Context, g *model.KnowledgeGraph) (*model.Narrative, error) {
	if !s.IsEnabled() {
		return nil, nil
	}
	if g == nil {
		return nil, fmt.Errorf("generate narrative: nil graph")
	}

	n := &model.Narrative{
		Provider:    s.provider.Name(),
		Model:       s.config.Model,
		StrictFacts: s.config.StrictFacts,
	}

	if !s.provider.IsAvailable(ctx) {
		n.Warnings = append(n.Warnings, fmt.Sprintf("LLM provider %s is not available", n.Provider))
		return n, nil
	}

	facts := Facts(g)
	resp, err := s.provider.Narrate(ctx, NarrateRequest{
		Graph:     g,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		n.Warnings = append(n.Warnings, fmt.Sprintf("narrative generation failed: %v", err))
		return n, nil
	}

	n.Enabled = true
	n.Text = resp.Text
	n.GeneratedAt = s.now().UTC()
	if resp.Model != "" {
		n.Model = resp.Model
	}
	if resp.TokensUsed > 0 {
		n.Warnings = append(n.Warnings, fmt.Sprintf("Tokens used: %d", resp.TokensUsed))
	}
	if len(facts) == 0 {
		n.Warnings = append(n.Warnings, "nothing was extracted; the narrative has no facts behind it")
	}
	return n, nil
}

// RenderMarkdown renders a narrative as a standalone markdown section
func RenderMarkdown(n *model.Narrative) string {
	if n == nil || !n.Enabled {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Inspection narrative\n\n")
	fmt.Fprintf(&b, "_Written by %s", n.Provider)
	if n.Model != "" {
		fmt.Fprintf(&b, " (%s)", n.Model)
	}
	b.WriteString(" from extracted facts only._\n\n")

	if n.Text == "" {
		b.WriteString("(empty)\n")
	} else {
		b.WriteString(n.Text)
		b.WriteString("\n")
	}

	if len(n.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range n.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}
