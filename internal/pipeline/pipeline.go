// Package pipeline wires ingest, the graph cache, the extractor and the
// optional narrative into one call per transcript.
package pipeline

import (
	"context"
	"fmt"

	"github.com/Gleipnir-Technology/nidus-extract/internal/cache"
	"github.com/Gleipnir-Technology/nidus-extract/internal/extract"
	"github.com/Gleipnir-Technology/nidus-extract/internal/ingest"
	"github.com/Gleipnir-Technology/nidus-extract/internal/llm"
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
	"go.uber.org/zap"
)

// Pipeline orchestrates the complete extraction of one transcript
type Pipeline struct {
	extractor  *extract.Extractor
	graphs     *cache.GraphCache // nil when caching is disabled
	summarizer *llm.Summarizer   // nil when no provider is configured
	logger     *zap.Logger
	config     *model.Config
}

// Result is everything produced for one transcript
type Result struct {
	Transcript *ingest.Transcript    `json:"transcript" yaml:"transcript"`
	Graph      *model.KnowledgeGraph `json:"graph" yaml:"graph"`
	Narrative  *model.Narrative      `json:"narrative,omitempty" yaml:"narrative,omitempty"`
	Cached     bool                  `json:"cached" yaml:"cached"`
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithCache overrides the byte store used to memoise graphs
func WithCache(store cache.Cache) Option {
	return func(p *Pipeline) {
		if store == nil {
			p.graphs = nil
			return
		}
		p.graphs = cache.NewGraphCache(store, TaggerID(p.config.Tagger))
	}
}

// WithSummarizer overrides the narrative summarizer
func WithSummarizer(s *llm.Summarizer) Option {
	return func(p *Pipeline) {
		p.summarizer = s
	}
}

// New builds a pipeline from configuration. A narrative provider that fails
// to initialise is logged and disabled rather than failing the pipeline.
func New(cfg *model.Config, logger *zap.Logger, opts ...Option) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	lexical, lemma, err := NewTaggers(cfg.Tagger, logger)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		extractor: extract.NewExtractor(lexical, lemma, extract.WithLogger(logger.Named("extract"))),
		logger:    logger,
		config:    cfg,
	}

	if store := cache.New(cfg.Cache); store != nil {
		p.graphs = cache.NewGraphCache(store, TaggerID(cfg.Tagger))
	}

	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			logger.Warn("narrative provider disabled", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		} else {
			p.summarizer = s
		}
	}

	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// NarrativeProvider names the provider writing narratives, or "" when
// narratives are off.
func (p *Pipeline) NarrativeProvider() string {
	return p.summarizer.ProviderName()
}

// NewTaggers returns the lexical and lemma taggers selected by cfg
func NewTaggers(cfg model.TaggerConfig, logger *zap.Logger) (nlp.LexicalTagger, nlp.LemmaTagger, error) {
	rules := nlp.NewRuleTagger()

	var lexical nlp.LexicalTagger
	switch cfg.Lexical {
	case "", "rules":
		lexical = rules
	case "prose":
		lexical = nlp.NewProseTagger(logger.Named("prose"))
	default:
		return nil, nil, fmt.Errorf("unknown lexical tagger %q", cfg.Lexical)
	}

	var lemma nlp.LemmaTagger
	switch cfg.Lemma {
	case "", "rules":
		lemma = rules
	case "golem":
		g, err := nlp.NewGolemLemmatizer()
		if err != nil {
			return nil, nil, fmt.Errorf("load golem lemmatizer: %w", err)
		}
		lemma = g
	default:
		return nil, nil, fmt.Errorf("unknown lemma tagger %q", cfg.Lemma)
	}

	return lexical, lemma, nil
}

// TaggerID names a tagger combination for cache keys
func TaggerID(cfg model.TaggerConfig) string {
	lexical, lemma := cfg.Lexical, cfg.Lemma
	if lexical == "" {
		lexical = "rules"
	}
	if lemma == "" {
		lemma = "rules"
	}
	return lexical + "+" + lemma
}

// Process reads the transcript at path and extracts its knowledge graph
func (p *Pipeline) Process(ctx context.Context, path string) (*Result, error) {
	t, err := ingest.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return p.ProcessTranscript(ctx, t)
}

// ProcessTranscript extracts the knowledge graph for an already ingested transcript
func (p *Pipeline) ProcessTranscript(ctx context.Context, t *ingest.Transcript) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Transcript: t}
	logger := p.logger.With(zap.String("transcript", t.ID))

	if p.graphs != nil {
		if g, ok := p.graphs.Get(t.Text); ok {
			result.Graph = g
			result.Cached = true
			logger.Debug("graph cache hit")
		}
	}

	if result.Graph == nil {
		result.Graph = p.extractor.ExtractKnowledge(t.Text)
		if p.graphs != nil {
			if err := p.graphs.Put(t.Text, result.Graph); err != nil {
				logger.Warn("graph not cached", zap.Error(err))
			}
		}
	}

	// The narrative is derived last and never touches the graph
	if p.summarizer.IsEnabled() {
		n, err := p.summarizer.GenerateNarrative(ctx, result.Graph)
		if err != nil {
			logger.Warn("narrative generation failed", zap.Error(err))
		} else {
			result.Narrative = n
		}
	}

	logger.Info("transcript extracted",
		zap.Int("tags", len(result.Graph.TranscriptTags)),
		zap.Bool("cached", result.Cached),
	)
	return result, nil
}
