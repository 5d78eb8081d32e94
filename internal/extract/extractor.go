// Package extract turns a field-report transcript into a KnowledgeGraph.
//
// Extraction is a flat two-level loop: for every sentence, for every word
// position, the word's lemma (or surface text) is looked up in an ordered
// rule table and the first rule whose trigger set contains it runs against a
// Gram anchored at that word. Rules either commit a local match, mutating the
// shared graph and appending transcript tags, or do nothing. There is no
// backtracking, and the same input always yields the same graph.
package extract

import (
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
	"go.uber.org/zap"
)

// Option configures an Extractor
type Option func(*Extractor)

// WithLogger sets the logger used to report parse misses. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// Extractor extracts knowledge graphs from transcripts. It holds no per-call
// state and is safe for concurrent use.
type Extractor struct {
	aligner *nlp.Aligner
	rules   []rule
	logger  *zap.Logger
}

// NewExtractor creates an extractor over the given taggers
func NewExtractor(lexical nlp.LexicalTagger, lemma nlp.LemmaTagger, opts ...Option) *Extractor {
	e := &Extractor{
		aligner: nlp.NewAligner(lexical, lemma),
		rules:   defaultRules(),
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// NewRuleExtractor creates an extractor backed by the built-in rule tagger
func NewRuleExtractor(opts ...Option) *Extractor {
	t := nlp.NewRuleTagger()
	return NewExtractor(t, t, opts...)
}

// ExtractKnowledge builds a new graph from text. It never fails; a transcript
// with nothing recognisable yields an empty graph.
func (e *Extractor) ExtractKnowledge(text string) *model.KnowledgeGraph {
	graph := model.NewKnowledgeGraph()
	for si, words := range e.aligner.Sentences(text) {
		p := &pass{
			graph:  graph,
			logger: e.logger.With(zap.Int("sentence", si)),
		}
		for i := range words {
			e.dispatch(p, nlp.NewGram(words, i))
		}
	}
	return graph
}

func (e *Extractor) dispatch(p *pass, g nlp.Gram) {
	trigger := g.At(0).LemOrText()
	for _, r := range e.rules {
		if _, ok := r.triggers[trigger]; ok {
			r.match(p, g)
			return
		}
	}
}

// pass is the mutable state of one sentence's rule run
type pass struct {
	graph  *model.KnowledgeGraph
	logger *zap.Logger
}

// miss logs a trigger that fired without the evidence it needs
func (p *pass) miss(g nlp.Gram, reason string) {
	p.logger.Info(reason,
		zap.String("trigger", g.At(0).LemOrText()),
		zap.Int("offset", g.Offset()),
	)
}

// drift logs a trigger word that the matching enum parser does not know.
// That can only happen when the rule table and the model enums disagree.
func (p *pass) drift(enum string, w nlp.Word) {
	p.logger.Error("trigger table and enum parser disagree",
		zap.String("enum", enum),
		zap.String("word", w.LemOrText()),
	)
}

func (p *pass) tag(w nlp.Word, category model.TagCategory) {
	addTag(&p.graph.TranscriptTags, w, category)
}

func ptr[T any](v T) *T {
	return &v
}
