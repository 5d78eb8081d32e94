package nlp

import (
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// ProseTagger adapts the prose averaged-perceptron tagger to LexicalTagger
type ProseTagger struct {
	model  *prose.Model
	logger *zap.Logger
}

var _ LexicalTagger = (*ProseTagger)(nil)

// NewProseTagger creates a prose-backed lexical tagger
func NewProseTagger(logger *zap.Logger) *ProseTagger {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &ProseTagger{logger: logger}
	// prose loads its perceptron weights per document unless handed a model
	doc, err := prose.NewDocument("", t.options()...)
	if err != nil {
		logger.Warn("prose model not preloaded", zap.Error(err))
		return t
	}
	t.model = doc.Model
	return t
}

func (t *ProseTagger) options() []prose.DocOpt {
	opts := []prose.DocOpt{
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	}
	if t.model != nil {
		opts = append(opts, prose.UsingModel(t.model))
	}
	return opts
}

// Tag runs prose over text and re-anchors every token onto the original
// string. prose does not report offsets, so each token is located by forward
// search from the end of the previous one; tokens prose rewrote (quotes) are
// dropped.
func (t *ProseTagger) Tag(text string) []Token {
	doc, err := prose.NewDocument(text, t.options()...)
	if err != nil {
		t.logger.Warn("prose tagging failed", zap.Error(err))
		return nil
	}

	var tokens []Token
	cursor := 0
	for _, tok := range doc.Tokens() {
		if tok.Text == "" {
			continue
		}
		idx := strings.Index(text[cursor:], tok.Text)
		if idx < 0 {
			t.logger.Debug("prose token not found in source text", zap.String("token", tok.Text))
			continue
		}
		start := cursor + idx
		end := start + len(tok.Text)
		cursor = end
		tokens = append(tokens, Token{
			Range: model.TextRange{Start: start, End: end},
			Tag:   string(posFromPenn(tok.Tag)),
		})
	}
	return tokens
}

// posFromPenn collapses Penn Treebank tags into PosTag
func posFromPenn(tag string) PosTag {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return PosNoun
	case strings.HasPrefix(tag, "VB"), tag == "MD":
		return PosVerb
	case strings.HasPrefix(tag, "JJ"):
		return PosAdjective
	case strings.HasPrefix(tag, "RB"):
		return PosAdverb
	case tag == "CD":
		return PosNumber
	case tag == "DT", tag == "PDT", tag == "WDT":
		return PosDeterminer
	case tag == "IN", tag == "TO":
		return PosPreposition
	case tag == "CC":
		return PosConjunction
	case strings.HasPrefix(tag, "PRP"), strings.HasPrefix(tag, "WP"):
		return PosPronoun
	}
	switch tag {
	case ".", ",", ":", "(", ")", "``", "''", "#", "$", "-LRB-", "-RRB-":
		return PosPunctuation
	}
	return PosOther
}
