package nlp

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// GolemLemmatizer adapts the golem dictionary lemmatizer to LemmaTagger.
// It segments words the same way as RuleTagger, independently of whichever
// lexical tagger runs alongside it.
type GolemLemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

var _ LemmaTagger = (*GolemLemmatizer)(nil)

// NewGolemLemmatizer loads the English dictionary
func NewGolemLemmatizer() (*GolemLemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load golem english dictionary: %w", err)
	}
	return &GolemLemmatizer{lemmatizer: l}, nil
}

// Lemmas returns one token per word that golem knows a lemma for
func (g *GolemLemmatizer) Lemmas(text string) []Token {
	var tokens []Token
	for _, r := range tokenize(text) {
		word := strings.ToLower(text[r.Start:r.End])
		if r, _ := utf8.DecodeRuneInString(word); !isWordRune(r) {
			continue
		}
		lemma := strings.ToLower(g.lemmatizer.Lemma(word))
		if lemma == "" {
			continue
		}
		tokens = append(tokens, Token{Range: r, Tag: lemma})
	}
	return tokens
}
