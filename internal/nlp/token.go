// Package nlp turns raw transcript text into per-sentence word streams.
//
// Two independent taggers run over the whole transcript: a LexicalTagger
// producing part-of-speech tokens and a LemmaTagger producing lemma tokens.
// The Aligner reconciles them into one Word per lexical token, grouped by
// sentence. All ranges are byte offsets into the original transcript.
package nlp

import "github.com/Gleipnir-Technology/nidus-extract/internal/model"

// PosTag is a coarse part-of-speech category
type PosTag string

const (
	PosNoun        PosTag = "noun"
	PosVerb        PosTag = "verb"
	PosAdjective   PosTag = "adjective"
	PosAdverb      PosTag = "adverb"
	PosNumber      PosTag = "number"
	PosDeterminer  PosTag = "determiner"
	PosPreposition PosTag = "preposition"
	PosConjunction PosTag = "conjunction"
	PosPronoun     PosTag = "pronoun"
	PosPunctuation PosTag = "punctuation"
	PosOther       PosTag = "other"
)

// Token is a tagged span of the original text. For lexical tokens Tag holds
// a PosTag, for lemma tokens it holds the lemma.
type Token struct {
	Range model.TextRange
	Tag   string
}

// LexicalTagger tags word-granularity tokens with a part of speech.
// Whitespace is never returned as a token.
type LexicalTagger interface {
	Tag(text string) []Token
}

// LemmaTagger returns word-granularity tokens whose Tag is the lemma.
// Words without a known lemma may be omitted.
type LemmaTagger interface {
	Lemmas(text string) []Token
}
