package nlp

import "github.com/Gleipnir-Technology/nidus-extract/internal/model"

// Word is one aligned token of a sentence
type Word struct {
	Range model.TextRange
	Text  string // Lowercased, single trailing period stripped
	Lemma string // Empty when the lemma tagger had nothing for this span
	Pos   PosTag
}

// EmptyWord is returned by Gram.At for out-of-bounds offsets. Its empty Text
// never equals a real word, so comparisons against it fail safely.
var EmptyWord = Word{}

// LemOrText returns the lemma when known, else the surface text
func (w Word) LemOrText() string {
	if w.Lemma != "" {
		return w.Lemma
	}
	return w.Text
}

// IsEmpty reports whether w is the out-of-bounds sentinel
func (w Word) IsEmpty() bool {
	return w == EmptyWord
}

// Gram is a view of a sentence anchored at one word position
type Gram struct {
	words  []Word
	offset int
}

// NewGram anchors a view over words at offset
func NewGram(words []Word, offset int) Gram {
	return Gram{words: words, offset: offset}
}

// At returns the word rel positions from the anchor, or EmptyWord when that
// position falls outside the sentence.
func (g Gram) At(rel int) Word {
	i := g.offset + rel
	if i < 0 || i >= len(g.words) {
		return EmptyWord
	}
	return g.words[i]
}

// Offset returns the anchor's absolute position in the sentence
func (g Gram) Offset() int {
	return g.offset
}
