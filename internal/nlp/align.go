package nlp

import (
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
)

// SplitSentences splits text on every '.' and returns the sentence ranges.
// The periods themselves belong to no sentence; blank ranges are dropped.
func SplitSentences(text string) []model.TextRange {
	var sentences []model.TextRange
	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '.' {
			continue
		}
		if strings.TrimSpace(text[start:i]) != "" {
			sentences = append(sentences, model.TextRange{Start: start, End: i})
		}
		start = i + 1
	}
	return sentences
}

// Aligner reconciles the lexical and lemma token streams into Words
type Aligner struct {
	lexical LexicalTagger
	lemma   LemmaTagger
}

// NewAligner creates an aligner over the two taggers
func NewAligner(lexical LexicalTagger, lemma LemmaTagger) *Aligner {
	return &Aligner{lexical: lexical, lemma: lemma}
}

// Sentences returns one Word slice per sentence of text. Both taggers run
// once over the whole transcript so every range stays native to text.
func (a *Aligner) Sentences(text string) [][]Word {
	sentences := SplitSentences(text)
	return Align(text, sentences, a.lexical.Tag(text), a.lemma.Lemmas(text))
}

// Align groups lexical tokens into the given sentences and attaches the first
// lemma token contained within each lexical token's range. Tokens falling
// outside every sentence (the split periods) are dropped.
func Align(text string, sentences []model.TextRange, lexical, lemmas []Token) [][]Word {
	out := make([][]Word, len(sentences))
	for i := range out {
		out[i] = []Word{}
	}

	si := 0
	for _, tok := range lexical {
		r := tok.Range
		if r.Start < 0 || r.End > len(text) || r.Start >= r.End {
			continue
		}
		for si < len(sentences) && r.Start >= sentences[si].End {
			si++
		}
		if si == len(sentences) {
			break
		}
		if r.Start < sentences[si].Start {
			continue
		}

		surface := strings.ToLower(text[r.Start:r.End])
		surface = strings.TrimSuffix(surface, ".")
		if strings.TrimSpace(surface) == "" {
			continue
		}

		out[si] = append(out[si], Word{
			Range: r,
			Text:  surface,
			Lemma: lemmaWithin(r, lemmas),
			Pos:   PosTag(tok.Tag),
		})
	}
	return out
}

func lemmaWithin(r model.TextRange, lemmas []Token) string {
	for _, l := range lemmas {
		if r.Contains(l.Range) {
			return strings.ToLower(l.Tag)
		}
	}
	return ""
}
