package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/numeric"
)

// RuleTagger is the built-in deterministic tagger. It implements both
// LexicalTagger and LemmaTagger from closed word lists, so identical input
// always yields identical tokens.
type RuleTagger struct {
	lemmas map[string]string
}

var (
	_ LexicalTagger = (*RuleTagger)(nil)
	_ LemmaTagger   = (*RuleTagger)(nil)
)

// NewRuleTagger creates a rule tagger with the built-in lemma table
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{lemmas: defaultLemmas}
}

// Tag splits text into word tokens and assigns each a PosTag
func (t *RuleTagger) Tag(text string) []Token {
	ranges := tokenize(text)
	tokens := make([]Token, 0, len(ranges))
	for _, r := range ranges {
		word := strings.ToLower(text[r.Start:r.End])
		tokens = append(tokens, Token{Range: r, Tag: string(t.pos(word))})
	}
	return tokens
}

// Lemmas returns a lemma token for every word found in the lemma table
func (t *RuleTagger) Lemmas(text string) []Token {
	var tokens []Token
	for _, r := range tokenize(text) {
		word := strings.ToLower(text[r.Start:r.End])
		if lemma, ok := t.lemmas[word]; ok {
			tokens = append(tokens, Token{Range: r, Tag: lemma})
		}
	}
	return tokens
}

func (t *RuleTagger) pos(word string) PosTag {
	if _, ok := numeric.FromCardinal(word); ok && word != "no" && word != "nil" {
		return PosNumber
	}
	if _, ok := numeric.FromOrdinal(word); ok {
		return PosAdjective
	}
	if r, _ := utf8.DecodeRuneInString(word); !isWordRune(r) {
		return PosPunctuation
	}
	if tag, ok := closedClass[word]; ok {
		return tag
	}
	if t.lemmas[word] == "be" || t.lemmas[word] == "have" {
		return PosVerb
	}
	if strings.HasSuffix(word, "ly") && len(word) > 3 {
		return PosAdverb
	}
	return PosNoun
}

// tokenize returns word ranges: runs of letters, digits and apostrophes are
// one word, every other non-space rune is a token of its own.
func tokenize(text string) []model.TextRange {
	var ranges []model.TextRange
	start := -1
	for i, r := range text {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		default:
			if start >= 0 {
				ranges = append(ranges, model.TextRange{Start: start, End: i})
				start = -1
			}
			if !unicode.IsSpace(r) {
				// invalid bytes decode as RuneError but span a single byte
				_, width := utf8.DecodeRuneInString(text[i:])
				ranges = append(ranges, model.TextRange{Start: i, End: i + width})
			}
		}
	}
	if start >= 0 {
		ranges = append(ranges, model.TextRange{Start: start, End: len(text)})
	}
	return ranges
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

var closedClass = map[string]PosTag{
	"the":   PosDeterminer,
	"a":     PosDeterminer,
	"an":    PosDeterminer,
	"this":  PosDeterminer,
	"that":  PosDeterminer,
	"these": PosDeterminer,
	"those": PosDeterminer,
	"all":   PosDeterminer,
	"some":  PosDeterminer,
	"no":    PosDeterminer,
	"every": PosDeterminer,
	"at":    PosPreposition,
	"by":    PosPreposition,
	"in":    PosPreposition,
	"on":    PosPreposition,
	"of":    PosPreposition,
	"with":  PosPreposition,
	"from":  PosPreposition,
	"to":    PosPreposition,
	"for":   PosPreposition,
	"near":  PosPreposition,
	"under": PosPreposition,
	"and":   PosConjunction,
	"or":    PosConjunction,
	"but":   PosConjunction,
	"i":     PosPronoun,
	"we":    PosPronoun,
	"it":    PosPronoun,
	"they":  PosPronoun,
	"he":    PosPronoun,
	"she":   PosPronoun,
	"you":   PosPronoun,
	"not":   PosAdverb,
	"very":  PosAdverb,
	"green": PosAdjective,
	"murky": PosAdjective,
	"clear": PosAdjective,
	"dry":   PosAdjective,
	"deep":  PosAdjective,
	"wide":  PosAdjective,
	"long":  PosAdjective,
	"big":   PosAdjective,
}

// defaultLemmas covers irregular forms and the inflections of every trigger
// word the extractor dispatches on.
var defaultLemmas = map[string]string{
	"is":          "be",
	"are":         "be",
	"was":         "be",
	"were":        "be",
	"been":        "be",
	"being":       "be",
	"am":          "be",
	"has":         "have",
	"had":         "have",
	"breeding":    "breed",
	"breeds":      "breed",
	"bred":        "breed",
	"larvae":      "larva",
	"larvas":      "larva",
	"pupae":       "pupa",
	"pupas":       "pupa",
	"tumblers":    "tumbler",
	"eggs":        "egg",
	"dips":        "dip",
	"dipped":      "dip",
	"dipping":     "dip",
	"fishes":      "fish",
	"feet":        "foot",
	"inches":      "inch",
	"meters":      "meter",
	"metres":      "meter",
	"stages":      "stage",
	"instars":     "instar",
	"conditions":  "condition",
	"dimensions":  "dimension",
	"sizes":       "size",
	"lengths":     "length",
	"widths":      "width",
	"sources":     "source",
	"inspections": "inspection",
	"pools":       "pool",
	"ponds":       "pond",
	"ditches":     "ditch",
	"containers":  "container",
	"fountains":   "fountain",
	"birdbaths":   "birdbath",
	"tires":       "tire",
	"buckets":     "bucket",
	"treated":     "treat",
	"treating":    "treat",
	"treats":      "treat",
	"larvicided":  "larvicide",
	"dumped":      "dump",
	"dumping":     "dump",
	"drained":     "drain",
	"draining":    "drain",
	"removed":     "remove",
	"removing":    "remove",
	"maintained":  "maintain",
	"blocked":     "block",
	"blocking":    "block",
	"clogged":     "clog",
	"leaking":     "leak",
	"leaks":       "leak",
	"leaked":      "leak",
	"sprinklers":  "sprinkler",
	"fixed":       "fix",
	"repaired":    "repair",
	"replaced":    "replace",
	"called":      "call",
	"contacted":   "contact",
	"spoke":       "speak",
	"spoken":      "speak",
	"talked":      "talk",
	"educated":    "educate",
	"advised":     "advise",
	"counted":     "count",
	"found":       "find",
	"citations":   "citation",
	"violations":  "violation",
}
