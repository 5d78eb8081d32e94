package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTagger_Tag(t *testing.T) {
	text := "Pool's 10 ft, third!"
	tokens := NewRuleTagger().Tag(text)

	var words []string
	var tags []string
	for _, tok := range tokens {
		words = append(words, text[tok.Range.Start:tok.Range.End])
		tags = append(tags, tok.Tag)
	}
	assert.Equal(t, []string{"Pool's", "10", "ft", ",", "third", "!"}, words)
	assert.Equal(t, string(PosNumber), tags[1])
	assert.Equal(t, string(PosPunctuation), tags[3])
	assert.Equal(t, string(PosAdjective), tags[4])
}

func TestRuleTagger_NoIsNotANumber(t *testing.T) {
	tokens := NewRuleTagger().Tag("no")
	require.Len(t, tokens, 1)
	assert.NotEqual(t, string(PosNumber), tokens[0].Tag)
}

func TestRuleTagger_Lemmas(t *testing.T) {
	text := "Dimensions are murky"
	tokens := NewRuleTagger().Lemmas(text)

	lemmas := make(map[string]string)
	for _, tok := range tokens {
		lemmas[text[tok.Range.Start:tok.Range.End]] = tok.Tag
	}
	assert.Equal(t, "dimension", lemmas["Dimensions"])
	assert.Equal(t, "be", lemmas["are"])
	assert.NotContains(t, lemmas, "murky")

	text = "Pupae were breeding"
	got := NewRuleTagger().Lemmas(text)
	require.Len(t, got, 3)
	assert.Equal(t, "pupa", got[0].Tag)
	assert.Equal(t, "be", got[1].Tag)
	assert.Equal(t, "breed", got[2].Tag)
}

func TestTokenize_MultiByte(t *testing.T) {
	text := "café / 3m"
	var words []string
	for _, r := range tokenize(text) {
		words = append(words, text[r.Start:r.End])
	}
	assert.Equal(t, []string{"café", "/", "3m"}, words)
}

func TestTokenize_InvalidUTF8(t *testing.T) {
	for _, text := range []string{"no fish \xfe", "pool\xff", "\xff", "a \xff b"} {
		for _, r := range tokenize(text) {
			require.LessOrEqual(t, r.End, len(text), "%q", text)
			require.Less(t, r.Start, r.End, "%q", text)
		}
		assert.NotPanics(t, func() { NewRuleTagger().Tag(text) }, "%q", text)
		assert.NotPanics(t, func() { NewRuleTagger().Lemmas(text) }, "%q", text)
	}

	text := "pool\xff"
	got := tokenize(text)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[1].Start)
	assert.Equal(t, 5, got[1].End)
}

func TestPosFromPenn(t *testing.T) {
	tests := map[string]PosTag{
		"NNS": PosNoun,
		"VBD": PosVerb,
		"VBZ": PosVerb,
		"MD":  PosVerb,
		"JJR": PosAdjective,
		"RB":  PosAdverb,
		"CD":  PosNumber,
		"DT":  PosDeterminer,
		"IN":  PosPreposition,
		"CC":  PosConjunction,
		"PRP": PosPronoun,
		",":   PosPunctuation,
		"UH":  PosOther,
	}
	for tag, want := range tests {
		assert.Equal(t, want, posFromPenn(tag), tag)
	}
}

func TestProseTagger_OffsetsIndexOriginalText(t *testing.T) {
	text := "Pool is green.  Counted 12 larvae"
	tokens := NewProseTagger(nil).Tag(text)
	require.NotEmpty(t, tokens)

	assert.Equal(t, "Pool", text[tokens[0].Range.Start:tokens[0].Range.End])
	assert.Equal(t, string(PosNoun), tokens[0].Tag)

	prev := 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Range.Start, prev)
		assert.Greater(t, tok.Range.End, tok.Range.Start)
		prev = tok.Range.End
	}
}

func TestGolemLemmatizer(t *testing.T) {
	g, err := NewGolemLemmatizer()
	require.NoError(t, err)

	text := "Dips were taken"
	lemmas := make(map[string]string)
	for _, tok := range g.Lemmas(text) {
		lemmas[text[tok.Range.Start:tok.Range.End]] = tok.Tag
	}
	assert.Equal(t, "dip", lemmas["Dips"])
	assert.Equal(t, "be", lemmas["were"])
}

func TestGolemLemmatizer_InvalidUTF8(t *testing.T) {
	g, err := NewGolemLemmatizer()
	require.NoError(t, err)
	assert.NotPanics(t, func() { g.Lemmas("dips \xff") })
}

func TestProseTagger_ReusesModel(t *testing.T) {
	tagger := NewProseTagger(nil)
	require.NotNil(t, tagger.model)

	model := tagger.model
	text := "Counted 12 larvae in the pool"
	first := tagger.Tag(text)
	assert.Equal(t, first, tagger.Tag(text))
	assert.Same(t, model, tagger.model)
}
