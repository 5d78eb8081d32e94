package extract

import (
	"testing"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPass() *pass {
	return &pass{graph: model.NewKnowledgeGraph(), logger: zap.NewNop()}
}

func TestMarkConditionWindow_PhraseBeforeTrigger(t *testing.T) {
	ws := words("water", "was", "murky", "by", "the", "condition")
	p := newPass()
	markConditionWindow(-5, 5)(p, nlp.NewGram(ws, 5))

	require.NotNil(t, p.graph.Breeding.Conditions)
	assert.Equal(t, model.ConditionPoolMurky, *p.graph.Breeding.Conditions)
	assert.Equal(t, []model.TranscriptTag{
		{Range: model.TextRange{Start: 2, End: 3}, Type: model.TagSource},
	}, p.graph.TranscriptTags)
}

func TestMarkConditionWindow_MultiWordPhrase(t *testing.T) {
	ws := words("yard", "not", "maintained", "condition")
	p := newPass()
	markConditionWindow(-5, 5)(p, nlp.NewGram(ws, 3))

	require.NotNil(t, p.graph.Breeding.Conditions)
	assert.Equal(t, model.ConditionUnmaintained, *p.graph.Breeding.Conditions)
	assert.Len(t, p.graph.TranscriptTags, 2)
}

func TestMarkConditionWindow_OutsideWindow(t *testing.T) {
	ws := words("murky", "a", "b", "c", "d", "e", "condition")
	p := newPass()
	markConditionWindow(-5, 5)(p, nlp.NewGram(ws, 6))

	assert.Nil(t, p.graph.Breeding.Conditions)
	assert.Empty(t, p.graph.TranscriptTags)

	// the pool window only reaches two words back
	ws = words("murky", "big", "pool")
	p = newPass()
	markConditionWindow(-2, 3)(p, nlp.NewGram(ws, 2))
	require.NotNil(t, p.graph.Breeding.Conditions)

	ws = words("murky", "x", "big", "pool")
	p = newPass()
	markConditionWindow(-2, 3)(p, nlp.NewGram(ws, 3))
	assert.Nil(t, p.graph.Breeding.Conditions)
}

func TestMarkConditionWindow_PartialPhraseWritesNothing(t *testing.T) {
	ws := words("not", "really", "condition")
	p := newPass()
	markConditionWindow(-5, 5)(p, nlp.NewGram(ws, 2))

	assert.Nil(t, p.graph.Breeding.Conditions)
	assert.Empty(t, p.graph.TranscriptTags)
}
