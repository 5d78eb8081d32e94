package extract

import (
	"testing"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measured(v float64, unit *model.UnitLength, dim *model.DimensionKind) ExtractedMeasurement {
	return ExtractedMeasurement{Value: v, Unit: unit, Dimension: dim, WordsConsumed: 1}
}

func TestVolumeFromMeasurements_UnclaimedOrder(t *testing.T) {
	// Depth takes the last unclaimed, then width, then length
	v, err := volumeFromMeasurements([]ExtractedMeasurement{
		measured(1, nil, nil),
		measured(2, nil, nil),
		measured(3, nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.Depth.Value)
	assert.Equal(t, 2.0, v.Width.Value)
	assert.Equal(t, 1.0, v.Length.Value)
}

func TestVolumeFromMeasurements_UnitFallback(t *testing.T) {
	v, err := volumeFromMeasurements([]ExtractedMeasurement{
		measured(1, nil, nil),
		measured(2, ptr(model.UnitInches), nil),
		measured(3, ptr(model.UnitMeters), nil),
	})
	require.NoError(t, err)
	assert.Equal(t, model.UnitMeters, v.Depth.Unit)
	assert.Equal(t, model.UnitInches, v.Width.Unit)
	assert.Equal(t, model.UnitInches, v.Length.Unit)

	v, err = volumeFromMeasurements([]ExtractedMeasurement{
		measured(1, nil, nil),
		measured(2, nil, nil),
		measured(3, nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, model.UnitFeet, v.Depth.Unit)
	assert.Equal(t, model.UnitFeet, v.Length.Unit)
}

func TestVolumeFromMeasurements_Errors(t *testing.T) {
	_, err := volumeFromMeasurements([]ExtractedMeasurement{measured(1, nil, nil)})
	assert.ErrorIs(t, err, ErrNotEnoughDimensions)

	_, err = volumeFromMeasurements(nil)
	assert.ErrorIs(t, err, ErrNotEnoughDimensions)

	four := []ExtractedMeasurement{
		measured(1, nil, nil), measured(2, nil, nil), measured(3, nil, nil), measured(4, nil, nil),
	}
	_, err = volumeFromMeasurements(four)
	assert.ErrorIs(t, err, ErrUnableToSort)

	// Two measurements claim depth, leaving length open
	_, err = volumeFromMeasurements([]ExtractedMeasurement{
		measured(1, nil, ptr(model.DimensionDepth)),
		measured(2, nil, ptr(model.DimensionDepth)),
		measured(3, nil, nil),
	})
	assert.ErrorIs(t, err, ErrUnableToSort)
}

func words(texts ...string) []nlp.Word {
	out := make([]nlp.Word, len(texts))
	for i, s := range texts {
		out[i] = nlp.Word{Range: model.TextRange{Start: i, End: i + 1}, Text: s}
	}
	return out
}

func TestMaybeExtractVolumeMeasurement(t *testing.T) {
	g := nlp.NewGram(words("pool", "twelve", "ft", "wide", "and"), 0)

	m, ok := maybeExtractVolumeMeasurement(g, 1)
	require.True(t, ok)
	assert.Equal(t, 12.0, m.Value)
	assert.Equal(t, model.UnitFeet, *m.Unit)
	assert.Equal(t, model.DimensionWidth, *m.Dimension)
	assert.Equal(t, 3, m.WordsConsumed)

	_, ok = maybeExtractVolumeMeasurement(g, 0)
	assert.False(t, ok)
	_, ok = maybeExtractVolumeMeasurement(g, 10)
	assert.False(t, ok)
}

func TestFindConnective(t *testing.T) {
	g := nlp.NewGram(words("3", "feet", ",", "and", "4"), 0)

	next, found, ok := findConnective(g, 2)
	require.True(t, ok)
	assert.Equal(t, 4, next)
	require.Len(t, found, 2)
	assert.Equal(t, ",", found[0].Text)
	assert.Equal(t, "and", found[1].Text)

	_, _, ok = findConnective(nlp.NewGram(words("3", "feet", "x", "y", "z", "w", "v", "by"), 0), 2)
	assert.False(t, ok)
}

func TestSkipFillers(t *testing.T) {
	g := nlp.NewGram(words("pool", "size", "at", "3"), 0)
	assert.Equal(t, 2, skipFillers(g, 1))
	assert.Equal(t, 0, skipFillers(g, 3))
}
