package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifeStage(t *testing.T) {
	for n, want := range map[int]LifeStage{1: StageFirstInstar, 2: StageSecondInstar, 3: StageThirdInstar, 4: StageFourthInstar} {
		got, ok := LifeStageFromInt(n)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := LifeStageFromInt(5)
	assert.False(t, ok)

	_, ok = LifeStageFromInstar(4)
	assert.False(t, ok, "fourth instar is only reachable through stage numbers")
	got, ok := LifeStageFromInstar(3)
	assert.True(t, ok)
	assert.Equal(t, StageThirdInstar, got)
}

func TestBreedingConditions_MultiWordFirst(t *testing.T) {
	assert.Equal(t, ConditionUnmaintained, AllBreedingConditions[0])
	for _, c := range AllBreedingConditions {
		assert.NotEmpty(t, c.Description(), c)
	}
}

func TestParsers(t *testing.T) {
	g, ok := ParseGenus("Aedes")
	assert.True(t, ok)
	assert.Equal(t, GenusAedes, g)

	_, ok = ParseSpecies("anopheles")
	assert.False(t, ok)

	u, ok := ParseUnitLength("FT")
	assert.True(t, ok)
	assert.Equal(t, UnitFeet, u)

	d, ok := ParseDimensionLabel("wide")
	assert.True(t, ok)
	assert.Equal(t, DimensionWidth, d)
}
