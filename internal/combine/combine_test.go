package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaf/internal/group"
	"metaf/internal/quantity"
)

func TestCombineTrendTypeThenTimeSpan(t *testing.T) {
	from, _ := quantity.MetafTimeFromDDHH("0614")
	till, _ := quantity.MetafTimeFromDDHH("0615")
	prev := group.Group{Kind: group.Trend, TrendType: group.TrendBecoming}
	next := group.Group{
		Kind: group.Trend, TrendType: group.TrendTimeSpanOnly,
		TimeFrom: from, HaveTimeFrom: true, TimeTill: till, HaveTimeTill: true,
	}
	merged, ok := Combine(prev, next)
	require.True(t, ok)
	assert.Equal(t, group.TrendBecoming, merged.TrendType)
	assert.True(t, merged.HaveTimeFrom)
	assert.True(t, merged.HaveTimeTill)
}

func TestCombineProbabilityThenTempo(t *testing.T) {
	prev := group.Group{Kind: group.Trend, TrendType: group.TrendProbabilityOnly, Probability: group.Probability30}
	next := group.Group{Kind: group.Trend, TrendType: group.TrendTemporary}
	merged, ok := Combine(prev, next)
	require.True(t, ok)
	assert.Equal(t, group.TrendTemporary, merged.TrendType)
	assert.Equal(t, group.Probability30, merged.Probability)
}

func TestCombineTimeAtExclusiveWithFromTill(t *testing.T) {
	at, _ := quantity.MetafTimeFromHHMM("1430")
	from, _ := quantity.MetafTimeFromDDHH("0614")
	prev := group.Group{Kind: group.Trend, TrendType: group.TrendTimeSpanOnly, TimeFrom: from, HaveTimeFrom: true}
	next := group.Group{Kind: group.Trend, TrendType: group.TrendTimeOnly, TimeAt: at, HaveTimeAt: true}
	_, ok := Combine(prev, next)
	assert.False(t, ok)
}

func TestCombineWindVariableSector(t *testing.T) {
	begin, _ := quantity.DirectionFromString("180")
	end, _ := quantity.DirectionFromString("240")
	prev := group.Group{Kind: group.Wind}
	next := group.Group{Kind: group.VariableWindSector, SectorBegin: begin, SectorEnd: end}
	merged, ok := Combine(prev, next)
	require.True(t, ok)
	assert.Equal(t, group.Wind, merged.Kind)
	deg, _ := merged.SectorBegin.Degrees()
	assert.Equal(t, 180, deg)
}

func TestCombineVisibilityFraction(t *testing.T) {
	frac, _ := quantity.DistanceFromMiles("1/2SM")
	prev := group.Group{Kind: group.Visibility, VisIncompleteInteger: 1, IsIncompleteInteger: true}
	next := group.Group{Kind: group.Visibility, VisDistance: frac}
	merged, ok := Combine(prev, next)
	require.True(t, ok)
	assert.True(t, merged.VisDistance.IsMixed())
	v, _ := merged.VisDistance.Value()
	assert.InDelta(t, 1.5, v, 1e-9)
}

func TestCombineLowLayerWindShearAllRunways(t *testing.T) {
	ws := group.Group{Kind: group.LowLayerWindShear}
	step1, ok := Combine(ws, group.Group{Kind: group.PlainText, Text: "ALL"})
	require.True(t, ok)
	assert.True(t, step1.ShearAllRunways)
	assert.False(t, step1.ShearComplete)

	step2, ok := Combine(step1, group.Group{Kind: group.PlainText, Text: "RWY"})
	require.True(t, ok)
	assert.True(t, step2.ShearComplete)
}

func TestCombineLowLayerWindShearSpecificRunway(t *testing.T) {
	ws := group.Group{Kind: group.LowLayerWindShear}
	merged, ok := Combine(ws, group.Group{Kind: group.PlainText, Text: "R06L"})
	require.True(t, ok)
	assert.True(t, merged.ShearComplete)
	assert.Equal(t, quantity.DesignatorLeft, merged.Runway.Designator())
}

func TestCombineRefusesUnrelatedKinds(t *testing.T) {
	prev := group.Group{Kind: group.Cloud}
	next := group.Group{Kind: group.PlainText, Text: "x"}
	_, ok := Combine(prev, next)
	assert.False(t, ok)
}
