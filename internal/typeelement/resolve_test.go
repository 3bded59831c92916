package typeelement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsim/archetype-cli/internal/model"
)

func testMaterials() []MaterialSpec {
	return []MaterialSpec{
		{ID: 1, Name: "Brick", Density: 1800, ThermalConductivity: 0.81, HeatCapacity: 1.0},
		{ID: 2, Name: "Mineral Wool", Density: 60, ThermalConductivity: 0.04, HeatCapacity: 0.85},
		{ID: 3, Name: "Plaster", Density: 1200, ThermalConductivity: 0.51, HeatCapacity: 1.0},
	}
}

func testBindings(t *testing.T) *Bindings {
	t.Helper()
	records := []Record{
		{
			Key:              "OuterWall_1979_heavy",
			AgeRange:         [2]int{1979, 1994},
			ConstructionType: "heavy",
			InnerRadiation:   5.0,
			InnerConvection:  2.7,
			OuterRadiation:   5.0,
			OuterConvection:  20.0,
			Layers: []LayerSpec{
				{ID: 0, Thickness: 0.015, MaterialID: 3},
				{ID: 1, Thickness: 0.24, MaterialID: 1},
				{ID: 2, Thickness: 0.08, MaterialID: 2},
			},
		},
		{
			Key:              "OuterWall_1995_heavy",
			AgeRange:         [2]int{1995, 2015},
			ConstructionType: "heavy",
			InnerRadiation:   5.0,
			InnerConvection:  2.7,
			OuterRadiation:   5.0,
			OuterConvection:  20.0,
			Layers: []LayerSpec{
				{ID: 0, Thickness: 0.175, MaterialID: 1},
			},
		},
		{
			Key:              "Window_1995_Kunststofffenster, Isolierverglasung",
			AgeRange:         [2]int{1995, 2015},
			ConstructionType: "Kunststofffenster, Isolierverglasung",
			InnerRadiation:   5.0,
			InnerConvection:  2.7,
			OuterRadiation:   5.0,
			OuterConvection:  20.0,
			GValue:           0.7,
			AConv:            0.03,
			ShadingGTotal:    1.0,
			ShadingMaxIrr:    180.0,
			Layers: []LayerSpec{
				{ID: 0, Thickness: 0.024, MaterialID: 3},
			},
		},
		{
			Key:              "InnerWall_1979_heavy",
			AgeRange:         [2]int{1979, 1994},
			ConstructionType: "heavy",
			InnerRadiation:   5.0,
			InnerConvection:  2.7,
			Layers: []LayerSpec{
				{ID: 0, Thickness: 0.015, MaterialID: 3},
				{ID: 1, Thickness: 0.115, MaterialID: 1},
				{ID: 2, Thickness: 0.015, MaterialID: 3},
			},
		},
	}
	b, err := NewBindings(records, testMaterials())
	require.NoError(t, err)
	return b
}

func TestResolve_ForwardOrder(t *testing.T) {
	b := testBindings(t)
	el := model.NewElement(model.KindOuterWall, "wall")

	res, err := Resolve(el, 1980, "heavy", b, Options{})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "OuterWall_1979_heavy", res.Key)

	assert.Equal(t, [2]int{1979, 1994}, el.AgeRange)
	assert.Equal(t, "heavy", el.ConstructionType)
	assert.Equal(t, 5.0, el.InnerRadiation)
	assert.Equal(t, 2.7, el.InnerConvection)
	assert.Equal(t, 20.0, el.OuterConvection)

	require.Len(t, el.Layers, 3)
	assert.Equal(t, 0.015, el.Layers[0].Thickness)
	assert.Equal(t, "Plaster", el.Layers[0].Material.Name)
	assert.Equal(t, 0.24, el.Layers[1].Thickness)
	assert.Equal(t, "Brick", el.Layers[1].Material.Name)
	assert.Equal(t, 0.08, el.Layers[2].Thickness)
	assert.Equal(t, "Mineral Wool", el.Layers[2].Material.Name)
}

func TestResolve_ReverseOrder(t *testing.T) {
	b := testBindings(t)
	forward := model.NewElement(model.KindOuterWall, "wall")
	reversed := model.NewElement(model.KindOuterWall, "wall")

	_, err := Resolve(forward, 1980, "heavy", b, Options{})
	require.NoError(t, err)
	_, err = Resolve(reversed, 1980, "heavy", b, Options{ReverseLayers: true})
	require.NoError(t, err)

	require.Len(t, reversed.Layers, len(forward.Layers))
	for i := range forward.Layers {
		mirror := reversed.Layers[len(reversed.Layers)-1-i]
		assert.Equal(t, forward.Layers[i].Thickness, mirror.Thickness)
		assert.Equal(t, forward.Layers[i].Material.ID, mirror.Material.ID)
	}
}

func TestResolve_AgeRangeInclusive(t *testing.T) {
	b := testBindings(t)

	for _, year := range []int{1979, 1994} {
		el := model.NewElement(model.KindOuterWall, "wall")
		res, err := Resolve(el, year, "heavy", b, Options{})
		require.NoError(t, err)
		assert.True(t, res.Matched, "year %d should match", year)
		assert.Equal(t, "OuterWall_1979_heavy", res.Key)
	}
}

func TestResolve_NoMatch_LeavesElementUntouched(t *testing.T) {
	b := testBindings(t)
	el := model.NewElement(model.KindOuterWall, "wall")

	// No record covers 1950.
	res, err := Resolve(el, 1950, "heavy", b, Options{})
	require.NoError(t, err)
	assert.False(t, res.Matched)

	assert.Zero(t, el.InnerRadiation)
	assert.Zero(t, el.InnerConvection)
	assert.Empty(t, el.Layers)
	assert.Empty(t, el.ConstructionType)
}

func TestResolve_TechniqueMustMatchExactly(t *testing.T) {
	b := testBindings(t)
	el := model.NewElement(model.KindOuterWall, "wall")

	res, err := Resolve(el, 1980, "light", b, Options{})
	require.NoError(t, err)
	assert.False(t, res.Matched)
}

func TestResolve_TieBreakMostSpecificKey(t *testing.T) {
	records := []Record{
		{
			Key:              "OuterWall_1979",
			AgeRange:         [2]int{1979, 1994},
			ConstructionType: "heavy",
			InnerRadiation:   1.0,
		},
		{
			Key:              "OuterWall_1979_heavy",
			AgeRange:         [2]int{1979, 1994},
			ConstructionType: "heavy",
			InnerRadiation:   2.0,
		},
	}
	b, err := NewBindings(records, nil)
	require.NoError(t, err)

	el := model.NewElement(model.KindOuterWall, "wall")
	res, err := Resolve(el, 1980, "heavy", b, Options{})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "OuterWall_1979_heavy", res.Key)
	assert.Equal(t, 2.0, el.InnerRadiation)
}

func TestResolve_KindOverride(t *testing.T) {
	b := testBindings(t)

	// A zone-boundary partition is an OuterWall instance populated from
	// InnerWall records.
	el := model.NewElement(model.KindOuterWall, "partition")
	res, err := Resolve(el, 1980, "heavy", b, Options{Kind: model.KindInnerWall, ReverseLayers: true})
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "InnerWall_1979_heavy", res.Key)
	require.Len(t, el.Layers, 3)
}

func TestResolve_WindowCoefficients(t *testing.T) {
	b := testBindings(t)
	el := model.NewElement(model.KindWindow, "window")

	res, err := Resolve(el, 2000, "Kunststofffenster, Isolierverglasung", b, Options{})
	require.NoError(t, err)
	require.True(t, res.Matched)

	assert.Equal(t, 0.7, el.GValue)
	assert.Equal(t, 0.03, el.AConv)
	assert.Equal(t, 1.0, el.ShadingGTotal)
	assert.Equal(t, 180.0, el.ShadingMaxIrr)
	assert.Equal(t, 20.0, el.OuterConvection)
}

func TestResolve_InteriorKindGetsNoOuterCoefficients(t *testing.T) {
	b := testBindings(t)
	el := model.NewElement(model.KindInnerWall, "wall")

	res, err := Resolve(el, 1980, "heavy", b, Options{})
	require.NoError(t, err)
	require.True(t, res.Matched)

	assert.Equal(t, 5.0, el.InnerRadiation)
	assert.Zero(t, el.OuterRadiation)
	assert.Zero(t, el.OuterConvection)
}

func TestResolveByKey(t *testing.T) {
	b := testBindings(t)
	el := model.NewElement(model.KindOuterWall, "wall")

	err := ResolveByKey(el, "OuterWall_1995_heavy", b, false)
	require.NoError(t, err)
	assert.Equal(t, [2]int{1995, 2015}, el.AgeRange)
	require.Len(t, el.Layers, 1)
	assert.Equal(t, 0.175, el.Layers[0].Thickness)
}

func TestResolveByKey_Missing(t *testing.T) {
	b := testBindings(t)
	el := model.NewElement(model.KindOuterWall, "wall")

	err := ResolveByKey(el, "OuterWall_1800_heavy", b, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestResolve_RoundTripFromRecord(t *testing.T) {
	b := testBindings(t)

	// For every stored record, a characteristic lookup with the record's
	// own age range and technique must find that record again.
	for _, key := range b.Keys() {
		rec, ok := b.Record(key)
		require.True(t, ok)

		kind := recordKind(key)
		el := model.NewElement(kind, "lookup")
		res, err := Resolve(el, rec.AgeRange[0], rec.ConstructionType, b, Options{})
		require.NoError(t, err)
		require.True(t, res.Matched, "key %s", key)
		assert.Equal(t, key, res.Key)
	}
}

// recordKind derives the element kind from the key prefix of the test
// fixtures.
func recordKind(key string) model.ElementKind {
	for _, kind := range []model.ElementKind{
		model.KindOuterWall, model.KindInnerWall, model.KindWindow,
	} {
		if len(key) >= len(kind) && key[:len(kind)] == string(kind) {
			return kind
		}
	}
	return model.KindOuterWall
}

func TestResolve_MissingMaterialFails(t *testing.T) {
	records := []Record{
		{
			Key:              "OuterWall_1979_heavy",
			AgeRange:         [2]int{1979, 1994},
			ConstructionType: "heavy",
			Layers:           []LayerSpec{{ID: 0, Thickness: 0.24, MaterialID: 99}},
		},
	}
	b, err := NewBindings(records, nil)
	require.NoError(t, err)

	el := model.NewElement(model.KindOuterWall, "wall")
	_, err = Resolve(el, 1980, "heavy", b, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "material id 99")
}
