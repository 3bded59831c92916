package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsim/archetype-cli/internal/model"
)

func referenceParams() Params {
	return Params{
		Name:               "ReferenceDwelling",
		YearOfConstruction: 1980,
		Construction:       model.IWUHeavy,
		NumberOfFloors:     1,
		HeightOfFloors:     2.5,
		NetLeasedArea:      120,
	}
}

func TestEstimateEnvelope_ReferenceFixture(t *testing.T) {
	env, err := EstimateEnvelope(referenceParams())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, env.HeatedFloors, 1e-9)
	assert.InDelta(t, 120.0, env.LivingAreaPerFloor, 1e-9)
	assert.InDelta(t, 159.6, env.GroundFloorArea, 1e-9)
	assert.InDelta(t, 159.6, env.RoofArea, 1e-9)
	assert.InDelta(t, 24.0, env.WindowArea, 1e-9)
	assert.Zero(t, env.CellarWallArea)

	// facade = 0.66 * (120 + 50) = 112.2; outer = 1*112.2 - 0 - 24 = 88.2
	assert.InDelta(t, 112.2, env.FacadeArea, 1e-9)
	assert.InDelta(t, 88.2, env.OuterWallArea, 1e-9)
}

func TestEstimateEnvelope_AreaIdentity(t *testing.T) {
	// living_area_per_floor * heated_floors == net_leased_area for every
	// valid configuration.
	for attic := 0; attic <= 3; attic++ {
		for cellar := 0; cellar <= 3; cellar++ {
			for floors := 1; floors <= 4; floors++ {
				p := referenceParams()
				p.Attic = attic
				p.Cellar = cellar
				p.NumberOfFloors = floors

				env, err := EstimateEnvelope(p)
				require.NoError(t, err)
				assert.InDelta(t, p.NetLeasedArea, env.LivingAreaPerFloor*env.HeatedFloors, 1e-9,
					"attic=%d cellar=%d floors=%d", attic, cellar, floors)
			}
		}
	}
}

func TestEstimateEnvelope_HeatedFloors(t *testing.T) {
	p := referenceParams()
	p.NumberOfFloors = 2
	p.Attic = AtticHeated
	p.Cellar = CellarPartiallyHeated

	env, err := EstimateEnvelope(p)
	require.NoError(t, err)
	// 0.5 cellar + 2 floors + 0.75 * 1.0 attic
	assert.InDelta(t, 3.25, env.HeatedFloors, 1e-9)
}

func TestEstimateEnvelope_RoofFallback(t *testing.T) {
	// An unheated attic has no "roof per floor" contribution; the top
	// surface falls back to the per-roof coefficient.
	p := referenceParams()
	p.Attic = AtticUnheated

	env, err := EstimateEnvelope(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.33*env.LivingAreaPerFloor, env.RoofArea, 1e-9)
	assert.NotZero(t, env.RoofArea)
}

func TestEstimateEnvelope_DormerIncreasesRoof(t *testing.T) {
	base := referenceParams()
	withDormer := referenceParams()
	withDormer.Dormer = 1

	envBase, err := EstimateEnvelope(base)
	require.NoError(t, err)
	envDormer, err := EstimateEnvelope(withDormer)
	require.NoError(t, err)

	assert.InDelta(t, 1.3*envBase.RoofArea, envDormer.RoofArea, 1e-9)
}

func TestEstimateEnvelope_CellarWallArea(t *testing.T) {
	p := referenceParams()
	p.Cellar = CellarHeated

	env, err := EstimateEnvelope(p)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*env.FacadeArea, env.CellarWallArea, 1e-9)
	assert.InDelta(t, env.HeatedFloors*env.FacadeArea-env.CellarWallArea-env.WindowArea,
		env.OuterWallArea, 1e-9)
}

func TestEstimateEnvelope_ZeroHeatedFloors(t *testing.T) {
	p := referenceParams()
	p.NumberOfFloors = 0

	_, err := EstimateEnvelope(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroHeatedFloors)
}

func TestEstimateEnvelope_UnknownConfigValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"attic", func(p *Params) { p.Attic = 7 }},
		{"cellar", func(p *Params) { p.Cellar = -1 }},
		{"dormer", func(p *Params) { p.Dormer = 2 }},
		{"layout", func(p *Params) { p.Layout = 3 }},
		{"neighbours", func(p *Params) { p.NeighbourBuildings = 5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := referenceParams()
			tc.mutate(&p)
			_, err := EstimateEnvelope(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown")
		})
	}
}

func TestParams_Validate(t *testing.T) {
	p := referenceParams()
	require.NoError(t, p.Validate())

	bad := p
	bad.NumberOfFloors = 0
	assert.Error(t, bad.Validate())

	bad = p
	bad.NetLeasedArea = -5
	assert.Error(t, bad.Validate())

	bad = p
	bad.Construction = "straw"
	assert.Error(t, bad.Validate())

	bad = p
	bad.Name = ""
	assert.Error(t, bad.Validate())
}
