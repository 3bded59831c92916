package archetype

import "github.com/rotisserie/eris"

// Estimation coefficients following the IWU short procedure. Each
// configuration axis is a closed finite mapping; an input outside a table is
// a configuration error, never a silent default.

const (
	livingAreaFactor      = 0.75 // share of a heated attic counted as living area
	bottomBuildingClosure = 1.33 // ground-floor area per living area per floor
	upperBuildingClosure  = 1.0
	windowAreaFactor      = 0.2 // window area per net leased area
	cellarWallAreaFactor  = 0.5 // cellar wall area per facade area
)

// Layout of the floor plan.
const (
	LayoutCompact   = 0
	LayoutElongated = 1
)

// facadeToFloorArea maps layout to the facade-to-floor-area ratio.
var facadeToFloorArea = map[int]float64{
	LayoutCompact:   0.66,
	LayoutElongated: 0.8,
}

// extraFloorAreaTable maps the neighbour-building count to the m2 added to
// the per-floor area for facade sizing. Fewer neighbours expose more facade.
var extraFloorAreaTable = map[int]float64{
	0: 50.0,
	1: 30.0,
	2: 10.0,
}

// Attic designs.
const (
	AtticFlatRoof        = 0
	AtticUnheated        = 1
	AtticPartiallyHeated = 2
	AtticHeated          = 3
)

// atticCoeffs holds the per-attic-design coefficients.
type atticCoeffs struct {
	heatedFactor float64 // heated floor-equivalent contributed by the attic
	areaPerFloor float64 // roof area per living area per floor
	areaPerRoof  float64 // top-floor area fallback per living area per floor
}

var atticTable = map[int]atticCoeffs{
	AtticFlatRoof:        {heatedFactor: 0.0, areaPerFloor: 1.33, areaPerRoof: 0.0},
	AtticUnheated:        {heatedFactor: 0.0, areaPerFloor: 0.0, areaPerRoof: 1.33},
	AtticPartiallyHeated: {heatedFactor: 0.5, areaPerFloor: 0.75, areaPerRoof: 0.67},
	AtticHeated:          {heatedFactor: 1.0, areaPerFloor: 1.5, areaPerRoof: 0.0},
}

// Cellar designs.
const (
	CellarNone            = 0
	CellarUnheated        = 1
	CellarPartiallyHeated = 2
	CellarHeated          = 3
)

// heatedCellarFactor maps cellar design to the heated floor-equivalent the
// cellar contributes.
var heatedCellarFactor = map[int]float64{
	CellarNone:            0.0,
	CellarUnheated:        0.0,
	CellarPartiallyHeated: 0.5,
	CellarHeated:          1.0,
}

// dormerFactor maps dormer presence to the roof area multiplier.
var dormerFactor = map[int]float64{
	0: 1.0,
	1: 1.3,
}

func lookupLayout(layout int) (float64, error) {
	v, ok := facadeToFloorArea[layout]
	if !ok {
		return 0, eris.Errorf("archetype: unknown residential layout %d", layout)
	}
	return v, nil
}

func lookupNeighbours(n int) (float64, error) {
	v, ok := extraFloorAreaTable[n]
	if !ok {
		return 0, eris.Errorf("archetype: unknown neighbour count %d", n)
	}
	return v, nil
}

func lookupAttic(attic int) (atticCoeffs, error) {
	v, ok := atticTable[attic]
	if !ok {
		return atticCoeffs{}, eris.Errorf("archetype: unknown attic design %d", attic)
	}
	return v, nil
}

func lookupCellar(cellar int) (float64, error) {
	v, ok := heatedCellarFactor[cellar]
	if !ok {
		return 0, eris.Errorf("archetype: unknown cellar design %d", cellar)
	}
	return v, nil
}

func lookupDormer(dormer int) (float64, error) {
	v, ok := dormerFactor[dormer]
	if !ok {
		return 0, eris.Errorf("archetype: unknown dormer flag %d", dormer)
	}
	return v, nil
}
