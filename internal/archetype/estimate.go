package archetype

import "github.com/rotisserie/eris"

// ErrZeroHeatedFloors is returned when the heated floor-equivalents of a
// configuration evaluate to zero, which would make the per-floor living area
// undefined.
var ErrZeroHeatedFloors = eris.New("archetype: effective heated floor count is zero")

// Envelope holds the estimated surface areas of one building configuration.
// All values are m2 except HeatedFloors (floor-equivalents) and
// LivingAreaPerFloor (m2 per floor-equivalent).
type Envelope struct {
	HeatedFloors       float64 `json:"heated_floors"`
	LivingAreaPerFloor float64 `json:"living_area_per_floor"`
	GroundFloorArea    float64 `json:"ground_floor_area"`
	RoofArea           float64 `json:"roof_area"`
	FacadeArea         float64 `json:"facade_area"`
	WindowArea         float64 `json:"window_area"`
	CellarWallArea     float64 `json:"cellar_wall_area"`
	OuterWallArea      float64 `json:"outer_wall_area"`
}

// EstimateEnvelope runs the IWU estimation chain for the given parameters.
// The stages are ordered by data dependency; any missing table entry or a
// zero heated floor count aborts with a domain error.
func EstimateEnvelope(p Params) (Envelope, error) {
	attic, err := lookupAttic(p.Attic)
	if err != nil {
		return Envelope{}, err
	}
	cellar, err := lookupCellar(p.Cellar)
	if err != nil {
		return Envelope{}, err
	}
	dormer, err := lookupDormer(p.Dormer)
	if err != nil {
		return Envelope{}, err
	}
	extraFloorArea, err := lookupNeighbours(p.NeighbourBuildings)
	if err != nil {
		return Envelope{}, err
	}
	facadeRatio, err := lookupLayout(p.Layout)
	if err != nil {
		return Envelope{}, err
	}

	var env Envelope

	env.HeatedFloors = cellar + float64(p.NumberOfFloors) + livingAreaFactor*attic.heatedFactor
	if env.HeatedFloors == 0 {
		return Envelope{}, eris.Wrapf(ErrZeroHeatedFloors,
			"archetype: floors=%d attic=%d cellar=%d", p.NumberOfFloors, p.Attic, p.Cellar)
	}

	env.LivingAreaPerFloor = p.NetLeasedArea / env.HeatedFloors

	env.GroundFloorArea = bottomBuildingClosure * env.LivingAreaPerFloor

	env.RoofArea = upperBuildingClosure * dormer * attic.areaPerFloor * env.LivingAreaPerFloor
	if env.RoofArea == 0 {
		// Flat-roof style attics contribute no sloped roof area but the
		// topmost zone still needs a closing surface.
		env.RoofArea = attic.areaPerRoof * env.LivingAreaPerFloor
	}

	env.FacadeArea = facadeRatio * (env.LivingAreaPerFloor + extraFloorArea)

	env.WindowArea = windowAreaFactor * p.NetLeasedArea

	env.CellarWallArea = cellarWallAreaFactor * cellar * env.FacadeArea
	env.OuterWallArea = env.HeatedFloors*env.FacadeArea - env.CellarWallArea - env.WindowArea

	return env, nil
}
