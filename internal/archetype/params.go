package archetype

import (
	"github.com/rotisserie/eris"

	"github.com/buildsim/archetype-cli/internal/model"
)

// Params are the archetype-level inputs of one building generation. The five
// categorical values (Layout, NeighbourBuildings, Attic, Cellar, Dormer)
// default to 0.
type Params struct {
	Name               string                `json:"name" yaml:"name"`
	YearOfConstruction int                   `json:"year_of_construction" yaml:"year_of_construction"`
	Construction       model.ConstructionTag `json:"construction" yaml:"construction"`
	NumberOfFloors     int                   `json:"number_of_floors" yaml:"number_of_floors"`
	HeightOfFloors     float64               `json:"height_of_floors" yaml:"height_of_floors"` // m
	NetLeasedArea      float64               `json:"net_leased_area" yaml:"net_leased_area"`   // m2

	Layout             int `json:"layout" yaml:"layout"`
	NeighbourBuildings int `json:"neighbour_buildings" yaml:"neighbour_buildings"`
	Attic              int `json:"attic" yaml:"attic"`
	Cellar             int `json:"cellar" yaml:"cellar"`
	Dormer             int `json:"dormer" yaml:"dormer"`
}

// Validate checks the numeric preconditions of the estimation pipeline.
// Categorical values are checked against their tables during estimation.
func (p Params) Validate() error {
	if p.Name == "" {
		return eris.New("archetype: building name is required")
	}
	if p.YearOfConstruction <= 0 {
		return eris.New("archetype: year of construction is required")
	}
	if !p.Construction.Valid() {
		return eris.Errorf("archetype: unknown construction tag %q", p.Construction)
	}
	if p.NumberOfFloors < 1 {
		return eris.New("archetype: number of floors must be at least 1")
	}
	if p.HeightOfFloors <= 0 {
		return eris.New("archetype: height of floors must be positive")
	}
	if p.NetLeasedArea <= 0 {
		return eris.New("archetype: net leased area must be positive")
	}
	return nil
}
