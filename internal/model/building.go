package model

import (
	"strconv"

	"github.com/google/uuid"
)

// Orientation is a surface orientation in degrees from north, with negative
// sentinels for roof and ground surfaces. The named type lets per-orientation
// maps marshal as JSON objects keyed by the degree value.
type Orientation float64

// Orientation sentinels for non-facade surfaces.
const (
	OrientationRoof   = -1.0
	OrientationGround = -2.0
)

// MarshalText renders the orientation as its degree value.
func (o Orientation) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(o), 'f', -1, 64), nil
}

// UnmarshalText parses a degree value.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return err
	}
	*o = Orientation(v)
	return nil
}

// Building is the root of one generated archetype. NetLeasedArea is derived
// bottom-up from zone areas as zones are added, not set directly.
type Building struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	YearOfConstruction int             `json:"year_of_construction"`
	Construction       ConstructionTag `json:"construction"`
	NumberOfFloors     int             `json:"number_of_floors"`
	HeightOfFloors     float64         `json:"height_of_floors"`
	NetLeasedArea      float64         `json:"net_leased_area"`

	Zones []*Zone `json:"zones"`

	// OuterArea and WindowArea hold the computed total areas per
	// orientation before they are committed to individual elements.
	OuterArea  map[Orientation]float64 `json:"outer_area"`
	WindowArea map[Orientation]float64 `json:"window_area"`
}

// NewBuilding creates an empty building shell.
func NewBuilding(name string) *Building {
	return &Building{
		ID:         uuid.NewString(),
		Name:       name,
		OuterArea:  map[Orientation]float64{},
		WindowArea: map[Orientation]float64{},
	}
}

// AddZone appends the zone and accumulates its area into the building's net
// leased area.
func (b *Building) AddZone(z *Zone) {
	b.Zones = append(b.Zones, z)
	b.NetLeasedArea += z.Area
}

// SetOuterWallArea distributes a total outer-surface area for one
// orientation across all matching opaque elements, weighted by each zone's
// share of the net leased area and split evenly within a zone.
func (b *Building) SetOuterWallArea(area, orientation float64) {
	b.setElementArea(area, orientation, func(el *BuildingElement) bool {
		switch el.Kind {
		case KindOuterWall, KindRooftop, KindGroundFloor, KindDoor:
			return el.Orientation == orientation
		}
		return false
	})
}

// SetWindowArea distributes a total window area for one orientation across
// all matching window elements, weighted like SetOuterWallArea.
func (b *Building) SetWindowArea(area, orientation float64) {
	b.setElementArea(area, orientation, func(el *BuildingElement) bool {
		return el.Kind == KindWindow && el.Orientation == orientation
	})
}

func (b *Building) setElementArea(area, orientation float64, match func(*BuildingElement) bool) {
	if b.NetLeasedArea == 0 {
		return
	}
	for _, zone := range b.Zones {
		var targets []*BuildingElement
		for _, el := range zone.Elements {
			if match(el) {
				targets = append(targets, el)
			}
		}
		if len(targets) == 0 {
			continue
		}
		share := area * (zone.Area / b.NetLeasedArea) / float64(len(targets))
		for _, el := range targets {
			el.Area = share
		}
	}
}
