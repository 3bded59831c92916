package model

import "github.com/google/uuid"

// Zone is one thermal zone of a building. Floor count and height default to
// the building-level values and may be overridden per zone.
type Zone struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Area           float64       `json:"area"` // m2 net leased area of the zone
	NumberOfFloors int           `json:"number_of_floors"`
	HeightOfFloors float64       `json:"height_of_floors"` // m
	Volume         float64       `json:"volume"`           // m3, derived
	UseConditions  UseConditions `json:"use_conditions"`

	Elements []*BuildingElement `json:"elements"`
}

// NewZone creates a zone with a fresh instance id.
func NewZone(name string) *Zone {
	return &Zone{ID: uuid.NewString(), Name: name}
}

// AddElement appends an element to the zone.
func (z *Zone) AddElement(el *BuildingElement) {
	z.Elements = append(z.Elements, el)
}

// ElementsOfKind returns the zone's elements of the given kind in insertion
// order.
func (z *Zone) ElementsOfKind(kind ElementKind) []*BuildingElement {
	var out []*BuildingElement
	for _, el := range z.Elements {
		if el.Kind == kind {
			out = append(out, el)
		}
	}
	return out
}

// interiorKinds are the partition elements that share the approximated
// interior surface area.
var interiorKinds = []ElementKind{KindInnerWall, KindCeiling, KindFloor}

// CalcInnerWallArea approximates the zone's interior partition area from the
// typical room dimensions of its use profile (length*h + 2*width*h per
// floor) and distributes it evenly over the zone's inner walls, ceilings and
// floors. Must run after the envelope areas are committed.
func (z *Zone) CalcInnerWallArea() {
	length := z.UseConditions.TypicalRoomLength
	width := z.UseConditions.TypicalRoomWidth
	total := (length + 2*width) * z.HeightOfFloors * float64(z.NumberOfFloors)

	var interior []*BuildingElement
	for _, kind := range interiorKinds {
		interior = append(interior, z.ElementsOfKind(kind)...)
	}
	if len(interior) == 0 {
		return
	}
	share := total / float64(len(interior))
	for _, el := range interior {
		el.Area = share
	}
}

// CalcVolume derives the zone's air volume from its area, floor height and
// floor count.
func (z *Zone) CalcVolume() {
	z.Volume = z.Area * z.HeightOfFloors * float64(z.NumberOfFloors)
}
