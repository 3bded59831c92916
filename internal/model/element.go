package model

import "github.com/google/uuid"

// ElementKind identifies the structural role of a building element. The kind
// string doubles as the key prefix of the element's construction records in
// the type-element database.
type ElementKind string

const (
	KindOuterWall   ElementKind = "OuterWall"
	KindInnerWall   ElementKind = "InnerWall"
	KindWindow      ElementKind = "Window"
	KindRooftop     ElementKind = "Rooftop"
	KindGroundFloor ElementKind = "GroundFloor"
	KindCeiling     ElementKind = "Ceiling"
	KindFloor       ElementKind = "Floor"
	KindDoor        ElementKind = "Door"
)

// CoefficientClass groups element kinds by which exchange coefficients their
// construction records carry.
type CoefficientClass int

const (
	// ClassInterior elements exchange heat on the inner face only.
	ClassInterior CoefficientClass = iota
	// ClassOpaque elements carry inner and outer radiative/convective
	// coefficients.
	ClassOpaque
	// ClassWindow elements carry outer coefficients plus solar gain and
	// shading parameters.
	ClassWindow
)

// Class returns the coefficient class of the kind. Ground floors border soil
// and take interior coefficients only.
func (k ElementKind) Class() CoefficientClass {
	switch k {
	case KindOuterWall, KindRooftop, KindDoor:
		return ClassOpaque
	case KindWindow:
		return ClassWindow
	default:
		return ClassInterior
	}
}

// BuildingElement is one envelope or partition surface of a zone. Geometry
// (area, tilt, orientation) is assigned by the archetype generator;
// construction data (age range, coefficients, layers) by the type-element
// resolver.
type BuildingElement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Kind        ElementKind `json:"kind"`
	Area        float64     `json:"area"`        // m2
	Tilt        float64     `json:"tilt"`        // degrees from horizontal
	Orientation float64     `json:"orientation"` // degrees from north; -1 roof, -2 ground

	AgeRange         [2]int `json:"age_range"`
	ConstructionType string `json:"construction_type"`

	InnerRadiation  float64 `json:"inner_radiation"`
	InnerConvection float64 `json:"inner_convection"`
	OuterRadiation  float64 `json:"outer_radiation,omitempty"`
	OuterConvection float64 `json:"outer_convection,omitempty"`

	// Window-only parameters.
	GValue        float64 `json:"g_value,omitempty"`
	AConv         float64 `json:"a_conv,omitempty"`
	ShadingGTotal float64 `json:"shading_g_total,omitempty"`
	ShadingMaxIrr float64 `json:"shading_max_irr,omitempty"`

	// Layers is ordered from one face to the other; see Layer.
	Layers []Layer `json:"layers"`
}

// NewElement creates an element of the given kind with a fresh instance id.
func NewElement(kind ElementKind, name string) *BuildingElement {
	return &BuildingElement{
		ID:   uuid.NewString(),
		Name: name,
		Kind: kind,
	}
}
