// Package model defines the building-physics object graph produced by the
// archetype generator: materials, layers, envelope elements, zones and
// buildings. Instances are assembled once per generation run and are plain
// data afterwards.
package model

// Material holds normative thermal properties of one building material.
// ID is the stable database identifier; two layers referencing the same
// database material still carry independent Material copies unless the
// caller deduplicates them.
type Material struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Density             float64 `json:"density"`              // kg/m3
	ThermalConductivity float64 `json:"thermal_conductivity"` // W/(m K)
	HeatCapacity        float64 `json:"heat_capacity"`        // kJ/(kg K)
}

// Layer is one physical slab within a construction assembly. Order within
// BuildingElement.Layers is significant: it represents stacking from the
// inner face to the outer face.
type Layer struct {
	ID        int      `json:"id"`
	Thickness float64  `json:"thickness"` // m
	Material  Material `json:"material"`
}
