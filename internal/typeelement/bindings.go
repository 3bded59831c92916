// Package typeelement resolves normative construction assemblies from a
// type-element database onto building elements. Records describe one
// construction valid for a year range and construction technique; materials
// are referenced by numeric id and resolved separately.
package typeelement

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/buildsim/archetype-cli/internal/model"
)

// LayerSpec is one layer definition inside a record: a thickness plus a
// material reference. Specs are ordered from the inner face outward.
type LayerSpec struct {
	ID         int
	Thickness  float64
	MaterialID int
}

// Record is one normative construction assembly. Key encodes the element
// kind as a prefix plus a disambiguating suffix, e.g. "OuterWall_1979_heavy".
type Record struct {
	Key              string
	AgeRange         [2]int // inclusive construction-year bounds
	ConstructionType string

	InnerRadiation  float64
	InnerConvection float64
	OuterRadiation  float64
	OuterConvection float64

	GValue        float64
	AConv         float64
	ShadingGTotal float64
	ShadingMaxIrr float64

	Layers []LayerSpec
}

// MaterialSpec is one material entry of the database.
type MaterialSpec struct {
	ID                  int
	Name                string
	Density             float64
	ThermalConductivity float64
	HeatCapacity        float64
}

// Bindings is the read-only, in-memory form of a loaded type-element
// database. One Bindings may serve any number of concurrent resolutions.
type Bindings struct {
	records   map[string]Record
	materials map[int]MaterialSpec
	keys      []string // sorted, for deterministic iteration
}

// NewBindings indexes the given records and materials. Duplicate record keys
// and duplicate material ids are rejected.
func NewBindings(records []Record, materials []MaterialSpec) (*Bindings, error) {
	b := &Bindings{
		records:   make(map[string]Record, len(records)),
		materials: make(map[int]MaterialSpec, len(materials)),
	}
	for _, rec := range records {
		if rec.Key == "" {
			return nil, eris.New("typeelement: record with empty key")
		}
		if _, ok := b.records[rec.Key]; ok {
			return nil, eris.Errorf("typeelement: duplicate record key %q", rec.Key)
		}
		b.records[rec.Key] = rec
		b.keys = append(b.keys, rec.Key)
	}
	for _, mat := range materials {
		if _, ok := b.materials[mat.ID]; ok {
			return nil, eris.Errorf("typeelement: duplicate material id %d", mat.ID)
		}
		b.materials[mat.ID] = mat
	}
	sort.Strings(b.keys)
	return b, nil
}

// Record returns the record stored under key.
func (b *Bindings) Record(key string) (Record, bool) {
	rec, ok := b.records[key]
	return rec, ok
}

// Keys returns all record keys in sorted order.
func (b *Bindings) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Materials returns all material entries ordered by id.
func (b *Bindings) Materials() []MaterialSpec {
	out := make([]MaterialSpec, 0, len(b.materials))
	for _, mat := range b.materials {
		out = append(out, mat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NumRecords returns the number of construction records.
func (b *Bindings) NumRecords() int { return len(b.records) }

// NumMaterials returns the number of material entries.
func (b *Bindings) NumMaterials() int { return len(b.materials) }

// ResolveMaterial copies the properties of the material with the given id
// onto dst. It fails if the id is absent from the database.
func (b *Bindings) ResolveMaterial(dst *model.Material, id int) error {
	mat, ok := b.materials[id]
	if !ok {
		return eris.Errorf("typeelement: material id %d not found", id)
	}
	dst.ID = mat.ID
	dst.Name = mat.Name
	dst.Density = mat.Density
	dst.ThermalConductivity = mat.ThermalConductivity
	dst.HeatCapacity = mat.HeatCapacity
	return nil
}

// Validate checks referential integrity: every layer's material id must
// resolve and every age range must be ordered.
func (b *Bindings) Validate() error {
	for _, key := range b.keys {
		rec := b.records[key]
		if rec.AgeRange[0] > rec.AgeRange[1] {
			return eris.Errorf("typeelement: record %q has inverted age range [%d, %d]",
				key, rec.AgeRange[0], rec.AgeRange[1])
		}
		for _, layer := range rec.Layers {
			if layer.Thickness <= 0 {
				return eris.Errorf("typeelement: record %q layer %d has non-positive thickness",
					key, layer.ID)
			}
			if _, ok := b.materials[layer.MaterialID]; !ok {
				return eris.Errorf("typeelement: record %q layer %d references unknown material id %d",
					key, layer.ID, layer.MaterialID)
			}
		}
	}
	return nil
}
