package store

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/buildsim/archetype-cli/internal/typeelement"
)

// JSONStore reads the database from two JSON files: a keyed object of
// type-element records and a keyed object of materials. Both files may carry
// a "version" sentinel entry which is skipped.
type JSONStore struct {
	elementsPath  string
	materialsPath string
}

// NewJSONStore creates a JSON-file backend.
func NewJSONStore(elementsPath, materialsPath string) *JSONStore {
	return &JSONStore{elementsPath: elementsPath, materialsPath: materialsPath}
}

// recordJSON is the on-disk shape of one type-element record.
type recordJSON struct {
	BuildingAgeGroup [2]int  `json:"building_age_group"`
	ConstructionType string  `json:"construction_type"`
	InnerRadiation   float64 `json:"inner_radiation"`
	InnerConvection  float64 `json:"inner_convection"`
	OuterRadiation   float64 `json:"outer_radiation"`
	OuterConvection  float64 `json:"outer_convection"`
	GValue           float64 `json:"g_value"`
	AConv            float64 `json:"a_conv"`
	ShadingGTotal    float64 `json:"shading_g_total"`
	ShadingMaxIrr    float64 `json:"shading_max_irr"`
	Layer            map[string]layerJSON `json:"layer"`
}

type layerJSON struct {
	Thickness float64 `json:"thickness"`
	Material  struct {
		MaterialID int `json:"material_id"`
	} `json:"material"`
}

// materialJSON is the on-disk shape of one material entry, keyed by id.
type materialJSON struct {
	Name                string  `json:"name"`
	Density             float64 `json:"density"`
	ThermalConductivity float64 `json:"thermal_conductivity"`
	HeatCapacity        float64 `json:"heat_capacity"`
}

// Load reads both files and assembles the bindings. Layer maps are ordered
// by their numeric key since JSON objects carry no order of their own.
func (s *JSONStore) Load(_ context.Context) (*typeelement.Bindings, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}
	materials, err := s.loadMaterials()
	if err != nil {
		return nil, err
	}
	b, err := typeelement.NewBindings(records, materials)
	if err != nil {
		return nil, eris.Wrap(err, "store: index json database")
	}
	return b, nil
}

func (s *JSONStore) loadRecords() ([]typeelement.Record, error) {
	data, err := os.ReadFile(s.elementsPath)
	if err != nil {
		return nil, eris.Wrapf(err, "store: read elements %s", s.elementsPath)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrapf(err, "store: parse elements %s", s.elementsPath)
	}

	var records []typeelement.Record
	for key, msg := range raw {
		if key == "version" {
			continue
		}
		var in recordJSON
		if err := json.Unmarshal(msg, &in); err != nil {
			return nil, eris.Wrapf(err, "store: parse element record %q", key)
		}
		rec := typeelement.Record{
			Key:              key,
			AgeRange:         in.BuildingAgeGroup,
			ConstructionType: in.ConstructionType,
			InnerRadiation:   in.InnerRadiation,
			InnerConvection:  in.InnerConvection,
			OuterRadiation:   in.OuterRadiation,
			OuterConvection:  in.OuterConvection,
			GValue:           in.GValue,
			AConv:            in.AConv,
			ShadingGTotal:    in.ShadingGTotal,
			ShadingMaxIrr:    in.ShadingMaxIrr,
		}
		rec.Layers, err = orderedLayers(key, in.Layer)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// orderedLayers sorts the layer map by numeric id into the stacking order.
func orderedLayers(key string, layers map[string]layerJSON) ([]typeelement.LayerSpec, error) {
	ids := make([]int, 0, len(layers))
	byID := make(map[int]layerJSON, len(layers))
	for idStr, layer := range layers {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, eris.Wrapf(err, "store: record %q has non-numeric layer id %q", key, idStr)
		}
		ids = append(ids, id)
		byID[id] = layer
	}
	sort.Ints(ids)

	specs := make([]typeelement.LayerSpec, 0, len(ids))
	for _, id := range ids {
		layer := byID[id]
		specs = append(specs, typeelement.LayerSpec{
			ID:         id,
			Thickness:  layer.Thickness,
			MaterialID: layer.Material.MaterialID,
		})
	}
	return specs, nil
}

func (s *JSONStore) loadMaterials() ([]typeelement.MaterialSpec, error) {
	data, err := os.ReadFile(s.materialsPath)
	if err != nil {
		return nil, eris.Wrapf(err, "store: read materials %s", s.materialsPath)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrapf(err, "store: parse materials %s", s.materialsPath)
	}

	var materials []typeelement.MaterialSpec
	for key, msg := range raw {
		if key == "version" {
			continue
		}
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, eris.Wrapf(err, "store: non-numeric material id %q", key)
		}
		var in materialJSON
		if err := json.Unmarshal(msg, &in); err != nil {
			return nil, eris.Wrapf(err, "store: parse material %q", key)
		}
		materials = append(materials, typeelement.MaterialSpec{
			ID:                  id,
			Name:                in.Name,
			Density:             in.Density,
			ThermalConductivity: in.ThermalConductivity,
			HeatCapacity:        in.HeatCapacity,
		})
	}
	return materials, nil
}

// Close is a no-op for the file backend.
func (s *JSONStore) Close() error { return nil }
