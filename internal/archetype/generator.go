// Package archetype generates parametric single-family-dwelling building
// models from archetype inputs following the IWU short procedure. The
// estimated envelope areas are attached to zone elements whose construction
// assemblies come from the type-element database.
package archetype

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/buildsim/archetype-cli/internal/model"
	"github.com/buildsim/archetype-cli/internal/typeelement"
	"github.com/buildsim/archetype-cli/internal/useconditions"
)

// ZoneSpec configures one thermal zone of the archetype: its share of the
// net leased area, its usage profile, and optional overrides of the
// building-level floor count and height.
type ZoneSpec struct {
	Name           string  `json:"name" yaml:"name"`
	AreaFraction   float64 `json:"area_fraction" yaml:"area_fraction"`
	Usage          string  `json:"usage" yaml:"usage"`
	NumberOfFloors int     `json:"number_of_floors,omitempty" yaml:"number_of_floors,omitempty"`
	HeightOfFloors float64 `json:"height_of_floors,omitempty" yaml:"height_of_floors,omitempty"`
}

// defaultZones is the single-dwelling layout: one zone over the full area.
var defaultZones = []ZoneSpec{
	{Name: "SingleDwelling", AreaFraction: 1.0, Usage: "Living"},
}

// Generator assembles buildings against one read-only type-element database
// and one use-condition registry. A Generator is safe for concurrent use.
type Generator struct {
	bindings *typeelement.Bindings
	profiles *useconditions.Registry
	zones    []ZoneSpec
}

// NewGenerator creates a generator with the default single-dwelling zone
// layout.
func NewGenerator(b *typeelement.Bindings, profiles *useconditions.Registry) *Generator {
	return &Generator{bindings: b, profiles: profiles, zones: defaultZones}
}

// WithZones replaces the zone layout. Fractions should sum to 1.
func (g *Generator) WithZones(zones []ZoneSpec) *Generator {
	g.zones = zones
	return g
}

// Generate runs the full archetype pipeline and returns the assembled
// building. Generation is fail-fast: on error the returned building is nil
// and no partially configured state survives.
func (g *Generator) Generate(p Params) (*model.Building, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	env, err := EstimateEnvelope(p)
	if err != nil {
		return nil, err
	}

	b := model.NewBuilding(p.Name)
	b.YearOfConstruction = p.YearOfConstruction
	b.Construction = p.Construction
	b.NumberOfFloors = p.NumberOfFloors
	b.HeightOfFloors = p.HeightOfFloors

	// Net leased area is re-derived bottom-up from zone areas; the input
	// value only feeds the zone split.
	for _, spec := range g.zones {
		zone := model.NewZone(spec.Name)
		zone.Area = p.NetLeasedArea * spec.AreaFraction
		zone.NumberOfFloors = p.NumberOfFloors
		zone.HeightOfFloors = p.HeightOfFloors
		if spec.NumberOfFloors > 0 {
			zone.NumberOfFloors = spec.NumberOfFloors
		}
		if spec.HeightOfFloors > 0 {
			zone.HeightOfFloors = spec.HeightOfFloors
		}
		cond, err := g.profiles.Get(spec.Usage)
		if err != nil {
			return nil, err
		}
		cond.WithAHU = false
		zone.UseConditions = cond
		b.AddZone(zone)
	}

	nrOfOrientations := float64(len(outerWallTemplates))

	for _, tpl := range outerWallTemplates {
		b.OuterArea[model.Orientation(tpl.Orientation)] = env.OuterWallArea / nrOfOrientations
		if err := g.populate(b, model.KindOuterWall, tpl, p.YearOfConstruction, p.Construction.Technique()); err != nil {
			return nil, err
		}
	}

	for _, tpl := range windowTemplates {
		b.WindowArea[model.Orientation(tpl.Orientation)] = env.WindowArea / nrOfOrientations
		if err := g.populate(b, model.KindWindow, tpl, p.YearOfConstruction, p.Construction.WindowTechnique()); err != nil {
			return nil, err
		}
	}

	for _, tpl := range roofTemplates {
		b.OuterArea[model.Orientation(tpl.Orientation)] = env.RoofArea
		if err := g.populate(b, model.KindRooftop, tpl, p.YearOfConstruction, p.Construction.Technique()); err != nil {
			return nil, err
		}
	}

	for _, tpl := range groundFloorTemplates {
		b.OuterArea[model.Orientation(tpl.Orientation)] = env.GroundFloorArea
		if err := g.populate(b, model.KindGroundFloor, tpl, p.YearOfConstruction, p.Construction.Technique()); err != nil {
			return nil, err
		}
	}

	for _, tpl := range innerWallTemplates {
		if err := g.populate(b, model.KindInnerWall, tpl, p.YearOfConstruction, p.Construction.Technique()); err != nil {
			return nil, err
		}
	}

	// Ceilings and floors only exist between storeys.
	if p.NumberOfFloors > 1 {
		for _, tpl := range ceilingTemplates {
			if err := g.populate(b, model.KindCeiling, tpl, p.YearOfConstruction, p.Construction.Technique()); err != nil {
				return nil, err
			}
		}
		for _, tpl := range floorTemplates {
			if err := g.populate(b, model.KindFloor, tpl, p.YearOfConstruction, p.Construction.Technique()); err != nil {
				return nil, err
			}
		}
	}

	for orientation, area := range b.OuterArea {
		b.SetOuterWallArea(area, float64(orientation))
	}
	for orientation, area := range b.WindowArea {
		b.SetWindowArea(area, float64(orientation))
	}

	for _, zone := range b.Zones {
		zone.CalcInnerWallArea()
		zone.CalcVolume()
	}

	zap.L().Info("archetype: building generated",
		zap.String("name", p.Name),
		zap.Int("year", p.YearOfConstruction),
		zap.String("construction", string(p.Construction)),
		zap.Float64("net_leased_area", b.NetLeasedArea),
		zap.Float64("outer_wall_area", env.OuterWallArea),
		zap.Float64("window_area", env.WindowArea),
		zap.Float64("roof_area", env.RoofArea),
		zap.Int("zones", len(b.Zones)),
	)

	return b, nil
}

// populate creates one element per zone from the template and resolves its
// construction record. A missing record is a hard failure: half-initialized
// elements must not reach the export stage.
func (g *Generator) populate(b *model.Building, kind model.ElementKind, tpl elementTemplate, year int, technique string) error {
	for _, zone := range b.Zones {
		el := model.NewElement(kind, tpl.Name)
		res, err := typeelement.Resolve(el, year, technique, g.bindings, typeelement.Options{})
		if err != nil {
			return err
		}
		if !res.Matched {
			return eris.Errorf("archetype: no %s construction record for year %d, technique %q",
				kind, year, technique)
		}
		el.Tilt = tpl.Tilt
		el.Orientation = tpl.Orientation
		zone.AddElement(el)
	}
	return nil
}
