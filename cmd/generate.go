package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/buildsim/archetype-cli/internal/archetype"
	"github.com/buildsim/archetype-cli/internal/export"
	"github.com/buildsim/archetype-cli/internal/model"
)

var generateFlags struct {
	name         string
	year         int
	construction string
	floors       int
	floorHeight  float64
	area         float64
	layout       int
	neighbours   int
	attic        int
	cellar       int
	dormer       int
	outJSON      string
	outXLSX      string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one archetype building",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(cmd.Context())
		if err != nil {
			return err
		}

		params := generateParams()
		building, err := gen.Generate(params)
		if err != nil {
			return err
		}

		if generateFlags.outJSON != "" {
			if err := export.WriteJSON(building, generateFlags.outJSON); err != nil {
				return err
			}
			zap.L().Info("generate: report written", zap.String("path", generateFlags.outJSON))
		}
		if generateFlags.outXLSX != "" {
			if err := export.WriteXLSX(building, generateFlags.outXLSX); err != nil {
				return err
			}
			zap.L().Info("generate: workbook written", zap.String("path", generateFlags.outXLSX))
		}

		fmt.Printf("%s: %d zones, net leased area %.1f m2\n",
			building.Name, len(building.Zones), building.NetLeasedArea)
		return nil
	},
}

func generateParams() archetype.Params {
	construction := generateFlags.construction
	if construction == "" {
		construction = cfg.Generate.Construction
	}
	floorHeight := generateFlags.floorHeight
	if floorHeight == 0 {
		floorHeight = cfg.Generate.HeightOfFloors
	}
	return archetype.Params{
		Name:               generateFlags.name,
		YearOfConstruction: generateFlags.year,
		Construction:       model.ConstructionTag(construction),
		NumberOfFloors:     generateFlags.floors,
		HeightOfFloors:     floorHeight,
		NetLeasedArea:      generateFlags.area,
		Layout:             generateFlags.layout,
		NeighbourBuildings: generateFlags.neighbours,
		Attic:              generateFlags.attic,
		Cellar:             generateFlags.cellar,
		Dormer:             generateFlags.dormer,
	}
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.name, "name", "", "building name (required)")
	f.IntVar(&generateFlags.year, "year", 0, "year of construction (required)")
	f.StringVar(&generateFlags.construction, "construction", "", "construction tag (iwu_heavy, iwu_light, kfw_40..kfw_100)")
	f.IntVar(&generateFlags.floors, "floors", 1, "number of floors above ground")
	f.Float64Var(&generateFlags.floorHeight, "floor-height", 0, "average floor height in m")
	f.Float64Var(&generateFlags.area, "area", 0, "net leased area in m2 (required)")
	f.IntVar(&generateFlags.layout, "layout", 0, "floor plan layout: 0 compact, 1 elongated")
	f.IntVar(&generateFlags.neighbours, "neighbours", 0, "number of neighbour buildings (0-2)")
	f.IntVar(&generateFlags.attic, "attic", 0, "attic design: 0 flat roof, 1 unheated, 2 partly heated, 3 heated")
	f.IntVar(&generateFlags.cellar, "cellar", 0, "cellar design: 0 none, 1 unheated, 2 partly heated, 3 heated")
	f.IntVar(&generateFlags.dormer, "dormer", 0, "dormer attached to roof: 0 no, 1 yes")
	f.StringVar(&generateFlags.outJSON, "out", "", "write JSON report to this path")
	f.StringVar(&generateFlags.outXLSX, "xlsx", "", "write XLSX summary to this path")

	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("year")
	_ = generateCmd.MarkFlagRequired("area")

	rootCmd.AddCommand(generateCmd)
}
