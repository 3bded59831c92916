package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/buildsim/archetype-cli/internal/model"
)

// WriteXLSX writes an envelope summary workbook: one sheet of zone figures
// and one sheet with a row per building element.
func WriteXLSX(b *model.Building, path string) error {
	f := xlsx.NewFile()

	zones, err := f.AddSheet("Zones")
	if err != nil {
		return eris.Wrap(err, "export: add zones sheet")
	}
	addRow(zones, "Zone", "Area [m2]", "Volume [m3]", "Floors", "Floor Height [m]", "Usage")
	for _, zone := range b.Zones {
		addRow(zones,
			zone.Name,
			formatFloat(zone.Area),
			formatFloat(zone.Volume),
			fmt.Sprintf("%d", zone.NumberOfFloors),
			formatFloat(zone.HeightOfFloors),
			zone.UseConditions.Usage,
		)
	}

	elements, err := f.AddSheet("Elements")
	if err != nil {
		return eris.Wrap(err, "export: add elements sheet")
	}
	addRow(elements, "Zone", "Element", "Kind", "Orientation", "Tilt", "Area [m2]",
		"Construction", "Layers", "Inner Rad", "Inner Conv", "Outer Rad", "Outer Conv", "g-Value")
	for _, zone := range b.Zones {
		for _, el := range zone.Elements {
			addRow(elements,
				zone.Name,
				el.Name,
				string(el.Kind),
				formatFloat(el.Orientation),
				formatFloat(el.Tilt),
				formatFloat(el.Area),
				el.ConstructionType,
				fmt.Sprintf("%d", len(el.Layers)),
				formatFloat(el.InnerRadiation),
				formatFloat(el.InnerConvection),
				formatFloat(el.OuterRadiation),
				formatFloat(el.OuterConvection),
				formatFloat(el.GValue),
			)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
