// Package export writes generated buildings to consumable formats: a JSON
// report for downstream tooling and an XLSX envelope summary for manual
// review.
package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/buildsim/archetype-cli/internal/model"
)

// Report is the serializable form of one generated building together with
// roll-up figures per zone.
type Report struct {
	Building *model.Building `json:"building"`
	Zones    []ZoneSummary   `json:"zone_summaries"`
}

// ZoneSummary holds per-zone roll-up figures.
type ZoneSummary struct {
	Name          string  `json:"name"`
	Area          float64 `json:"area"`
	Volume        float64 `json:"volume"`
	ElementCount  int     `json:"element_count"`
	EnvelopeArea  float64 `json:"envelope_area"`
	WindowArea    float64 `json:"window_area"`
	InteriorArea  float64 `json:"interior_area"`
}

// BuildReport assembles the report for a building.
func BuildReport(b *model.Building) *Report {
	r := &Report{Building: b}
	for _, zone := range b.Zones {
		s := ZoneSummary{
			Name:         zone.Name,
			Area:         zone.Area,
			Volume:       zone.Volume,
			ElementCount: len(zone.Elements),
		}
		for _, el := range zone.Elements {
			switch el.Kind {
			case model.KindWindow:
				s.WindowArea += el.Area
			case model.KindInnerWall, model.KindCeiling, model.KindFloor:
				s.InteriorArea += el.Area
			default:
				s.EnvelopeArea += el.Area
			}
		}
		r.Zones = append(r.Zones, s)
	}
	return r
}

// WriteJSON writes the report to path as indented JSON.
func WriteJSON(b *model.Building, path string) error {
	data, err := json.MarshalIndent(BuildReport(b), "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal report")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}
