package archetype

import "github.com/buildsim/archetype-cli/internal/model"

// elementTemplate names one envelope surface with its fixed tilt and
// orientation. The defaults describe a building in north-south orientation.
type elementTemplate struct {
	Name        string
	Tilt        float64
	Orientation float64
}

var outerWallTemplates = []elementTemplate{
	{Name: "Exterior Facade North", Tilt: 90.0, Orientation: 0.0},
	{Name: "Exterior Facade East", Tilt: 90.0, Orientation: 90.0},
	{Name: "Exterior Facade South", Tilt: 90.0, Orientation: 180.0},
	{Name: "Exterior Facade West", Tilt: 90.0, Orientation: 270.0},
}

var windowTemplates = []elementTemplate{
	{Name: "Window Facade North", Tilt: 90.0, Orientation: 0.0},
	{Name: "Window Facade East", Tilt: 90.0, Orientation: 90.0},
	{Name: "Window Facade South", Tilt: 90.0, Orientation: 180.0},
	{Name: "Window Facade West", Tilt: 90.0, Orientation: 270.0},
}

var roofTemplates = []elementTemplate{
	{Name: "Rooftop", Tilt: 0.0, Orientation: model.OrientationRoof},
}

var groundFloorTemplates = []elementTemplate{
	{Name: "Ground Floor", Tilt: 0.0, Orientation: model.OrientationGround},
}

var innerWallTemplates = []elementTemplate{
	{Name: "InnerWall", Tilt: 90.0, Orientation: 0.0},
}

var ceilingTemplates = []elementTemplate{
	{Name: "Ceiling", Tilt: 0.0, Orientation: model.OrientationRoof},
}

var floorTemplates = []elementTemplate{
	{Name: "Floor", Tilt: 0.0, Orientation: model.OrientationGround},
}
