package model

import "strings"

// ConstructionTag selects the family of construction records used for a
// building's opaque elements.
type ConstructionTag string

const (
	IWUHeavy ConstructionTag = "iwu_heavy"
	IWULight ConstructionTag = "iwu_light"
	KfW40    ConstructionTag = "kfw_40"
	KfW55    ConstructionTag = "kfw_55"
	KfW70    ConstructionTag = "kfw_70"
	KfW85    ConstructionTag = "kfw_85"
	KfW100   ConstructionTag = "kfw_100"
)

// constructionTags is the closed set of accepted tags.
var constructionTags = map[ConstructionTag]bool{
	IWUHeavy: true,
	IWULight: true,
	KfW40:    true,
	KfW55:    true,
	KfW70:    true,
	KfW85:    true,
	KfW100:   true,
}

// Valid reports whether the tag is a known construction family.
func (c ConstructionTag) Valid() bool {
	return constructionTags[c]
}

// IsKfW reports whether the tag is a KfW efficiency standard. KfW buildings
// get triple glazing instead of the standard insulated window construction.
func (c ConstructionTag) IsKfW() bool {
	return strings.HasPrefix(string(c), "kfw_")
}

// Technique returns the construction-technique string matched against record
// construction types: "heavy"/"light" for the IWU families, the tag itself
// for KfW standards.
func (c ConstructionTag) Technique() string {
	return strings.TrimPrefix(string(c), "iwu_")
}

// Window construction identifiers. Windows have no year/technique
// classification of their own; the record family is picked from the
// building's construction tag.
const (
	WindowConstructionKfW      = "Waermeschutzverglasung, dreifach"
	WindowConstructionStandard = "Kunststofffenster, Isolierverglasung"
)

// WindowTechnique returns the window construction-technique string for the
// building's construction family.
func (c ConstructionTag) WindowTechnique() string {
	if c.IsKfW() {
		return WindowConstructionKfW
	}
	return WindowConstructionStandard
}
