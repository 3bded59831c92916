package model

// UseConditions describes the occupancy profile attached to a zone. Profiles
// are loaded by name from the use-condition registry; the zero value is not a
// valid profile.
type UseConditions struct {
	Usage             string  `json:"usage" yaml:"usage"`
	SetpointHeating   float64 `json:"setpoint_heating" yaml:"setpoint_heating"`       // degC
	SetpointCooling   float64 `json:"setpoint_cooling" yaml:"setpoint_cooling"`       // degC
	InfiltrationRate  float64 `json:"infiltration_rate" yaml:"infiltration_rate"`     // 1/h
	PersonsGain       float64 `json:"persons_gain" yaml:"persons_gain"`               // W/m2
	MachinesGain      float64 `json:"machines_gain" yaml:"machines_gain"`             // W/m2
	LightingGain      float64 `json:"lighting_gain" yaml:"lighting_gain"`             // W/m2
	UsageHoursPerDay  int     `json:"usage_hours_per_day" yaml:"usage_hours_per_day"`
	TypicalRoomLength float64 `json:"typical_room_length" yaml:"typical_room_length"` // m
	TypicalRoomWidth  float64 `json:"typical_room_width" yaml:"typical_room_width"`   // m
	WithAHU           bool    `json:"with_ahu" yaml:"with_ahu"`
}
