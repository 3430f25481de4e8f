package models

// Backend HVAC modes.
const (
	HVACModeHeat = "heat"
	HVACModeCool = "cool"
	HVACModeFan  = "fan"
	HVACModeOff  = "off"
)

// Display modes shown on the dashboard.
const (
	DisplayHeating = "heating"
	DisplayCooling = "cooling"
	DisplayFan     = "fan"
	DisplayOff     = "off"
)

// HVACState is the authoritative mode/target/current triple reported by the backend.
type HVACState struct {
	Mode        string  `json:"mode"`
	TargetTemp  float64 `json:"target_temp"`
	CurrentTemp float64 `json:"current_temp"`
}

// DisplayMode maps a backend mode to the dashboard vocabulary.
// Anything unknown is shown as off.
func DisplayMode(mode string) string {
	switch mode {
	case HVACModeHeat:
		return DisplayHeating
	case HVACModeCool:
		return DisplayCooling
	case HVACModeFan:
		return DisplayFan
	default:
		return DisplayOff
	}
}
