package models

import "time"

// Fallbacks used when the backend omits a value.
const (
	DefaultCurrentTemp     = 68
	DefaultTargetTemp      = 72
	DefaultIndoorHumidity  = 45
	DefaultOutdoorTemp     = 55
	DefaultOutdoorHumidity = 50
)

// DisplayedSystemState is the dashboard's cached view of the system.
type DisplayedSystemState struct {
	CurrentTemp       int       `json:"current_temp"`
	TargetTemp        int       `json:"target_temp"`
	HVACMode          string    `json:"hvac_mode"` // heating | cooling | fan | off
	IndoorHumidity    int       `json:"indoor_humidity"`
	CarbonMonoxide    int       `json:"carbon_monoxide"`
	EnergyConsumption float64   `json:"energy_consumption"`
	OutdoorTemp       int       `json:"outdoor_temp"`
	OutdoorHumidity   int       `json:"outdoor_humidity"`
	Precipitation     float64   `json:"precipitation"`
	CurrentProfileID  string    `json:"current_profile_id,omitempty"`
	PendingTarget     *int      `json:"pending_target,omitempty"`
	LastUpdated       time.Time `json:"last_updated"`
}

// DefaultDisplayedState is what a dashboard shows before its first refresh.
func DefaultDisplayedState(now time.Time) DisplayedSystemState {
	return DisplayedSystemState{
		CurrentTemp:     DefaultCurrentTemp,
		TargetTemp:      DefaultTargetTemp,
		HVACMode:        DisplayHeating,
		IndoorHumidity:  DefaultIndoorHumidity,
		OutdoorTemp:     DefaultOutdoorTemp,
		OutdoorHumidity: DefaultOutdoorHumidity,
		LastUpdated:     now.UTC(),
	}
}
