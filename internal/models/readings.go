package models

// SensorReading is one indoor sample. Nil fields were not reported.
type SensorReading struct {
	ID          int      `json:"id"`
	HomeownerID int      `json:"homeowner_id"`
	RecordedAt  string   `json:"recorded_at"`
	IndoorTemp  *float64 `json:"indoor_temp"`
	Humidity    *float64 `json:"humidity"`
	COPPM       *float64 `json:"co_ppm"`
}

// WeatherReading is one outdoor sample.
type WeatherReading struct {
	ID              int      `json:"id"`
	HomeownerID     int      `json:"homeowner_id"`
	RecordedAt      string   `json:"recorded_at"`
	Temp            *float64 `json:"temp"`
	Humidity        *float64 `json:"humidity"`
	PrecipitationMM *float64 `json:"precipitation_mm"`
}

type EnergyConsumption struct {
	KilowattsUsed float64 `json:"kilowatts_used"`
}
