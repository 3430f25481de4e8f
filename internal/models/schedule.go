package models

// ScheduleRow is a recurring daily temperature change owned by the backend.
type ScheduleRow struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	StartTime  string  `json:"start_time"` // "HH:MM[:SS]" or a full date-time
	TargetTemp float64 `json:"target_temp"`
}

// Profile is a named target temperature preset.
type Profile struct {
	ID          int     `json:"id"`
	HomeownerID int     `json:"homeowner_id"`
	Name        string  `json:"name"`
	TargetTemp  float64 `json:"target_temp"`
	CreatedAt   string  `json:"created_at"`
}
