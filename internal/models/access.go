package models

type Guest struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type Technician struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TechnicianAccess is a time-boxed grant for a technician.
type TechnicianAccess struct {
	ID             int    `json:"id"`
	TechnicianID   int    `json:"technician_id"`
	TechnicianName string `json:"technician_name"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	IsActive       bool   `json:"is_active"`
}

// Diagnostic log levels accepted by the backend.
const (
	DiagnosticInfo  = "INFO"
	DiagnosticWarn  = "WARN"
	DiagnosticError = "ERROR"
)

// DiagnosticLog uses the backend's exported-field JSON names.
type DiagnosticLog struct {
	ID          int    `json:"ID"`
	HomeownerID int    `json:"HomeownerID"`
	LoggedAt    string `json:"LoggedAt"`
	Level       string `json:"Level"`
	Message     string `json:"Message"`
}
