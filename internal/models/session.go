package models

import "time"

// Role decides which dashboard a session gets.
type Role string

const (
	RoleHomeowner  Role = "homeowner"
	RoleTechnician Role = "technician"
	RoleGuest      Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleHomeowner, RoleTechnician, RoleGuest:
		return true
	}
	return false
}

// Session is returned by the backend login endpoints.
type Session struct {
	Token       string    `json:"Token"`
	UserID      int       `json:"UserID"`
	Username    string    `json:"Username"`
	Role        Role      `json:"Role"`
	HomeownerID int       `json:"HomeownerID"`
	ExpiresAt   time.Time `json:"ExpiresAt"`
	// SessionID identifies one local sign-in; tokens carry it as jti.
	SessionID string `json:"-"`
}
