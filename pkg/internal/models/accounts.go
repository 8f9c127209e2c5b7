package models

import "time"

// Account is the principal shape handed to us by the auth gateway.
// Credentials and sessions live upstream; we only keep the profile and
// the role flags needed to gate admin surfaces.
type Account struct {
	BaseModel

	Email        string     `json:"email" gorm:"uniqueIndex"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	IsAdmin      bool       `json:"is_admin"`
	IsSuperAdmin bool       `json:"is_super_admin"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}
