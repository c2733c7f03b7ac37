package model

import "time"

// Role describes portal access level.
type Role string

const (
	RoleDriver      Role = "driver"
	RoleAgent       Role = "agent"
	RoleAdmin       Role = "admin"
	RoleCompanyUser Role = "company_user"
)

// Valid reports whether the role is one of the known portal roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDriver, RoleAgent, RoleAdmin, RoleCompanyUser:
		return true
	}
	return false
}

// User describes a portal account.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	CompanyID    *int64
	CreatedAt    time.Time
}
