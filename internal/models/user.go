package models

import (
	"strings"

	"gorm.io/gorm"
)

type Role string

const (
	RoleSuperadmin        Role = "Superadmin"
	RoleManager           Role = "Manager"
	RoleFinanceManager    Role = "FinanceManager"
	RoleAdmin             Role = "Admin"
	RoleSessionSupervisor Role = "SessionSupervisor"
)

// User is a staff member with access to the application. Session and
// token handling is owned by the desktop shell, not this backend.
type User struct {
	Model
	Username       string `json:"username" gorm:"uniqueIndex"`
	Password       string `json:"-"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Role           Role   `json:"role"`
	Status         string `json:"status" gorm:"default:active"`
	EmploymentType string `json:"employmentType,omitempty"` // volunteer or contract
	Notes          string `json:"notes,omitempty"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	return nil
}
