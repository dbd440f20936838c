package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Teacher represents a teacher working at the branch.
type Teacher struct {
	Model
	Name              string     `json:"name"`
	NationalID        string     `json:"nationalId,omitempty"`
	ContactInfo       string     `json:"contactInfo,omitempty"`
	Email             string     `json:"email,omitempty"`
	Address           string     `json:"address,omitempty"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	EducationalLevel  string     `json:"educationalLevel,omitempty"`
	Specialization    string     `json:"specialization,omitempty"`
	YearsOfExperience int        `json:"yearsOfExperience,omitempty"`
	Availability      string     `json:"availability,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

func (t *Teacher) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	return nil
}
