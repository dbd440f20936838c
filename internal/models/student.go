package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Student represents a student enrolled at the branch.
type Student struct {
	Model
	Name                     string     `json:"name"`
	DateOfBirth              *time.Time `json:"dateOfBirth,omitempty"`
	Gender                   string     `json:"gender,omitempty"`
	Address                  string     `json:"address,omitempty"`
	ContactInfo              string     `json:"contactInfo,omitempty"`
	Email                    string     `json:"email,omitempty"`
	EnrollmentDate           time.Time  `json:"enrollmentDate"`
	Status                   string     `json:"status" gorm:"default:active"`
	MemorizationLevel        string     `json:"memorizationLevel,omitempty"`
	Notes                    string     `json:"notes,omitempty"`
	ParentName               string     `json:"parentName,omitempty"`
	ParentContact            string     `json:"parentContact,omitempty"`
	GuardianRelation         string     `json:"guardianRelation,omitempty"`
	EmergencyContactName     string     `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone    string     `json:"emergencyContactPhone,omitempty"`
	HealthConditions         string     `json:"healthConditions,omitempty"`
	NationalID               string     `json:"nationalId,omitempty"`
	SchoolName               string     `json:"schoolName,omitempty"`
	GradeLevel               string     `json:"gradeLevel,omitempty"`
	EducationalLevel         string     `json:"educationalLevel,omitempty"`
	FinancialAssistanceNotes string     `json:"financialAssistanceNotes,omitempty"`
}

// BeforeSave trims the name and defaults the enrollment date to now.
func (s *Student) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	if s.EnrollmentDate.IsZero() {
		s.EnrollmentDate = time.Now().In(time.UTC)
	} else {
		s.EnrollmentDate = s.EnrollmentDate.In(time.UTC)
	}

	return nil
}

// Classes returns all classes the student is enrolled in.
func (s Student) Classes(db *gorm.DB) ([]Class, error) {
	var classes []Class

	err := db.
		Joins("JOIN class_students ON class_students.class_id = classes.id").
		Where("class_students.student_id = ?", s.ID).
		Find(&classes).Error

	return classes, err
}
