package models

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attendance records whether a student attended a class session.
// The date is stored as YYYY-MM-DD text, matching session granularity.
type Attendance struct {
	ClassID   uint             `json:"classId" gorm:"primaryKey"`
	StudentID uint             `json:"studentId" gorm:"primaryKey"`
	Date      string           `json:"date" gorm:"primaryKey"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// BeforeSave validates the status and the date format.
func (a *Attendance) BeforeSave(_ *gorm.DB) error {
	if !slices.Contains([]AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate}, a.Status) {
		return fmt.Errorf("%q is not a valid attendance status", a.Status)
	}

	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return fmt.Errorf("the attendance date must be formatted as YYYY-MM-DD: %w", err)
	}

	return nil
}
