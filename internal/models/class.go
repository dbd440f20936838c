package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Class represents a teaching circle. The schedule is a free-form JSON
// document, e.g. [{"day": "Monday", "time": "After Asr"}].
type Class struct {
	Model
	Name      string     `json:"name"`
	ClassType string     `json:"classType,omitempty"`
	TeacherID *uint      `json:"teacherId,omitempty"`
	Teacher   Teacher    `json:"-"`
	Schedule  string     `json:"schedule,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    string     `json:"status" gorm:"default:pending"` // pending, active, completed
	Capacity  int        `json:"capacity,omitempty"`
	Gender    string     `json:"gender" gorm:"default:all"` // women, men, kids, all
}

func (c *Class) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// checkIntegrity verifies references to other resources.
func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.TeacherID != nil {
		return tx.First(&Teacher{}, *c.TeacherID).Error
	}

	return nil
}

// ClassStudent links a student to a class.
type ClassStudent struct {
	ClassID        uint      `json:"classId" gorm:"primaryKey"`
	StudentID      uint      `json:"studentId" gorm:"primaryKey"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
}

func (ClassStudent) TableName() string { return "class_students" }

func (e *ClassStudent) BeforeCreate(_ *gorm.DB) error {
	if e.EnrollmentDate.IsZero() {
		e.EnrollmentDate = time.Now().In(time.UTC)
	}

	return nil
}

// Students returns all students enrolled in the class.
func (c Class) Students(db *gorm.DB) ([]Student, error) {
	var students []Student

	err := db.
		Joins("JOIN class_students ON class_students.student_id = students.id").
		Where("class_students.class_id = ?", c.ID).
		Find(&students).Error

	return students, err
}

// Enroll adds a student to the class. Enrolling a student twice is not
// an error.
func (c Class) Enroll(db *gorm.DB, studentID uint) error {
	if err := db.First(&Student{}, studentID).Error; err != nil {
		return err
	}

	enrollment := ClassStudent{ClassID: c.ID, StudentID: studentID}
	return db.Where(&enrollment).FirstOrCreate(&enrollment).Error
}

// Unenroll removes a student from the class.
func (c Class) Unenroll(db *gorm.DB, studentID uint) error {
	return db.Delete(&ClassStudent{ClassID: c.ID, StudentID: studentID}).Error
}
