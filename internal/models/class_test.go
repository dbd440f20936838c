package models_test

import (
	"github.com/quran-branch-manager/backend/internal/models"
)

func (suite *TestSuiteStandard) TestClassTeacherMustExist() {
	teacherID := uint(9999)
	err := models.DB.Create(&models.Class{Name: "حلقة الحفظ", TeacherID: &teacherID}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestClassDefaults() {
	teacher := suite.createTestTeacher(models.Teacher{Name: "فاطمة الزهراء"})
	class := suite.createTestClass(models.Class{Name: "حلقة الحفظ", TeacherID: &teacher.ID})

	suite.Assert().Equal("pending", class.Status)
	suite.Assert().Equal("all", class.Gender)
}

func (suite *TestSuiteStandard) TestClassEnrollment() {
	class := suite.createTestClass(models.Class{Name: "حلقة الحفظ"})
	student := suite.createTestStudent(models.Student{Name: "أحمد بن صالح"})

	suite.Require().NoError(class.Enroll(models.DB, student.ID))

	// Enrolling twice is not an error and does not duplicate
	suite.Require().NoError(class.Enroll(models.DB, student.ID))

	students, err := class.Students(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(students, 1)
	suite.Assert().Equal(student.ID, students[0].ID)

	classes, err := student.Classes(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(classes, 1)
	suite.Assert().Equal(class.ID, classes[0].ID)

	suite.Require().NoError(class.Unenroll(models.DB, student.ID))

	students, err = class.Students(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Empty(students)
}

func (suite *TestSuiteStandard) TestClassEnrollUnknownStudent() {
	class := suite.createTestClass(models.Class{Name: "حلقة الحفظ"})

	err := class.Enroll(models.DB, 9999)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
