package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/quran-branch-manager/backend/internal/controllers/v1"
	"github.com/quran-branch-manager/backend/internal/test"
)

func (suite *TestSuiteStandard) createTestClass(name string) v1.Class {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/classes", map[string]any{"name": name})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ClassResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestClassCreateDefaults() {
	class := suite.createTestClass("حلقة الحفظ")

	suite.Assert().Equal("pending", class.Status)
	suite.Assert().Equal("all", class.Gender)
}

func (suite *TestSuiteStandard) TestClassUnknownTeacher() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/classes", map[string]any{
		"name":      "حلقة الحفظ",
		"teacherId": 9999,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestClassEnrollment() {
	class := suite.createTestClass("حلقة الحفظ")
	student := suite.createTestStudent("أحمد")

	recorder := test.Request(suite.T(), http.MethodPost, idPath("classes", class.ID)+"/students", map[string]any{
		"studentId": student.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, idPath("classes", class.ID)+"/students", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var students v1.StudentListResponse
	test.DecodeResponse(suite.T(), &recorder, &students)
	suite.Require().Len(students.Data, 1)
	suite.Assert().Equal(student.ID, students.Data[0].ID)

	// The enrollment is also visible from the student side
	recorder = test.Request(suite.T(), http.MethodGet, idPath("students", student.ID)+"/classes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var classes v1.ClassListResponse
	test.DecodeResponse(suite.T(), &recorder, &classes)
	suite.Require().Len(classes.Data, 1)
	suite.Assert().Equal(class.ID, classes.Data[0].ID)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s/students/%d", idPath("classes", class.ID), student.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, idPath("classes", class.ID)+"/students", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &students)
	suite.Assert().Empty(students.Data)
}

func (suite *TestSuiteStandard) TestClassEnrollUnknownStudent() {
	class := suite.createTestClass("حلقة الحفظ")

	recorder := test.Request(suite.T(), http.MethodPost, idPath("classes", class.ID)+"/students", map[string]any{
		"studentId": 9999,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAttendanceUpsert() {
	class := suite.createTestClass("حلقة الحفظ")
	student := suite.createTestStudent("أحمد")

	recorder := test.Request(suite.T(), http.MethodPut, "/v1/attendance", map[string]any{
		"classId":   class.ID,
		"studentId": student.ID,
		"date":      "2024-09-18",
		"status":    "absent",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Recording the same session again replaces the status
	recorder = test.Request(suite.T(), http.MethodPut, "/v1/attendance", map[string]any{
		"classId":   class.ID,
		"studentId": student.ID,
		"date":      "2024-09-18",
		"status":    "present",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/attendance?class=%d", class.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AttendanceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().EqualValues("present", response.Data[0].Status)
}

func (suite *TestSuiteStandard) TestAttendanceInvalidStatus() {
	class := suite.createTestClass("حلقة الحفظ")
	student := suite.createTestStudent("أحمد")

	recorder := test.Request(suite.T(), http.MethodPut, "/v1/attendance", map[string]any{
		"classId":   class.ID,
		"studentId": student.ID,
		"date":      "2024-09-18",
		"status":    "sleeping",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAttendanceUnknownClass() {
	student := suite.createTestStudent("أحمد")

	recorder := test.Request(suite.T(), http.MethodPut, "/v1/attendance", map[string]any{
		"classId":   9999,
		"studentId": student.ID,
		"date":      "2024-09-18",
		"status":    "present",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
