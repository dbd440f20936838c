package v1_test

import (
	"net/http"

	v1 "github.com/quran-branch-manager/backend/internal/controllers/v1"
	"github.com/quran-branch-manager/backend/internal/test"
)

func (suite *TestSuiteStandard) createTestStudent(name string) v1.Student {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/students", map[string]any{"name": name})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.StudentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestStudentCreateDefaults() {
	student := suite.createTestStudent("أحمد بن صالح")

	suite.Assert().Equal("active", student.Status)
	suite.Assert().False(student.EnrollmentDate.IsZero())
	suite.Assert().Contains(student.Links.Classes, "/classes")
}

func (suite *TestSuiteStandard) TestStudentListArabicOrder() {
	// Insertion order is deliberately not alphabetical
	suite.createTestStudent("يوسف")
	suite.createTestStudent("آمنة")
	suite.createTestStudent("بلال")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/students", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StudentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 3)

	suite.Assert().Equal("آمنة", response.Data[0].Name)
	suite.Assert().Equal("بلال", response.Data[1].Name)
	suite.Assert().Equal("يوسف", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestStudentStatusFilter() {
	suite.createTestStudent("أحمد")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/students", map[string]any{
		"name":   "مغادر",
		"status": "inactive",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/students?status=active", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StudentListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("أحمد", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestStudentUpdate() {
	student := suite.createTestStudent("أحمد")

	recorder := test.Request(suite.T(), http.MethodPatch, idPath("students", student.ID), map[string]any{
		"memorizationLevel": "جزء عم",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, idPath("students", student.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StudentResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("جزء عم", response.Data.MemorizationLevel)
	suite.Assert().Equal("أحمد", response.Data.Name)
}

func (suite *TestSuiteStandard) TestStudentDelete() {
	student := suite.createTestStudent("أحمد")

	recorder := test.Request(suite.T(), http.MethodDelete, idPath("students", student.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, idPath("students", student.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
